package dto

import (
	"time"

	"github.com/oyasar/assist/internal/app/models"
)

// CreateAnnouncementRequest is the multipart form for publishing an
// announcement. The file part, if any, travels alongside.
type CreateAnnouncementRequest struct {
	Title       *string `form:"title" example:"Midterm rescheduled"`
	Description string  `form:"description" example:"The midterm moves to Friday."`
}

// UpdateAnnouncementRequest is the form for editing an announcement.
type UpdateAnnouncementRequest struct {
	Title       *string `form:"title"`
	Description string  `form:"description"`
}

// AnnouncementResponse is the public shape of an announcement.
type AnnouncementResponse struct {
	ID          int64     `json:"id" example:"1"`
	CourseID    int64     `json:"courseId" example:"1"`
	AuthorID    int64     `json:"authorId" example:"1"`
	Title       *string   `json:"title,omitempty"`
	Description string    `json:"description"`
	FilePath    *string   `json:"filePath,omitempty"`
	AddedOn     time.Time `json:"addedOn"`
	UpdatedOn   time.Time `json:"updatedOn"`
}

// CreateMaterialRequest is the multipart form for publishing a material.
type CreateMaterialRequest struct {
	Title *string `form:"title" example:"Lecture 12 slides"`
}

// MaterialResponse is the public shape of a material.
type MaterialResponse struct {
	ID       int64     `json:"id" example:"1"`
	CourseID int64     `json:"courseId" example:"1"`
	AuthorID int64     `json:"authorId" example:"1"`
	Title    *string   `json:"title,omitempty"`
	FilePath *string   `json:"filePath,omitempty"`
	AddedOn  time.Time `json:"addedOn"`
}

// CreateExamPaperRequest is the multipart form for publishing an exam paper.
type CreateExamPaperRequest struct {
	Term string `form:"term" binding:"required,oneof=mid-term end-term" example:"mid-term"`
}

// ExamPaperResponse is the public shape of an exam paper.
type ExamPaperResponse struct {
	ID       int64     `json:"id" example:"1"`
	CourseID int64     `json:"courseId" example:"1"`
	AuthorID int64     `json:"authorId" example:"1"`
	Term     string    `json:"term" example:"mid-term"`
	FilePath *string   `json:"filePath,omitempty"`
	AddedOn  time.Time `json:"addedOn"`
}

// BookmarkResponse is the public shape of a bookmark.
type BookmarkResponse struct {
	ID       int64 `json:"id" example:"1"`
	UserID   int64 `json:"userId" example:"1"`
	CourseID int64 `json:"courseId" example:"1"`
}

// CreateFeedbackRequest is the multipart form for submitting feedback.
type CreateFeedbackRequest struct {
	Title string `form:"title" binding:"required" example:"Search would help"`
	Body  string `form:"body" example:"Finding old papers takes too many clicks."`
}

// FeedbackResponse is the public shape of a feedback entry.
type FeedbackResponse struct {
	ID       int64     `json:"id" example:"1"`
	AuthorID int64     `json:"authorId" example:"1"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	FilePath *string   `json:"filePath,omitempty"`
	AddedOn  time.Time `json:"addedOn"`
}

// ToAnnouncementResponse maps an announcement model to its public shape.
func ToAnnouncementResponse(a *models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		CourseID:    a.CourseID,
		AuthorID:    a.AuthorID,
		Title:       a.Title,
		Description: a.Description,
		FilePath:    a.FilePath,
		AddedOn:     a.AddedOn,
		UpdatedOn:   a.UpdatedOn,
	}
}

// ToMaterialResponse maps a material model to its public shape.
func ToMaterialResponse(m *models.Material) MaterialResponse {
	return MaterialResponse{
		ID:       m.ID,
		CourseID: m.CourseID,
		AuthorID: m.AuthorID,
		Title:    m.Title,
		FilePath: m.FilePath,
		AddedOn:  m.AddedOn,
	}
}

// ToExamPaperResponse maps an exam paper model to its public shape.
func ToExamPaperResponse(p *models.ExamPaper) ExamPaperResponse {
	return ExamPaperResponse{
		ID:       p.ID,
		CourseID: p.CourseID,
		AuthorID: p.AuthorID,
		Term:     string(p.Term),
		FilePath: p.FilePath,
		AddedOn:  p.AddedOn,
	}
}

// ToBookmarkResponse maps a bookmark model to its public shape.
func ToBookmarkResponse(b *models.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:       b.ID,
		UserID:   b.UserID,
		CourseID: b.CourseID,
	}
}

// ToFeedbackResponse maps a feedback model to its public shape.
func ToFeedbackResponse(f *models.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:       f.ID,
		AuthorID: f.AuthorID,
		Title:    f.Title,
		Body:     f.Body,
		FilePath: f.FilePath,
		AddedOn:  f.AddedOn,
	}
}

package services

import (
	"context"
	"strings"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/logger"
)

// AnnouncementStore is the persistence surface for announcements.
type AnnouncementStore interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Announcement, error)
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id int64) error
}

// MaterialStore is the persistence surface for materials.
type MaterialStore interface {
	Create(ctx context.Context, material *models.Material) error
	GetByID(ctx context.Context, id int64) (*models.Material, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Material, error)
	Delete(ctx context.Context, id int64) error
}

// ExamPaperStore is the persistence surface for exam papers.
type ExamPaperStore interface {
	Create(ctx context.Context, paper *models.ExamPaper) error
	GetByID(ctx context.Context, id int64) (*models.ExamPaper, error)
	GetByCourseID(ctx context.Context, courseID int64, term models.Term) ([]*models.ExamPaper, error)
	Delete(ctx context.Context, id int64) error
}

// BookmarkStore is the persistence surface for bookmarks.
type BookmarkStore interface {
	Create(ctx context.Context, bookmark *models.Bookmark) error
	Exists(ctx context.Context, userID, courseID int64) (bool, error)
	GetByUserID(ctx context.Context, userID int64) ([]*models.Bookmark, error)
	Delete(ctx context.Context, userID, courseID int64) error
}

// FeedbackStore is the persistence surface for feedback entries.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetByID(ctx context.Context, id int64) (*models.Feedback, error)
	GetAll(ctx context.Context) ([]*models.Feedback, error)
	Delete(ctx context.Context, id int64) error
}

// UserResolver resolves users referenced as content authors.
type UserResolver interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// CourseResolver resolves courses referenced by content.
type CourseResolver interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// ContributionRecorder credits a user's ledger for a published piece of
// content.
type ContributionRecorder interface {
	Record(ctx context.Context, userID int64, kind models.ContributionKind) (*models.Contributor, error)
}

// ContentService publishes and manages course content: announcements,
// materials, exam papers, bookmarks and feedback. Publishing requires an
// existing course and author, and credits the author's contribution ledger.
type ContentService struct {
	announcementStore AnnouncementStore
	materialStore     MaterialStore
	examPaperStore    ExamPaperStore
	bookmarkStore     BookmarkStore
	feedbackStore     FeedbackStore
	userResolver      UserResolver
	courseResolver    CourseResolver
	contributions     ContributionRecorder
}

// NewContentService creates a new content service
func NewContentService(
	announcementStore AnnouncementStore,
	materialStore MaterialStore,
	examPaperStore ExamPaperStore,
	bookmarkStore BookmarkStore,
	feedbackStore FeedbackStore,
	userResolver UserResolver,
	courseResolver CourseResolver,
	contributions ContributionRecorder,
) *ContentService {
	return &ContentService{
		announcementStore: announcementStore,
		materialStore:     materialStore,
		examPaperStore:    examPaperStore,
		bookmarkStore:     bookmarkStore,
		feedbackStore:     feedbackStore,
		userResolver:      userResolver,
		courseResolver:    courseResolver,
		contributions:     contributions,
	}
}

// checkReferences resolves the course and author a piece of content points
// at. Both must exist before anything is written.
func (s *ContentService) checkReferences(ctx context.Context, courseID, authorID int64) error {
	if _, err := s.courseResolver.GetByID(ctx, courseID); err != nil {
		return err
	}
	if _, err := s.userResolver.GetUserByID(ctx, authorID); err != nil {
		return err
	}
	return nil
}

// credit records a ledger contribution for published content. The content is
// already committed, so a ledger failure is logged rather than propagated.
func (s *ContentService) credit(ctx context.Context, userID int64, kind models.ContributionKind) {
	if _, err := s.contributions.Record(ctx, userID, kind); err != nil {
		logger.Warn().Err(err).
			Int64("userId", userID).
			Str("kind", string(kind)).
			Msg("Failed to credit contribution")
	}
}

// PublishAnnouncement creates an announcement on a course.
func (s *ContentService) PublishAnnouncement(ctx context.Context, courseID, authorID int64, title *string, description string, filePath *string) (*models.Announcement, error) {
	if strings.TrimSpace(description) == "" && filePath == nil {
		return nil, apperrors.NewValidationError("announcement needs a description or a file")
	}

	if err := s.checkReferences(ctx, courseID, authorID); err != nil {
		return nil, err
	}

	announcement := &models.Announcement{
		CourseID:    courseID,
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		FilePath:    filePath,
	}

	if err := s.announcementStore.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.credit(ctx, authorID, models.ContributionAnnouncement)

	return announcement, nil
}

// UpdateAnnouncement rewrites an announcement's mutable fields. The edit
// timestamp is refreshed; the publish timestamp is not.
func (s *ContentService) UpdateAnnouncement(ctx context.Context, id int64, title *string, description string, filePath *string) (*models.Announcement, error) {
	announcement, err := s.announcementStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	announcement.Title = title
	announcement.Description = description
	if filePath != nil {
		announcement.FilePath = filePath
	}

	if err := s.announcementStore.Update(ctx, announcement); err != nil {
		return nil, err
	}

	return announcement, nil
}

// GetAnnouncement retrieves an announcement by ID.
func (s *ContentService) GetAnnouncement(ctx context.Context, id int64) (*models.Announcement, error) {
	return s.announcementStore.GetByID(ctx, id)
}

// ListAnnouncements retrieves announcements for a course, newest first.
func (s *ContentService) ListAnnouncements(ctx context.Context, courseID int64) ([]*models.Announcement, error) {
	if _, err := s.courseResolver.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.announcementStore.GetByCourseID(ctx, courseID)
}

// DeleteAnnouncement deletes an announcement.
func (s *ContentService) DeleteAnnouncement(ctx context.Context, id int64) error {
	return s.announcementStore.Delete(ctx, id)
}

// PublishMaterial creates a material on a course.
func (s *ContentService) PublishMaterial(ctx context.Context, courseID, authorID int64, title, filePath *string) (*models.Material, error) {
	if filePath == nil {
		return nil, apperrors.NewValidationError("material needs a file")
	}

	if err := s.checkReferences(ctx, courseID, authorID); err != nil {
		return nil, err
	}

	material := &models.Material{
		CourseID: courseID,
		AuthorID: authorID,
		Title:    title,
		FilePath: filePath,
	}

	if err := s.materialStore.Create(ctx, material); err != nil {
		return nil, err
	}

	s.credit(ctx, authorID, models.ContributionMaterial)

	return material, nil
}

// GetMaterial retrieves a material by ID.
func (s *ContentService) GetMaterial(ctx context.Context, id int64) (*models.Material, error) {
	return s.materialStore.GetByID(ctx, id)
}

// ListMaterials retrieves materials for a course, newest first.
func (s *ContentService) ListMaterials(ctx context.Context, courseID int64) ([]*models.Material, error) {
	if _, err := s.courseResolver.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.materialStore.GetByCourseID(ctx, courseID)
}

// DeleteMaterial deletes a material.
func (s *ContentService) DeleteMaterial(ctx context.Context, id int64) error {
	return s.materialStore.Delete(ctx, id)
}

// PublishExamPaper creates an exam paper on a course. The term must be one of
// the known values.
func (s *ContentService) PublishExamPaper(ctx context.Context, courseID, authorID int64, term models.Term, filePath *string) (*models.ExamPaper, error) {
	if !term.IsValid() {
		return nil, apperrors.ErrInvalidTerm
	}
	if filePath == nil {
		return nil, apperrors.NewValidationError("exam paper needs a file")
	}

	if err := s.checkReferences(ctx, courseID, authorID); err != nil {
		return nil, err
	}

	paper := &models.ExamPaper{
		CourseID: courseID,
		AuthorID: authorID,
		Term:     term,
		FilePath: filePath,
	}

	if err := s.examPaperStore.Create(ctx, paper); err != nil {
		return nil, err
	}

	s.credit(ctx, authorID, models.ContributionPaper)

	return paper, nil
}

// GetExamPaper retrieves an exam paper by ID.
func (s *ContentService) GetExamPaper(ctx context.Context, id int64) (*models.ExamPaper, error) {
	return s.examPaperStore.GetByID(ctx, id)
}

// ListExamPapers retrieves exam papers for a course, optionally filtered by
// term.
func (s *ContentService) ListExamPapers(ctx context.Context, courseID int64, term models.Term) ([]*models.ExamPaper, error) {
	if term != "" && !term.IsValid() {
		return nil, apperrors.ErrInvalidTerm
	}
	if _, err := s.courseResolver.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.examPaperStore.GetByCourseID(ctx, courseID, term)
}

// DeleteExamPaper deletes an exam paper.
func (s *ContentService) DeleteExamPaper(ctx context.Context, id int64) error {
	return s.examPaperStore.Delete(ctx, id)
}

// Bookmark marks a course for a user. A user holds at most one bookmark per
// course.
func (s *ContentService) Bookmark(ctx context.Context, userID, courseID int64) (*models.Bookmark, error) {
	if err := s.checkReferences(ctx, courseID, userID); err != nil {
		return nil, err
	}

	exists, err := s.bookmarkStore.Exists(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrBookmarkAlreadyExists
	}

	bookmark := &models.Bookmark{
		UserID:   userID,
		CourseID: courseID,
	}

	if err := s.bookmarkStore.Create(ctx, bookmark); err != nil {
		return nil, err
	}

	return bookmark, nil
}

// Unbookmark removes a user's bookmark for a course.
func (s *ContentService) Unbookmark(ctx context.Context, userID, courseID int64) error {
	return s.bookmarkStore.Delete(ctx, userID, courseID)
}

// ListBookmarks retrieves a user's bookmarks.
func (s *ContentService) ListBookmarks(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	return s.bookmarkStore.GetByUserID(ctx, userID)
}

// SubmitFeedback creates a feedback entry and credits the author's ledger.
func (s *ContentService) SubmitFeedback(ctx context.Context, authorID int64, title, body string, filePath *string) (*models.Feedback, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.NewValidationError("feedback title is required")
	}

	if _, err := s.userResolver.GetUserByID(ctx, authorID); err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		AuthorID: authorID,
		Title:    title,
		Body:     body,
		FilePath: filePath,
	}

	if err := s.feedbackStore.Create(ctx, feedback); err != nil {
		return nil, err
	}

	s.credit(ctx, authorID, models.ContributionFeedback)

	return feedback, nil
}

// GetFeedback retrieves a feedback entry by ID.
func (s *ContentService) GetFeedback(ctx context.Context, id int64) (*models.Feedback, error) {
	return s.feedbackStore.GetByID(ctx, id)
}

// ListFeedback retrieves all feedback entries, newest first.
func (s *ContentService) ListFeedback(ctx context.Context) ([]*models.Feedback, error) {
	return s.feedbackStore.GetAll(ctx)
}

// DeleteFeedback deletes a feedback entry.
func (s *ContentService) DeleteFeedback(ctx context.Context, id int64) error {
	return s.feedbackStore.Delete(ctx, id)
}

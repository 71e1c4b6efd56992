package models

import "time"

// Announcement is a course announcement authored by a user.
// UpdatedOn is refreshed on every edit; AddedOn is immutable after creation.
type Announcement struct {
	ID          int64     `json:"id" db:"id"`
	CourseID    int64     `json:"courseId" db:"course_id"`
	AuthorID    int64     `json:"authorId" db:"author_id"`
	Title       *string   `json:"title,omitempty" db:"title"`
	Description string    `json:"description" db:"description"`
	FilePath    *string   `json:"filePath,omitempty" db:"file_path"`
	AddedOn     time.Time `json:"addedOn" db:"added_on"`
	UpdatedOn   time.Time `json:"updatedOn" db:"updated_on"`
}

// Material is a course material file reference authored by a user.
type Material struct {
	ID       int64     `json:"id" db:"id"`
	CourseID int64     `json:"courseId" db:"course_id"`
	AuthorID int64     `json:"authorId" db:"author_id"`
	Title    *string   `json:"title,omitempty" db:"title"`
	FilePath *string   `json:"filePath,omitempty" db:"file_path"`
	AddedOn  time.Time `json:"addedOn" db:"added_on"`
}

// ExamPaper is a past exam paper for a course, tagged with its term.
type ExamPaper struct {
	ID       int64     `json:"id" db:"id"`
	CourseID int64     `json:"courseId" db:"course_id"`
	AuthorID int64     `json:"authorId" db:"author_id"`
	Term     Term      `json:"term" db:"term"`
	FilePath *string   `json:"filePath,omitempty" db:"file_path"`
	AddedOn  time.Time `json:"addedOn" db:"added_on"`
}

// Bookmark joins a user to a course they bookmarked. The pair is unique.
type Bookmark struct {
	ID       int64 `json:"id" db:"id"`
	UserID   int64 `json:"userId" db:"user_id"`
	CourseID int64 `json:"courseId" db:"course_id"`
}

// Feedback is a free-standing feedback entry authored by a user.
type Feedback struct {
	ID       int64     `json:"id" db:"id"`
	AuthorID int64     `json:"authorId" db:"author_id"`
	Title    string    `json:"title" db:"title"`
	Body     string    `json:"body" db:"body"`
	FilePath *string   `json:"filePath,omitempty" db:"file_path"`
	AddedOn  time.Time `json:"addedOn" db:"added_on"`
}

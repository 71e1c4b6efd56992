package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/dberrors"
)

// BookmarkRepository handles database operations for course bookmarks
type BookmarkRepository struct {
	db *pgxpool.Pool
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db *pgxpool.Pool) *BookmarkRepository {
	return &BookmarkRepository{
		db: db,
	}
}

// Create creates a bookmark. A user can bookmark a course at most once.
func (r *BookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	query := `
		INSERT INTO bookmarks (user_id, course_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, bookmark.UserID, bookmark.CourseID).Scan(&bookmark.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "bookmarks_user_id_course_id_key") {
			return apperrors.ErrBookmarkAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrReferenceNotFound
		}
		return fmt.Errorf("error creating bookmark: %w", err)
	}

	return nil
}

// GetByUserID retrieves all bookmarks for a user
func (r *BookmarkRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, course_id
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*models.Bookmark
	for rows.Next() {
		bookmark := &models.Bookmark{}
		if err := rows.Scan(&bookmark.ID, &bookmark.UserID, &bookmark.CourseID); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, bookmark)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookmarks, nil
}

// Exists checks whether a user already bookmarked a course
func (r *BookmarkRepository) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND course_id = $2)`,
		userID, courseID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking bookmark: %w", err)
	}

	return exists, nil
}

// Delete removes a user's bookmark for a course
func (r *BookmarkRepository) Delete(ctx context.Context, userID, courseID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM bookmarks
		WHERE user_id = $1 AND course_id = $2`,
		userID, courseID)

	if err != nil {
		return fmt.Errorf("error deleting bookmark: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookmarkNotFound
	}

	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/dberrors"
)

const announcementColumns = `id, course_id, author_id, title, description, file_path, added_on, updated_on`

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
	}
}

// Create creates a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	query := `
		INSERT INTO announcements (course_id, author_id, title, description, file_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, added_on, updated_on
	`

	err := r.db.QueryRow(ctx, query,
		announcement.CourseID, announcement.AuthorID, announcement.Title,
		announcement.Description, announcement.FilePath).Scan(
		&announcement.ID, &announcement.AddedOn, &announcement.UpdatedOn)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrReferenceNotFound
		}
		return fmt.Errorf("error creating announcement: %w", err)
	}

	return nil
}

// GetByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	announcement := &models.Announcement{}
	err := r.db.QueryRow(ctx, `
		SELECT `+announcementColumns+`
		FROM announcements
		WHERE id = $1`,
		id).Scan(
		&announcement.ID, &announcement.CourseID, &announcement.AuthorID,
		&announcement.Title, &announcement.Description, &announcement.FilePath,
		&announcement.AddedOn, &announcement.UpdatedOn)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, fmt.Errorf("error retrieving announcement: %w", err)
	}

	return announcement, nil
}

// GetByCourseID retrieves all announcements for a course, newest first
func (r *AnnouncementRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Announcement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+announcementColumns+`
		FROM announcements
		WHERE course_id = $1
		ORDER BY added_on DESC`,
		courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		announcement := &models.Announcement{}
		if err := rows.Scan(
			&announcement.ID, &announcement.CourseID, &announcement.AuthorID,
			&announcement.Title, &announcement.Description, &announcement.FilePath,
			&announcement.AddedOn, &announcement.UpdatedOn,
		); err != nil {
			return nil, err
		}
		announcements = append(announcements, announcement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return announcements, nil
}

// Update rewrites the mutable fields of an announcement and refreshes its
// updated_on timestamp.
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	err := r.db.QueryRow(ctx, `
		UPDATE announcements
		SET title = $1, description = $2, file_path = $3, updated_on = now()
		WHERE id = $4
		RETURNING updated_on`,
		announcement.Title, announcement.Description, announcement.FilePath,
		announcement.ID).Scan(&announcement.UpdatedOn)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrContentNotFound
		}
		return fmt.Errorf("error updating announcement: %w", err)
	}

	return nil
}

// Delete deletes an announcement by ID
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting announcement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContentNotFound
	}

	return nil
}

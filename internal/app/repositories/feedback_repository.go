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

// FeedbackRepository handles database operations for feedback entries
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// Create creates a new feedback entry
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (author_id, title, body, file_path)
		VALUES ($1, $2, $3, $4)
		RETURNING id, added_on
	`

	err := r.db.QueryRow(ctx, query,
		feedback.AuthorID, feedback.Title, feedback.Body,
		feedback.FilePath).Scan(&feedback.ID, &feedback.AddedOn)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating feedback: %w", err)
	}

	return nil
}

// GetByID retrieves a feedback entry by ID
func (r *FeedbackRepository) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	feedback := &models.Feedback{}
	err := r.db.QueryRow(ctx, `
		SELECT id, author_id, title, body, file_path, added_on
		FROM feedback
		WHERE id = $1`,
		id).Scan(
		&feedback.ID, &feedback.AuthorID, &feedback.Title,
		&feedback.Body, &feedback.FilePath, &feedback.AddedOn)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}

	return feedback, nil
}

// GetAll retrieves all feedback entries, newest first
func (r *FeedbackRepository) GetAll(ctx context.Context) ([]*models.Feedback, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, author_id, title, body, file_path, added_on
		FROM feedback
		ORDER BY added_on DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.Feedback
	for rows.Next() {
		feedback := &models.Feedback{}
		if err := rows.Scan(
			&feedback.ID, &feedback.AuthorID, &feedback.Title,
			&feedback.Body, &feedback.FilePath, &feedback.AddedOn,
		); err != nil {
			return nil, err
		}
		entries = append(entries, feedback)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Delete deletes a feedback entry by ID
func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting feedback: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContentNotFound
	}

	return nil
}

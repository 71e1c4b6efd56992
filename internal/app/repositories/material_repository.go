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

// MaterialRepository handles database operations for course materials
type MaterialRepository struct {
	db *pgxpool.Pool
}

// NewMaterialRepository creates a new material repository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{
		db: db,
	}
}

// Create creates a new material
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	query := `
		INSERT INTO materials (course_id, author_id, title, file_path)
		VALUES ($1, $2, $3, $4)
		RETURNING id, added_on
	`

	err := r.db.QueryRow(ctx, query,
		material.CourseID, material.AuthorID, material.Title,
		material.FilePath).Scan(&material.ID, &material.AddedOn)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrReferenceNotFound
		}
		return fmt.Errorf("error creating material: %w", err)
	}

	return nil
}

// GetByID retrieves a material by ID
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	material := &models.Material{}
	err := r.db.QueryRow(ctx, `
		SELECT id, course_id, author_id, title, file_path, added_on
		FROM materials
		WHERE id = $1`,
		id).Scan(
		&material.ID, &material.CourseID, &material.AuthorID,
		&material.Title, &material.FilePath, &material.AddedOn)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, fmt.Errorf("error retrieving material: %w", err)
	}

	return material, nil
}

// GetByCourseID retrieves all materials for a course, newest first
func (r *MaterialRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Material, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, course_id, author_id, title, file_path, added_on
		FROM materials
		WHERE course_id = $1
		ORDER BY added_on DESC`,
		courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []*models.Material
	for rows.Next() {
		material := &models.Material{}
		if err := rows.Scan(
			&material.ID, &material.CourseID, &material.AuthorID,
			&material.Title, &material.FilePath, &material.AddedOn,
		); err != nil {
			return nil, err
		}
		materials = append(materials, material)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}

// Delete deletes a material by ID
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting material: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContentNotFound
	}

	return nil
}

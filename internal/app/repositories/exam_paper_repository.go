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

// ExamPaperRepository handles database operations for exam papers
type ExamPaperRepository struct {
	db *pgxpool.Pool
}

// NewExamPaperRepository creates a new exam paper repository
func NewExamPaperRepository(db *pgxpool.Pool) *ExamPaperRepository {
	return &ExamPaperRepository{
		db: db,
	}
}

// Create creates a new exam paper
func (r *ExamPaperRepository) Create(ctx context.Context, paper *models.ExamPaper) error {
	query := `
		INSERT INTO exam_papers (course_id, author_id, term, file_path)
		VALUES ($1, $2, $3, $4)
		RETURNING id, added_on
	`

	err := r.db.QueryRow(ctx, query,
		paper.CourseID, paper.AuthorID, paper.Term,
		paper.FilePath).Scan(&paper.ID, &paper.AddedOn)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrReferenceNotFound
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.ErrInvalidTerm
		}
		return fmt.Errorf("error creating exam paper: %w", err)
	}

	return nil
}

// GetByID retrieves an exam paper by ID
func (r *ExamPaperRepository) GetByID(ctx context.Context, id int64) (*models.ExamPaper, error) {
	paper := &models.ExamPaper{}
	err := r.db.QueryRow(ctx, `
		SELECT id, course_id, author_id, term, file_path, added_on
		FROM exam_papers
		WHERE id = $1`,
		id).Scan(
		&paper.ID, &paper.CourseID, &paper.AuthorID,
		&paper.Term, &paper.FilePath, &paper.AddedOn)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, fmt.Errorf("error retrieving exam paper: %w", err)
	}

	return paper, nil
}

// GetByCourseID retrieves exam papers for a course, optionally filtered by
// term. An empty term returns every paper for the course.
func (r *ExamPaperRepository) GetByCourseID(ctx context.Context, courseID int64, term models.Term) ([]*models.ExamPaper, error) {
	query := `
		SELECT id, course_id, author_id, term, file_path, added_on
		FROM exam_papers
		WHERE course_id = $1`
	args := []interface{}{courseID}

	if term != "" {
		query += ` AND term = $2`
		args = append(args, term)
	}
	query += ` ORDER BY added_on DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var papers []*models.ExamPaper
	for rows.Next() {
		paper := &models.ExamPaper{}
		if err := rows.Scan(
			&paper.ID, &paper.CourseID, &paper.AuthorID,
			&paper.Term, &paper.FilePath, &paper.AddedOn,
		); err != nil {
			return nil, err
		}
		papers = append(papers, paper)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return papers, nil
}

// Delete deletes an exam paper by ID
func (r *ExamPaperRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM exam_papers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting exam paper: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContentNotFound
	}

	return nil
}

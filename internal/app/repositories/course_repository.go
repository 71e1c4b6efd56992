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

// CourseRepository handles database operations for courses and their
// semester allotments
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create creates a new course. The course code is unique.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (department_id, name, code)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, course.DepartmentID, course.Name, course.Code).Scan(&course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, department_id, name, code
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.DepartmentID,
		&course.Name,
		&course.Code,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetByCode retrieves a course by its unique code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := `
		SELECT id, department_id, name, code
		FROM courses
		WHERE code = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, code).Scan(
		&course.ID,
		&course.DepartmentID,
		&course.Name,
		&course.Code,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return r.queryCourses(ctx, `
		SELECT id, department_id, name, code
		FROM courses
		ORDER BY code`)
}

// GetByDepartmentID retrieves all courses belonging to a department
func (r *CourseRepository) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Course, error) {
	return r.queryCourses(ctx, `
		SELECT id, department_id, name, code
		FROM courses
		WHERE department_id = $1
		ORDER BY code`, departmentID)
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.DepartmentID,
			&course.Name,
			&course.Code,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// CodeExists checks if a course code is already taken
func (r *CourseRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE code = $1)`,
		code).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course code: %w", err)
	}

	return exists, nil
}

// CreateAllotment binds a course to a semester. A course can hold at most
// one allotment.
func (r *CourseRepository) CreateAllotment(ctx context.Context, allotment *models.CourseAllotment) error {
	query := `
		INSERT INTO course_allotments (course_id, semester)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, allotment.CourseID, allotment.Semester).Scan(&allotment.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "course_allotments_course_id_key") {
			return apperrors.ErrAllotmentExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		if dberrors.IsCheckViolation(err) {
			return apperrors.ErrInvalidSemester
		}
		return fmt.Errorf("error creating course allotment: %w", err)
	}

	return nil
}

// GetAllotmentByCourseID retrieves the allotment for a course
func (r *CourseRepository) GetAllotmentByCourseID(ctx context.Context, courseID int64) (*models.CourseAllotment, error) {
	var allotment models.CourseAllotment
	err := r.db.QueryRow(ctx, `
		SELECT id, course_id, semester
		FROM course_allotments
		WHERE course_id = $1`,
		courseID).Scan(&allotment.ID, &allotment.CourseID, &allotment.Semester)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAllotmentNotFound
		}
		return nil, fmt.Errorf("error retrieving course allotment: %w", err)
	}

	return &allotment, nil
}

// Delete deletes a course by ID. Content rows cascade at the schema level.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

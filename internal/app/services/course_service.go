package services

import (
	"context"
	"strings"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/logger"
	"github.com/oyasar/assist/internal/pkg/validation"
)

// CourseStore is the persistence surface for courses and allotments.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Course, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	CreateAllotment(ctx context.Context, allotment *models.CourseAllotment) error
	GetAllotmentByCourseID(ctx context.Context, courseID int64) (*models.CourseAllotment, error)
	Delete(ctx context.Context, id int64) error
}

// CourseService manages the course catalog. Courses belong to a department
// and carry a unique code; an allotment binds a course to a semester.
type CourseService struct {
	courseStore     CourseStore
	departmentStore DepartmentStore
}

// NewCourseService creates a new course service
func NewCourseService(courseStore CourseStore, departmentStore DepartmentStore) *CourseService {
	return &CourseService{
		courseStore:     courseStore,
		departmentStore: departmentStore,
	}
}

// Create validates and creates a course under an existing department.
func (s *CourseService) Create(ctx context.Context, departmentID int64, name, code string) (*models.Course, error) {
	name = strings.TrimSpace(name)
	code = strings.ToUpper(strings.TrimSpace(code))

	if name == "" {
		return nil, apperrors.NewValidationError("course name is required")
	}
	if code == "" {
		return nil, apperrors.NewValidationError("course code is required")
	}

	// Resolve the department first so a missing one surfaces as a
	// reference error rather than a constraint failure.
	if _, err := s.departmentStore.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	// Early duplicate check; the unique constraint still backs it.
	taken, err := s.courseStore.CodeExists(ctx, code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrCourseCodeExists
	}

	course := &models.Course{
		DepartmentID: departmentID,
		Name:         name,
		Code:         code,
	}

	if err := s.courseStore.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Info().Int64("courseId", course.ID).Str("code", course.Code).Msg("Course created")

	return course, nil
}

// GetByID retrieves a course by ID.
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseStore.GetByID(ctx, id)
}

// GetByCode retrieves a course by its unique code.
func (s *CourseService) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	return s.courseStore.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

// List retrieves courses, optionally scoped to a department.
func (s *CourseService) List(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	if departmentID != nil {
		return s.courseStore.GetByDepartmentID(ctx, *departmentID)
	}
	return s.courseStore.GetAll(ctx)
}

// Allot binds a course to a semester. A course can hold at most one
// allotment and the semester must be within range.
func (s *CourseService) Allot(ctx context.Context, courseID int64, semester int) (*models.CourseAllotment, error) {
	if !validation.IsValidSemester(semester, models.SemesterMin, models.SemesterMax) {
		return nil, apperrors.ErrInvalidSemester
	}

	if _, err := s.courseStore.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	allotment := &models.CourseAllotment{
		CourseID: courseID,
		Semester: semester,
	}

	if err := s.courseStore.CreateAllotment(ctx, allotment); err != nil {
		return nil, err
	}

	return allotment, nil
}

// GetAllotment retrieves the semester allotment for a course.
func (s *CourseService) GetAllotment(ctx context.Context, courseID int64) (*models.CourseAllotment, error) {
	return s.courseStore.GetAllotmentByCourseID(ctx, courseID)
}

// Delete deletes a course. Its content and allotment cascade.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courseStore.Delete(ctx, id)
}

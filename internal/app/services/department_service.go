package services

import (
	"context"
	"strings"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/logger"
)

// DepartmentStore is the persistence surface for departments.
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Delete(ctx context.Context, id int64) error
}

// DepartmentService manages departments.
type DepartmentService struct {
	departmentStore DepartmentStore
}

// NewDepartmentService creates a new department service
func NewDepartmentService(departmentStore DepartmentStore) *DepartmentService {
	return &DepartmentService{
		departmentStore: departmentStore,
	}
}

// Create validates and creates a department.
func (s *DepartmentService) Create(ctx context.Context, name, acronym string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	acronym = strings.TrimSpace(acronym)

	if name == "" {
		return nil, apperrors.NewValidationError("department name is required")
	}
	if acronym == "" {
		return nil, apperrors.NewValidationError("department acronym is required")
	}

	department := &models.Department{
		Name:    name,
		Acronym: strings.ToUpper(acronym),
	}

	if err := s.departmentStore.Create(ctx, department); err != nil {
		return nil, err
	}

	logger.Info().Int64("departmentId", department.ID).Str("acronym", department.Acronym).Msg("Department created")

	return department, nil
}

// GetByID retrieves a department by ID.
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentStore.GetByID(ctx, id)
}

// GetAll retrieves all departments.
func (s *DepartmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departmentStore.GetAll(ctx)
}

// Delete deletes a department. A department that still owns courses is not
// deletable.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	return s.departmentStore.Delete(ctx, id)
}

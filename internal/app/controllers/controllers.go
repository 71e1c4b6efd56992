package controllers

import (
	"github.com/oyasar/assist/internal/app/services"
	"github.com/oyasar/assist/internal/pkg/filestorage"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController         *AuthController
	UserController         *UserController
	DepartmentController   *DepartmentController
	CourseController       *CourseController
	ContentController      *ContentController
	ContributionController *ContributionController
}

// NewControllers initializes all controllers over the services
func NewControllers(svc *services.Services, fileStorage filestorage.Storage) *Controllers {
	return &Controllers{
		AuthController:         NewAuthController(svc.ProvisioningService),
		UserController:         NewUserController(svc.UserService),
		DepartmentController:   NewDepartmentController(svc.DepartmentService),
		CourseController:       NewCourseController(svc.CourseService),
		ContentController:      NewContentController(svc.ContentService, fileStorage),
		ContributionController: NewContributionController(svc.ContributionService),
	}
}

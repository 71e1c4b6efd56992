package services

import (
	"github.com/oyasar/assist/internal/app/repositories"
	"github.com/oyasar/assist/internal/config"
	"github.com/oyasar/assist/internal/pkg/auth"
	"github.com/oyasar/assist/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	ProvisioningService *ProvisioningService
	UserService         *UserService
	DepartmentService   *DepartmentService
	CourseService       *CourseService
	ContentService      *ContentService
	ContributionService *ContributionService
}

// NewServices initializes all services over the repositories
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	fileStorage filestorage.Storage,
	cfg *config.Config,
) *Services {
	contributionService := NewContributionService(
		repos.ContributionRepository,
		NewPointsPolicy(cfg),
	)

	return &Services{
		ProvisioningService: NewProvisioningService(
			repos.UserRepository,
			repos.GroupRepository,
			jwtService,
		),
		UserService: NewUserService(
			repos.UserRepository,
			fileStorage,
		),
		DepartmentService: NewDepartmentService(
			repos.DepartmentRepository,
		),
		CourseService: NewCourseService(
			repos.CourseRepository,
			repos.DepartmentRepository,
		),
		ContentService: NewContentService(
			repos.AnnouncementRepository,
			repos.MaterialRepository,
			repos.ExamPaperRepository,
			repos.BookmarkRepository,
			repos.FeedbackRepository,
			repos.UserRepository,
			repos.CourseRepository,
			contributionService,
		),
		ContributionService: contributionService,
	}
}

package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	GroupRepository        *GroupRepository
	DepartmentRepository   *DepartmentRepository
	CourseRepository       *CourseRepository
	AnnouncementRepository *AnnouncementRepository
	MaterialRepository     *MaterialRepository
	ExamPaperRepository    *ExamPaperRepository
	BookmarkRepository     *BookmarkRepository
	FeedbackRepository     *FeedbackRepository
	ContributionRepository *ContributionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		GroupRepository:        NewGroupRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		CourseRepository:       NewCourseRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		MaterialRepository:     NewMaterialRepository(db),
		ExamPaperRepository:    NewExamPaperRepository(db),
		BookmarkRepository:     NewBookmarkRepository(db),
		FeedbackRepository:     NewFeedbackRepository(db),
		ContributionRepository: NewContributionRepository(db),
	}
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyasar/assist/internal/app/controllers"
	"github.com/oyasar/assist/internal/middleware"
	"github.com/oyasar/assist/internal/pkg/auth"
)

// SetupRoutes wires all endpoints onto the engine. Catalog reads are public;
// everything that writes requires authentication plus the permission the
// seeded role groups carry for it.
func SetupRoutes(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	jwtService *auth.JWTService,
	userLoader middleware.UserLoader,
	authorizer middleware.PermissionChecker,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authenticated := middleware.JWTAuth(jwtService, userLoader)
	permission := func(p string) gin.HandlerFunc {
		return middleware.PermissionRequired(authorizer, p)
	}

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", ctrl.AuthController.Register)
			authGroup.POST("/login", ctrl.AuthController.Login)
		}

		users := v1.Group("/users", authenticated)
		{
			users.GET("/me", ctrl.UserController.GetMe)
			users.PUT("/me", ctrl.UserController.UpdateProfile)
			users.POST("/me/avatar", ctrl.UserController.UploadAvatar)
			users.GET("/me/bookmarks", ctrl.ContentController.ListBookmarks)
		}

		departments := v1.Group("/departments")
		{
			departments.GET("", ctrl.DepartmentController.List)
			departments.GET("/:id", ctrl.DepartmentController.Get)

			manage := departments.Group("", authenticated, permission("department:manage"))
			{
				manage.POST("", ctrl.DepartmentController.Create)
				manage.DELETE("/:id", ctrl.DepartmentController.Delete)
			}
		}

		courses := v1.Group("/courses")
		{
			courses.GET("", ctrl.CourseController.List)
			courses.GET("/:id", ctrl.CourseController.Get)
			courses.GET("/:id/allotment", ctrl.CourseController.GetAllotment)
			courses.GET("/:id/announcements", ctrl.ContentController.ListAnnouncements)
			courses.GET("/:id/materials", ctrl.ContentController.ListMaterials)
			courses.GET("/:id/papers", ctrl.ContentController.ListExamPapers)

			manage := courses.Group("", authenticated, permission("course:manage"))
			{
				manage.POST("", ctrl.CourseController.Create)
				manage.POST("/:id/allotment", ctrl.CourseController.Allot)
				manage.DELETE("/:id", ctrl.CourseController.Delete)
			}

			publish := courses.Group("", authenticated, permission("content:publish"))
			{
				publish.POST("/:id/announcements", ctrl.ContentController.CreateAnnouncement)
				publish.POST("/:id/materials", ctrl.ContentController.CreateMaterial)
				publish.POST("/:id/papers", ctrl.ContentController.CreateExamPaper)
			}

			bookmarks := courses.Group("", authenticated, permission("bookmark:manage"))
			{
				bookmarks.POST("/:id/bookmark", ctrl.ContentController.CreateBookmark)
				bookmarks.DELETE("/:id/bookmark", ctrl.ContentController.DeleteBookmark)
			}
		}

		announcements := v1.Group("/announcements", authenticated, permission("content:moderate"))
		{
			announcements.PUT("/:id", ctrl.ContentController.UpdateAnnouncement)
			announcements.DELETE("/:id", ctrl.ContentController.DeleteAnnouncement)
		}

		materials := v1.Group("/materials", authenticated, permission("content:moderate"))
		{
			materials.DELETE("/:id", ctrl.ContentController.DeleteMaterial)
		}

		papers := v1.Group("/papers", authenticated, permission("content:moderate"))
		{
			papers.DELETE("/:id", ctrl.ContentController.DeleteExamPaper)
		}

		feedback := v1.Group("/feedback", authenticated)
		{
			feedback.POST("", permission("feedback:submit"), ctrl.ContentController.CreateFeedback)
			feedback.GET("", permission("feedback:review"), ctrl.ContentController.ListFeedback)
			feedback.DELETE("/:id", permission("feedback:review"), ctrl.ContentController.DeleteFeedback)
		}

		contributions := v1.Group("/contributions")
		{
			contributions.GET("", ctrl.ContributionController.TopContributors)
			contributions.GET("/:userId", ctrl.ContributionController.GetContributor)
		}

		stats := v1.Group("/stats")
		{
			stats.GET("/:tag", ctrl.ContributionController.GetStat)
			stats.POST("/snapshot", authenticated, permission("stats:manage"), ctrl.ContributionController.TakeSnapshot)
		}
	}
}

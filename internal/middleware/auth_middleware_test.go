package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	appauth "github.com/oyasar/assist/internal/app/auth"
	"github.com/oyasar/assist/internal/app/models"
)

// fakeGroupSource serves group memberships from an in-memory map.
type fakeGroupSource struct {
	groups map[int64][]*models.Group
}

func (f *fakeGroupSource) GetGroupsForUser(_ context.Context, userID int64) ([]*models.Group, error) {
	return f.groups[userID], nil
}

func setUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

func permissionRouter(user *models.User, checker PermissionChecker, permission string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/guarded", setUser(user), PermissionRequired(checker, permission), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"data": "ok"})
	})
	return router
}

func TestPermissionRequired(t *testing.T) {
	source := &fakeGroupSource{groups: map[int64][]*models.Group{
		1: {{ID: 1, Name: models.GroupStudent, Permissions: []string{"content:publish", "bookmark:manage"}}},
		2: {{ID: 2, Name: models.GroupInstructor, Permissions: []string{"content:publish", "content:moderate"}}},
	}}
	authorizer := appauth.NewAuthorizer(source)

	tests := []struct {
		name       string
		user       *models.User
		permission string
		wantStatus int
	}{
		{"student denied moderation", &models.User{ID: 1, Role: models.RoleStudent}, "content:moderate", http.StatusForbidden},
		{"instructor allowed moderation", &models.User{ID: 2, Role: models.RoleInstructor}, "content:moderate", http.StatusCreated},
		{"student allowed publishing", &models.User{ID: 1, Role: models.RoleStudent}, "content:publish", http.StatusCreated},
		{"admin bypasses groups", &models.User{ID: 9, Role: models.RoleSuper, IsAdmin: true}, "department:manage", http.StatusCreated},
		{"no user is unauthorized", nil, "content:publish", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := permissionRouter(tt.user, authorizer, tt.permission)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/guarded", nil)
			router.ServeHTTP(recorder, request)

			if recorder.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}

// A super role string alone grants nothing; permissions come from group
// membership or the admin flag.
func TestPermissionRequiredIgnoresBareRole(t *testing.T) {
	authorizer := appauth.NewAuthorizer(&fakeGroupSource{groups: map[int64][]*models.Group{}})
	user := &models.User{ID: 5, Role: models.RoleSuper, IsAdmin: false}

	router := permissionRouter(user, authorizer, "department:manage")

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusForbidden)
	}
}

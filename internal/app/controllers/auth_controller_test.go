package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/app/services"
	"github.com/oyasar/assist/internal/pkg/apperrors"
)

type stubUserStore struct {
	created int
}

func (s *stubUserStore) CreateUserInGroup(_ context.Context, user *models.User, _ *models.Student, _ int64) (int64, error) {
	s.created++
	user.ID = int64(s.created)
	return user.ID, nil
}

func (s *stubUserStore) GetUserByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserStore) EmailExists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (s *stubUserStore) UpdateLastLogin(_ context.Context, _ int64) error {
	return nil
}

type stubGroupStore struct{}

func (stubGroupStore) GetByName(_ context.Context, name string) (*models.Group, error) {
	return &models.Group{ID: 1, Name: name}, nil
}

type stubTokenGenerator struct{}

func (stubTokenGenerator) GenerateToken(_ *models.User) (string, int, error) {
	return "token", 3600, nil
}

func registerRouter(users *stubUserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	provisioning := services.NewProvisioningService(users, stubGroupStore{}, stubTokenGenerator{})
	ctrl := NewAuthController(provisioning)

	router := gin.New()
	router.POST("/api/v1/auth/register", ctrl.Register)
	return router
}

func postRegister(router *gin.Engine, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestRegisterAcceptsStudent(t *testing.T) {
	users := &stubUserStore{}
	router := registerRouter(users)

	recorder := postRegister(router, `{
		"email": "jane.doe@university.edu",
		"password": "Password123",
		"firstName": "Jane",
		"lastName": "Doe",
		"role": "student"
	}`)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", recorder.Code, http.StatusCreated, recorder.Body.String())
	}
	if users.created != 1 {
		t.Fatalf("created = %d, want 1", users.created)
	}
}

// Super accounts only come from seeding; self-registration must not mint one.
func TestRegisterRejectsSuperRole(t *testing.T) {
	users := &stubUserStore{}
	router := registerRouter(users)

	recorder := postRegister(router, `{
		"email": "mallory@university.edu",
		"password": "Password123",
		"firstName": "Mallory",
		"lastName": "Moriarty",
		"role": "super"
	}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d, body %s", recorder.Code, http.StatusBadRequest, recorder.Body.String())
	}
	if users.created != 0 {
		t.Fatalf("no account may be created for a super registration, got %d", users.created)
	}
}

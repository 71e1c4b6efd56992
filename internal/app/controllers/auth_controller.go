package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/app/models/dto"
	"github.com/oyasar/assist/internal/app/services"
	"github.com/oyasar/assist/internal/middleware"
	"github.com/oyasar/assist/internal/pkg/apperrors"
)

// AuthController handles account provisioning and login endpoints.
type AuthController struct {
	provisioningService *services.ProvisioningService
}

// NewAuthController creates a new auth controller
func NewAuthController(provisioningService *services.ProvisioningService) *AuthController {
	return &AuthController{
		provisioningService: provisioningService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Opens an account and assigns it to the permission group its role maps to
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	user, err := ctrl.provisioningService.Provision(c.Request.Context(), services.ProvisionInput{
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           models.RoleType(req.Role),
		RegistrationNo: req.RegistrationNo,
		Semester:       req.Semester,
		Branch:         req.Branch,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToUserResponse(user)))
}

// Login godoc
// @Summary Authenticate
// @Description Verifies credentials and issues an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	user, token, expiresIn, err := ctrl.provisioningService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        dto.ToUserResponse(user),
	}))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyasar/assist/internal/app/models/dto"
	"github.com/oyasar/assist/internal/app/services"
	"github.com/oyasar/assist/internal/middleware"
	"github.com/oyasar/assist/internal/pkg/apperrors"
)

// UserController handles profile endpoints.
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetMe godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/me [get]
func (ctrl *UserController) GetMe(c *gin.Context) {
	current := middleware.CurrentUser(c)

	user, student, err := ctrl.userService.GetProfile(c.Request.Context(), current.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToProfileResponse(user, student)))
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /users/me [put]
func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	current := middleware.CurrentUser(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	user, err := ctrl.userService.UpdateProfile(c.Request.Context(), current.ID, req.FirstName, req.LastName)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToUserResponse(user)))
}

// UploadAvatar godoc
// @Summary Upload a profile avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /users/me/avatar [post]
func (ctrl *UserController) UploadAvatar(c *gin.Context) {
	current := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("avatar file is required"))
		return
	}

	user, err := ctrl.userService.UpdateAvatar(c.Request.Context(), current.ID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToUserResponse(user)))
}

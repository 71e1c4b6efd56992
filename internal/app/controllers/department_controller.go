package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oyasar/assist/internal/app/models/dto"
	"github.com/oyasar/assist/internal/app/services"
	"github.com/oyasar/assist/internal/middleware"
	"github.com/oyasar/assist/internal/pkg/apperrors"
)

// DepartmentController handles department endpoints.
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new department controller
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// Create godoc
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department details"
// @Success 201 {object} dto.APIResponse{data=dto.DepartmentResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /departments [post]
func (ctrl *DepartmentController) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	department, err := ctrl.departmentService.Create(c.Request.Context(), req.Name, req.Acronym)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToDepartmentResponse(department)))
}

// List godoc
// @Summary List all departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.DepartmentResponse}
// @Router /departments [get]
func (ctrl *DepartmentController) List(c *gin.Context) {
	departments, err := ctrl.departmentService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		responses = append(responses, dto.ToDepartmentResponse(department))
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// Get godoc
// @Summary Get a department
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /departments/{id} [get]
func (ctrl *DepartmentController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	department, err := ctrl.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToDepartmentResponse(department)))
}

// Delete godoc
// @Summary Delete a department
// @Description Deletes a department that has no courses
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /departments/{id} [delete]
func (ctrl *DepartmentController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.departmentService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid " + name + " parameter")
	}
	return id, nil
}

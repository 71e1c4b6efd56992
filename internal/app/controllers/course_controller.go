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

// CourseController handles course catalog endpoints.
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new course controller
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// Create godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course details"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /courses [post]
func (ctrl *CourseController) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	course, err := ctrl.courseService.Create(c.Request.Context(), req.DepartmentID, req.Name, req.Code)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToCourseResponse(course)))
}

// List godoc
// @Summary List courses
// @Description Lists all courses, optionally filtered to one department
// @Tags courses
// @Produce json
// @Param departmentId query int false "Department filter"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Router /courses [get]
func (ctrl *CourseController) List(c *gin.Context) {
	var departmentID *int64
	if raw := c.Query("departmentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			middleware.HandleAPIError(c, apperrors.NewValidationError("invalid departmentId filter"))
			return
		}
		departmentID = &id
	}

	courses, err := ctrl.courseService.List(c.Request.Context(), departmentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.ToCourseResponse(course))
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// Get godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (ctrl *CourseController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	course, err := ctrl.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToCourseResponse(course)))
}

// Allot godoc
// @Summary Allot a course to a semester
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.AllotCourseRequest true "Allotment details"
// @Success 201 {object} dto.APIResponse{data=dto.AllotmentResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /courses/{id}/allotment [post]
func (ctrl *CourseController) Allot(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.AllotCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	allotment, err := ctrl.courseService.Allot(c.Request.Context(), id, req.Semester)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToAllotmentResponse(allotment)))
}

// GetAllotment godoc
// @Summary Get a course's semester allotment
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.AllotmentResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/allotment [get]
func (ctrl *CourseController) GetAllotment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	allotment, err := ctrl.courseService.GetAllotment(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToAllotmentResponse(allotment)))
}

// Delete godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [delete]
func (ctrl *CourseController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.courseService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/app/models/dto"
	"github.com/oyasar/assist/internal/app/services"
	"github.com/oyasar/assist/internal/middleware"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/filestorage"
)

// ContentController handles announcements, materials, exam papers, bookmarks
// and feedback endpoints.
type ContentController struct {
	contentService *services.ContentService
	fileStorage    filestorage.Storage
}

// NewContentController creates a new content controller
func NewContentController(contentService *services.ContentService, fileStorage filestorage.Storage) *ContentController {
	return &ContentController{
		contentService: contentService,
		fileStorage:    fileStorage,
	}
}

// saveOptionalFile stores the named multipart file if present and returns its
// reference. A missing file is not an error.
func (ctrl *ContentController) saveOptionalFile(c *gin.Context, field, subPath string) (*string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	path, err := ctrl.fileStorage.SaveFile(fileHeader, subPath)
	if err != nil {
		return nil, err
	}

	return &path, nil
}

// CreateAnnouncement godoc
// @Summary Publish an announcement on a course
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param file formData file false "Attachment"
// @Success 201 {object} dto.APIResponse{data=dto.AnnouncementResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{courseId}/announcements [post]
func (ctrl *ContentController) CreateAnnouncement(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	filePath, err := ctrl.saveOptionalFile(c, "file", "announcements")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	author := middleware.CurrentUser(c)
	announcement, err := ctrl.contentService.PublishAnnouncement(
		c.Request.Context(), courseID, author.ID, req.Title, req.Description, filePath)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToAnnouncementResponse(announcement)))
}

// UpdateAnnouncement godoc
// @Summary Edit an announcement
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param file formData file false "Attachment"
// @Success 200 {object} dto.APIResponse{data=dto.AnnouncementResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcements/{id} [put]
func (ctrl *ContentController) UpdateAnnouncement(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	filePath, err := ctrl.saveOptionalFile(c, "file", "announcements")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	announcement, err := ctrl.contentService.UpdateAnnouncement(
		c.Request.Context(), id, req.Title, req.Description, filePath)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToAnnouncementResponse(announcement)))
}

// ListAnnouncements godoc
// @Summary List announcements for a course
// @Tags content
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.AnnouncementResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{courseId}/announcements [get]
func (ctrl *ContentController) ListAnnouncements(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	announcements, err := ctrl.contentService.ListAnnouncements(c.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.AnnouncementResponse, 0, len(announcements))
	for _, announcement := range announcements {
		responses = append(responses, dto.ToAnnouncementResponse(announcement))
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// DeleteAnnouncement godoc
// @Summary Delete an announcement
// @Tags content
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcements/{id} [delete]
func (ctrl *ContentController) DeleteAnnouncement(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.contentService.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateMaterial godoc
// @Summary Publish a material on a course
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Param title formData string false "Title"
// @Param file formData file true "Material file"
// @Success 201 {object} dto.APIResponse{data=dto.MaterialResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{courseId}/materials [post]
func (ctrl *ContentController) CreateMaterial(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateMaterialRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	filePath, err := ctrl.saveOptionalFile(c, "file", "materials")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	author := middleware.CurrentUser(c)
	material, err := ctrl.contentService.PublishMaterial(
		c.Request.Context(), courseID, author.ID, req.Title, filePath)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToMaterialResponse(material)))
}

// ListMaterials godoc
// @Summary List materials for a course
// @Tags content
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.MaterialResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{courseId}/materials [get]
func (ctrl *ContentController) ListMaterials(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	materials, err := ctrl.contentService.ListMaterials(c.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.MaterialResponse, 0, len(materials))
	for _, material := range materials {
		responses = append(responses, dto.ToMaterialResponse(material))
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// DeleteMaterial godoc
// @Summary Delete a material
// @Tags content
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /materials/{id} [delete]
func (ctrl *ContentController) DeleteMaterial(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.contentService.DeleteMaterial(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateExamPaper godoc
// @Summary Publish an exam paper on a course
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Param term formData string true "Term (mid-term or end-term)"
// @Param file formData file true "Paper file"
// @Success 201 {object} dto.APIResponse{data=dto.ExamPaperResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{courseId}/papers [post]
func (ctrl *ContentController) CreateExamPaper(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateExamPaperRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	filePath, err := ctrl.saveOptionalFile(c, "file", "papers")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	author := middleware.CurrentUser(c)
	paper, err := ctrl.contentService.PublishExamPaper(
		c.Request.Context(), courseID, author.ID, models.Term(req.Term), filePath)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToExamPaperResponse(paper)))
}

// ListExamPapers godoc
// @Summary List exam papers for a course
// @Tags content
// @Produce json
// @Param courseId path int true "Course ID"
// @Param term query string false "Term filter (mid-term or end-term)"
// @Success 200 {object} dto.APIResponse{data=[]dto.ExamPaperResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{courseId}/papers [get]
func (ctrl *ContentController) ListExamPapers(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	papers, err := ctrl.contentService.ListExamPapers(
		c.Request.Context(), courseID, models.Term(c.Query("term")))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.ExamPaperResponse, 0, len(papers))
	for _, paper := range papers {
		responses = append(responses, dto.ToExamPaperResponse(paper))
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// DeleteExamPaper godoc
// @Summary Delete an exam paper
// @Tags content
// @Security BearerAuth
// @Param id path int true "Exam paper ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /papers/{id} [delete]
func (ctrl *ContentController) DeleteExamPaper(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.contentService.DeleteExamPaper(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateBookmark godoc
// @Summary Bookmark a course
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 201 {object} dto.APIResponse{data=dto.BookmarkResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /courses/{courseId}/bookmark [post]
func (ctrl *ContentController) CreateBookmark(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	bookmark, err := ctrl.contentService.Bookmark(c.Request.Context(), user.ID, courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToBookmarkResponse(bookmark)))
}

// DeleteBookmark godoc
// @Summary Remove a course bookmark
// @Tags content
// @Security BearerAuth
// @Param courseId path int true "Course ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{courseId}/bookmark [delete]
func (ctrl *ContentController) DeleteBookmark(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	if err := ctrl.contentService.Unbookmark(c.Request.Context(), user.ID, courseID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBookmarks godoc
// @Summary List own bookmarks
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.BookmarkResponse}
// @Router /users/me/bookmarks [get]
func (ctrl *ContentController) ListBookmarks(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookmarks, err := ctrl.contentService.ListBookmarks(c.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.BookmarkResponse, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		responses = append(responses, dto.ToBookmarkResponse(bookmark))
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// CreateFeedback godoc
// @Summary Submit feedback
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param body formData string false "Body"
// @Param file formData file false "Attachment"
// @Success 201 {object} dto.APIResponse{data=dto.FeedbackResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /feedback [post]
func (ctrl *ContentController) CreateFeedback(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	filePath, err := ctrl.saveOptionalFile(c, "file", "feedback")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	author := middleware.CurrentUser(c)
	feedback, err := ctrl.contentService.SubmitFeedback(
		c.Request.Context(), author.ID, req.Title, req.Body, filePath)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToFeedbackResponse(feedback)))
}

// ListFeedback godoc
// @Summary List all feedback entries
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.FeedbackResponse}
// @Router /feedback [get]
func (ctrl *ContentController) ListFeedback(c *gin.Context) {
	entries, err := ctrl.contentService.ListFeedback(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.FeedbackResponse, 0, len(entries))
	for _, feedback := range entries {
		responses = append(responses, dto.ToFeedbackResponse(feedback))
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// DeleteFeedback godoc
// @Summary Delete a feedback entry
// @Tags content
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /feedback/{id} [delete]
func (ctrl *ContentController) DeleteFeedback(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.contentService.DeleteFeedback(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

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

// ContributionController handles ledger and stat snapshot endpoints.
type ContributionController struct {
	contributionService *services.ContributionService
}

// NewContributionController creates a new contribution controller
func NewContributionController(contributionService *services.ContributionService) *ContributionController {
	return &ContributionController{
		contributionService: contributionService,
	}
}

// GetContributor godoc
// @Summary Get a user's contribution ledger
// @Tags contributions
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.ContributorResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /contributions/{userId} [get]
func (ctrl *ContributionController) GetContributor(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	contributor, err := ctrl.contributionService.GetContributor(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToContributorResponse(contributor)))
}

// TopContributors godoc
// @Summary List top contributors
// @Tags contributions
// @Produce json
// @Param limit query int false "Leaderboard size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.ContributorResponse}
// @Router /contributions [get]
func (ctrl *ContributionController) TopContributors(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			middleware.HandleAPIError(c, apperrors.NewValidationError("invalid limit parameter"))
			return
		}
		limit = parsed
	}

	contributors, err := ctrl.contributionService.TopContributors(c.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	responses := make([]dto.ContributorResponse, 0, len(contributors))
	for _, contributor := range contributors {
		responses = append(responses, dto.ToContributorResponse(contributor))
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// TakeSnapshot godoc
// @Summary Take a stat snapshot
// @Description Records system-wide counts under a tag, overwriting any previous snapshot for that tag
// @Tags contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SnapshotRequest true "Snapshot tag"
// @Success 200 {object} dto.APIResponse{data=dto.StatResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /stats/snapshot [post]
func (ctrl *ContributionController) TakeSnapshot(c *gin.Context) {
	var req dto.SnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	stat, err := ctrl.contributionService.Snapshot(c.Request.Context(), req.Tag)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToStatResponse(stat)))
}

// GetStat godoc
// @Summary Get the snapshot for a tag
// @Tags contributions
// @Produce json
// @Param tag path string true "Snapshot tag"
// @Success 200 {object} dto.APIResponse{data=dto.StatResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /stats/{tag} [get]
func (ctrl *ContributionController) GetStat(c *gin.Context) {
	tag := c.Param("tag")
	if tag == "" {
		middleware.HandleAPIError(c, apperrors.NewValidationError("tag parameter is required"))
		return
	}

	stat, err := ctrl.contributionService.GetStat(c.Request.Context(), tag)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToStatResponse(stat)))
}

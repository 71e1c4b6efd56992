package dto

import (
	"time"

	"github.com/oyasar/assist/internal/app/models"
)

// ContributorResponse is the public shape of a ledger row.
type ContributorResponse struct {
	UserID       int64         `json:"userId" example:"1"`
	Paper        int           `json:"paper" example:"3"`
	Material     int           `json:"material" example:"5"`
	Announcement int           `json:"announcement" example:"2"`
	Feedback     int           `json:"feedback" example:"1"`
	Points       int           `json:"points" example:"215"`
	User         *UserResponse `json:"user,omitempty"`
}

// SnapshotRequest is the payload for taking a stat snapshot.
type SnapshotRequest struct {
	Tag string `json:"tag" binding:"required,max=10" example:"2026-08"`
}

// StatResponse is the public shape of a stat snapshot.
type StatResponse struct {
	ID                int64     `json:"id" example:"1"`
	Tag               string    `json:"tag" example:"2026-08"`
	UpdatedOn         time.Time `json:"updatedOn"`
	UserCount         int       `json:"userCount" example:"120"`
	MaterialCount     int       `json:"materialCount" example:"340"`
	AnnouncementCount int       `json:"announcementCount" example:"58"`
	PaperCount        int       `json:"paperCount" example:"96"`
	ContributorCount  int       `json:"contributorCount" example:"41"`
}

// ToContributorResponse maps a ledger row to its public shape.
func ToContributorResponse(c *models.Contributor) ContributorResponse {
	response := ContributorResponse{
		UserID:       c.UserID,
		Paper:        c.Paper,
		Material:     c.Material,
		Announcement: c.Announcement,
		Feedback:     c.Feedback,
		Points:       c.Points,
	}
	if c.User != nil {
		user := ToUserResponse(c.User)
		response.User = &user
	}
	return response
}

// ToStatResponse maps a stat snapshot to its public shape.
func ToStatResponse(s *models.Stat) StatResponse {
	return StatResponse{
		ID:                s.ID,
		Tag:               s.Tag,
		UpdatedOn:         s.UpdatedOn,
		UserCount:         s.UserCount,
		MaterialCount:     s.MaterialCount,
		AnnouncementCount: s.AnnouncementCount,
		PaperCount:        s.PaperCount,
		ContributorCount:  s.ContributorCount,
	}
}

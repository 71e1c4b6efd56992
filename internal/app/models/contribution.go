package models

import "time"

// Contributor is the per-user ledger of authored content counts and the
// derived points total.
type Contributor struct {
	UserID       int64 `json:"userId" db:"user_id"`
	Paper        int   `json:"paper" db:"paper"`
	Material     int   `json:"material" db:"material"`
	Announcement int   `json:"announcement" db:"announcement"`
	Feedback     int   `json:"feedback" db:"feedback"`
	Points       int   `json:"points" db:"points"`
	User         *User `json:"user,omitempty"` // Relation, no db tag
}

// PointsPolicy computes the points total for a contributor's current counts.
// The concrete policy lives in configuration; storage only applies it.
type PointsPolicy func(c *Contributor) int

// Stat is a tagged snapshot of system-wide aggregate counts. One row exists
// per tag; repeated snapshots under the same tag overwrite the previous row.
type Stat struct {
	ID                int64     `json:"id" db:"id"`
	Tag               string    `json:"tag" db:"tag"`
	UpdatedOn         time.Time `json:"updatedOn" db:"updated_on"`
	UserCount         int       `json:"userCount" db:"user_count"`
	MaterialCount     int       `json:"materialCount" db:"material_count"`
	AnnouncementCount int       `json:"announcementCount" db:"announcement_count"`
	PaperCount        int       `json:"paperCount" db:"paper_count"`
	ContributorCount  int       `json:"contributorCount" db:"contributor_count"`
}

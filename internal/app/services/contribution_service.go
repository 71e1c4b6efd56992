package services

import (
	"context"
	"strings"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/config"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/logger"
)

// ContributionStore is the persistence surface for the ledger and snapshots.
type ContributionStore interface {
	Record(ctx context.Context, userID int64, kind models.ContributionKind, policy models.PointsPolicy) (*models.Contributor, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Contributor, error)
	TopContributors(ctx context.Context, limit int) ([]*models.Contributor, error)
	Snapshot(ctx context.Context, tag string) (*models.Stat, error)
	GetStatByTag(ctx context.Context, tag string) (*models.Stat, error)
}

// DefaultTopContributorLimit bounds leaderboard queries when the caller does
// not ask for a specific size.
const DefaultTopContributorLimit = 10

// NewPointsPolicy builds the weighted points formula from configuration.
func NewPointsPolicy(cfg *config.Config) models.PointsPolicy {
	paper := cfg.Contribution.PaperWeight
	material := cfg.Contribution.MaterialWeight
	announcement := cfg.Contribution.AnnouncementWeight
	feedback := cfg.Contribution.FeedbackWeight

	return func(c *models.Contributor) int {
		return c.Paper*paper +
			c.Material*material +
			c.Announcement*announcement +
			c.Feedback*feedback
	}
}

// ContributionService keeps the per-user contribution ledger and takes
// system-wide stat snapshots.
type ContributionService struct {
	contributionStore ContributionStore
	policy            models.PointsPolicy
}

// NewContributionService creates a new contribution service
func NewContributionService(contributionStore ContributionStore, policy models.PointsPolicy) *ContributionService {
	return &ContributionService{
		contributionStore: contributionStore,
		policy:            policy,
	}
}

// Record credits one contribution of the given kind to a user and recomputes
// their points total.
func (s *ContributionService) Record(ctx context.Context, userID int64, kind models.ContributionKind) (*models.Contributor, error) {
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("unknown contribution kind")
	}

	contributor, err := s.contributionStore.Record(ctx, userID, kind, s.policy)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int64("userId", userID).
		Str("kind", string(kind)).
		Int("points", contributor.Points).
		Msg("Contribution recorded")

	return contributor, nil
}

// GetContributor retrieves a user's ledger row.
func (s *ContributionService) GetContributor(ctx context.Context, userID int64) (*models.Contributor, error) {
	return s.contributionStore.GetByUserID(ctx, userID)
}

// TopContributors retrieves the leaderboard, highest points first.
func (s *ContributionService) TopContributors(ctx context.Context, limit int) ([]*models.Contributor, error) {
	if limit <= 0 {
		limit = DefaultTopContributorLimit
	}
	return s.contributionStore.TopContributors(ctx, limit)
}

// Snapshot records the current system-wide counts under a tag. At most one
// snapshot exists per tag; repeating a tag overwrites the previous row.
func (s *ContributionService) Snapshot(ctx context.Context, tag string) (*models.Stat, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, apperrors.NewValidationError("snapshot tag is required")
	}

	stat, err := s.contributionStore.Snapshot(ctx, tag)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("tag", tag).Int("users", stat.UserCount).Msg("Stat snapshot taken")

	return stat, nil
}

// GetStat retrieves the latest snapshot for a tag.
func (s *ContributionService) GetStat(ctx context.Context, tag string) (*models.Stat, error) {
	return s.contributionStore.GetStatByTag(ctx, strings.TrimSpace(tag))
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/db"
	"github.com/oyasar/assist/internal/pkg/apperrors"
)

// ContributionRepository handles the per-user contribution ledger and the
// system-wide stat snapshots.
type ContributionRepository struct {
	db *pgxpool.Pool
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db *pgxpool.Pool) *ContributionRepository {
	return &ContributionRepository{
		db: db,
	}
}

var kindColumn = map[models.ContributionKind]string{
	models.ContributionPaper:        "paper",
	models.ContributionMaterial:     "material",
	models.ContributionAnnouncement: "announcement",
	models.ContributionFeedback:     "feedback",
}

// Record increments a user's counter for the given kind and recomputes the
// points total under the supplied policy, in a single transaction. The ledger
// row is created lazily on the first contribution.
func (r *ContributionRepository) Record(ctx context.Context, userID int64, kind models.ContributionKind, policy models.PointsPolicy) (*models.Contributor, error) {
	column, ok := kindColumn[kind]
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown contribution kind: %s", kind))
	}

	contributor := &models.Contributor{}
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		// The column name comes from the kind table above, never from input.
		query := fmt.Sprintf(`
			INSERT INTO contributors (user_id, %s)
			VALUES ($1, 1)
			ON CONFLICT (user_id) DO UPDATE SET %s = contributors.%s + 1
			RETURNING user_id, paper, material, announcement, feedback, points`,
			column, column, column)

		err := tx.QueryRow(ctx, query, userID).Scan(
			&contributor.UserID, &contributor.Paper, &contributor.Material,
			&contributor.Announcement, &contributor.Feedback, &contributor.Points)
		if err != nil {
			return fmt.Errorf("error recording contribution: %w", err)
		}

		contributor.Points = policy(contributor)

		_, err = tx.Exec(ctx, `
			UPDATE contributors
			SET points = $1
			WHERE user_id = $2`,
			contributor.Points, userID)
		if err != nil {
			return fmt.Errorf("error updating contribution points: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return contributor, nil
}

// GetByUserID retrieves a user's ledger row
func (r *ContributionRepository) GetByUserID(ctx context.Context, userID int64) (*models.Contributor, error) {
	contributor := &models.Contributor{}
	err := r.db.QueryRow(ctx, `
		SELECT user_id, paper, material, announcement, feedback, points
		FROM contributors
		WHERE user_id = $1`,
		userID).Scan(
		&contributor.UserID, &contributor.Paper, &contributor.Material,
		&contributor.Announcement, &contributor.Feedback, &contributor.Points)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContributorNotFound
		}
		return nil, fmt.Errorf("error retrieving contributor: %w", err)
	}

	return contributor, nil
}

// TopContributors retrieves ledger rows ordered by points, joined with the
// contributing user.
func (r *ContributionRepository) TopContributors(ctx context.Context, limit int) ([]*models.Contributor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.user_id, c.paper, c.material, c.announcement, c.feedback, c.points,
		       u.id, u.email, u.first_name, u.last_name, u.user_role
		FROM contributors c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.points DESC, c.user_id
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contributors []*models.Contributor
	for rows.Next() {
		contributor := &models.Contributor{User: &models.User{}}
		if err := rows.Scan(
			&contributor.UserID, &contributor.Paper, &contributor.Material,
			&contributor.Announcement, &contributor.Feedback, &contributor.Points,
			&contributor.User.ID, &contributor.User.Email,
			&contributor.User.FirstName, &contributor.User.LastName,
			&contributor.User.Role,
		); err != nil {
			return nil, err
		}
		contributors = append(contributors, contributor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contributors, nil
}

// Snapshot computes the current aggregate counts and upserts them under the
// given tag. Repeated snapshots for a tag overwrite the previous row, so at
// most one row exists per tag.
func (r *ContributionRepository) Snapshot(ctx context.Context, tag string) (*models.Stat, error) {
	stat := &models.Stat{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO stats (tag, updated_on, user_count, material_count, announcement_count, paper_count, contributor_count)
		SELECT $1, now(),
		       (SELECT count(*) FROM users),
		       (SELECT count(*) FROM materials),
		       (SELECT count(*) FROM announcements),
		       (SELECT count(*) FROM exam_papers),
		       (SELECT count(*) FROM contributors)
		ON CONFLICT (tag) DO UPDATE SET
		       updated_on = EXCLUDED.updated_on,
		       user_count = EXCLUDED.user_count,
		       material_count = EXCLUDED.material_count,
		       announcement_count = EXCLUDED.announcement_count,
		       paper_count = EXCLUDED.paper_count,
		       contributor_count = EXCLUDED.contributor_count
		RETURNING id, tag, updated_on, user_count, material_count, announcement_count, paper_count, contributor_count`,
		tag).Scan(
		&stat.ID, &stat.Tag, &stat.UpdatedOn, &stat.UserCount,
		&stat.MaterialCount, &stat.AnnouncementCount, &stat.PaperCount,
		&stat.ContributorCount)

	if err != nil {
		return nil, fmt.Errorf("error taking stat snapshot: %w", err)
	}

	return stat, nil
}

// GetStatByTag retrieves the latest snapshot for a tag
func (r *ContributionRepository) GetStatByTag(ctx context.Context, tag string) (*models.Stat, error) {
	stat := &models.Stat{}
	err := r.db.QueryRow(ctx, `
		SELECT id, tag, updated_on, user_count, material_count, announcement_count, paper_count, contributor_count
		FROM stats
		WHERE tag = $1`,
		tag).Scan(
		&stat.ID, &stat.Tag, &stat.UpdatedOn, &stat.UserCount,
		&stat.MaterialCount, &stat.AnnouncementCount, &stat.PaperCount,
		&stat.ContributorCount)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStatNotFound
		}
		return nil, fmt.Errorf("error retrieving stat: %w", err)
	}

	return stat, nil
}

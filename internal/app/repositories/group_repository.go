package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/dberrors"
)

// GroupRepository handles database operations for permission groups.
// Groups themselves are provisioned externally (see internal/seed); account
// provisioning only reads them.
type GroupRepository struct {
	db *pgxpool.Pool
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		db: db,
	}
}

// GetByName retrieves a group by its unique name. A missing group is a
// configuration error, not a reference error: the caller expected setup to
// have provided it.
func (r *GroupRepository) GetByName(ctx context.Context, name string) (*models.Group, error) {
	group := &models.Group{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name
		FROM groups
		WHERE name = $1`,
		name).Scan(&group.ID, &group.Name)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConfigurationError(fmt.Sprintf("group %q is not provisioned", name))
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}

	return group, nil
}

// GetPermissions retrieves the permission strings attached to a group
func (r *GroupRepository) GetPermissions(ctx context.Context, groupID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT permission
		FROM group_permissions
		WHERE group_id = $1`,
		groupID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving group permissions: %w", err)
	}
	defer rows.Close()

	var permissions []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		permissions = append(permissions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return permissions, nil
}

// GetGroupsForUser retrieves all groups a user belongs to, with their
// permissions loaded.
func (r *GroupRepository) GetGroupsForUser(ctx context.Context, userID int64) ([]*models.Group, error) {
	rows, err := r.db.Query(ctx, `
		SELECT g.id, g.name
		FROM groups g
		JOIN user_groups ug ON ug.group_id = g.id
		WHERE ug.user_id = $1`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.ID, &group.Name); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, group := range groups {
		permissions, err := r.GetPermissions(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		group.Permissions = permissions
	}

	return groups, nil
}

// Create creates a group. Used by setup/seeding, never by provisioning.
func (r *GroupRepository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO groups (name)
		VALUES ($1)
		RETURNING id`,
		name).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			// Already provisioned; resolve the existing ID
			existing, getErr := r.GetByName(ctx, name)
			if getErr != nil {
				return 0, getErr
			}
			return existing.ID, nil
		}
		return 0, fmt.Errorf("error creating group: %w", err)
	}

	return id, nil
}

// AddPermission attaches a permission string to a group. Adding an existing
// permission is a no-op.
func (r *GroupRepository) AddPermission(ctx context.Context, groupID int64, permission string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO group_permissions (group_id, permission)
		VALUES ($1, $2)
		ON CONFLICT (group_id, permission) DO NOTHING`,
		groupID, permission)

	if err != nil {
		return fmt.Errorf("error adding group permission: %w", err)
	}

	return nil
}

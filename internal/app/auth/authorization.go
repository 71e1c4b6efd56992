package auth

import (
	"context"
	"strings"

	"github.com/oyasar/assist/internal/app/models"
)

// GroupSource resolves the permission groups a user belongs to.
type GroupSource interface {
	GetGroupsForUser(ctx context.Context, userID int64) ([]*models.Group, error)
}

// Authorizer answers permission questions from a user's group memberships.
// Admin accounts pass every check.
type Authorizer struct {
	groups GroupSource
}

// NewAuthorizer creates a new authorizer
func NewAuthorizer(groups GroupSource) *Authorizer {
	return &Authorizer{
		groups: groups,
	}
}

// HasPermission reports whether the user holds the exact permission through
// any of their groups.
func (a *Authorizer) HasPermission(ctx context.Context, user *models.User, permission string) (bool, error) {
	if user == nil {
		return false, nil
	}
	if user.IsAdmin {
		return true, nil
	}

	groups, err := a.groups.GetGroupsForUser(ctx, user.ID)
	if err != nil {
		return false, err
	}

	for _, group := range groups {
		if group.HasPermission(permission) {
			return true, nil
		}
	}

	return false, nil
}

// HasModuleAccess reports whether the user holds any permission scoped to the
// module. Permissions use a "module:action" form; holding any action within
// a module grants access to it.
func (a *Authorizer) HasModuleAccess(ctx context.Context, user *models.User, module string) (bool, error) {
	if user == nil {
		return false, nil
	}
	if user.IsAdmin {
		return true, nil
	}

	groups, err := a.groups.GetGroupsForUser(ctx, user.ID)
	if err != nil {
		return false, err
	}

	prefix := module + ":"
	for _, group := range groups {
		for _, permission := range group.Permissions {
			if strings.HasPrefix(permission, prefix) {
				return true, nil
			}
		}
	}

	return false, nil
}

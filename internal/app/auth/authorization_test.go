package auth

import (
	"context"
	"testing"

	"github.com/oyasar/assist/internal/app/models"
)

type fakeGroupSource struct {
	groups map[int64][]*models.Group
}

func (f *fakeGroupSource) GetGroupsForUser(_ context.Context, userID int64) ([]*models.Group, error) {
	return f.groups[userID], nil
}

func newAuthorizerFixture() *Authorizer {
	return NewAuthorizer(&fakeGroupSource{groups: map[int64][]*models.Group{
		1: {{ID: 1, Name: models.GroupStudent, Permissions: []string{"content:publish", "bookmark:manage"}}},
		2: {{ID: 2, Name: models.GroupSuper, Permissions: []string{"department:manage", "course:manage"}}},
	}})
}

func TestHasPermission(t *testing.T) {
	authorizer := newAuthorizerFixture()
	ctx := context.Background()

	student := &models.User{ID: 1, Role: models.RoleStudent}

	ok, err := authorizer.HasPermission(ctx, student, "content:publish")
	if err != nil || !ok {
		t.Fatalf("HasPermission(content:publish) = %v, %v; want true", ok, err)
	}

	ok, err = authorizer.HasPermission(ctx, student, "department:manage")
	if err != nil || ok {
		t.Fatalf("HasPermission(department:manage) = %v, %v; want false", ok, err)
	}
}

func TestAdminPassesEveryCheck(t *testing.T) {
	authorizer := newAuthorizerFixture()
	ctx := context.Background()

	// Admin with no group memberships at all
	admin := &models.User{ID: 99, Role: models.RoleSuper, IsAdmin: true}

	ok, err := authorizer.HasPermission(ctx, admin, "anything:at-all")
	if err != nil || !ok {
		t.Fatalf("admin HasPermission = %v, %v; want true", ok, err)
	}

	ok, err = authorizer.HasModuleAccess(ctx, admin, "nonexistent")
	if err != nil || !ok {
		t.Fatalf("admin HasModuleAccess = %v, %v; want true", ok, err)
	}
}

func TestHasModuleAccess(t *testing.T) {
	authorizer := newAuthorizerFixture()
	ctx := context.Background()

	super := &models.User{ID: 2, Role: models.RoleSuper}

	ok, err := authorizer.HasModuleAccess(ctx, super, "department")
	if err != nil || !ok {
		t.Fatalf("HasModuleAccess(department) = %v, %v; want true", ok, err)
	}

	ok, err = authorizer.HasModuleAccess(ctx, super, "stats")
	if err != nil || ok {
		t.Fatalf("HasModuleAccess(stats) = %v, %v; want false", ok, err)
	}

	// Prefix matching must not cross module boundaries
	ok, err = authorizer.HasModuleAccess(ctx, super, "dep")
	if err != nil || ok {
		t.Fatalf("HasModuleAccess(dep) = %v, %v; want false", ok, err)
	}
}

func TestNilUserDenied(t *testing.T) {
	authorizer := newAuthorizerFixture()
	ctx := context.Background()

	if ok, _ := authorizer.HasPermission(ctx, nil, "content:publish"); ok {
		t.Fatalf("nil user must be denied")
	}
	if ok, _ := authorizer.HasModuleAccess(ctx, nil, "content"); ok {
		t.Fatalf("nil user must be denied")
	}
}

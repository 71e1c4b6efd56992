package seed

import (
	"context"
	"errors"
	"os"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/app/repositories"
	"github.com/oyasar/assist/internal/app/services"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/logger"
)

// groupPermissions defines the permission bundle each role group carries.
// Permissions use a "module:action" form.
var groupPermissions = map[string][]string{
	models.GroupSuper: {
		"department:manage",
		"course:manage",
		"content:publish",
		"content:moderate",
		"bookmark:manage",
		"feedback:submit",
		"feedback:review",
		"stats:manage",
	},
	models.GroupInstructor: {
		"content:publish",
		"content:moderate",
		"bookmark:manage",
		"feedback:submit",
	},
	models.GroupStudent: {
		"content:publish",
		"bookmark:manage",
		"feedback:submit",
	},
}

// CreateDefaultData provisions the role groups and, when SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD are set, an initial superuser. Provisioning depends on
// the groups existing, so this must run before the server accepts requests.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, provisioning *services.ProvisioningService) error {
	for name, permissions := range groupPermissions {
		groupID, err := repos.GroupRepository.Create(ctx, name)
		if err != nil {
			return err
		}

		for _, permission := range permissions {
			if err := repos.GroupRepository.AddPermission(ctx, groupID, permission); err != nil {
				return err
			}
		}
	}

	logger.Info().Int("groups", len(groupPermissions)).Msg("Role groups ensured")

	return seedSuperuser(ctx, provisioning)
}

func seedSuperuser(ctx context.Context, provisioning *services.ProvisioningService) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	user, err := provisioning.ProvisionSuperuser(ctx, email, password, "System", "Admin")
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info().Int64("userId", user.ID).Msg("Default superuser provisioned")
	return nil
}

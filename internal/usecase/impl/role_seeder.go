package impl

import (
	"context"
	"log/slog"

	"notaspro/internal/domain/entity"
	"notaspro/internal/domain/repository"
	"notaspro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roleSeeder reconciles the fixed role set at startup.
type roleSeeder struct {
	roleRepo repository.RoleRepository
	logger   *slog.Logger
}

// RoleSeederParams holds dependencies for roleSeeder, injected by Fx.
type RoleSeederParams struct {
	fx.In

	RoleRepo repository.RoleRepository
	Logger   *slog.Logger
}

// NewRoleSeeder is the constructor for roleSeeder.
func NewRoleSeeder(params RoleSeederParams) usecase.RoleSeeder {
	return &roleSeeder{roleRepo: params.RoleRepo, logger: params.Logger}
}

// EnsureDefaultRoles upserts every seeded role by name. Repeated or
// concurrent runs converge on one row per name.
func (srv *roleSeeder) EnsureDefaultRoles(ctx context.Context) error {
	for _, name := range entity.SeededRoles() {
		if _, err := srv.roleRepo.EnsureByName(ctx, name); err != nil {
			return errors.Wrapf(err, "failed to ensure role %q", name)
		}
	}

	srv.logger.Debug("Default roles ensured", slog.Int("count", len(entity.SeededRoles())))

	return nil
}

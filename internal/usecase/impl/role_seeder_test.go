package impl

import (
	"context"
	"testing"

	"notaspro/internal/domain/entity"
	"notaspro/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleSeeder_Idempotent(t *testing.T) {
	store := memory.NewStore()
	seeder := NewRoleSeeder(RoleSeederParams{RoleRepo: store.Roles(), Logger: discardLogger()})
	ctx := context.Background()

	require.NoError(t, seeder.EnsureDefaultRoles(ctx))
	require.NoError(t, seeder.EnsureDefaultRoles(ctx))

	roles, err := store.Roles().List(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, len(entity.SeededRoles()))

	seen := make(map[entity.RoleName]int)
	for _, role := range roles {
		seen[role.Name]++
	}
	for _, name := range entity.SeededRoles() {
		assert.Equal(t, 1, seen[name], "role %q should exist exactly once", name)
	}
}

func TestRoleSeeder_DoesNotSeedAdmin(t *testing.T) {
	store := memory.NewStore()
	seeder := NewRoleSeeder(RoleSeederParams{RoleRepo: store.Roles(), Logger: discardLogger()})
	ctx := context.Background()

	require.NoError(t, seeder.EnsureDefaultRoles(ctx))

	_, err := store.Roles().FindByName(ctx, entity.RoleAdmin)
	assert.Error(t, err, "admin role is ensured lazily by bootstrap, never seeded")
}

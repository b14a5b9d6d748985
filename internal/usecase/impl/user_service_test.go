package impl

import (
	"context"
	"testing"

	"notaspro/internal/domain/entity"
	domainerrors "notaspro/internal/domain/errors"
	"notaspro/internal/domain/service"
	"notaspro/internal/infra/persistence/memory"
	"notaspro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*memory.Store, service.PasswordHasher, usecase.UserUsecase) {
	t.Helper()
	store := memory.NewStore()
	hasher := testHasher()
	userUC := NewUserService(UserServiceParams{
		UserRepo: store.Users(),
		RoleRepo: store.Roles(),
		Hasher:   hasher,
		Logger:   discardLogger(),
	})

	seeder := NewRoleSeeder(RoleSeederParams{RoleRepo: store.Roles(), Logger: discardLogger()})
	require.NoError(t, seeder.EnsureDefaultRoles(context.Background()))

	return store, hasher, userUC
}

func TestUserService_CreateHashesServerSide(t *testing.T) {
	_, hasher, userUC := newUserFixture(t)

	user, err := userUC.Create(context.Background(), &usecase.CreateUserInput{
		Username: "ana",
		Password: "plaintext-pw",
		Role:     entity.RoleStudent,
		IsActive: true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext-pw", user.PasswordHash)
	assert.True(t, hasher.Check("plaintext-pw", user.PasswordHash))
	require.NotNil(t, user.Role)
	assert.Equal(t, entity.RoleStudent, user.Role.Name)
}

func TestUserService_CreateDuplicateUsername(t *testing.T) {
	_, _, userUC := newUserFixture(t)
	ctx := context.Background()

	_, err := userUC.Create(ctx, &usecase.CreateUserInput{
		Username: "ana", Password: "pw", Role: entity.RoleStudent, IsActive: true,
	})
	require.NoError(t, err)

	_, err = userUC.Create(ctx, &usecase.CreateUserInput{
		Username: "ana", Password: "other", Role: entity.RoleTeacher, IsActive: true,
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
}

func TestUserService_CreateUnknownRole(t *testing.T) {
	_, _, userUC := newUserFixture(t)

	_, err := userUC.Create(context.Background(), &usecase.CreateUserInput{
		Username: "ana", Password: "pw", Role: "payaso", IsActive: true,
	})
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotFound)
}

func TestUserService_GetMissing(t *testing.T) {
	_, _, userUC := newUserFixture(t)

	_, err := userUC.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdatePartial(t *testing.T) {
	_, hasher, userUC := newUserFixture(t)
	ctx := context.Background()

	created, err := userUC.Create(ctx, &usecase.CreateUserInput{
		Username: "ana", Password: "old-pw", Role: entity.RoleStudent, IsActive: true,
	})
	require.NoError(t, err)

	inactive := false
	newPassword := "new-pw"
	newRole := entity.RoleTeacher
	updated, err := userUC.Update(ctx, created.ID, &usecase.UpdateUserInput{
		Password: &newPassword,
		Role:     &newRole,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "ana", updated.Username)
	assert.False(t, updated.IsActive)
	assert.Equal(t, entity.RoleTeacher, updated.Role.Name)
	assert.True(t, hasher.Check("new-pw", updated.PasswordHash))
	assert.False(t, hasher.Check("old-pw", updated.PasswordHash))
}

func TestUserService_ListPagination(t *testing.T) {
	_, _, userUC := newUserFixture(t)
	ctx := context.Background()

	for _, name := range []string{"u1", "u2", "u3"} {
		_, err := userUC.Create(ctx, &usecase.CreateUserInput{
			Username: name, Password: "pw", Role: entity.RoleStudent, IsActive: true,
		})
		require.NoError(t, err)
	}

	page, err := userUC.List(ctx, &usecase.ListInput{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "u2", page[0].Username)
}

func TestUserService_DeleteThenGet(t *testing.T) {
	_, _, userUC := newUserFixture(t)
	ctx := context.Background()

	created, err := userUC.Create(ctx, &usecase.CreateUserInput{
		Username: "ana", Password: "pw", Role: entity.RoleStudent, IsActive: true,
	})
	require.NoError(t, err)

	require.NoError(t, userUC.Delete(ctx, created.ID))
	_, err = userUC.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	err = userUC.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"notaspro/config"
	"notaspro/internal/domain/entity"
	domainerrors "notaspro/internal/domain/errors"
	"notaspro/internal/domain/repository"
	"notaspro/internal/domain/service"
	"notaspro/internal/infra/auth"
	"notaspro/internal/infra/persistence/memory"
	"notaspro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHasher() service.PasswordHasher {
	return auth.NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})
}

func testTokenService(t *testing.T) service.TokenService {
	t.Helper()
	svc, err := auth.NewJWTServiceWithTTL("unit-test-secret", time.Minute)
	require.NoError(t, err)

	return svc
}

func newAuthFixture(t *testing.T) (*memory.Store, service.PasswordHasher, usecase.AuthUsecase) {
	t.Helper()
	store := memory.NewStore()
	hasher := testHasher()
	authUC := NewAuthService(AuthServiceParams{
		TxManager:    store.TxManager(),
		UserRepo:     store.Users(),
		Hasher:       hasher,
		TokenService: testTokenService(t),
		Logger:       discardLogger(),
	})

	return store, hasher, authUC
}

func seedUser(t *testing.T, store *memory.Store, hasher service.PasswordHasher, username, password string, role entity.RoleName, active bool) *entity.User {
	t.Helper()
	ctx := context.Background()

	storedRole, err := store.Roles().EnsureByName(ctx, role)
	require.NoError(t, err)

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
		IsActive:     active,
		RoleID:       storedRole.ID,
	}
	require.NoError(t, store.Users().Create(ctx, user))

	return user
}

func TestAuthService_LoginSuccess(t *testing.T) {
	store, hasher, authUC := newAuthFixture(t)
	seedUser(t, store, hasher, "profe", "correcthorse", entity.RoleTeacher, true)

	output, err := authUC.Login(context.Background(), &usecase.LoginInput{
		Username: "profe",
		Password: "correcthorse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Positive(t, output.ExpiresIn)
}

func TestAuthService_LoginFailureIsUniform(t *testing.T) {
	store, hasher, authUC := newAuthFixture(t)
	seedUser(t, store, hasher, "profe", "correcthorse", entity.RoleTeacher, true)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown username", "nobody", "correcthorse"},
		{"wrong password", "profe", "wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authUC.Login(context.Background(), &usecase.LoginInput{
				Username: tt.username,
				Password: tt.password,
			})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_LoginInactiveCredential(t *testing.T) {
	store, hasher, authUC := newAuthFixture(t)
	seedUser(t, store, hasher, "dormant", "correcthorse", entity.RoleTeacher, false)

	_, err := authUC.Login(context.Background(), &usecase.LoginInput{
		Username: "dormant",
		Password: "correcthorse",
	})
	// Inactive is indistinguishable from a bad password on the login path.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_CurrentUser(t *testing.T) {
	store, hasher, authUC := newAuthFixture(t)
	seedUser(t, store, hasher, "profe", "correcthorse", entity.RoleTeacher, true)

	output, err := authUC.Login(context.Background(), &usecase.LoginInput{
		Username: "profe",
		Password: "correcthorse",
	})
	require.NoError(t, err)

	user, err := authUC.CurrentUser(context.Background(), output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "profe", user.Username)
	require.NotNil(t, user.Role)
	assert.Equal(t, entity.RoleTeacher, user.Role.Name)
}

func TestAuthService_CurrentUserDeletedCredential(t *testing.T) {
	store, hasher, authUC := newAuthFixture(t)
	user := seedUser(t, store, hasher, "profe", "correcthorse", entity.RoleTeacher, true)

	output, err := authUC.Login(context.Background(), &usecase.LoginInput{
		Username: "profe",
		Password: "correcthorse",
	})
	require.NoError(t, err)

	require.NoError(t, store.Users().Delete(context.Background(), user.ID))

	_, err = authUC.CurrentUser(context.Background(), output.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_CurrentUserDeactivatedCredential(t *testing.T) {
	store, hasher, authUC := newAuthFixture(t)
	user := seedUser(t, store, hasher, "profe", "correcthorse", entity.RoleTeacher, true)

	output, err := authUC.Login(context.Background(), &usecase.LoginInput{
		Username: "profe",
		Password: "correcthorse",
	})
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, store.Users().Update(context.Background(), user))

	_, err = authUC.CurrentUser(context.Background(), output.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
}

func TestAuthService_CurrentUserGarbageToken(t *testing.T) {
	_, _, authUC := newAuthFixture(t)

	_, err := authUC.CurrentUser(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_BootstrapAdminOnce(t *testing.T) {
	store, _, authUC := newAuthFixture(t)
	ctx := context.Background()

	created, err := authUC.BootstrapAdmin(ctx, &usecase.BootstrapAdminInput{
		Username: "root",
		Password: "first-admin",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Role)
	assert.Equal(t, entity.RoleAdmin, created.Role.Name)

	_, err = authUC.BootstrapAdmin(ctx, &usecase.BootstrapAdminInput{
		Username: "root2",
		Password: "second-admin",
	})
	assert.ErrorIs(t, err, domainerrors.ErrBootstrapDisabled)

	count, err := store.Users().CountByRole(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// recordingTxManager wraps a TransactionManager and records which entry
// point each transaction used.
type recordingTxManager struct {
	inner          repository.TransactionManager
	executeCalls   int
	exclusiveCalls int
	exclusiveKeys  []string
}

func (m *recordingTxManager) Execute(ctx context.Context, fn func(factory repository.RepositoryFactory) error) error {
	m.executeCalls++

	return m.inner.Execute(ctx, fn)
}

func (m *recordingTxManager) ExecuteExclusive(ctx context.Context, key string, fn func(factory repository.RepositoryFactory) error) error {
	m.exclusiveCalls++
	m.exclusiveKeys = append(m.exclusiveKeys, key)

	return m.inner.ExecuteExclusive(ctx, key, fn)
}

func TestAuthService_BootstrapAdminUsesExclusiveTransaction(t *testing.T) {
	store := memory.NewStore()
	txManager := &recordingTxManager{inner: store.TxManager()}
	authUC := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     store.Users(),
		Hasher:       testHasher(),
		TokenService: testTokenService(t),
		Logger:       discardLogger(),
	})

	_, err := authUC.BootstrapAdmin(context.Background(), &usecase.BootstrapAdminInput{
		Username: "root",
		Password: "first-admin",
	})
	require.NoError(t, err)

	// The count-then-create must hold the named lock; a plain transaction
	// would let two concurrent bootstraps both count zero admins.
	assert.Equal(t, 0, txManager.executeCalls)
	assert.Equal(t, 1, txManager.exclusiveCalls)
	require.Len(t, txManager.exclusiveKeys, 1)
	assert.Equal(t, bootstrapAdminLock, txManager.exclusiveKeys[0])
}

func TestAuthService_BootstrapAdminConcurrent(t *testing.T) {
	store, _, authUC := newAuthFixture(t)
	ctx := context.Background()

	const attempts = 10
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = authUC.BootstrapAdmin(ctx, &usecase.BootstrapAdminInput{
				Username: "root-" + string(rune('a'+i)),
				Password: "race-password",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domainerrors.ErrBootstrapDisabled)
		}
	}
	assert.Equal(t, 1, succeeded)

	count, err := store.Users().CountByRole(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

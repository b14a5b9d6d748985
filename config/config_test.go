package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: notaspro
  log:
    pretty: true
    level: debug
http:
  port: 8000
postgres:
  host: localhost
  port: 5432
  username: notas
  dbName: notas
  sslMode: disable
jwt:
  secret: yaml-secret
  accessTTL: 30m
auth:
  bcryptCost: 12
`

func writeTestConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_YAMLValues(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "notaspro", cfg.Env.ServiceName)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, "yaml-secret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTTL)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("POSTGRES_SSLMODE", "require")
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "require", cfg.Postgres.SSLMode)
	assert.Equal(t, 9999, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	assert.Error(t, err)
}

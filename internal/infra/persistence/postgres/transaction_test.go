package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvisoryLockKey_Deterministic(t *testing.T) {
	// The key must be stable across processes; a replica hashing the same
	// name to a different value would not contend on the same lock.
	assert.Equal(t, advisoryLockKey("auth:bootstrap-admin"), advisoryLockKey("auth:bootstrap-admin"))
	assert.NotEqual(t, advisoryLockKey("auth:bootstrap-admin"), advisoryLockKey("other-lock"))
	assert.NotEqual(t, advisoryLockKey(""), advisoryLockKey("a"))
}

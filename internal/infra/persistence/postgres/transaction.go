package postgres

import (
	"context"
	"hash/fnv"

	"notaspro/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager on top of
// a GORM transaction. Every repository handed to the callback is bound to
// the same transaction, so the callback either commits as a whole or rolls
// back as a whole.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

func (manager *gormTransactionManager) Execute(ctx context.Context, fn func(factory repository.RepositoryFactory) error) error {
	return manager.run(ctx, nil, fn)
}

// ExecuteExclusive takes pg_advisory_xact_lock on the key before running the
// callback. The lock is released automatically at commit or rollback, so a
// READ COMMITTED check-then-insert under the same key cannot race: the second
// transaction blocks on the lock and only counts after the first committed.
func (manager *gormTransactionManager) ExecuteExclusive(ctx context.Context, key string, fn func(factory repository.RepositoryFactory) error) error {
	lockKey := advisoryLockKey(key)

	return manager.run(ctx, &lockKey, fn)
}

func (manager *gormTransactionManager) run(ctx context.Context, lockKey *int64, fn func(factory repository.RepositoryFactory) error) error {
	tx := manager.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if lockKey != nil {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", *lockKey).Error; err != nil {
			if rbErr := tx.Rollback().Error; rbErr != nil {
				return errors.Wrapf(err, "rollback failed: %v", rbErr)
			}

			return errors.Wrap(err, "failed to take advisory lock")
		}
	}

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// advisoryLockKey maps a lock name to the int64 keyspace pg_advisory_xact_lock
// expects. FNV-1a keeps the mapping deterministic across processes, which is
// what makes the lock meaningful between replicas of this service.
func advisoryLockKey(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))

	return int64(h.Sum64())
}

// gormRepositoryFactory builds repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (factory *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(factory.tx)
}

func (factory *gormRepositoryFactory) RoleRepo() repository.RoleRepository {
	return NewRoleRepository(factory.tx)
}

package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error

	// ExecuteExclusive runs a function within a database transaction that
	// additionally holds an exclusive lock named by key until commit or
	// rollback. Two concurrent calls with the same key never interleave,
	// which makes check-then-insert flows safe under the database's default
	// isolation level.
	ExecuteExclusive(ctx context.Context, key string, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	UserRepo() UserRepository
	RoleRepo() RoleRepository
}

package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
//
// The scoring engine itself never spans collections in one transaction; the
// manager exists for the upstream writers whose aggregates live across rows
// (diary day + entries, calorie target retire + create).
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewDiaryRepository returns a DiaryRepository bound to the current transaction.
	NewDiaryRepository() DiaryRepository

	// NewCalorieTargetRepository returns a CalorieTargetRepository bound to the current transaction.
	NewCalorieTargetRepository() CalorieTargetRepository
}

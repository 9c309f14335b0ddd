package repository

import "context"

// TransactionManager defines the interface for managing multi-document transactions.
// This allows the use case layer to handle transactions without depending on a specific store.
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same transaction.
	// Stores with optimistic transactions may run fn more than once, so fn must not have side effects
	// outside the repositories it is handed.
	// Within fn every read must happen before the first write.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// NewBusinessRepository returns a BusinessRepository instance bound to the current transaction.
	NewBusinessRepository() BusinessRepository

	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewPartnershipRequestRepository returns a PartnershipRequestRepository instance bound to the current transaction.
	NewPartnershipRequestRepository() PartnershipRequestRepository
}

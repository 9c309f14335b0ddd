package firestore

import (
	"context"

	"localdrop/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// transactionManager implements the domain's TransactionManager interface with Firestore
// transactions. Firestore retries a transaction whose reads were invalidated, so fn may run more than
// once; each attempt gets repositories bound to a fresh session.
type transactionManager struct {
	client *firestore.Client
}

// repositoryFactory hands out repositories bound to one transaction attempt.
type repositoryFactory struct {
	s *session
}

// NewBusinessRepository creates a business repository bound to the transaction.
func (f *repositoryFactory) NewBusinessRepository() repository.BusinessRepository {
	return &businessRepository{s: f.s}
}

// NewUserRepository creates a user repository bound to the transaction.
func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{s: f.s}
}

// NewPartnershipRequestRepository creates a request repository bound to the transaction.
func (f *repositoryFactory) NewPartnershipRequestRepository() repository.PartnershipRequestRepository {
	return &partnershipRequestRepository{s: f.s}
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &transactionManager{client: client}
}

// Execute runs fn within a Firestore transaction.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return runTransaction(ctx, tm.client, "failed to run transaction", func(tx *session) error {
		return fn(&repositoryFactory{s: tx})
	})
}

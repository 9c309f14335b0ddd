package repository

import (
	"context"
	"time"

	"localdrop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for partnership request persistence.
var (
	// ErrPartnershipRequestNotFound is returned when a request record is not found.
	ErrPartnershipRequestNotFound = errors.New("partnership request not found")
	// ErrStatusMismatch is returned when a conditional status update finds a different current status.
	ErrStatusMismatch = errors.New("partnership request status mismatch")
)

// PartnershipRequestRepository defines the interface for the partnership audit collection.
type PartnershipRequestRepository interface {
	// CreateRequest persists a new request record.
	CreateRequest(ctx context.Context, request *entity.PartnershipRequest) error

	// FindRequestByID retrieves a request by its unique ID.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.PartnershipRequest, error)

	// FindLatestRequestForPair retrieves the most recently created request between the user and the
	// business. Returns ErrPartnershipRequestNotFound when the pair has none.
	FindLatestRequestForPair(ctx context.Context, userID uuid.UUID, businessRefID string) (*entity.PartnershipRequest, error)

	// FindRequestsByAccountRef retrieves the requests addressed to an account, newest first.
	FindRequestsByAccountRef(ctx context.Context, accountRef string) ([]*entity.PartnershipRequest, error)

	// UpdateRequestStatus moves the request from one status to another only if it still holds from.
	// Returns ErrStatusMismatch otherwise.
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, from, to entity.PartnershipStatus, at time.Time) error

	// FindRequestsUpdatedSince retrieves requests changed at or after since, oldest change first.
	FindRequestsUpdatedSince(ctx context.Context, since time.Time, limit int) ([]*entity.PartnershipRequest, error)
}

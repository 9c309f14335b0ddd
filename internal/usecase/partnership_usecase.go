package usecase

import (
	"context"
	"time"

	"localdrop/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestPartnershipInput defines the data required for a user to ask a business for a partnership.
type RequestPartnershipInput struct {
	UserID        uuid.UUID
	BusinessRefID string
}

// DecidePartnershipInput defines the data required for a business to accept or reject a request.
type DecidePartnershipInput struct {
	RequestID     uuid.UUID
	UserID        uuid.UUID
	BusinessRefID string
	// BusinessDisplayName names the business in the rejection notification when the stored name is empty.
	BusinessDisplayName string
}

// ReconcileOutput summarizes one recovery pass.
type ReconcileOutput struct {
	Scanned  int       // Request records examined.
	Repaired int       // Pairs whose aggregates were rewritten.
	Failed   int       // Pairs that could not be repaired in this pass.
	Until    time.Time // UpdatedAt of the newest examined record; the next pass may start here.
}

// PartnershipUsecase coordinates the delivery partnership lifecycle across the request record and the
// two partner lists.
type PartnershipUsecase interface {
	// RequestPartnership records a pending request and adds a pending entry to the user's partner list.
	RequestPartnership(ctx context.Context, input *RequestPartnershipInput) (*entity.PartnershipRequest, error)

	// AcceptPartnership marks a pending request accepted and records the partnership on both sides.
	AcceptPartnership(ctx context.Context, input *DecidePartnershipInput) (*entity.PartnershipRequest, error)

	// RejectPartnership marks a pending request rejected and removes the user's entry.
	RejectPartnership(ctx context.Context, input *DecidePartnershipInput) (*entity.PartnershipRequest, error)

	// ListPartnerships returns the requests addressed to an account, newest first.
	ListPartnerships(ctx context.Context, accountRef string) ([]*entity.PartnershipRequest, error)

	// GeneratePartnerInviteQR renders a QR code a delivery agent can scan to request a partnership.
	GeneratePartnerInviteQR(ctx context.Context, businessRefID string) ([]byte, error)

	// RequestPartnershipByQRCode parses a scanned invite and requests a partnership with its business.
	RequestPartnershipByQRCode(ctx context.Context, userID uuid.UUID, qrData string) (*entity.PartnershipRequest, error)

	// Reconcile rewrites the partner lists of every pair whose request changed since the given time so
	// they match the request's status.
	Reconcile(ctx context.Context, since time.Time) (*ReconcileOutput, error)
}

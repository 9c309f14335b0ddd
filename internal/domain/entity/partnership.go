package entity

import (
	"time"

	"github.com/google/uuid"
)

// PartnershipStatus is the state of a delivery partnership between a user and a business.
type PartnershipStatus string

const (
	// PartnershipPending means the user asked and the business has not decided yet.
	PartnershipPending PartnershipStatus = "PENDING"
	// PartnershipAccepted means the business accepted the user as a delivery partner.
	PartnershipAccepted PartnershipStatus = "ACCEPTED"
	// PartnershipRejected means the business declined the request.
	PartnershipRejected PartnershipStatus = "REJECTED"
)

// String returns the string representation of the status.
func (s PartnershipStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s PartnershipStatus) IsValid() bool {
	switch s {
	case PartnershipPending, PartnershipAccepted, PartnershipRejected:
		return true
	default:
		return false
	}
}

// IsActive reports whether the status blocks a new request for the same pair.
func (s PartnershipStatus) IsActive() bool {
	return s == PartnershipPending || s == PartnershipAccepted
}

// PartnershipTypeDelivery is the only request type issued today.
const PartnershipTypeDelivery = 1

// BusinessSnapshot freezes the business fields shown on a request.
type BusinessSnapshot struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	PostalCode  string `json:"postal_code"`
}

// UserSnapshot freezes the user fields shown on a request.
type UserSnapshot struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
}

// PartnershipRequest is the audit record of one request/decision cycle. It is created once, its status
// is updated in place and it is never deleted.
type PartnershipRequest struct {
	ID               uuid.UUID         `json:"id"`                // The Global Unique Identifier (GUID) for the request.
	AccountKey       []string          `json:"account_key"`       // ["osb::<business>", "osd::<user>"], used to address both parties.
	BusinessSnapshot BusinessSnapshot  `json:"business_snapshot"` // Business as it was when the request was made.
	UserSnapshot     UserSnapshot      `json:"user_snapshot"`     // User as they were when the request was made.
	Status           PartnershipStatus `json:"status"`            // Current status.
	Type             int               `json:"type"`              // Request type, see PartnershipTypeDelivery.
	CreatedAt        time.Time         `json:"created_at"`        // Timestamp of the request.
	UpdatedAt        time.Time         `json:"updated_at"`        // Timestamp of the last status change.
}

// BusinessRefID returns the business side of the pair.
func (r *PartnershipRequest) BusinessRefID() string {
	return r.BusinessSnapshot.ID
}

// UserID returns the user side of the pair.
func (r *PartnershipRequest) UserID() uuid.UUID {
	return r.UserSnapshot.ID
}

// BelongsTo reports whether the request concerns the given pair.
func (r *PartnershipRequest) BelongsTo(userID uuid.UUID, businessRefID string) bool {
	return r.UserID() == userID && r.BusinessRefID() == businessRefID
}

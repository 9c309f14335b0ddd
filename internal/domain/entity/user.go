package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserPartnerBusiness is a business entry in a delivery agent's partner list.
type UserPartnerBusiness struct {
	BusinessRefID string            `json:"business_ref_id"` // The business's natural identifier.
	Status        PartnershipStatus `json:"status"`          // Relationship status from the agent side.
}

// User is the OSD aggregate.
type User struct {
	ID                uuid.UUID             `json:"id"`                 // The Global Unique Identifier (GUID) for the user.
	Email             string                `json:"email"`              // Unique, used as a natural key.
	DisplayName       string                `json:"display_name"`       // Name shown to businesses.
	PartnerBusinesses []UserPartnerBusiness `json:"partner_businesses"` // Partnership entries, in insertion order.
	CreatedAt         time.Time             `json:"created_at"`         // Timestamp of creation.
	UpdatedAt         time.Time             `json:"updated_at"`         // Timestamp of the last modification.
}

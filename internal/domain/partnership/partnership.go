// Package partnership holds the request, accept and reject rules of delivery partnerships and the list
// primitives every storage backend applies to the two partner lists.
package partnership

import (
	"slices"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrActiveRelationship is returned when the pair already has a pending or accepted relationship.
	ErrActiveRelationship = errors.New("active partnership already exists")
	// ErrInvalidTransition is returned when a decision is made on a request that is no longer pending.
	ErrInvalidTransition = errors.New("partnership request is not pending")
)

// Effect is the complete state a transition leaves behind for one (user, business) pair.
type Effect struct {
	// Status is the request record's new status.
	Status entity.PartnershipStatus
	// UserEntry is upserted into the user's partner list when set.
	UserEntry *entity.UserPartnerBusiness
	// RemoveUserEntry removes the user's entry for the business.
	RemoveUserEntry bool
	// BusinessEntry is upserted into the business's partner list when set. A nil entry leaves the
	// business list untouched.
	BusinessEntry *entity.BusinessPartner
}

// CheckRequest guards against a second active relationship for the pair.
func CheckRequest(user *entity.User, businessRefID string) error {
	if HasActiveEntry(user.PartnerBusinesses, businessRefID) {
		return ErrActiveRelationship
	}

	return nil
}

// NewRequest builds the pending audit record for a request that passed CheckRequest.
func NewRequest(user *entity.User, business *entity.Business, now time.Time) *entity.PartnershipRequest {
	return &entity.PartnershipRequest{
		ID: newRequestID(),
		AccountKey: []string{
			entity.BusinessAccountRef(business.ID),
			entity.UserAccountRef(user.ID),
		},
		BusinessSnapshot: entity.BusinessSnapshot{
			ID:          business.ID,
			DisplayName: business.DisplayName,
			PostalCode:  business.Location.PostalCode,
		},
		UserSnapshot: entity.UserSnapshot{
			ID:          user.ID,
			DisplayName: user.DisplayName,
			Email:       user.Email,
		},
		Status:    entity.PartnershipPending,
		Type:      entity.PartnershipTypeDelivery,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RequestEffect is what a new pending request writes: a pending entry on the user side only.
func RequestEffect(businessRefID string) Effect {
	return Effect{
		Status: entity.PartnershipPending,
		UserEntry: &entity.UserPartnerBusiness{
			BusinessRefID: businessRefID,
			Status:        entity.PartnershipPending,
		},
	}
}

// Accept moves a pending request to accepted. Both partner lists end with an accepted entry.
func Accept(req *entity.PartnershipRequest) (Effect, error) {
	if req.Status != entity.PartnershipPending {
		return Effect{}, ErrInvalidTransition
	}

	return acceptedEffect(req), nil
}

// Reject moves a pending request to rejected. The user's entry is removed so the user may ask again;
// the business list is left as it is.
func Reject(req *entity.PartnershipRequest) (Effect, error) {
	if req.Status != entity.PartnershipPending {
		return Effect{}, ErrInvalidTransition
	}

	return rejectedEffect(), nil
}

// Expected returns the aggregate state implied by a request record's current status. The recovery
// pass uses it to repair aggregates left behind by an interrupted operation.
func Expected(req *entity.PartnershipRequest) Effect {
	switch req.Status {
	case entity.PartnershipAccepted:
		return acceptedEffect(req)
	case entity.PartnershipRejected:
		return rejectedEffect()
	default:
		return RequestEffect(req.BusinessRefID())
	}
}

func acceptedEffect(req *entity.PartnershipRequest) Effect {
	return Effect{
		Status: entity.PartnershipAccepted,
		UserEntry: &entity.UserPartnerBusiness{
			BusinessRefID: req.BusinessRefID(),
			Status:        entity.PartnershipAccepted,
		},
		BusinessEntry: &entity.BusinessPartner{
			UserID: req.UserID(),
			Status: entity.PartnershipAccepted,
		},
	}
}

func rejectedEffect() Effect {
	return Effect{
		Status:          entity.PartnershipRejected,
		RemoveUserEntry: true,
	}
}

// HasActiveEntry reports whether list holds a pending or accepted entry for the business.
func HasActiveEntry(list []entity.UserPartnerBusiness, businessRefID string) bool {
	return slices.ContainsFunc(list, func(e entity.UserPartnerBusiness) bool {
		return e.BusinessRefID == businessRefID && e.Status.IsActive()
	})
}

// FindUserEntry returns the user's entry for the business.
func FindUserEntry(list []entity.UserPartnerBusiness, businessRefID string) (entity.UserPartnerBusiness, bool) {
	idx := slices.IndexFunc(list, func(e entity.UserPartnerBusiness) bool {
		return e.BusinessRefID == businessRefID
	})
	if idx < 0 {
		return entity.UserPartnerBusiness{}, false
	}

	return list[idx], true
}

// FindBusinessEntry returns the business's entry for the user.
func FindBusinessEntry(list []entity.BusinessPartner, userID uuid.UUID) (entity.BusinessPartner, bool) {
	idx := slices.IndexFunc(list, func(e entity.BusinessPartner) bool {
		return e.UserID == userID
	})
	if idx < 0 {
		return entity.BusinessPartner{}, false
	}

	return list[idx], true
}

// UpsertUserPartner replaces the entry for the same business in place, or appends one. The input
// slice is not modified.
func UpsertUserPartner(list []entity.UserPartnerBusiness, entry entity.UserPartnerBusiness) []entity.UserPartnerBusiness {
	out := slices.Clone(list)

	idx := slices.IndexFunc(out, func(e entity.UserPartnerBusiness) bool {
		return e.BusinessRefID == entry.BusinessRefID
	})
	if idx >= 0 {
		out[idx] = entry

		return out
	}

	return append(out, entry)
}

// RemoveUserPartner drops every entry for the business. The input slice is not modified.
func RemoveUserPartner(list []entity.UserPartnerBusiness, businessRefID string) []entity.UserPartnerBusiness {
	out := make([]entity.UserPartnerBusiness, 0, len(list))
	for _, e := range list {
		if e.BusinessRefID != businessRefID {
			out = append(out, e)
		}
	}

	return out
}

// UpsertBusinessPartner replaces the entry for the same user in place, or appends one. The input
// slice is not modified.
func UpsertBusinessPartner(list []entity.BusinessPartner, entry entity.BusinessPartner) []entity.BusinessPartner {
	out := slices.Clone(list)

	idx := slices.IndexFunc(out, func(e entity.BusinessPartner) bool {
		return e.UserID == entry.UserID
	})
	if idx >= 0 {
		out[idx] = entry

		return out
	}

	return append(out, entry)
}

// newRequestID prefers time-ordered identifiers so request records sort by creation.
func newRequestID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

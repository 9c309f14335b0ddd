// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"localdrop/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when a business is not found.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrDuplicateBusiness is returned when the business identifier is already taken.
	ErrDuplicateBusiness = errors.New("business already exists")
)

// BusinessRepository defines the interface for business-related persistence operations.
type BusinessRepository interface {
	// CreateBusiness persists a new business keyed by its identifier.
	// Returns ErrDuplicateBusiness when the identifier is taken, enforced by the store.
	CreateBusiness(ctx context.Context, business *entity.Business) error

	// FindBusinessByID retrieves a business by its identifier.
	FindBusinessByID(ctx context.Context, id string) (*entity.Business, error)

	// FindBusinessesWithinBounds retrieves businesses whose location lies inside the box, ordered by identifier.
	FindBusinessesWithinBounds(ctx context.Context, box entity.BoundingBox) ([]*entity.Business, error)

	// UpdateBusinessProfile writes only the fields set in update. The partner list is never touched.
	UpdateBusinessProfile(ctx context.Context, id string, update *entity.BusinessProfileUpdate) error

	// UpsertPartner atomically replaces the partner entry for the same user in place, or appends it.
	UpsertPartner(ctx context.Context, businessID string, entry entity.BusinessPartner) error
}

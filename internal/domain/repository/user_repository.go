package repository

import (
	"context"

	"localdrop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email address is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrActivePartnerEntry is returned when a conditional append finds an active entry for the business.
	ErrActivePartnerEntry = errors.New("active partner entry already exists")
)

// UserRepository defines the interface for user-related persistence operations.
type UserRepository interface {
	// CreateUser persists a new user. Returns ErrDuplicateEmail when the email is taken, enforced by the store.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// AppendPartnerBusiness atomically adds entry unless an active entry for the same business exists,
	// in which case it returns ErrActivePartnerEntry. A stale inactive entry is replaced in place.
	AppendPartnerBusiness(ctx context.Context, userID uuid.UUID, entry entity.UserPartnerBusiness) error

	// UpsertPartnerBusiness atomically replaces the entry for the same business in place, or appends it.
	UpsertPartnerBusiness(ctx context.Context, userID uuid.UUID, entry entity.UserPartnerBusiness) error

	// RemovePartnerBusiness atomically removes the entry for the business, if any.
	RemovePartnerBusiness(ctx context.Context, userID uuid.UUID, businessRefID string) error
}

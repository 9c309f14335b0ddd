// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"localdrop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to register a delivery agent.
type CreateUserInput struct {
	Email       string
	DisplayName string
}

// UserUsecase defines the interface for delivery agent profile operations.
type UserUsecase interface {
	// CreateUser registers a delivery agent. The email address must be unique.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// GetUser returns a delivery agent with their partner list.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

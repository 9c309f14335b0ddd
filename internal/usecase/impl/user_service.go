package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "localdrop/internal/delivery/context"
	"localdrop/internal/domain/entity"
	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/domain/repository"
	"localdrop/internal/domain/service"
	"localdrop/internal/errors"
	"localdrop/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type userService struct {
	userRepo  repository.UserRepository
	clock     service.Clock
	validator *validator.Validate
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Clock    service.Clock
	Logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:  params.UserRepo,
		clock:     params.Clock,
		validator: validator.New(),
		logger:    params.Logger,
	}
}

// CreateUser registers a delivery agent. The email address is normalized and must be unique.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := srv.validator.Var(email, "required,email"); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid email address")
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "display name is required")
	}

	now := srv.clock.Now()
	user := &entity.User{
		ID:                uuid.New(),
		Email:             email,
		DisplayName:       displayName,
		PartnerBusinesses: []entity.UserPartnerBusiness{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to create user")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	deliverycontext.LoggerFrom(ctx, srv.logger).Info("User created", slog.String("user_id", user.ID.String()))

	return user, nil
}

// GetUser returns a delivery agent with their partner list.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return findUser(ctx, srv.userRepo, id)
}

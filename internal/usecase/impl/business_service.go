package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"localdrop/config"
	deliverycontext "localdrop/internal/delivery/context"
	"localdrop/internal/domain/entity"
	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/domain/repository"
	"localdrop/internal/domain/service"
	"localdrop/internal/errors"
	"localdrop/internal/usecase"

	"go.uber.org/fx"
)

type businessService struct {
	businessRepo      repository.BusinessRepository
	clock             service.Clock
	launchPostalCodes []string
	logger            *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBusinessService creates a new business service instance
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	var postalCodes []string
	if params.Config != nil && params.Config.Marketplace != nil {
		postalCodes = params.Config.Marketplace.LaunchPostalCodes
	}

	return &businessService{
		businessRepo:      params.BusinessRepo,
		clock:             params.Clock,
		launchPostalCodes: postalCodes,
		logger:            params.Logger,
	}
}

// CreateBusiness registers a business under its chosen identifier.
func (s *businessService) CreateBusiness(ctx context.Context, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" || strings.Contains(id, "/") {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid business identifier")
	}

	if err := s.validateLocation(input.Location); err != nil {
		return nil, err
	}

	if !input.OpeningTime.IsValid() || !input.ClosingTime.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid operating time")
	}

	if input.DeliveryRangeMeters != nil && *input.DeliveryRangeMeters < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "delivery range must not be negative")
	}

	now := s.clock.Now()
	business := &entity.Business{
		ID:                  id,
		DisplayName:         input.DisplayName,
		BusinessType:        input.BusinessType,
		Location:            input.Location,
		IsOpen:              input.IsOpen,
		DeliveryRangeMeters: input.DeliveryRangeMeters,
		PassiveOpenEnabled:  input.PassiveOpenEnabled,
		OpeningTime:         input.OpeningTime,
		ClosingTime:         input.ClosingTime,
		OpeningDays:         slices.Clone(input.OpeningDays),
		Partners:            []entity.BusinessPartner{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.businessRepo.CreateBusiness(ctx, business); err != nil {
		if errors.Is(err, repository.ErrDuplicateBusiness) {
			return nil, errors.Wrap(domainerrors.ErrBusinessAlreadyExists, "failed to create business")
		}

		return nil, errors.Wrap(err, "failed to create business")
	}

	deliverycontext.LoggerFrom(ctx, s.logger).Info("Business created", slog.String("business_ref", business.ID))

	return business, nil
}

// GetBusiness returns the public view of a business.
func (s *businessService) GetBusiness(ctx context.Context, id string) (*entity.BusinessView, error) {
	business, err := findBusiness(ctx, s.businessRepo, id)
	if err != nil {
		return nil, err
	}

	return business.View(0), nil
}

// UpdateBusinessProfile applies a partial profile update. Partner lists are never affected.
func (s *businessService) UpdateBusinessProfile(ctx context.Context, id string, update *entity.BusinessProfileUpdate) (*entity.BusinessView, error) {
	if update == nil || update.IsEmpty() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "profile update has no fields")
	}

	if update.Location != nil {
		if err := s.validateLocation(*update.Location); err != nil {
			return nil, err
		}
	}

	if (update.OpeningTime != nil && !update.OpeningTime.IsValid()) || (update.ClosingTime != nil && !update.ClosingTime.IsValid()) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid operating time")
	}

	if update.DeliveryRangeMeters != nil && *update.DeliveryRangeMeters < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "delivery range must not be negative")
	}

	if err := s.businessRepo.UpdateBusinessProfile(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "failed to update business profile")
		}

		return nil, errors.Wrap(err, "failed to update business profile")
	}

	return s.GetBusiness(ctx, id)
}

func (s *businessService) validateLocation(location entity.BusinessLocation) error {
	if !location.GeoPoint.IsValid() {
		return errors.Wrap(domainerrors.ErrInvalidCoordinates, "invalid business location")
	}

	if len(s.launchPostalCodes) > 0 && !slices.Contains(s.launchPostalCodes, location.PostalCode) {
		return errors.Wrap(domainerrors.ErrOutsideLaunchRegion, "postal code "+location.PostalCode)
	}

	return nil
}

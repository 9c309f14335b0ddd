package impl

import (
	"context"
	"log/slog"
	"time"

	"localdrop/config"
	deliverycontext "localdrop/internal/delivery/context"
	"localdrop/internal/domain/availability"
	"localdrop/internal/domain/entity"
	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/domain/geo"
	"localdrop/internal/domain/repository"
	"localdrop/internal/domain/service"
	"localdrop/internal/errors"
	"localdrop/internal/infra/metrics"
	"localdrop/internal/usecase"

	"go.uber.org/fx"
)

// worldBounds is queried when no platform ceiling is configured.
var worldBounds = entity.BoundingBox{
	SouthwestCorner: entity.GeoPoint{Latitude: -90, Longitude: -180},
	NortheastCorner: entity.GeoPoint{Latitude: 90, Longitude: 180},
}

type availabilityService struct {
	businessRepo              repository.BusinessRepository
	clock                     service.Clock
	commonDeliveryRangeMeters float64
	logger                    *slog.Logger
}

// AvailabilityServiceParams holds dependencies for AvailabilityService, injected by Fx.
type AvailabilityServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAvailabilityService creates a new availability service instance
func NewAvailabilityService(params AvailabilityServiceParams) usecase.AvailabilityUsecase {
	var commonRange float64
	if params.Config != nil && params.Config.Marketplace != nil {
		commonRange = params.Config.Marketplace.CommonDeliveryRangeMeters
	}

	return &availabilityService{
		businessRepo:              params.BusinessRepo,
		clock:                     params.Clock,
		commonDeliveryRangeMeters: commonRange,
		logger:                    params.Logger,
	}
}

// GetAvailability returns the businesses able to deliver to requester at the current instant.
func (s *availabilityService) GetAvailability(ctx context.Context, requester entity.GeoPoint) ([]*entity.BusinessView, error) {
	start := time.Now()

	if !requester.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCoordinates, "invalid requester location")
	}

	candidates, err := s.businessRepo.FindBusinessesWithinBounds(ctx, s.searchBounds(requester))
	if err != nil {
		metrics.ObserveAvailability(start, 0, 0, err)

		return nil, errors.Wrap(err, "failed to find businesses within bounds")
	}

	views := availability.Resolve(candidates, requester, s.commonDeliveryRangeMeters, s.clock.Now())
	metrics.ObserveAvailability(start, len(candidates), len(views), nil)

	deliverycontext.LoggerFrom(ctx, s.logger).Debug("Availability resolved",
		slog.Int("candidates", len(candidates)),
		slog.Int("available", len(views)),
	)

	return views, nil
}

func (s *availabilityService) searchBounds(requester entity.GeoPoint) entity.BoundingBox {
	if s.commonDeliveryRangeMeters <= 0 {
		return worldBounds
	}

	return geo.BoundingBox(requester, s.commonDeliveryRangeMeters)
}

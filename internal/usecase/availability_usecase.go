package usecase

import (
	"context"

	"localdrop/internal/domain/entity"
)

// AvailabilityUsecase answers which businesses can serve a location right now.
type AvailabilityUsecase interface {
	// GetAvailability returns the businesses able to deliver to requester at the current instant, in
	// candidate order. An empty result is not an error.
	GetAvailability(ctx context.Context, requester entity.GeoPoint) ([]*entity.BusinessView, error)
}

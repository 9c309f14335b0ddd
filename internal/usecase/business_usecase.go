package usecase

import (
	"context"
	"time"

	"localdrop/internal/domain/entity"
)

// CreateBusinessInput defines the data required to register a business.
type CreateBusinessInput struct {
	ID                  string
	DisplayName         string
	BusinessType        string
	Location            entity.BusinessLocation
	IsOpen              *bool
	DeliveryRangeMeters *float64
	PassiveOpenEnabled  *bool
	OpeningTime         entity.OperatingTime
	ClosingTime         entity.OperatingTime
	OpeningDays         []time.Weekday
}

// BusinessUsecase defines the interface for business profile management.
type BusinessUsecase interface {
	// CreateBusiness registers a business under its chosen identifier.
	CreateBusiness(ctx context.Context, input *CreateBusinessInput) (*entity.Business, error)

	// GetBusiness returns the public view of a business.
	GetBusiness(ctx context.Context, id string) (*entity.BusinessView, error)

	// UpdateBusinessProfile applies a partial profile update. Partner lists are never affected.
	UpdateBusinessProfile(ctx context.Context, id string, update *entity.BusinessProfileUpdate) (*entity.BusinessView, error)
}

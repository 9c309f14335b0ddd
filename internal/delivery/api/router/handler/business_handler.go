package handler

import (
	"log/slog"
	"net/http"
	"time"

	"localdrop/internal/delivery/api/middleware"
	"localdrop/internal/delivery/api/response"
	"localdrop/internal/domain/entity"
	"localdrop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler manages business profiles
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// GeoPointRequest is a coordinate in a request body
type GeoPointRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// LocationRequest is a storefront location in a request body
type LocationRequest struct {
	GeoPoint   GeoPointRequest `json:"geo_point" validate:"required"`
	PostalCode string          `json:"postal_code" validate:"max=16"`
}

func (r *LocationRequest) toEntity() entity.BusinessLocation {
	return entity.BusinessLocation{
		GeoPoint:   entity.GeoPoint{Latitude: *r.GeoPoint.Latitude, Longitude: *r.GeoPoint.Longitude},
		PostalCode: r.PostalCode,
	}
}

// OperatingTimeRequest is a daily wall-clock time in a request body
type OperatingTimeRequest struct {
	Hour              int `json:"hour" validate:"min=0,max=23"`
	Minute            int `json:"minute" validate:"min=0,max=59"`
	ZoneOffsetMinutes int `json:"zone_offset_minutes" validate:"min=-840,max=840"`
}

func (r *OperatingTimeRequest) toEntity() entity.OperatingTime {
	return entity.OperatingTime{Hour: r.Hour, Minute: r.Minute, ZoneOffsetMinutes: r.ZoneOffsetMinutes}
}

// CreateBusinessRequest represents the request body for registering a business
type CreateBusinessRequest struct {
	ID                  string               `json:"id" validate:"required,max=128,excludesall=/:"`
	DisplayName         string               `json:"display_name" validate:"required,max=256"`
	BusinessType        string               `json:"business_type" validate:"max=64"`
	Location            LocationRequest      `json:"location" validate:"required"`
	IsOpen              *bool                `json:"is_open"`
	DeliveryRangeMeters *float64             `json:"delivery_range_meters" validate:"omitempty,min=0"`
	PassiveOpenEnabled  *bool                `json:"passive_open_enabled"`
	OpeningTime         OperatingTimeRequest `json:"opening_time"`
	ClosingTime         OperatingTimeRequest `json:"closing_time"`
	OpeningDays         []int                `json:"opening_days" validate:"omitempty,max=7,dive,min=0,max=6"`
}

// UpdateBusinessProfileRequest represents a partial profile update. Omitted fields are left untouched.
type UpdateBusinessProfileRequest struct {
	DisplayName         *string               `json:"display_name" validate:"omitempty,min=1,max=256"`
	BusinessType        *string               `json:"business_type" validate:"omitempty,max=64"`
	Location            *LocationRequest      `json:"location"`
	IsOpen              *bool                 `json:"is_open"`
	DeliveryRangeMeters *float64              `json:"delivery_range_meters" validate:"omitempty,min=0"`
	PassiveOpenEnabled  *bool                 `json:"passive_open_enabled"`
	OpeningTime         *OperatingTimeRequest `json:"opening_time"`
	ClosingTime         *OperatingTimeRequest `json:"closing_time"`
	OpeningDays         *[]int                `json:"opening_days" validate:"omitempty,max=7,dive,min=0,max=6"`
}

func (r *UpdateBusinessProfileRequest) toEntity() *entity.BusinessProfileUpdate {
	update := &entity.BusinessProfileUpdate{
		DisplayName:         r.DisplayName,
		BusinessType:        r.BusinessType,
		IsOpen:              r.IsOpen,
		DeliveryRangeMeters: r.DeliveryRangeMeters,
		PassiveOpenEnabled:  r.PassiveOpenEnabled,
	}

	if r.Location != nil {
		location := r.Location.toEntity()
		update.Location = &location
	}
	if r.OpeningTime != nil {
		opening := r.OpeningTime.toEntity()
		update.OpeningTime = &opening
	}
	if r.ClosingTime != nil {
		closing := r.ClosingTime.toEntity()
		update.ClosingTime = &closing
	}
	if r.OpeningDays != nil {
		days := weekdays(*r.OpeningDays)
		update.OpeningDays = &days
	}

	return update
}

func weekdays(days []int) []time.Weekday {
	result := make([]time.Weekday, len(days))
	for i, day := range days {
		result[i] = time.Weekday(day)
	}

	return result
}

// CreateBusiness handles POST /businesses. The identifier must be the one the caller's token manages.
func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	var req CreateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	if managed, ok := middleware.GetBusinessRef(c); !ok || managed != req.ID {
		return response.Forbidden(c, "FORBIDDEN", "The token does not manage this business")
	}

	business, err := h.businessUC.CreateBusiness(c.Request().Context(), &usecase.CreateBusinessInput{
		ID:                  req.ID,
		DisplayName:         req.DisplayName,
		BusinessType:        req.BusinessType,
		Location:            req.Location.toEntity(),
		IsOpen:              req.IsOpen,
		DeliveryRangeMeters: req.DeliveryRangeMeters,
		PassiveOpenEnabled:  req.PassiveOpenEnabled,
		OpeningTime:         req.OpeningTime.toEntity(),
		ClosingTime:         req.ClosingTime.toEntity(),
		OpeningDays:         weekdays(req.OpeningDays),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, business.View(0))
}

// GetBusiness handles GET /businesses/:id
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	business, err := h.businessUC.GetBusiness(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, business)
}

// UpdateBusinessProfile handles PATCH /businesses/:id
func (h *BusinessHandler) UpdateBusinessProfile(c echo.Context) error {
	businessRef := c.Param("id")
	if managed, ok := middleware.GetBusinessRef(c); !ok || managed != businessRef {
		return response.Forbidden(c, "FORBIDDEN", "The token does not manage this business")
	}

	var req UpdateBusinessProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	business, err := h.businessUC.UpdateBusinessProfile(c.Request().Context(), businessRef, req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, business)
}

package handler

import (
	"log/slog"
	"net/http"

	"localdrop/internal/delivery/api/response"
	"localdrop/internal/domain/entity"
	"localdrop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AvailabilityHandlerParams holds dependencies for AvailabilityHandler, injected by Fx.
type AvailabilityHandlerParams struct {
	fx.In

	AvailabilityUC usecase.AvailabilityUsecase
	Logger         *slog.Logger
}

// AvailabilityHandler answers which businesses can serve a customer's location.
type AvailabilityHandler struct {
	availabilityUC usecase.AvailabilityUsecase
	logger         *slog.Logger
}

// NewAvailabilityHandler is the constructor for AvailabilityHandler
func NewAvailabilityHandler(params AvailabilityHandlerParams) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUC: params.AvailabilityUC,
		logger:         params.Logger,
	}
}

// GetAvailability handles GET /availability?latitude=&longitude=. An empty result is a 204.
func (h *AvailabilityHandler) GetAvailability(c echo.Context) error {
	var requester entity.GeoPoint
	err := echo.QueryParamsBinder(c).
		MustFloat64("latitude", &requester.Latitude).
		MustFloat64("longitude", &requester.Longitude).
		BindError()
	if err != nil {
		return response.ValidationFailed(c, err)
	}

	businesses, err := h.availabilityUC.GetAvailability(c.Request().Context(), requester)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if len(businesses) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusOK, businesses)
}

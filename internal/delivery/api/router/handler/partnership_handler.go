package handler

import (
	"log/slog"
	"net/http"

	"localdrop/internal/delivery/api/middleware"
	"localdrop/internal/delivery/api/response"
	"localdrop/internal/domain/entity"
	"localdrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PartnershipHandlerParams holds dependencies for PartnershipHandler, injected by Fx.
type PartnershipHandlerParams struct {
	fx.In

	PartnershipUC usecase.PartnershipUsecase
	Logger        *slog.Logger
}

// PartnershipHandler exposes the delivery partnership workflow.
type PartnershipHandler struct {
	partnershipUC usecase.PartnershipUsecase
	logger        *slog.Logger
}

// NewPartnershipHandler is the constructor for PartnershipHandler
func NewPartnershipHandler(params PartnershipHandlerParams) *PartnershipHandler {
	return &PartnershipHandler{
		partnershipUC: params.PartnershipUC,
		logger:        params.Logger,
	}
}

// RequestPartnershipRequest is sent by a delivery agent asking a business for a partnership
type RequestPartnershipRequest struct {
	BusinessRef string `json:"business_ref" validate:"required,max=128,excludesall=/:"`
	UserID      string `json:"user_id" validate:"required,uuid"`
}

// DecidePartnershipRequest is sent by a business accepting or rejecting a request
type DecidePartnershipRequest struct {
	UserID              string `json:"user_id" validate:"required,uuid"`
	BusinessRef         string `json:"business_ref" validate:"required,max=128,excludesall=/:"`
	BusinessDisplayName string `json:"business_display_name" validate:"max=256"`
}

// QRPartnershipRequest carries the payload of a scanned partner invite
type QRPartnershipRequest struct {
	QRData string `json:"qr_data" validate:"required,max=2048"`
}

// RequestPartnership handles POST /partnerships/requests
func (h *PartnershipHandler) RequestPartnership(c echo.Context) error {
	var req RequestPartnershipRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid partnership request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	userID := uuid.MustParse(req.UserID)
	if callerID, ok := middleware.GetUserID(c); !ok || callerID != userID {
		return response.Forbidden(c, "FORBIDDEN", "Requests can only be made on your own behalf")
	}

	request, err := h.partnershipUC.RequestPartnership(c.Request().Context(), &usecase.RequestPartnershipInput{
		UserID:        userID,
		BusinessRefID: req.BusinessRef,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// AcceptPartnership handles POST /partnerships/requests/:id/accept
func (h *PartnershipHandler) AcceptPartnership(c echo.Context) error {
	input, done := h.bindDecision(c)
	if input == nil {
		return done
	}

	request, err := h.partnershipUC.AcceptPartnership(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// RejectPartnership handles POST /partnerships/requests/:id/reject
func (h *PartnershipHandler) RejectPartnership(c echo.Context) error {
	input, done := h.bindDecision(c)
	if input == nil {
		return done
	}

	request, err := h.partnershipUC.RejectPartnership(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// bindDecision parses an accept or reject call. When it returns a nil input the response has been
// written and the returned error is what the handler must return.
func (h *PartnershipHandler) bindDecision(c echo.Context) (*usecase.DecidePartnershipInput, error) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_ID", "Invalid partnership request ID")
	}

	var req DecidePartnershipRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "Invalid partnership decision input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, response.ValidationFailed(c, err)
	}

	if businessRef, ok := middleware.GetBusinessRef(c); !ok || businessRef != req.BusinessRef {
		return nil, response.Forbidden(c, "FORBIDDEN", "Only the addressed business can decide this request")
	}

	return &usecase.DecidePartnershipInput{
		RequestID:           requestID,
		UserID:              uuid.MustParse(req.UserID),
		BusinessRefID:       req.BusinessRef,
		BusinessDisplayName: req.BusinessDisplayName,
	}, nil
}

// ListPartnerships handles GET /partnerships. The optional "as" query selects the caller's side
// when the token holds both roles.
func (h *PartnershipHandler) ListPartnerships(c echo.Context) error {
	accountRef, err := callerAccountRef(c)
	if accountRef == "" {
		return err
	}

	requests, err := h.partnershipUC.ListPartnerships(c.Request().Context(), accountRef)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// RequestPartnershipByQRCode handles POST /partnerships/requests/qr
func (h *PartnershipHandler) RequestPartnershipByQRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req QRPartnershipRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid QR code input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	request, err := h.partnershipUC.RequestPartnershipByQRCode(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// GeneratePartnerInviteQR handles GET /businesses/:id/partner-qr and returns a PNG
func (h *PartnershipHandler) GeneratePartnerInviteQR(c echo.Context) error {
	businessRef := c.Param("id")
	if managed, ok := middleware.GetBusinessRef(c); !ok || managed != businessRef {
		return response.Forbidden(c, "FORBIDDEN", "Only the business itself can issue invites")
	}

	png, err := h.partnershipUC.GeneratePartnerInviteQR(c.Request().Context(), businessRef)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// callerAccountRef resolves the caller's account ref from the token and the "as" query parameter.
// An empty ref means the response has been written.
func callerAccountRef(c echo.Context) (string, error) {
	role := entity.Role(c.QueryParam("as"))
	if role != "" && !role.IsValid() {
		return "", response.BadRequest(c, "INVALID_ROLE", "Query parameter 'as' must be osb or osd")
	}

	accountRef, ok := middleware.CallerAccountRef(c, role)
	if !ok {
		return "", response.Forbidden(c, "FORBIDDEN", "The token does not identify an account of this kind")
	}

	return accountRef, nil
}

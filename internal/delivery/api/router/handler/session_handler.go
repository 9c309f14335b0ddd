package handler

import (
	"net/http"

	"localdrop/internal/delivery/api/middleware"
	"localdrop/internal/delivery/api/response"
	"localdrop/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SessionHandler describes the caller as the API sees them
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// SessionResponse lists the accounts a token can act as
type SessionResponse struct {
	Roles       entity.Roles `json:"roles"`
	AccountRefs []string     `json:"account_refs"`
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Claims not found in context")
	}

	session := SessionResponse{Roles: claims.AccountRoles(), AccountRefs: []string{}}
	for _, role := range session.Roles {
		if ref, ok := middleware.CallerAccountRef(c, role); ok {
			session.AccountRefs = append(session.AccountRefs, ref)
		}
	}

	return response.Success(c, http.StatusOK, session)
}

// Package middleware contains the API-specific echo middlewares.
package middleware

import (
	"log/slog"
	"strings"

	"localdrop/internal/delivery/api/response"
	deliverycontext "localdrop/internal/delivery/context"
	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keyClaims = "claims"

	bearerPrefix = "Bearer "
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenSvc, logger: params.Logger}
}

// Authenticate validates the bearer access token and stores its claims on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			ctx := c.Request().Context()
			deliverycontext.LoggerFrom(ctx, m.logger).DebugContext(ctx, "Token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		if len(claims.AccountRoles()) == 0 {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token carries no recognised role")
		}

		SetClaims(c, claims)

		// Later log lines of this request name the acting account
		if accountRef, ok := CallerAccountRef(c, ""); ok {
			ctx := deliverycontext.WithAccountRef(c.Request().Context(), accountRef)
			logger := deliverycontext.LoggerFrom(ctx, m.logger).With(slog.String("account_ref", accountRef))
			c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetClaims(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !claims.AccountRoles().Contains(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// SetClaims stores validated claims on the echo context.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(keyClaims, claims)
}

// GetClaims returns the claims stored by Authenticate.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(keyClaims).(*service.Claims)

	return claims, ok && claims != nil
}

// GetUserID returns the delivery agent the token was issued to.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// GetBusinessRef returns the business the token's holder manages.
func GetBusinessRef(c echo.Context) (string, bool) {
	claims, ok := GetClaims(c)
	if !ok || claims.BusinessRef == "" {
		return "", false
	}

	return claims.BusinessRef, true
}

// CallerAccountRef resolves the account the caller acts as. A token holding both roles acts as the
// business unless role asks for the agent side.
func CallerAccountRef(c echo.Context, role entity.Role) (string, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return "", false
	}

	roles := claims.AccountRoles()
	if role == "" {
		role = entity.RoleOSD
		if roles.Contains(entity.RoleOSB) {
			role = entity.RoleOSB
		}
	}

	if !roles.Contains(role) {
		return "", false
	}

	switch role {
	case entity.RoleOSB:
		if businessRef, ok := GetBusinessRef(c); ok {
			return entity.BusinessAccountRef(businessRef), true
		}
	case entity.RoleOSD:
		if userID, ok := GetUserID(c); ok {
			return entity.UserAccountRef(userID), true
		}
	}

	return "", false
}

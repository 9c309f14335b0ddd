package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "localdrop/internal/delivery/context"
	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/service"
	"localdrop/internal/errors"
	mockservice "localdrop/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(svc *mockservice.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			setupMock:  func(*mockservice.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			setupMock:  func(*mockservice.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setupMock: func(svc *mockservice.MockTokenService) {
				svc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token without a known role",
			header: "Bearer admin",
			setupMock: func(svc *mockservice.MockTokenService) {
				svc.EXPECT().ValidateToken("admin").Return(&service.Claims{Roles: []string{"admin"}}, nil).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(svc *mockservice.MockTokenService) {
				svc.EXPECT().ValidateToken("good").Return(&service.Claims{
					Roles:            []string{"osd"},
					RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
				}, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mockservice.NewMockTokenService(t)
			tt.setupMock(svc)

			m := NewAuthMiddleware(AuthMiddlewareParams{TokenSvc: svc, Logger: discardLogger()})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			require.NoError(t, m.Authenticate(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusNoContent {
				got, ok := GetUserID(c)
				require.True(t, ok)
				assert.Equal(t, userID, got)
				assert.Equal(t, "osd::"+userID.String(), deliverycontext.AccountRefFrom(c.Request().Context()))
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{TokenSvc: mockservice.NewMockTokenService(t), Logger: discardLogger()})

	tests := []struct {
		name       string
		claims     *service.Claims
		wantStatus int
	}{
		{name: "no claims", wantStatus: http.StatusForbidden},
		{name: "other role", claims: &service.Claims{Roles: []string{"osd"}}, wantStatus: http.StatusForbidden},
		{name: "required role", claims: &service.Claims{Roles: []string{"osd", "osb"}, BusinessRef: "corner-bakery"}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/businesses", nil), rec)
			if tt.claims != nil {
				SetClaims(c, tt.claims)
			}

			require.NoError(t, m.RequireRole(entity.RoleOSB)(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCallerAccountRef(t *testing.T) {
	userID := uuid.New()
	dual := &service.Claims{
		Roles:            []string{"osd", "osb"},
		BusinessRef:      "corner-bakery",
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}

	tests := []struct {
		name   string
		claims *service.Claims
		role   entity.Role
		want   string
		wantOK bool
	}{
		{name: "dual token defaults to the business", claims: dual, want: "osb::corner-bakery", wantOK: true},
		{name: "dual token as agent", claims: dual, role: entity.RoleOSD, want: entity.UserAccountRef(userID), wantOK: true},
		{name: "agent token", claims: &service.Claims{Roles: []string{"osd"}, RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()}}, want: entity.UserAccountRef(userID), wantOK: true},
		{name: "business role without a business", claims: &service.Claims{Roles: []string{"osb"}}},
		{name: "agent with a malformed subject", claims: &service.Claims{Roles: []string{"osd"}, RegisteredClaims: jwt.RegisteredClaims{Subject: "rider"}}},
		{name: "role the token lacks", claims: &service.Claims{Roles: []string{"osb"}, BusinessRef: "corner-bakery"}, role: entity.RoleOSD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			SetClaims(c, tt.claims)

			got, ok := CallerAccountRef(c, tt.role)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

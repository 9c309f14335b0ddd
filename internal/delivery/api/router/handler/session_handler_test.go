package handler

import (
	"net/http"
	"testing"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_GetSession(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		claims     *service.Claims
		wantStatus int
		wantRoles  entity.Roles
		wantRefs   []string
	}{
		{
			name:       "delivery agent",
			claims:     osdClaims(userID.String()),
			wantStatus: http.StatusOK,
			wantRoles:  entity.Roles{entity.RoleOSD},
			wantRefs:   []string{"osd::" + userID.String()},
		},
		{
			name: "both roles",
			claims: &service.Claims{
				Roles:            []string{"osd", "osb"},
				BusinessRef:      "corner-bakery",
				RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
			},
			wantStatus: http.StatusOK,
			wantRoles:  entity.Roles{entity.RoleOSD, entity.RoleOSB},
			wantRefs:   []string{"osd::" + userID.String(), "osb::corner-bakery"},
		},
		{
			name:       "business without ref",
			claims:     osbClaims(""),
			wantStatus: http.StatusOK,
			wantRoles:  entity.Roles{entity.RoleOSB},
			wantRefs:   []string{},
		},
		{
			name:       "no claims",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/session", claims: tt.claims})

			require.NoError(t, NewSessionHandler().GetSession(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus != http.StatusOK {
				return
			}
			session := decodeData[SessionResponse](t, rec)
			assert.Equal(t, tt.wantRoles, session.Roles)
			assert.Equal(t, tt.wantRefs, session.AccountRefs)
		})
	}
}

package auth

import (
	"testing"
	"time"

	"localdrop/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub":   userID.String(),
		"roles": []string{"osd"},
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
	})

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, []string{"osd"}, claims.Roles)
	assert.Empty(t, claims.BusinessRef)
}

func TestJWTService_ValidateToken_BusinessRef(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub":          uuid.NewString(),
		"roles":        []string{"osb", "unknown"},
		"business_ref": "corner-bakery",
		"exp":          time.Now().Add(time.Minute).Unix(),
	})

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "corner-bakery", claims.BusinessRef)
	assert.Len(t, claims.AccountRoles(), 1)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage",
			token: "invalid.token.string",
		},
		{
			name: "wrong secret",
			token: signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), jwt.MapClaims{
				"sub": uuid.NewString(),
				"exp": time.Now().Add(time.Minute).Unix(),
			}),
		},
		{
			name: "expired",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"sub": uuid.NewString(),
				"exp": time.Now().Add(-time.Minute).Unix(),
			}),
		},
		{
			name: "missing expiry",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"sub": uuid.NewString(),
			}),
		},
		{
			name: "missing subject",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"exp": time.Now().Add(time.Minute).Unix(),
			}),
		},
		{
			name: "other algorithm",
			token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{
				"sub": uuid.NewString(),
				"exp": time.Now().Add(time.Minute).Unix(),
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"localdrop/internal/delivery/api/middleware"
	"localdrop/internal/delivery/api/response"
	"localdrop/internal/delivery/api/validator"
	"localdrop/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testRequest struct {
	method string
	target string
	body   string
	claims *service.Claims
	params map[string]string
}

func newTestContext(t *testing.T, req testRequest) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var body io.Reader
	if req.body != "" {
		body = strings.NewReader(req.body)
	}

	httpReq := httptest.NewRequest(req.method, req.target, body)
	if req.body != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httpReq, rec)

	if len(req.params) > 0 {
		names := make([]string, 0, len(req.params))
		values := make([]string, 0, len(req.params))
		for name, value := range req.params {
			names = append(names, name)
			values = append(values, value)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	if req.claims != nil {
		middleware.SetClaims(c, req.claims)
	}

	return c, rec
}

func osdClaims(userID string) *service.Claims {
	return &service.Claims{
		Roles:            []string{"osd"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
	}
}

func osbClaims(businessRef string) *service.Claims {
	return &service.Claims{
		Roles:       []string{"osb"},
		BusinessRef: businessRef,
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}


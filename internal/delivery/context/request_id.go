// Package context carries request-scoped values between echo handlers, usecases and infra.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request ID, also forwarded on local Pub/Sub pushes.
const HeaderXRequestID = "X-Request-Id"

// echoKeyRequestID stores the request ID on echo.Context for response envelopes.
const echoKeyRequestID = "request_id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	accountRefKey
)

// RequestID returns the request ID set by the middleware, or a fresh one when the handler runs without it.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// RequestIDFrom returns the request ID carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// LoggerFrom returns the request-scoped logger, or fallback outside a request.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// AccountRefFrom returns the authenticated caller's account ref ("osd::<id>" or "osb::<ref>"), or "".
func AccountRefFrom(ctx context.Context) string {
	ref, _ := ctx.Value(accountRefKey).(string)

	return ref
}

// WithAccountRef returns a new context carrying the caller's account ref.
func WithAccountRef(ctx context.Context, accountRef string) context.Context {
	return context.WithValue(ctx, accountRefKey, accountRef)
}

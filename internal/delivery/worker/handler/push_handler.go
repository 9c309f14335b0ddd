// Package handler contains the worker's Pub/Sub push handlers.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"localdrop/config"
	deliverycontext "localdrop/internal/delivery/context"
	"localdrop/internal/domain/constants"
	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/domain/service"
	"localdrop/internal/errors"
	"localdrop/internal/infra/metrics"
	"localdrop/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const bearerPrefix = "Bearer "

// TokenValidator checks a Google-signed OIDC token for an audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers partnership events pushed by Pub/Sub to the target account's devices
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  TokenValidator
	logger         *slog.Logger
	notifier       service.Notifier
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	Notifier       service.Notifier
	TokenValidator TokenValidator `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config.PubSub
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}

	// Push requests are only signed by Google outside local development
	verifyPushAuth := cfg.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop

	validateToken := params.TokenValidator
	if validateToken == nil {
		validateToken = idtoken.Validate
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       cfg.Audience,
		validateToken:  validateToken,
		logger:         params.Logger,
		notifier:       params.Notifier,
	}
}

// HandlePush acknowledges with 2xx when the event is handled or can never be, and answers 503 so
// Pub/Sub redelivers when the failure is transient.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Event()
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to decode partnership event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if event.TargetAccountRef == "" {
		reqLogger.WarnContext(ctx, "[Worker] Event has no target account, dropping", slog.String("event_id", event.EventID))
		metrics.CountNotification(metrics.StageDelivered, metrics.ResultDropped)

		return c.NoContent(http.StatusOK)
	}

	reqLogger.InfoContext(ctx, "[Worker] Processing partnership event",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.String("target_account_ref", event.TargetAccountRef),
	)

	if err := h.notifier.Notify(ctx, event.TargetAccountRef, event.Message()); err != nil {
		retryable := isRetryable(err)
		metrics.CountNotification(metrics.StageDelivered, metrics.ResultError)
		reqLogger.ErrorContext(ctx, "[Worker] Failed to deliver partnership event",
			slog.String("event_id", event.EventID),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)

		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	metrics.CountNotification(metrics.StageDelivered, metrics.ResultSuccess)

	return c.NoContent(http.StatusOK)
}

// isRetryable treats client-class application errors as permanent and everything else as transient.
func isRetryable(err error) bool {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}

// extractRequestID prefers the message attributes, then the event payload, then the X-Request-Id
// header, and generates an ID as a last resort
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.PartnershipEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, bearerPrefix)
	if !found || token == "" {
		return errors.New("invalid authorization header format")
	}

	// Without a configured audience the push endpoint URL is expected
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = (&url.URL{Scheme: scheme, Host: req.Host, Path: req.URL.Path}).String()
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

package notification

import (
	"context"
	"log/slog"

	"localdrop/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the dependencies for selecting a notification service
type Params struct {
	fx.In

	Ctx    context.Context
	App    *firebase.App `optional:"true"`
	Logger *slog.Logger
}

// NewNotificationService returns FCM when a Firebase app is available and the log service otherwise
func NewNotificationService(params Params) (service.NotificationService, error) {
	if params.App == nil {
		params.Logger.Warn("Firebase app unavailable, notifications are only logged")

		return NewLogService(params.Logger), nil
	}

	return NewFirebaseService(params.Ctx, params.App)
}

package notification

import (
	"context"
	"log/slog"

	"localdrop/internal/domain/repository"
	"localdrop/internal/domain/service"
	"localdrop/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceNotifier delivers a message to every active device of an account and retires tokens FCM
// reports as invalid.
type deviceNotifier struct {
	deviceRepo repository.DeviceRepository
	sender     service.NotificationService
	logger     *slog.Logger
}

// NotifierParams holds dependencies for the device notifier, injected by Fx.
type NotifierParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Sender     service.NotificationService
	Logger     *slog.Logger
}

// NewDeviceNotifier creates a notifier backed by the account's registered devices
func NewDeviceNotifier(params NotifierParams) service.Notifier {
	return &deviceNotifier{
		deviceRepo: params.DeviceRepo,
		sender:     params.Sender,
		logger:     params.Logger,
	}
}

// Notify sends msg to the active devices of targetAccountRef. An account without devices is not an error.
func (n *deviceNotifier) Notify(ctx context.Context, targetAccountRef string, msg *service.NotificationMessage) error {
	devices, err := n.deviceRepo.FindActiveDevicesByAccount(ctx, targetAccountRef)
	if err != nil {
		return errors.Wrap(err, "failed to find active devices by account")
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken != "" {
			tokens = append(tokens, device.FCMToken)
		}
	}

	if len(tokens) == 0 {
		n.logger.DebugContext(ctx, "No active devices for account", slog.String("account_ref", targetAccountRef))

		return nil
	}

	var (
		success, failure int
		invalid          []string
	)

	for start := 0; start < len(tokens); start += service.MaxBatchTokens {
		end := min(start+service.MaxBatchTokens, len(tokens))

		ok, failed, invalidTokens, sendErr := n.sender.SendBatchNotification(ctx, tokens[start:end], msg)
		if sendErr != nil {
			return errors.Wrap(sendErr, "failed to send batch notification")
		}

		success += ok
		failure += failed
		invalid = append(invalid, invalidTokens...)
	}

	metrics.CountPushDeliveries(success, failure, len(invalid))

	if len(invalid) > 0 {
		deactivated, deactivateErr := n.deviceRepo.DeactivateDevicesByTokens(ctx, invalid)
		if deactivateErr != nil {
			// Delivery already happened; stale tokens are retried on the next send.
			n.logger.WarnContext(ctx, "Failed to deactivate invalid tokens",
				slog.String("account_ref", targetAccountRef),
				slog.Any("error", deactivateErr),
			)
		} else {
			n.logger.InfoContext(ctx, "Deactivated invalid device tokens",
				slog.String("account_ref", targetAccountRef),
				slog.Int64("count", deactivated),
			)
		}
	}

	n.logger.InfoContext(ctx, "Notification delivered",
		slog.String("account_ref", targetAccountRef),
		slog.Int("success", success),
		slog.Int("failure", failure),
	)

	return nil
}

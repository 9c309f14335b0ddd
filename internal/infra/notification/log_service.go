package notification

import (
	"context"
	"log/slog"

	"localdrop/internal/domain/service"
)

// logService stands in for FCM when Firebase is not configured. Every send succeeds.
type logService struct {
	logger *slog.Logger
}

// NewLogService creates a notification service that only logs what it would send
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendSingleNotification(ctx context.Context, token string, msg *service.NotificationMessage) error {
	s.logger.InfoContext(ctx, "Notification (log only)",
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Int("tokens", 1),
	)

	return nil
}

func (s *logService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.NotificationMessage) (int, int, []string, error) {
	s.logger.InfoContext(ctx, "Notification (log only)",
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Int("tokens", len(tokens)),
	)

	return len(tokens), 0, nil, nil
}

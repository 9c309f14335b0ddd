package service

import (
	"context"
)

// MaxBatchTokens is the largest token batch a single multicast send accepts.
const MaxBatchTokens = 500

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends push notifications to multiple device tokens
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchNotification(ctx context.Context, tokens []string, msg *NotificationMessage) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token string, msg *NotificationMessage) error
}

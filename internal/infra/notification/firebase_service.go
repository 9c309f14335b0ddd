package notification

import (
	"context"

	"localdrop/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, app *firebase.App) (service.NotificationService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token string, msg *service.NotificationMessage) error {
	message := &messaging.Message{
		Token:        token,
		Notification: toNotification(msg),
		Android:      toAndroidConfig(msg),
		Webpush:      toWebpushConfig(msg),
		Data:         msg.Data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification sends push notifications to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.NotificationMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > service.MaxBatchTokens {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxBatchTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: toNotification(msg),
		Android:      toAndroidConfig(msg),
		Webpush:      toWebpushConfig(msg),
		Data:         msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	successCount = response.SuccessCount
	failureCount = response.FailureCount

	// Collect invalid tokens
	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

func toNotification(msg *service.NotificationMessage) *messaging.Notification {
	return &messaging.Notification{
		Title: msg.Title,
		Body:  msg.Body,
	}
}

func toAndroidConfig(msg *service.NotificationMessage) *messaging.AndroidConfig {
	if msg.Icon == "" {
		return nil
	}

	return &messaging.AndroidConfig{
		Notification: &messaging.AndroidNotification{Icon: msg.Icon},
	}
}

func toWebpushConfig(msg *service.NotificationMessage) *messaging.WebpushConfig {
	if msg.Icon == "" {
		return nil
	}

	return &messaging.WebpushConfig{
		Notification: &messaging.WebpushNotification{Icon: msg.Icon},
	}
}

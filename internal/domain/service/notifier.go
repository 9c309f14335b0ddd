package service

import "context"

// NotificationMessage is a push message addressed to one account.
type NotificationMessage struct {
	Title string
	Body  string
	Icon  string
	Data  map[string]string
}

// Notifier delivers a message to every active device of an account.
type Notifier interface {
	Notify(ctx context.Context, targetAccountRef string, msg *NotificationMessage) error
}

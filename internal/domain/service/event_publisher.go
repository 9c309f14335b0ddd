package service

import (
	"context"
	"time"
)

// PartnershipEventType names the transition a PartnershipEvent reports.
type PartnershipEventType string

const (
	// PartnershipEventRequested is emitted after a user asks a business for a partnership.
	PartnershipEventRequested PartnershipEventType = "partnership.requested"
	// PartnershipEventAccepted is emitted after a business accepts a request.
	PartnershipEventAccepted PartnershipEventType = "partnership.accepted"
	// PartnershipEventRejected is emitted after a business rejects a request.
	PartnershipEventRejected PartnershipEventType = "partnership.rejected"
)

// PartnershipEvent is the notification payload produced by a committed partnership transition.
type PartnershipEvent struct {
	RequestID        string               `json:"request_id,omitempty"` // For distributed tracing
	EventID          string               `json:"event_id"`
	Type             PartnershipEventType `json:"type"`
	PartnershipID    string               `json:"partnership_id"`
	TargetAccountRef string               `json:"target_account_ref"`
	Title            string               `json:"title"`
	Body             string               `json:"body"`
	Icon             string               `json:"icon,omitempty"`
	OccurredAt       time.Time            `json:"occurred_at"`
}

// Message converts the event into what the notifier delivers.
func (e *PartnershipEvent) Message() *NotificationMessage {
	return &NotificationMessage{
		Title: e.Title,
		Body:  e.Body,
		Icon:  e.Icon,
		Data: map[string]string{
			"type":           string(e.Type),
			"partnership_id": e.PartnershipID,
		},
	}
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPartnershipEvent publishes a partnership event for async delivery
	PublishPartnershipEvent(ctx context.Context, event *PartnershipEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// EventDispatcher hands events off without blocking the caller. Delivery failures are logged and
// never reach the caller.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event *PartnershipEvent)
}

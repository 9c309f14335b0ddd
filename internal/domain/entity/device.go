package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountDevice represents a device registered for push notifications on behalf of an account.
type AccountDevice struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the device.
	AccountRef string    `json:"account_ref"` // Owning account, "osb::<business>" or "osd::<user>".
	FCMToken   string    `json:"fcm_token"`   // Firebase Cloud Messaging token for push notifications.
	DeviceID   string    `json:"device_id"`   // Unique device identifier from the client.
	Platform   string    `json:"platform"`    // Device platform (ios, android, web).
	IsActive   bool      `json:"is_active"`   // Indicates if this device is active for notifications.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when this device was registered.
	UpdatedAt  time.Time `json:"updated_at"`  // Timestamp of the last modification.
}

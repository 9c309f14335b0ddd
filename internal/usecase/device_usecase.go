package usecase

import (
	"context"

	"localdrop/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of a known one
	RegisterDevice(ctx context.Context, accountRef string, deviceInfo *DeviceInfo) (*entity.AccountDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, accountRef string, deviceID uuid.UUID, fcmToken string) error

	// GetAccountDevices retrieves all active devices for an account
	GetAccountDevices(ctx context.Context, accountRef string) ([]*entity.AccountDevice, error)

	// DeactivateDevice removes a device so it no longer receives notifications
	DeactivateDevice(ctx context.Context, accountRef string, deviceID uuid.UUID) error
}

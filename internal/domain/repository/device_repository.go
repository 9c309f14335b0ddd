package repository

import (
	"context"

	"localdrop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for an account.
	CreateDevice(ctx context.Context, device *entity.AccountDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.AccountDevice, error)

	// FindDevicesByAccount retrieves all devices for an account (including inactive).
	FindDevicesByAccount(ctx context.Context, accountRef string) ([]*entity.AccountDevice, error)

	// FindActiveDevicesByAccount retrieves all active devices for an account.
	FindActiveDevicesByAccount(ctx context.Context, accountRef string) ([]*entity.AccountDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevicesByTokens marks every device holding one of the tokens inactive and returns how many changed.
	DeactivateDevicesByTokens(ctx context.Context, fcmTokens []string) (int64, error)

	// DeleteDevice removes a device by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}

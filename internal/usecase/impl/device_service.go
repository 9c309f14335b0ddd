package impl

import (
	"context"

	"localdrop/internal/domain/entity"
	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/domain/repository"
	"localdrop/internal/domain/service"
	"localdrop/internal/errors"
	"localdrop/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrDeviceUnauthorized is returned when an account tries to access a device it doesn't own
	ErrDeviceUnauthorized = domainerrors.ErrForbidden.WithDetails("device belongs to another account")
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	clock      service.Clock
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, clock service.Clock) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		clock:      clock,
	}
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, accountRef string, deviceInfo *usecase.DeviceInfo) (*entity.AccountDevice, error) {
	if deviceInfo == nil || deviceInfo.FCMToken == "" || deviceInfo.DeviceID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "fcm token and device id are required")
	}

	// Check if device already exists for this account
	devices, err := s.deviceRepo.FindDevicesByAccount(ctx, accountRef)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by account")
	}

	// Look for existing device with same device_id
	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updatedDevice, nil
	}

	now := s.clock.Now()
	device := &entity.AccountDevice{
		ID:         uuid.New(),
		AccountRef: accountRef,
		FCMToken:   deviceInfo.FCMToken,
		DeviceID:   deviceInfo.DeviceID,
		Platform:   deviceInfo.Platform,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "device token already registered")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, accountRef string, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, accountRef, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetAccountDevices retrieves all active devices for an account
func (s *deviceService) GetAccountDevices(ctx context.Context, accountRef string) ([]*entity.AccountDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByAccount(ctx, accountRef)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by account")
	}

	return devices, nil
}

// DeactivateDevice removes a device so it no longer receives notifications
func (s *deviceService) DeactivateDevice(ctx context.Context, accountRef string, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, accountRef, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// ownedDevice fetches a device and verifies it belongs to accountRef
func (s *deviceService) ownedDevice(ctx context.Context, accountRef string, deviceID uuid.UUID) (*entity.AccountDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "failed to find device")
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.AccountRef != accountRef {
		return nil, errors.WithStack(ErrDeviceUnauthorized)
	}

	return device, nil
}

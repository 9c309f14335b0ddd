package postgres

import (
	"context"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/repository"
	"localdrop/internal/errors"
	"localdrop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device for an account.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.AccountDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return storageError(err, "failed to create device")
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.AccountDevice, error) {
	var deviceM model.AccountDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, storageError(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByAccount retrieves all devices for an account (including inactive, excluding soft-deleted).
func (repo *deviceRepository) FindDevicesByAccount(ctx context.Context, accountRef string) ([]*entity.AccountDevice, error) {
	return repo.findByAccount(repo.db.WithContext(ctx).Where("account_ref = ?", accountRef))
}

// FindActiveDevicesByAccount retrieves all active devices for an account (excluding soft-deleted).
func (repo *deviceRepository) FindActiveDevicesByAccount(ctx context.Context, accountRef string) ([]*entity.AccountDevice, error) {
	return repo.findByAccount(repo.db.WithContext(ctx).Where("account_ref = ? AND is_active = ?", accountRef, true))
}

func (repo *deviceRepository) findByAccount(query *gorm.DB) ([]*entity.AccountDevice, error) {
	var deviceModels []*model.AccountDeviceModel

	if err := query.
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, storageError(err, "failed to find devices by account")
	}

	devices := make([]*entity.AccountDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"fcm_token": fcmToken,
			"is_active": true,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return storageError(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevicesByTokens marks every active device holding one of the tokens inactive.
func (repo *deviceRepository) DeactivateDevicesByTokens(ctx context.Context, fcmTokens []string) (int64, error) {
	if len(fcmTokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AccountDeviceModel{}).
		Where("fcm_token IN ? AND is_active = ?", fcmTokens, true).
		Update("is_active", false)

	if result.Error != nil {
		return 0, storageError(result.Error, "failed to deactivate devices by tokens")
	}

	return result.RowsAffected, nil
}

// DeleteDevice removes a device by its ID (soft delete).
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AccountDeviceModel{})

	if result.Error != nil {
		return storageError(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM AccountDeviceModel to a domain AccountDevice entity.
func toDeviceDomain(data *model.AccountDeviceModel) *entity.AccountDevice {
	if data == nil {
		return nil
	}

	return &entity.AccountDevice{
		ID:         data.ID,
		AccountRef: data.AccountRef,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain AccountDevice entity to a GORM AccountDeviceModel.
func fromDeviceDomain(data *entity.AccountDevice) *model.AccountDeviceModel {
	if data == nil {
		return nil
	}

	return &model.AccountDeviceModel{
		ID:         data.ID,
		AccountRef: data.AccountRef,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

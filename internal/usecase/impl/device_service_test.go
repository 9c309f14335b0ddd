package impl

import (
	"context"
	"testing"

	"localdrop/internal/domain/entity"
	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/domain/repository"
	mockRepo "localdrop/internal/mocks/repository"
	"localdrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo, newTestClock())

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountRef := entity.UserAccountRef(uuid.New())
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByAccount(ctx, accountRef).
		Return([]*entity.AccountDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.AccountDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, accountRef, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, accountRef, device.AccountRef)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
	assert.Equal(t, testNow, device.CreatedAt)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountRef := entity.BusinessAccountRef("corner-bakery")
	deviceID := uuid.New()
	existingDevice := &entity.AccountDevice{
		ID:         deviceID,
		AccountRef: accountRef,
		FCMToken:   "old-token",
		DeviceID:   "device-123",
		Platform:   "android",
		IsActive:   true,
	}

	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	}

	updatedDevice := *existingDevice
	updatedDevice.FCMToken = "new-fcm-token"

	fx.deviceRepo.EXPECT().
		FindDevicesByAccount(ctx, accountRef).
		Return([]*entity.AccountDevice{existingDevice}, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, accountRef, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_MissingFields(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), "osb::corner-bakery", &usecase.DeviceInfo{DeviceID: "device-123"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_DuplicateToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountRef := "osb::corner-bakery"

	fx.deviceRepo.EXPECT().
		FindDevicesByAccount(ctx, accountRef).
		Return(nil, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.AccountDevice")).
		Return(repository.ErrDuplicateDevice)

	_, err := fx.service.RegisterDevice(ctx, accountRef, &usecase.DeviceInfo{FCMToken: "token", DeviceID: "device-123"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestDeviceService_UpdateFCMToken_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountRef := entity.UserAccountRef(uuid.New())
	deviceID := uuid.New()
	newToken := "new-fcm-token"

	existingDevice := &entity.AccountDevice{
		ID:         deviceID,
		AccountRef: accountRef,
		FCMToken:   "old-token",
		DeviceID:   "device-123",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(existingDevice, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, newToken).
		Return(nil)

	err := fx.service.UpdateFCMToken(ctx, accountRef, deviceID, newToken)
	require.NoError(t, err)
}

func TestDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.UpdateFCMToken(ctx, entity.UserAccountRef(uuid.New()), deviceID, "new-fcm-token")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_UpdateFCMToken_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	existingDevice := &entity.AccountDevice{
		ID:         deviceID,
		AccountRef: entity.UserAccountRef(uuid.New()),
		FCMToken:   "old-token",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(existingDevice, nil)

	err := fx.service.UpdateFCMToken(ctx, entity.UserAccountRef(uuid.New()), deviceID, "new-fcm-token")
	assert.ErrorIs(t, err, ErrDeviceUnauthorized)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceService_GetAccountDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountRef := "osb::corner-bakery"
	expectedDevices := []*entity.AccountDevice{
		{ID: uuid.New(), AccountRef: accountRef, IsActive: true},
		{ID: uuid.New(), AccountRef: accountRef, IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByAccount(ctx, accountRef).
		Return(expectedDevices, nil)

	devices, err := fx.service.GetAccountDevices(ctx, accountRef)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountRef := "osb::corner-bakery"
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.AccountDevice{ID: deviceID, AccountRef: accountRef, IsActive: true}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	err := fx.service.DeactivateDevice(ctx, accountRef, deviceID)
	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.AccountDevice{ID: deviceID, AccountRef: "osb::cafe", IsActive: true}, nil)

	err := fx.service.DeactivateDevice(ctx, "osb::corner-bakery", deviceID)
	assert.ErrorIs(t, err, ErrDeviceUnauthorized)
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountRef := "osb::corner-bakery"
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	expectedErr := errors.New("database error")
	fx.deviceRepo.EXPECT().
		FindDevicesByAccount(ctx, accountRef).
		Return(nil, expectedErr)

	device, err := fx.service.RegisterDevice(ctx, accountRef, deviceInfo)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to find devices by account")
}

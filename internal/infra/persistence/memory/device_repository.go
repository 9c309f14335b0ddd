package memory

import (
	"context"
	"slices"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/repository"

	"github.com/google/uuid"
)

type deviceRepository struct {
	run runner
}

// NewDeviceRepository returns a device repository backed by the store.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return &deviceRepository{run: store.locked}
}

func (repo *deviceRepository) CreateDevice(_ context.Context, device *entity.AccountDevice) error {
	return repo.run(func(s *state) error {
		for _, existing := range s.devices {
			if existing.ID == device.ID || existing.FCMToken == device.FCMToken {
				return repository.ErrDuplicateDevice
			}
		}

		stored := *device
		s.devices[device.ID] = &stored

		return nil
	})
}

func (repo *deviceRepository) FindDeviceByID(_ context.Context, id uuid.UUID) (*entity.AccountDevice, error) {
	var found *entity.AccountDevice
	err := repo.run(func(s *state) error {
		device, ok := s.devices[id]
		if !ok {
			return repository.ErrDeviceNotFound
		}
		copied := *device
		found = &copied

		return nil
	})

	return found, err
}

func (repo *deviceRepository) FindDevicesByAccount(_ context.Context, accountRef string) ([]*entity.AccountDevice, error) {
	return repo.findByAccount(accountRef, false)
}

func (repo *deviceRepository) FindActiveDevicesByAccount(_ context.Context, accountRef string) ([]*entity.AccountDevice, error) {
	return repo.findByAccount(accountRef, true)
}

func (repo *deviceRepository) findByAccount(accountRef string, activeOnly bool) ([]*entity.AccountDevice, error) {
	var found []*entity.AccountDevice
	err := repo.run(func(s *state) error {
		found = make([]*entity.AccountDevice, 0)
		for _, device := range s.devices {
			if device.AccountRef != accountRef || (activeOnly && !device.IsActive) {
				continue
			}
			copied := *device
			found = append(found, &copied)
		}

		return nil
	})

	// Newest first, matching the relational store.
	slices.SortFunc(found, func(a, b *entity.AccountDevice) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return found, err
}

func (repo *deviceRepository) UpdateFCMToken(_ context.Context, deviceID uuid.UUID, fcmToken string) error {
	return repo.run(func(s *state) error {
		device, ok := s.devices[deviceID]
		if !ok {
			return repository.ErrDeviceNotFound
		}

		for _, other := range s.devices {
			if other.ID != deviceID && other.FCMToken == fcmToken {
				return repository.ErrDuplicateDevice
			}
		}

		device.FCMToken = fcmToken
		device.IsActive = true
		device.UpdatedAt = time.Now().UTC()

		return nil
	})
}

func (repo *deviceRepository) DeactivateDevicesByTokens(_ context.Context, fcmTokens []string) (int64, error) {
	var changed int64
	err := repo.run(func(s *state) error {
		for _, device := range s.devices {
			if device.IsActive && slices.Contains(fcmTokens, device.FCMToken) {
				device.IsActive = false
				device.UpdatedAt = time.Now().UTC()
				changed++
			}
		}

		return nil
	})

	return changed, err
}

func (repo *deviceRepository) DeleteDevice(_ context.Context, id uuid.UUID) error {
	return repo.run(func(s *state) error {
		if _, ok := s.devices[id]; !ok {
			return repository.ErrDeviceNotFound
		}
		delete(s.devices, id)

		return nil
	})
}

package firestore

import (
	"context"
	"slices"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// maxInQueryValues is the Firestore limit on the value list of an "in" filter.
const maxInQueryValues = 30

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	s *session
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(client *firestore.Client) repository.DeviceRepository {
	return &deviceRepository{s: newSession(client)}
}

func (repo *deviceRepository) ref(id uuid.UUID) *firestore.DocumentRef {
	return repo.s.collection(devicesCollection).Doc(id.String())
}

// CreateDevice persists a new device. The ID and the FCM token must both be unused.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.AccountDevice) error {
	stampCreated(&device.CreatedAt, &device.UpdatedAt)
	doc := fromDeviceDomain(device)

	return repo.s.atomic(ctx, "failed to create device", func(tx *session) error {
		ref := repo.ref(device.ID)
		_, found, err := getDoc[deviceDoc](ctx, tx, ref)
		if err != nil {
			return err
		}
		if found {
			return repository.ErrDuplicateDevice
		}

		holders, err := repo.tokenHolders(ctx, tx, device.FCMToken)
		if err != nil {
			return err
		}
		if len(holders) > 0 {
			return repository.ErrDuplicateDevice
		}

		return putDoc(tx, ref, doc)
	})
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.AccountDevice, error) {
	doc, found, err := getDoc[deviceDoc](ctx, repo.s, repo.ref(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrDeviceNotFound
	}

	return toDeviceDomain(doc), nil
}

// FindDevicesByAccount retrieves all devices for an account (including inactive).
func (repo *deviceRepository) FindDevicesByAccount(ctx context.Context, accountRef string) ([]*entity.AccountDevice, error) {
	return repo.findByAccount(ctx, repo.s.collection(devicesCollection).Where("account_ref", "==", accountRef))
}

// FindActiveDevicesByAccount retrieves all active devices for an account.
func (repo *deviceRepository) FindActiveDevicesByAccount(ctx context.Context, accountRef string) ([]*entity.AccountDevice, error) {
	return repo.findByAccount(ctx, repo.s.collection(devicesCollection).
		Where("account_ref", "==", accountRef).
		Where("is_active", "==", true))
}

func (repo *deviceRepository) findByAccount(ctx context.Context, query firestore.Query) ([]*entity.AccountDevice, error) {
	snaps, err := repo.s.query(ctx, query, "failed to find devices by account")
	if err != nil {
		return nil, err
	}

	docs, err := decodeAll[deviceDoc](snaps)
	if err != nil {
		return nil, err
	}

	devices := make([]*entity.AccountDevice, 0, len(docs))
	for _, doc := range docs {
		devices = append(devices, toDeviceDomain(doc))
	}
	slices.SortFunc(devices, func(a, b *entity.AccountDevice) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return devices, nil
}

// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	return repo.s.atomic(ctx, "failed to update FCM token", func(tx *session) error {
		ref := repo.ref(deviceID)
		doc, found, err := getDoc[deviceDoc](ctx, tx, ref)
		if err != nil {
			return err
		}
		if !found {
			return repository.ErrDeviceNotFound
		}

		holders, err := repo.tokenHolders(ctx, tx, fcmToken)
		if err != nil {
			return err
		}
		for _, holder := range holders {
			if holder.Ref.ID != ref.ID {
				return repository.ErrDuplicateDevice
			}
		}

		doc.FCMToken = fcmToken
		doc.IsActive = true
		doc.UpdatedAt = time.Now().UTC()

		return putDoc(tx, ref, doc)
	})
}

// DeactivateDevicesByTokens marks every active device holding one of the tokens inactive. Tokens are
// processed in chunks that fit one "in" filter, each chunk in its own transaction.
func (repo *deviceRepository) DeactivateDevicesByTokens(ctx context.Context, fcmTokens []string) (int64, error) {
	var total int64
	for chunk := range slices.Chunk(fcmTokens, maxInQueryValues) {
		var changed int64
		err := repo.s.atomic(ctx, "failed to deactivate devices by tokens", func(tx *session) error {
			changed = 0
			query := tx.collection(devicesCollection).
				Where("fcm_token", "in", chunk).
				Where("is_active", "==", true)
			snaps, err := tx.query(ctx, query, "failed to find devices by tokens")
			if err != nil {
				return err
			}

			docs, err := decodeAll[deviceDoc](snaps)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			for i, doc := range docs {
				doc.IsActive = false
				doc.UpdatedAt = now
				if err := putDoc(tx, snaps[i].Ref, doc); err != nil {
					return err
				}
				changed++
			}

			return nil
		})
		if err != nil {
			return total, err
		}
		total += changed
	}

	return total, nil
}

// DeleteDevice removes a device by its ID.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	if _, err := repo.ref(id).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrDeviceNotFound
		}

		return storageError(err, "failed to delete device")
	}

	return nil
}

func (repo *deviceRepository) tokenHolders(ctx context.Context, tx *session, fcmToken string) ([]*firestore.DocumentSnapshot, error) {
	query := tx.collection(devicesCollection).Where("fcm_token", "==", fcmToken).Limit(2)

	return tx.query(ctx, query, "failed to look up FCM token")
}

//go:build integration

package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/repository"
	"localdrop/internal/errors"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	testUser     = "localdrop"
	testPassword = "localdrop"
)

var (
	containerOnce sync.Once
	containerDSN  string
	containerErr  error
)

func postgresDSN(t *testing.T) string {
	t.Helper()

	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		dsn := func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", testUser, testPassword, host, port.Port())
		}

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     testUser,
					"POSTGRES_PASSWORD": testPassword,
					"POSTGRES_DB":       "postgres",
				},
				Cmd:        []string{"postgres", "-c", "fsync=off"},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", dsn).WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		if err != nil {
			containerErr = err

			return
		}

		host, err := container.Host(ctx)
		if err != nil {
			containerErr = err

			return
		}
		port, err := container.MappedPort(ctx, "5432/tcp")
		if err != nil {
			containerErr = err

			return
		}

		containerDSN = dsn(host, port)
	})
	require.NoError(t, containerErr, "failed to start PostgreSQL container")

	return containerDSN
}

// openTestDB connects to a fresh schema so tests do not see each other's rows.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormConfig := &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), nil),
	}

	admin, err := gorm.Open(gormpg.Open(postgresDSN(t)), gormConfig)
	require.NoError(t, err)

	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	require.NoError(t, admin.Exec("CREATE SCHEMA "+schema).Error)
	t.Cleanup(func() {
		admin.Exec("DROP SCHEMA " + schema + " CASCADE")
	})

	db, err := gorm.Open(gormpg.Open(postgresDSN(t)+"&search_path="+schema), gormConfig)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func newTestBusiness(id string, lat, lng float64) *entity.Business {
	return &entity.Business{
		ID:          id,
		DisplayName: id,
		Location:    entity.BusinessLocation{GeoPoint: entity.GeoPoint{Latitude: lat, Longitude: lng}, PostalCode: "100"},
		OpeningTime: entity.OperatingTime{Hour: 22},
		ClosingTime: entity.OperatingTime{Hour: 2},
		OpeningDays: []time.Weekday{time.Friday, time.Saturday},
	}
}

func TestBusinessRepository_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewBusinessRepository(db)

	require.NoError(t, repo.CreateBusiness(ctx, newTestBusiness("west", 0, -179.9)))
	require.NoError(t, repo.CreateBusiness(ctx, newTestBusiness("east", 0, 179.9)))
	require.NoError(t, repo.CreateBusiness(ctx, newTestBusiness("bakery", 25.03, 121.56)))

	err := repo.CreateBusiness(ctx, newTestBusiness("bakery", 1, 1))
	assert.ErrorIs(t, err, repository.ErrDuplicateBusiness)

	found, err := repo.FindBusinessByID(ctx, "bakery")
	require.NoError(t, err)
	assert.Equal(t, entity.OperatingTime{Hour: 22}, found.OpeningTime)
	assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, found.OpeningDays)
	assert.Empty(t, found.Partners)

	wrapped, err := repo.FindBusinessesWithinBounds(ctx, entity.BoundingBox{
		SouthwestCorner: entity.GeoPoint{Latitude: -1, Longitude: 179},
		NortheastCorner: entity.GeoPoint{Latitude: 1, Longitude: -179},
	})
	require.NoError(t, err)
	require.Len(t, wrapped, 2)
	assert.Equal(t, "east", wrapped[0].ID)
	assert.Equal(t, "west", wrapped[1].ID)

	first := entity.BusinessPartner{UserID: uuid.New(), Status: entity.PartnershipAccepted}
	second := entity.BusinessPartner{UserID: uuid.New(), Status: entity.PartnershipAccepted}
	require.NoError(t, repo.UpsertPartner(ctx, "bakery", first))
	require.NoError(t, repo.UpsertPartner(ctx, "bakery", second))
	require.NoError(t, repo.UpsertPartner(ctx, "bakery", first))

	closed := false
	require.NoError(t, repo.UpdateBusinessProfile(ctx, "bakery", &entity.BusinessProfileUpdate{IsOpen: &closed}))

	found, err = repo.FindBusinessByID(ctx, "bakery")
	require.NoError(t, err)
	assert.Equal(t, []entity.BusinessPartner{first, second}, found.Partners)
	assert.False(t, found.OpenFlag())

	err = repo.UpsertPartner(ctx, "missing", first)
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)
}

func TestUserRepository_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := &entity.User{ID: uuid.New(), Email: "dana@example.com", DisplayName: "Dana"}
	require.NoError(t, repo.CreateUser(ctx, user))

	err := repo.CreateUser(ctx, &entity.User{ID: uuid.New(), Email: "dana@example.com", DisplayName: "Other"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	pending := entity.UserPartnerBusiness{BusinessRefID: "bakery", Status: entity.PartnershipPending}
	require.NoError(t, repo.AppendPartnerBusiness(ctx, user.ID, pending))
	assert.ErrorIs(t, repo.AppendPartnerBusiness(ctx, user.ID, pending), repository.ErrActivePartnerEntry)

	require.NoError(t, repo.RemovePartnerBusiness(ctx, user.ID, "bakery"))
	found, err := repo.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, found.PartnerBusinesses)

	_, err = repo.FindUserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestPartnershipRequestRepository_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewPartnershipRequestRepository(db)
	now := time.Date(2024, 3, 6, 23, 30, 0, 0, time.UTC)
	userID := uuid.New()

	req := &entity.PartnershipRequest{
		ID:               uuid.New(),
		AccountKey:       []string{entity.BusinessAccountRef("bakery"), entity.UserAccountRef(userID)},
		BusinessSnapshot: entity.BusinessSnapshot{ID: "bakery", DisplayName: "Bakery"},
		UserSnapshot:     entity.UserSnapshot{ID: userID, DisplayName: "Dana"},
		Status:           entity.PartnershipPending,
		Type:             entity.PartnershipTypeDelivery,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, repo.CreateRequest(ctx, req))

	require.NoError(t, repo.UpdateRequestStatus(ctx, req.ID, entity.PartnershipPending, entity.PartnershipAccepted, now.Add(time.Minute)))
	err := repo.UpdateRequestStatus(ctx, req.ID, entity.PartnershipPending, entity.PartnershipRejected, now.Add(2*time.Minute))
	assert.ErrorIs(t, err, repository.ErrStatusMismatch)

	err = repo.UpdateRequestStatus(ctx, uuid.New(), entity.PartnershipPending, entity.PartnershipRejected, now)
	assert.ErrorIs(t, err, repository.ErrPartnershipRequestNotFound)

	byBusiness, err := repo.FindRequestsByAccountRef(ctx, entity.BusinessAccountRef("bakery"))
	require.NoError(t, err)
	require.Len(t, byBusiness, 1)
	assert.Equal(t, entity.PartnershipAccepted, byBusiness[0].Status)

	byUser, err := repo.FindRequestsByAccountRef(ctx, entity.UserAccountRef(userID))
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	changed, err := repo.FindRequestsUpdatedSince(ctx, now.Add(time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, changed, 1)
	assert.True(t, changed[0].UpdatedAt.Equal(now.Add(time.Minute)))

	next := *req
	next.ID = uuid.New()
	next.Status = entity.PartnershipPending
	next.CreatedAt = now.Add(5 * time.Minute)
	next.UpdatedAt = now.Add(5 * time.Minute)
	require.NoError(t, repo.CreateRequest(ctx, &next))

	latest, err := repo.FindLatestRequestForPair(ctx, userID, "bakery")
	require.NoError(t, err)
	assert.Equal(t, next.ID, latest.ID)
	assert.Equal(t, entity.PartnershipPending, latest.Status)

	_, err = repo.FindLatestRequestForPair(ctx, userID, "cafe")
	assert.ErrorIs(t, err, repository.ErrPartnershipRequestNotFound)
}

func TestTransactionManager_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewBusinessRepository().CreateBusiness(ctx, newTestBusiness("bakery", 1, 1)); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewBusinessRepository(db).FindBusinessByID(ctx, "bakery")
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)

	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewBusinessRepository().CreateBusiness(ctx, newTestBusiness("bakery", 1, 1))
	})
	require.NoError(t, err)

	_, err = NewBusinessRepository(db).FindBusinessByID(ctx, "bakery")
	assert.NoError(t, err)
}

func TestDeviceRepository_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewDeviceRepository(db)

	device := &entity.AccountDevice{
		ID:         uuid.New(),
		AccountRef: entity.BusinessAccountRef("bakery"),
		FCMToken:   "token-1",
		DeviceID:   "device-1",
		Platform:   "android",
		IsActive:   true,
	}
	require.NoError(t, repo.CreateDevice(ctx, device))

	duplicate := *device
	duplicate.ID = uuid.New()
	assert.ErrorIs(t, repo.CreateDevice(ctx, &duplicate), repository.ErrDuplicateDevice)

	changed, err := repo.DeactivateDevicesByTokens(ctx, []string{"token-1", "unknown"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	active, err := repo.FindActiveDevicesByAccount(ctx, device.AccountRef)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, repo.DeleteDevice(ctx, device.ID))
	assert.ErrorIs(t, repo.DeleteDevice(ctx, device.ID), repository.ErrDeviceNotFound)
}

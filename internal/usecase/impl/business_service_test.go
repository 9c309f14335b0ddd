package impl

import (
	"context"
	"testing"
	"time"

	"localdrop/internal/domain/entity"
	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/infra/persistence/memory"
	"localdrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBusinessService(t *testing.T, launchPostalCodes ...string) (usecase.BusinessUsecase, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	svc := NewBusinessService(BusinessServiceParams{
		BusinessRepo: memory.NewBusinessRepository(store),
		Clock:        newTestClock(),
		Config:       newTestConfig(8000, launchPostalCodes...),
		Logger:       newDiscardLogger(),
	})

	return svc, store
}

func validBusinessInput(id string) *usecase.CreateBusinessInput {
	return &usecase.CreateBusinessInput{
		ID:           id,
		DisplayName:  "Corner Bakery",
		BusinessType: "bakery",
		Location: entity.BusinessLocation{
			GeoPoint:   entity.GeoPoint{Latitude: 25.03, Longitude: 121.56},
			PostalCode: "100",
		},
		OpeningTime: entity.OperatingTime{Hour: 8, ZoneOffsetMinutes: 480},
		ClosingTime: entity.OperatingTime{Hour: 20, ZoneOffsetMinutes: 480},
		OpeningDays: []time.Weekday{time.Monday, time.Tuesday},
	}
}

func TestBusinessService_CreateAndGet(t *testing.T) {
	svc, _ := createTestBusinessService(t, "100", "106")
	ctx := context.Background()

	created, err := svc.CreateBusiness(ctx, validBusinessInput("corner-bakery"))
	require.NoError(t, err)
	assert.Equal(t, "corner-bakery", created.ID)
	assert.Equal(t, testNow, created.CreatedAt)
	assert.NotNil(t, created.Partners)

	view, err := svc.GetBusiness(ctx, "corner-bakery")
	require.NoError(t, err)
	assert.Equal(t, "Corner Bakery", view.DisplayName)
	assert.True(t, view.IsOpen)
	assert.True(t, view.PassiveOpenEnabled)
	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday}, view.OpeningDays)

	_, err = svc.CreateBusiness(ctx, validBusinessInput("corner-bakery"))
	assert.ErrorIs(t, err, domainerrors.ErrBusinessAlreadyExists)
}

func TestBusinessService_CreateValidation(t *testing.T) {
	svc, _ := createTestBusinessService(t, "100")
	negative := -1.0

	tests := []struct {
		name   string
		mutate func(*usecase.CreateBusinessInput)
		want   *domainerrors.BaseError
	}{
		{
			name:   "empty id",
			mutate: func(in *usecase.CreateBusinessInput) { in.ID = "  " },
			want:   domainerrors.ErrValidationFailed,
		},
		{
			name:   "id with slash",
			mutate: func(in *usecase.CreateBusinessInput) { in.ID = "a/b" },
			want:   domainerrors.ErrValidationFailed,
		},
		{
			name:   "invalid coordinates",
			mutate: func(in *usecase.CreateBusinessInput) { in.Location.GeoPoint.Latitude = 95 },
			want:   domainerrors.ErrInvalidCoordinates,
		},
		{
			name:   "outside launch region",
			mutate: func(in *usecase.CreateBusinessInput) { in.Location.PostalCode = "999" },
			want:   domainerrors.ErrOutsideLaunchRegion,
		},
		{
			name:   "invalid closing time",
			mutate: func(in *usecase.CreateBusinessInput) { in.ClosingTime.Minute = 60 },
			want:   domainerrors.ErrValidationFailed,
		},
		{
			name:   "negative range",
			mutate: func(in *usecase.CreateBusinessInput) { in.DeliveryRangeMeters = &negative },
			want:   domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validBusinessInput("corner-bakery")
			tt.mutate(input)

			_, err := svc.CreateBusiness(context.Background(), input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBusinessService_UpdateProfileKeepsPartners(t *testing.T) {
	svc, store := createTestBusinessService(t)
	ctx := context.Background()

	_, err := svc.CreateBusiness(ctx, validBusinessInput("corner-bakery"))
	require.NoError(t, err)

	partner := entity.BusinessPartner{UserID: uuid.New(), Status: entity.PartnershipAccepted}
	businessRepo := memory.NewBusinessRepository(store)
	require.NoError(t, businessRepo.UpsertPartner(ctx, "corner-bakery", partner))

	closed := false
	name := "Corner Bakery & Cafe"
	view, err := svc.UpdateBusinessProfile(ctx, "corner-bakery", &entity.BusinessProfileUpdate{
		DisplayName: &name,
		IsOpen:      &closed,
	})
	require.NoError(t, err)
	assert.Equal(t, name, view.DisplayName)
	assert.False(t, view.IsOpen)

	stored, err := businessRepo.FindBusinessByID(ctx, "corner-bakery")
	require.NoError(t, err)
	assert.Equal(t, []entity.BusinessPartner{partner}, stored.Partners)
}

func TestBusinessService_UpdateProfileErrors(t *testing.T) {
	svc, _ := createTestBusinessService(t)
	ctx := context.Background()

	_, err := svc.UpdateBusinessProfile(ctx, "corner-bakery", &entity.BusinessProfileUpdate{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	name := "Ghost Kitchen"
	_, err = svc.UpdateBusinessProfile(ctx, "missing", &entity.BusinessProfileUpdate{DisplayName: &name})
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)

	_, err = svc.GetBusiness(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

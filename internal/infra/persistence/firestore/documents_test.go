package firestore

import (
	"context"
	"net/http"
	"testing"
	"time"

	"localdrop/internal/domain/entity"
	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/errors"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestBusinessDocumentMapping(t *testing.T) {
	isOpen := false
	rangeMeters := 1500.0
	business := &entity.Business{
		ID:           "corner-bakery",
		DisplayName:  "Corner Bakery",
		BusinessType: "bakery",
		Location: entity.BusinessLocation{
			GeoPoint:   entity.GeoPoint{Latitude: 25.03, Longitude: 121.56},
			PostalCode: "100",
		},
		IsOpen:              &isOpen,
		DeliveryRangeMeters: &rangeMeters,
		OpeningTime:         entity.OperatingTime{Hour: 22, ZoneOffsetMinutes: 480},
		ClosingTime:         entity.OperatingTime{Hour: 2, Minute: 30, ZoneOffsetMinutes: 480},
		OpeningDays:         []time.Weekday{time.Friday, time.Saturday},
		Partners: []entity.BusinessPartner{
			{UserID: uuid.New(), Status: entity.PartnershipAccepted},
			{UserID: uuid.New(), Status: entity.PartnershipAccepted},
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	doc := fromBusinessDomain(business)
	assert.InDelta(t, 25.03, doc.GeoPoint.GetLatitude(), 1e-9)
	assert.Equal(t, []int{5, 6}, doc.OpeningDays)
	assert.Equal(t, business.Partners[1].UserID.String(), doc.Partners[1].UserID)

	if diff := cmp.Diff(business, toBusinessDomain(doc)); diff != "" {
		t.Errorf("business changed through its document (-want +got):\n%s", diff)
	}
}

func TestToBusinessDomain_Defaults(t *testing.T) {
	business := toBusinessDomain(&businessDoc{ID: "bare"})

	assert.Equal(t, entity.GeoPoint{}, business.Location.GeoPoint)
	assert.NotNil(t, business.OpeningDays)
	assert.NotNil(t, business.Partners)
	assert.True(t, business.OpenFlag())
	assert.True(t, business.PassiveOpen())
}

func TestRequestDocumentMapping(t *testing.T) {
	userID := uuid.New()
	request := &entity.PartnershipRequest{
		ID:               uuid.New(),
		AccountKey:       []string{entity.BusinessAccountRef("corner-bakery"), entity.UserAccountRef(userID)},
		BusinessSnapshot: entity.BusinessSnapshot{ID: "corner-bakery", DisplayName: "Corner Bakery", PostalCode: "100"},
		UserSnapshot:     entity.UserSnapshot{ID: userID, DisplayName: "Rider", Email: "rider@example.com"},
		Status:           entity.PartnershipPending,
		Type:             entity.PartnershipTypeDelivery,
		CreatedAt:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	doc := fromRequestDomain(request)
	assert.Equal(t, "PENDING", doc.Status)
	assert.Equal(t, request.AccountKey, doc.AccountKey)

	if diff := cmp.Diff(request, toRequestDomain(doc)); diff != "" {
		t.Errorf("request changed through its document (-want +got):\n%s", diff)
	}
}

func TestParseUUID_Corrupt(t *testing.T) {
	assert.Equal(t, uuid.Nil, parseUUID("not-a-uuid"))
}

func TestEmailClaimID(t *testing.T) {
	assert.Equal(t, emailClaimID("rider@example.com"), emailClaimID("  Rider@Example.COM "))
	assert.NotContains(t, emailClaimID("a/b@example.com"), "/")
}

func TestStorageError(t *testing.T) {
	err := storageError(status.Error(codes.Unavailable, "backend down"), "failed to read businesses/x")

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())

	for _, canceled := range []error{context.Canceled, status.Error(codes.Canceled, "context canceled")} {
		wrapped := storageError(canceled, "failed to read businesses/x")
		_, ok := errors.AsType[domainerrors.AppError](wrapped)
		assert.False(t, ok)
	}
}

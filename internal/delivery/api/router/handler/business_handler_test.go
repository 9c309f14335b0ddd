package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"localdrop/internal/domain/entity"
	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/errors"
	mockusecase "localdrop/internal/mocks/usecase"
	"localdrop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const createBusinessBody = `{
	"id": "corner-bakery",
	"display_name": "Corner Bakery",
	"business_type": "bakery",
	"location": {"geo_point": {"latitude": 25.033, "longitude": 121.5654}, "postal_code": "110"},
	"delivery_range_meters": 3000,
	"opening_time": {"hour": 22, "minute": 0, "zone_offset_minutes": 480},
	"closing_time": {"hour": 2, "minute": 0, "zone_offset_minutes": 480},
	"opening_days": [5, 6]
}`

func newBusinessHandler(t *testing.T) (*BusinessHandler, *mockusecase.MockBusinessUsecase) {
	uc := mockusecase.NewMockBusinessUsecase(t)

	return NewBusinessHandler(BusinessHandlerParams{BusinessUC: uc, Logger: discardLogger()}), uc
}

func TestBusinessHandler_CreateBusiness(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, uc := newBusinessHandler(t)
		uc.EXPECT().CreateBusiness(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, input *usecase.CreateBusinessInput) (*entity.Business, error) {
				assert.Equal(t, "corner-bakery", input.ID)
				assert.Equal(t, entity.GeoPoint{Latitude: 25.033, Longitude: 121.5654}, input.Location.GeoPoint)
				assert.Equal(t, entity.OperatingTime{Hour: 22, ZoneOffsetMinutes: 480}, input.OpeningTime)
				assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, input.OpeningDays)
				require.NotNil(t, input.DeliveryRangeMeters)
				assert.InDelta(t, 3000, *input.DeliveryRangeMeters, 0)
				assert.Nil(t, input.IsOpen)

				return &entity.Business{ID: input.ID, DisplayName: input.DisplayName, Partners: []entity.BusinessPartner{}}, nil
			}).Once()

		c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/api/v1/businesses", body: createBusinessBody, claims: osbClaims("corner-bakery")})

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "partners")
	})

	t.Run("identifier not managed by the caller", func(t *testing.T) {
		h, _ := newBusinessHandler(t)
		c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/api/v1/businesses", body: createBusinessBody, claims: osbClaims("noodle-bar")})

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		h, _ := newBusinessHandler(t)
		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/businesses",
			body:   `{"id":"corner-bakery","display_name":"Corner Bakery","location":{"postal_code":"110"}}`,
			claims: osbClaims("corner-bakery"),
		})

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("taken identifier", func(t *testing.T) {
		h, uc := newBusinessHandler(t)
		uc.EXPECT().CreateBusiness(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrBusinessAlreadyExists, "failed to create business")).Once()

		c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/api/v1/businesses", body: createBusinessBody, claims: osbClaims("corner-bakery")})

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestBusinessHandler_UpdateBusinessProfile(t *testing.T) {
	t.Run("only provided fields are forwarded", func(t *testing.T) {
		h, uc := newBusinessHandler(t)
		uc.EXPECT().UpdateBusinessProfile(mock.Anything, "corner-bakery", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, update *entity.BusinessProfileUpdate) (*entity.BusinessView, error) {
				require.NotNil(t, update.IsOpen)
				assert.False(t, *update.IsOpen)
				require.NotNil(t, update.OpeningDays)
				assert.Empty(t, *update.OpeningDays)
				assert.Nil(t, update.DisplayName)
				assert.Nil(t, update.Location)
				assert.Nil(t, update.OpeningTime)

				return &entity.BusinessView{ID: "corner-bakery"}, nil
			}).Once()

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPatch,
			target: "/api/v1/businesses/corner-bakery",
			body:   `{"is_open":false,"opening_days":[]}`,
			claims: osbClaims("corner-bakery"),
			params: map[string]string{"id": "corner-bakery"},
		})

		require.NoError(t, h.UpdateBusinessProfile(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("weekday out of range", func(t *testing.T) {
		h, _ := newBusinessHandler(t)
		c, rec := newTestContext(t, testRequest{
			method: http.MethodPatch,
			target: "/api/v1/businesses/corner-bakery",
			body:   `{"opening_days":[7]}`,
			claims: osbClaims("corner-bakery"),
			params: map[string]string{"id": "corner-bakery"},
		})

		require.NoError(t, h.UpdateBusinessProfile(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown business", func(t *testing.T) {
		h, uc := newBusinessHandler(t)
		uc.EXPECT().UpdateBusinessProfile(mock.Anything, "corner-bakery", mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "failed to update business profile")).Once()

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPatch,
			target: "/api/v1/businesses/corner-bakery",
			body:   `{"display_name":"Corner Bakery & Cafe"}`,
			claims: osbClaims("corner-bakery"),
			params: map[string]string{"id": "corner-bakery"},
		})

		require.NoError(t, h.UpdateBusinessProfile(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBusinessHandler_GetBusiness(t *testing.T) {
	h, uc := newBusinessHandler(t)
	uc.EXPECT().GetBusiness(mock.Anything, "corner-bakery").Return(&entity.BusinessView{ID: "corner-bakery", IsOpen: true}, nil).Once()

	c, rec := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/v1/businesses/corner-bakery",
		claims: osdClaims(testUserID.String()),
		params: map[string]string{"id": "corner-bakery"},
	})

	require.NoError(t, h.GetBusiness(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[entity.BusinessView](t, rec).IsOpen)
}

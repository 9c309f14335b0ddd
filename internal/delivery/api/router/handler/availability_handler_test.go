package handler

import (
	"net/http"
	"testing"

	"localdrop/internal/domain/entity"
	domainerrors "localdrop/internal/domain/errors"
	mockusecase "localdrop/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityHandler_GetAvailability(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setupMock  func(uc *mockusecase.MockAvailabilityUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "returns businesses",
			target: "/api/v1/availability?latitude=25.0330&longitude=121.5654",
			setupMock: func(uc *mockusecase.MockAvailabilityUsecase) {
				uc.EXPECT().GetAvailability(mock.Anything, entity.GeoPoint{Latitude: 25.0330, Longitude: 121.5654}).
					Return([]*entity.BusinessView{{ID: "corner-bakery", DistanceMeters: 420}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "empty result is no content",
			target: "/api/v1/availability?latitude=0&longitude=0",
			setupMock: func(uc *mockusecase.MockAvailabilityUsecase) {
				uc.EXPECT().GetAvailability(mock.Anything, entity.GeoPoint{}).Return([]*entity.BusinessView{}, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing longitude",
			target:     "/api/v1/availability?latitude=25",
			setupMock:  func(*mockusecase.MockAvailabilityUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "non numeric latitude",
			target:     "/api/v1/availability?latitude=north&longitude=121",
			setupMock:  func(*mockusecase.MockAvailabilityUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:   "coordinates out of range",
			target: "/api/v1/availability?latitude=95&longitude=121",
			setupMock: func(uc *mockusecase.MockAvailabilityUsecase) {
				uc.EXPECT().GetAvailability(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCoordinates).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_COORDINATES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockAvailabilityUsecase(t)
			tt.setupMock(uc)

			h := NewAvailabilityHandler(AvailabilityHandlerParams{AvailabilityUC: uc, Logger: discardLogger()})
			c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: tt.target})

			require.NoError(t, h.GetAvailability(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			switch {
			case tt.wantCode != "":
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			case tt.wantStatus == http.StatusOK:
				views := decodeData[[]*entity.BusinessView](t, rec)
				require.Len(t, views, 1)
				assert.Equal(t, "corner-bakery", views[0].ID)
			case tt.wantStatus == http.StatusNoContent:
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

package handler

import (
	"net/http"
	"testing"

	"localdrop/internal/domain/entity"
	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/errors"
	mockusecase "localdrop/internal/mocks/usecase"
	"localdrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testUserID    = uuid.MustParse("0190f5f2-6c1a-7d3e-9a55-3c1f0b2d4e61")
	testRequestID = uuid.MustParse("0190f5f2-7e4b-7a10-8c2d-5b6a7c8d9e0f")
)

func newPartnershipHandler(t *testing.T) (*PartnershipHandler, *mockusecase.MockPartnershipUsecase) {
	uc := mockusecase.NewMockPartnershipUsecase(t)

	return NewPartnershipHandler(PartnershipHandlerParams{PartnershipUC: uc, Logger: discardLogger()}), uc
}

func TestPartnershipHandler_RequestPartnership(t *testing.T) {
	body := `{"business_ref":"corner-bakery","user_id":"` + testUserID.String() + `"}`

	t.Run("success", func(t *testing.T) {
		h, uc := newPartnershipHandler(t)
		uc.EXPECT().RequestPartnership(mock.Anything, &usecase.RequestPartnershipInput{UserID: testUserID, BusinessRefID: "corner-bakery"}).
			Return(&entity.PartnershipRequest{ID: testRequestID, Status: entity.PartnershipPending}, nil).Once()

		c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/api/v1/partnerships/requests", body: body, claims: osdClaims(testUserID.String())})

		require.NoError(t, h.RequestPartnership(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, testRequestID, decodeData[entity.PartnershipRequest](t, rec).ID)
	})

	t.Run("on behalf of another user", func(t *testing.T) {
		h, _ := newPartnershipHandler(t)
		c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/api/v1/partnerships/requests", body: body, claims: osdClaims(uuid.NewString())})

		require.NoError(t, h.RequestPartnership(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		h, _ := newPartnershipHandler(t)
		c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/api/v1/partnerships/requests", body: `{"business_ref":"a/b","user_id":"nope"}`, claims: osdClaims(testUserID.String())})

		require.NoError(t, h.RequestPartnership(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("active relationship", func(t *testing.T) {
		h, uc := newPartnershipHandler(t)
		uc.EXPECT().RequestPartnership(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrPartnershipExists, "failed to request partnership")).Once()

		c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/api/v1/partnerships/requests", body: body, claims: osdClaims(testUserID.String())})

		require.NoError(t, h.RequestPartnership(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "PARTNERSHIP_ALREADY_EXISTS", decodeError(t, rec).Code)
	})

	t.Run("storage failure hides details", func(t *testing.T) {
		h, uc := newPartnershipHandler(t)
		uc.EXPECT().RequestPartnership(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewStorageUnavailableError(errors.New("connection refused"), "find user")).Once()

		c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/api/v1/partnerships/requests", body: body, claims: osdClaims(testUserID.String())})

		require.NoError(t, h.RequestPartnership(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Nil(t, decodeError(t, rec).Details)
	})
}

func TestPartnershipHandler_Decide(t *testing.T) {
	target := "/api/v1/partnerships/requests/" + testRequestID.String()
	params := map[string]string{"id": testRequestID.String()}

	t.Run("accept", func(t *testing.T) {
		h, uc := newPartnershipHandler(t)
		uc.EXPECT().AcceptPartnership(mock.Anything, &usecase.DecidePartnershipInput{
			RequestID:     testRequestID,
			UserID:        testUserID,
			BusinessRefID: "corner-bakery",
		}).Return(&entity.PartnershipRequest{ID: testRequestID, Status: entity.PartnershipAccepted}, nil).Once()

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: target + "/accept",
			body:   `{"user_id":"` + testUserID.String() + `","business_ref":"corner-bakery"}`,
			claims: osbClaims("corner-bakery"),
			params: params,
		})

		require.NoError(t, h.AcceptPartnership(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, entity.PartnershipAccepted, decodeData[entity.PartnershipRequest](t, rec).Status)
	})

	t.Run("accept after reject", func(t *testing.T) {
		h, uc := newPartnershipHandler(t)
		uc.EXPECT().AcceptPartnership(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidTransition, "failed to accept partnership")).Once()

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: target + "/accept",
			body:   `{"user_id":"` + testUserID.String() + `","business_ref":"corner-bakery"}`,
			claims: osbClaims("corner-bakery"),
			params: params,
		})

		require.NoError(t, h.AcceptPartnership(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_PARTNERSHIP_TRANSITION", decodeError(t, rec).Code)
	})

	t.Run("reject carries the display name", func(t *testing.T) {
		h, uc := newPartnershipHandler(t)
		uc.EXPECT().RejectPartnership(mock.Anything, &usecase.DecidePartnershipInput{
			RequestID:           testRequestID,
			UserID:              testUserID,
			BusinessRefID:       "corner-bakery",
			BusinessDisplayName: "Corner Bakery",
		}).Return(&entity.PartnershipRequest{ID: testRequestID, Status: entity.PartnershipRejected}, nil).Once()

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: target + "/reject",
			body:   `{"user_id":"` + testUserID.String() + `","business_ref":"corner-bakery","business_display_name":"Corner Bakery"}`,
			claims: osbClaims("corner-bakery"),
			params: params,
		})

		require.NoError(t, h.RejectPartnership(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("another business", func(t *testing.T) {
		h, _ := newPartnershipHandler(t)
		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: target + "/reject",
			body:   `{"user_id":"` + testUserID.String() + `","business_ref":"corner-bakery"}`,
			claims: osbClaims("noodle-bar"),
			params: params,
		})

		require.NoError(t, h.RejectPartnership(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed request id", func(t *testing.T) {
		h, _ := newPartnershipHandler(t)
		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/partnerships/requests/abc/accept",
			body:   `{"user_id":"` + testUserID.String() + `","business_ref":"corner-bakery"}`,
			claims: osbClaims("corner-bakery"),
			params: map[string]string{"id": "abc"},
		})

		require.NoError(t, h.AcceptPartnership(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
	})

	t.Run("unknown request", func(t *testing.T) {
		h, uc := newPartnershipHandler(t)
		uc.EXPECT().AcceptPartnership(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrPartnershipRequestNotFound, "failed to accept partnership")).Once()

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: target + "/accept",
			body:   `{"user_id":"` + testUserID.String() + `","business_ref":"corner-bakery"}`,
			claims: osbClaims("corner-bakery"),
			params: params,
		})

		require.NoError(t, h.AcceptPartnership(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPartnershipHandler_ListPartnerships(t *testing.T) {
	t.Run("business side", func(t *testing.T) {
		h, uc := newPartnershipHandler(t)
		uc.EXPECT().ListPartnerships(mock.Anything, "osb::corner-bakery").
			Return([]*entity.PartnershipRequest{{ID: testRequestID}}, nil).Once()

		c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/partnerships", claims: osbClaims("corner-bakery")})

		require.NoError(t, h.ListPartnerships(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]*entity.PartnershipRequest](t, rec), 1)
	})

	t.Run("agent side of a dual token", func(t *testing.T) {
		claims := osdClaims(testUserID.String())
		claims.Roles = append(claims.Roles, "osb")
		claims.BusinessRef = "corner-bakery"

		h, uc := newPartnershipHandler(t)
		uc.EXPECT().ListPartnerships(mock.Anything, entity.UserAccountRef(testUserID)).Return(nil, nil).Once()

		c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/partnerships?as=osd", claims: claims})

		require.NoError(t, h.ListPartnerships(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		h, _ := newPartnershipHandler(t)
		c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/partnerships?as=admin", claims: osbClaims("corner-bakery")})

		require.NoError(t, h.ListPartnerships(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("role the token lacks", func(t *testing.T) {
		h, _ := newPartnershipHandler(t)
		c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/partnerships?as=osd", claims: osbClaims("corner-bakery")})

		require.NoError(t, h.ListPartnerships(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestPartnershipHandler_QRCodes(t *testing.T) {
	t.Run("invite png", func(t *testing.T) {
		h, uc := newPartnershipHandler(t)
		uc.EXPECT().GeneratePartnerInviteQR(mock.Anything, "corner-bakery").Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

		c, rec := newTestContext(t, testRequest{
			method: http.MethodGet,
			target: "/api/v1/businesses/corner-bakery/partner-qr",
			claims: osbClaims("corner-bakery"),
			params: map[string]string{"id": "corner-bakery"},
		})

		require.NoError(t, h.GeneratePartnerInviteQR(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
	})

	t.Run("invite for another business", func(t *testing.T) {
		h, _ := newPartnershipHandler(t)
		c, rec := newTestContext(t, testRequest{
			method: http.MethodGet,
			target: "/api/v1/businesses/noodle-bar/partner-qr",
			claims: osbClaims("corner-bakery"),
			params: map[string]string{"id": "noodle-bar"},
		})

		require.NoError(t, h.GeneratePartnerInviteQR(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("scan", func(t *testing.T) {
		h, uc := newPartnershipHandler(t)
		uc.EXPECT().RequestPartnershipByQRCode(mock.Anything, testUserID, "https://localdrop.app/partner?business=corner-bakery").
			Return(&entity.PartnershipRequest{ID: testRequestID}, nil).Once()

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/partnerships/requests/qr",
			body:   `{"qr_data":"https://localdrop.app/partner?business=corner-bakery"}`,
			claims: osdClaims(testUserID.String()),
		})

		require.NoError(t, h.RequestPartnershipByQRCode(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("scan rejected", func(t *testing.T) {
		h, uc := newPartnershipHandler(t)
		uc.EXPECT().RequestPartnershipByQRCode(mock.Anything, testUserID, "garbage").
			Return(nil, errors.Wrap(domainerrors.ErrInvalidQRCode, "failed to parse invite")).Once()

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/partnerships/requests/qr",
			body:   `{"qr_data":"garbage"}`,
			claims: osdClaims(testUserID.String()),
		})

		require.NoError(t, h.RequestPartnershipByQRCode(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_QR_CODE", decodeError(t, rec).Code)
	})
}

package impl

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"localdrop/config"
	"localdrop/internal/domain/entity"
	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/domain/partnership"
	"localdrop/internal/domain/repository"
	"localdrop/internal/domain/service"
	"localdrop/internal/errors"
	"localdrop/internal/infra/clock"
	"localdrop/internal/infra/persistence/memory"
	mockRepo "localdrop/internal/mocks/repository"
	mockService "localdrop/internal/mocks/service"
	"localdrop/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// partnershipServiceFixtures holds all test dependencies for partnership service tests.
type partnershipServiceFixtures struct {
	service    usecase.PartnershipUsecase
	store      *memory.Store
	dispatcher *mockService.MockEventDispatcher
	qrcode     *mockService.MockQRCodeService
	clock      *clock.FixedClock
}

func createTestPartnershipService(t *testing.T) partnershipServiceFixtures {
	return createTestPartnershipServiceWithConfig(t, newTestConfig(8000))
}

func createTestPartnershipServiceWithConfig(t *testing.T, cfg *config.Config) partnershipServiceFixtures {
	store := memory.NewStore()
	dispatcher := mockService.NewMockEventDispatcher(t)
	qrcode := mockService.NewMockQRCodeService(t)
	testClock := newTestClock()

	svc := NewPartnershipService(PartnershipServiceParams{
		TxManager:    memory.NewTransactionManager(store),
		RequestRepo:  memory.NewPartnershipRequestRepository(store),
		BusinessRepo: memory.NewBusinessRepository(store),
		QRCode:       qrcode,
		Dispatcher:   dispatcher,
		Clock:        testClock,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return partnershipServiceFixtures{
		service:    svc,
		store:      store,
		dispatcher: dispatcher,
		qrcode:     qrcode,
		clock:      testClock,
	}
}

func (fx partnershipServiceFixtures) seedUser(t *testing.T) *entity.User {
	t.Helper()

	user := &entity.User{ID: uuid.New(), Email: uuid.NewString() + "@example.com", DisplayName: "Dana"}
	require.NoError(t, memory.NewUserRepository(fx.store).CreateUser(context.Background(), user))

	return user
}

func (fx partnershipServiceFixtures) seedBusiness(t *testing.T, id string, partners ...entity.BusinessPartner) *entity.Business {
	t.Helper()

	business := &entity.Business{
		ID:          id,
		DisplayName: "Corner Bakery",
		Location:    entity.BusinessLocation{GeoPoint: entity.GeoPoint{Latitude: 25.03, Longitude: 121.56}, PostalCode: "100"},
		Partners:    partners,
	}
	require.NoError(t, memory.NewBusinessRepository(fx.store).CreateBusiness(context.Background(), business))

	return business
}

func (fx partnershipServiceFixtures) user(t *testing.T, id uuid.UUID) *entity.User {
	t.Helper()

	user, err := memory.NewUserRepository(fx.store).FindUserByID(context.Background(), id)
	require.NoError(t, err)

	return user
}

func (fx partnershipServiceFixtures) business(t *testing.T, id string) *entity.Business {
	t.Helper()

	business, err := memory.NewBusinessRepository(fx.store).FindBusinessByID(context.Background(), id)
	require.NoError(t, err)

	return business
}

func (fx partnershipServiceFixtures) expectEvent(eventType service.PartnershipEventType, target string) {
	fx.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(event *service.PartnershipEvent) bool {
			return event.Type == eventType && event.TargetAccountRef == target
		})).
		Return().
		Once()
}

func requireAppError(t *testing.T, err error, target *domainerrors.BaseError) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, target)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, target.HTTPCode(), appErr.HTTPCode())
}

func TestPartnershipService_RequestThenAccept(t *testing.T) {
	fx := createTestPartnershipService(t)
	ctx := context.Background()
	user := fx.seedUser(t)
	fx.seedBusiness(t, "corner-bakery")

	fx.expectEvent(service.PartnershipEventRequested, "osb::corner-bakery")
	req, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)
	assert.Equal(t, entity.PartnershipPending, req.Status)
	assert.Equal(t, []string{"osb::corner-bakery", "osd::" + user.ID.String()}, req.AccountKey)
	assert.Equal(t, testNow, req.CreatedAt)

	assert.Equal(t,
		[]entity.UserPartnerBusiness{{BusinessRefID: "corner-bakery", Status: entity.PartnershipPending}},
		fx.user(t, user.ID).PartnerBusinesses,
	)
	assert.Empty(t, fx.business(t, "corner-bakery").Partners)

	fx.clock.Add(time.Hour)
	fx.expectEvent(service.PartnershipEventAccepted, "osd::"+user.ID.String())
	accepted, err := fx.service.AcceptPartnership(ctx, &usecase.DecidePartnershipInput{
		RequestID:     req.ID,
		UserID:        user.ID,
		BusinessRefID: "corner-bakery",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PartnershipAccepted, accepted.Status)
	assert.Equal(t, testNow.Add(time.Hour), accepted.UpdatedAt)

	assert.Equal(t,
		[]entity.UserPartnerBusiness{{BusinessRefID: "corner-bakery", Status: entity.PartnershipAccepted}},
		fx.user(t, user.ID).PartnerBusinesses,
	)
	assert.Equal(t,
		[]entity.BusinessPartner{{UserID: user.ID, Status: entity.PartnershipAccepted}},
		fx.business(t, "corner-bakery").Partners,
	)

	listed, err := fx.service.ListPartnerships(ctx, "osb::corner-bakery")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, entity.PartnershipAccepted, listed[0].Status)
}

func TestPartnershipService_DuplicateRequestConflicts(t *testing.T) {
	fx := createTestPartnershipService(t)
	ctx := context.Background()
	user := fx.seedUser(t)
	fx.seedBusiness(t, "corner-bakery")

	fx.expectEvent(service.PartnershipEventRequested, "osb::corner-bakery")
	_, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)

	_, err = fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	requireAppError(t, err, domainerrors.ErrPartnershipExists)
	assert.ErrorContains(t, err, partnership.ErrActiveRelationship.Error())
	assert.Equal(t, http.StatusUnauthorized, domainerrors.ErrPartnershipExists.HTTPCode())

	listed, err := fx.service.ListPartnerships(ctx, entity.UserAccountRef(user.ID))
	require.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Len(t, fx.user(t, user.ID).PartnerBusinesses, 1)
}

func TestPartnershipService_RejectLeavesBusinessListUntouched(t *testing.T) {
	fx := createTestPartnershipService(t)
	ctx := context.Background()
	user := fx.seedUser(t)
	existing := []entity.BusinessPartner{
		{UserID: uuid.New(), Status: entity.PartnershipAccepted},
		{UserID: uuid.New(), Status: entity.PartnershipAccepted},
	}
	fx.seedBusiness(t, "corner-bakery", existing...)

	fx.expectEvent(service.PartnershipEventRequested, "osb::corner-bakery")
	req, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)

	fx.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(event *service.PartnershipEvent) bool {
			return event.Type == service.PartnershipEventRejected &&
				event.TargetAccountRef == entity.UserAccountRef(user.ID) &&
				event.Body == "Corner Bakery declined your delivery partnership request"
		})).
		Return().
		Once()
	rejected, err := fx.service.RejectPartnership(ctx, &usecase.DecidePartnershipInput{
		RequestID:           req.ID,
		UserID:              user.ID,
		BusinessRefID:       "corner-bakery",
		BusinessDisplayName: "Bakery on 5th",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PartnershipRejected, rejected.Status)

	assert.Empty(t, fx.user(t, user.ID).PartnerBusinesses)
	if diff := cmp.Diff(existing, fx.business(t, "corner-bakery").Partners); diff != "" {
		t.Errorf("business partners changed (-want +got):\n%s", diff)
	}

	// The user may ask again once rejected.
	fx.expectEvent(service.PartnershipEventRequested, "osb::corner-bakery")
	_, err = fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)
}

func TestPartnershipService_RejectFallsBackToSuppliedDisplayName(t *testing.T) {
	fx := createTestPartnershipService(t)
	ctx := context.Background()
	user := fx.seedUser(t)
	require.NoError(t, memory.NewBusinessRepository(fx.store).CreateBusiness(ctx, &entity.Business{
		ID:       "corner-bakery",
		Location: entity.BusinessLocation{GeoPoint: entity.GeoPoint{Latitude: 25.03, Longitude: 121.56}, PostalCode: "100"},
	}))

	fx.expectEvent(service.PartnershipEventRequested, "osb::corner-bakery")
	req, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)

	var body string
	fx.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.PartnershipEvent) {
			body = event.Body
		}).
		Return().
		Once()
	_, err = fx.service.RejectPartnership(ctx, &usecase.DecidePartnershipInput{
		RequestID:           req.ID,
		UserID:              user.ID,
		BusinessRefID:       "corner-bakery",
		BusinessDisplayName: "Bakery on 5th",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bakery on 5th declined your delivery partnership request", body)
}

func TestPartnershipService_AcceptAfterRejectIsInvalid(t *testing.T) {
	fx := createTestPartnershipService(t)
	ctx := context.Background()
	user := fx.seedUser(t)
	fx.seedBusiness(t, "corner-bakery")

	fx.expectEvent(service.PartnershipEventRequested, "osb::corner-bakery")
	req, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)

	decision := &usecase.DecidePartnershipInput{RequestID: req.ID, UserID: user.ID, BusinessRefID: "corner-bakery"}

	fx.expectEvent(service.PartnershipEventRejected, entity.UserAccountRef(user.ID))
	_, err = fx.service.RejectPartnership(ctx, decision)
	require.NoError(t, err)

	userBefore := fx.user(t, user.ID)
	businessBefore := fx.business(t, "corner-bakery")

	_, err = fx.service.AcceptPartnership(ctx, decision)
	requireAppError(t, err, domainerrors.ErrInvalidTransition)

	_, err = fx.service.RejectPartnership(ctx, decision)
	requireAppError(t, err, domainerrors.ErrInvalidTransition)

	assert.Equal(t, userBefore.PartnerBusinesses, fx.user(t, user.ID).PartnerBusinesses)
	assert.Equal(t, businessBefore.Partners, fx.business(t, "corner-bakery").Partners)
}

func TestPartnershipService_DecisionErrors(t *testing.T) {
	fx := createTestPartnershipService(t)
	ctx := context.Background()
	user := fx.seedUser(t)
	other := fx.seedUser(t)
	fx.seedBusiness(t, "corner-bakery")

	fx.expectEvent(service.PartnershipEventRequested, "osb::corner-bakery")
	req, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input *usecase.DecidePartnershipInput
		want  *domainerrors.BaseError
	}{
		{
			name:  "unknown request",
			input: &usecase.DecidePartnershipInput{RequestID: uuid.New(), UserID: user.ID, BusinessRefID: "corner-bakery"},
			want:  domainerrors.ErrPartnershipRequestNotFound,
		},
		{
			name:  "other user",
			input: &usecase.DecidePartnershipInput{RequestID: req.ID, UserID: other.ID, BusinessRefID: "corner-bakery"},
			want:  domainerrors.ErrPartnershipRequestMismatch,
		},
		{
			name:  "other business",
			input: &usecase.DecidePartnershipInput{RequestID: req.ID, UserID: user.ID, BusinessRefID: "cafe"},
			want:  domainerrors.ErrPartnershipRequestMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.AcceptPartnership(ctx, tt.input)
			requireAppError(t, err, tt.want)
		})
	}
}

func TestPartnershipService_RequestUnknownParties(t *testing.T) {
	fx := createTestPartnershipService(t)
	ctx := context.Background()
	user := fx.seedUser(t)
	fx.seedBusiness(t, "corner-bakery")

	_, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "missing"})
	requireAppError(t, err, domainerrors.ErrBusinessNotFound)

	_, err = fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: uuid.New(), BusinessRefID: "corner-bakery"})
	requireAppError(t, err, domainerrors.ErrUserNotFound)

	listed, err := fx.service.ListPartnerships(ctx, "osb::corner-bakery")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestPartnershipService_ConcurrentAcceptSingleWinner(t *testing.T) {
	fx := createTestPartnershipService(t)
	ctx := context.Background()
	user := fx.seedUser(t)
	fx.seedBusiness(t, "corner-bakery")

	fx.expectEvent(service.PartnershipEventRequested, "osb::corner-bakery")
	req, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)

	fx.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return().Once()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(accept bool) {
			defer wg.Done()

			input := &usecase.DecidePartnershipInput{RequestID: req.ID, UserID: user.ID, BusinessRefID: "corner-bakery"}
			var decideErr error
			if accept {
				_, decideErr = fx.service.AcceptPartnership(ctx, input)
			} else {
				_, decideErr = fx.service.RejectPartnership(ctx, input)
			}

			if decideErr == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, decideErr, domainerrors.ErrInvalidTransition)
			}
		}(i%2 == 0)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestPartnershipService_RequestByQRCode(t *testing.T) {
	fx := createTestPartnershipService(t)
	ctx := context.Background()
	user := fx.seedUser(t)
	fx.seedBusiness(t, "corner-bakery")

	fx.qrcode.EXPECT().ParsePartnerInviteQR("scanned").Return("corner-bakery", nil)
	fx.expectEvent(service.PartnershipEventRequested, "osb::corner-bakery")

	req, err := fx.service.RequestPartnershipByQRCode(ctx, user.ID, "scanned")
	require.NoError(t, err)
	assert.Equal(t, "corner-bakery", req.BusinessRefID())

	fx.qrcode.EXPECT().ParsePartnerInviteQR("garbage").Return("", errors.New("bad payload"))
	_, err = fx.service.RequestPartnershipByQRCode(ctx, user.ID, "garbage")
	requireAppError(t, err, domainerrors.ErrInvalidQRCode)
}

func TestPartnershipService_GeneratePartnerInviteQR(t *testing.T) {
	fx := createTestPartnershipService(t)
	ctx := context.Background()
	fx.seedBusiness(t, "corner-bakery")

	fx.qrcode.EXPECT().GeneratePartnerInviteQR("corner-bakery").Return([]byte{0x89, 'P', 'N', 'G'}, nil)
	png, err := fx.service.GeneratePartnerInviteQR(ctx, "corner-bakery")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = fx.service.GeneratePartnerInviteQR(ctx, "missing")
	requireAppError(t, err, domainerrors.ErrBusinessNotFound)
}

func TestPartnershipService_ListRejectsMalformedAccountRef(t *testing.T) {
	fx := createTestPartnershipService(t)

	_, err := fx.service.ListPartnerships(context.Background(), "corner-bakery")
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestPartnershipService_ReconcileRepairsDrift(t *testing.T) {
	fx := createTestPartnershipService(t)
	ctx := context.Background()
	user := fx.seedUser(t)
	fx.seedBusiness(t, "corner-bakery")

	fx.expectEvent(service.PartnershipEventRequested, "osb::corner-bakery")
	req, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)

	// Simulate an accept whose aggregate writes never landed.
	acceptedAt := testNow.Add(time.Minute)
	require.NoError(t, memory.NewPartnershipRequestRepository(fx.store).
		UpdateRequestStatus(ctx, req.ID, entity.PartnershipPending, entity.PartnershipAccepted, acceptedAt))

	out, err := fx.service.Reconcile(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Scanned)
	assert.Equal(t, 1, out.Repaired)
	assert.Equal(t, 0, out.Failed)
	assert.Equal(t, acceptedAt, out.Until)

	assert.Equal(t,
		[]entity.UserPartnerBusiness{{BusinessRefID: "corner-bakery", Status: entity.PartnershipAccepted}},
		fx.user(t, user.ID).PartnerBusinesses,
	)
	assert.Equal(t,
		[]entity.BusinessPartner{{UserID: user.ID, Status: entity.PartnershipAccepted}},
		fx.business(t, "corner-bakery").Partners,
	)

	again, err := fx.service.Reconcile(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Repaired)
}

func TestPartnershipService_ReconcileUsesLatestRequestPerPair(t *testing.T) {
	fx := createTestPartnershipService(t)
	ctx := context.Background()
	user := fx.seedUser(t)
	fx.seedBusiness(t, "corner-bakery")

	decision := func(id uuid.UUID) *usecase.DecidePartnershipInput {
		return &usecase.DecidePartnershipInput{RequestID: id, UserID: user.ID, BusinessRefID: "corner-bakery"}
	}

	fx.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return().Times(3)

	first, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)
	fx.clock.Add(time.Minute)
	_, err = fx.service.RejectPartnership(ctx, decision(first.ID))
	require.NoError(t, err)
	fx.clock.Add(time.Minute)
	_, err = fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)

	out, err := fx.service.Reconcile(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Scanned)
	assert.Equal(t, 0, out.Repaired)
	assert.Equal(t,
		[]entity.UserPartnerBusiness{{BusinessRefID: "corner-bakery", Status: entity.PartnershipPending}},
		fx.user(t, user.ID).PartnerBusinesses,
	)
}

func TestPartnershipService_ReconcileIgnoresStaleBatchRecord(t *testing.T) {
	cfg := newTestConfig(8000)
	cfg.Reconcile.Batch = 1
	fx := createTestPartnershipServiceWithConfig(t, cfg)
	ctx := context.Background()
	user := fx.seedUser(t)
	fx.seedBusiness(t, "corner-bakery")

	fx.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return().Times(3)

	first, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)
	fx.clock.Add(time.Minute)
	_, err = fx.service.RejectPartnership(ctx, &usecase.DecidePartnershipInput{
		RequestID: first.ID, UserID: user.ID, BusinessRefID: "corner-bakery",
	})
	require.NoError(t, err)
	fx.clock.Add(time.Minute)
	second, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	require.NoError(t, err)

	// The batch only holds the rejected request; the pair has since moved on to a pending one.
	out, err := fx.service.Reconcile(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Scanned)
	assert.Equal(t, 0, out.Repaired)
	assert.Equal(t, testNow.Add(time.Minute), out.Until)

	assert.Equal(t,
		[]entity.UserPartnerBusiness{{BusinessRefID: "corner-bakery", Status: entity.PartnershipPending}},
		fx.user(t, user.ID).PartnerBusinesses,
	)

	_, err = fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: "corner-bakery"})
	requireAppError(t, err, domainerrors.ErrPartnershipExists)

	listed, err := fx.service.ListPartnerships(ctx, entity.UserAccountRef(user.ID))
	require.NoError(t, err)
	var pending []uuid.UUID
	for _, req := range listed {
		if req.Status == entity.PartnershipPending {
			pending = append(pending, req.ID)
		}
	}
	assert.Equal(t, []uuid.UUID{second.ID}, pending)
}

// mockedPartnershipFixtures wires the coordinator to mocks, for failure paths the memory store cannot produce.
type mockedPartnershipFixtures struct {
	service      usecase.PartnershipUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	businessRepo *mockRepo.MockBusinessRepository
	requestRepo  *mockRepo.MockPartnershipRequestRepository
}

func createMockedPartnershipService(t *testing.T) mockedPartnershipFixtures {
	fx := mockedPartnershipFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		requestRepo:  mockRepo.NewMockPartnershipRequestRepository(t),
	}

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Maybe()
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().NewBusinessRepository().Return(fx.businessRepo).Maybe()
	fx.factory.EXPECT().NewPartnershipRequestRepository().Return(fx.requestRepo).Maybe()

	fx.service = NewPartnershipService(PartnershipServiceParams{
		TxManager:    fx.txManager,
		RequestRepo:  fx.requestRepo,
		BusinessRepo: fx.businessRepo,
		QRCode:       mockService.NewMockQRCodeService(t),
		Dispatcher:   mockService.NewMockEventDispatcher(t),
		Clock:        clock.NewFixedClock(testNow),
		Config:       newTestConfig(8000),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestPartnershipService_StorageUnavailable(t *testing.T) {
	fx := createMockedPartnershipService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, domainerrors.NewStorageUnavailableError(errors.New("connection refused"), "find user"))

	_, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: userID, BusinessRefID: "corner-bakery"})
	require.Error(t, err)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "STORAGE_UNAVAILABLE", appErr.ErrorCode())
}

func TestPartnershipService_ConditionalUpdateLost(t *testing.T) {
	fx := createMockedPartnershipService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), DisplayName: "Dana"}
	business := &entity.Business{ID: "corner-bakery", DisplayName: "Corner Bakery"}
	req := &entity.PartnershipRequest{
		ID:               uuid.New(),
		BusinessSnapshot: entity.BusinessSnapshot{ID: business.ID},
		UserSnapshot:     entity.UserSnapshot{ID: user.ID},
		Status:           entity.PartnershipPending,
	}

	fx.requestRepo.EXPECT().FindRequestByID(ctx, req.ID).Return(req, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.requestRepo.EXPECT().
		UpdateRequestStatus(ctx, req.ID, entity.PartnershipPending, entity.PartnershipAccepted, testNow).
		Return(repository.ErrStatusMismatch)

	_, err := fx.service.AcceptPartnership(ctx, &usecase.DecidePartnershipInput{RequestID: req.ID, UserID: user.ID, BusinessRefID: business.ID})
	requireAppError(t, err, domainerrors.ErrInvalidTransition)
}

func TestPartnershipService_AppendConflictMapsToExists(t *testing.T) {
	fx := createMockedPartnershipService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), DisplayName: "Dana"}
	business := &entity.Business{ID: "corner-bakery", DisplayName: "Corner Bakery"}

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.requestRepo.EXPECT().CreateRequest(ctx, mock.AnythingOfType("*entity.PartnershipRequest")).Return(nil)
	fx.userRepo.EXPECT().
		AppendPartnerBusiness(ctx, user.ID, entity.UserPartnerBusiness{BusinessRefID: business.ID, Status: entity.PartnershipPending}).
		Return(repository.ErrActivePartnerEntry)

	_, err := fx.service.RequestPartnership(ctx, &usecase.RequestPartnershipInput{UserID: user.ID, BusinessRefID: business.ID})
	requireAppError(t, err, domainerrors.ErrPartnershipExists)
}

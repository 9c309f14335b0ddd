package impl

import (
	"context"
	"fmt"
	"log/slog"

	"localdrop/config"
	deliverycontext "localdrop/internal/delivery/context"
	"localdrop/internal/domain/entity"
	domainerrors "localdrop/internal/domain/errors"
	"localdrop/internal/domain/partnership"
	"localdrop/internal/domain/repository"
	"localdrop/internal/domain/service"
	"localdrop/internal/errors"
	"localdrop/internal/infra/metrics"
	"localdrop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	actionRequest = "request"
	actionAccept  = "accept"
	actionReject  = "reject"
)

type partnershipService struct {
	txManager    repository.TransactionManager
	requestRepo  repository.PartnershipRequestRepository
	businessRepo repository.BusinessRepository
	qrcode       service.QRCodeService
	dispatcher   service.EventDispatcher
	clock        service.Clock
	logger       *slog.Logger
	batch        int
}

// PartnershipServiceParams holds dependencies for PartnershipService, injected by Fx.
type PartnershipServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	RequestRepo  repository.PartnershipRequestRepository
	BusinessRepo repository.BusinessRepository
	QRCode       service.QRCodeService
	Dispatcher   service.EventDispatcher
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPartnershipService creates a new partnership coordinator
func NewPartnershipService(params PartnershipServiceParams) usecase.PartnershipUsecase {
	batch := 0
	if params.Config != nil && params.Config.Reconcile != nil {
		batch = params.Config.Reconcile.Batch
	}

	return &partnershipService{
		txManager:    params.TxManager,
		requestRepo:  params.RequestRepo,
		businessRepo: params.BusinessRepo,
		qrcode:       params.QRCode,
		dispatcher:   params.Dispatcher,
		clock:        params.Clock,
		logger:       params.Logger,
		batch:        batch,
	}
}

func (srv *partnershipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// txRepos groups the repositories bound to one transaction.
type txRepos struct {
	users      repository.UserRepository
	businesses repository.BusinessRepository
	requests   repository.PartnershipRequestRepository
}

func newTxRepos(factory repository.RepositoryFactory) txRepos {
	return txRepos{
		users:      factory.NewUserRepository(),
		businesses: factory.NewBusinessRepository(),
		requests:   factory.NewPartnershipRequestRepository(),
	}
}

// RequestPartnership records a pending request and adds a pending entry to the user's partner list.
func (srv *partnershipService) RequestPartnership(ctx context.Context, input *usecase.RequestPartnershipInput) (*entity.PartnershipRequest, error) {
	var (
		created  *entity.PartnershipRequest
		business *entity.Business
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repos := newTxRepos(factory)

		user, err := findUser(ctx, repos.users, input.UserID)
		if err != nil {
			return err
		}

		biz, err := findBusiness(ctx, repos.businesses, input.BusinessRefID)
		if err != nil {
			return err
		}

		if err := partnership.CheckRequest(user, biz.ID); err != nil {
			return errors.Wrapf(domainerrors.ErrPartnershipExists, "partnership request rejected by state machine: %v", err)
		}

		req := partnership.NewRequest(user, biz, srv.clock.Now())
		if err := repos.requests.CreateRequest(ctx, req); err != nil {
			return errors.Wrap(err, "failed to create partnership request")
		}

		effect := partnership.RequestEffect(biz.ID)
		if err := repos.users.AppendPartnerBusiness(ctx, user.ID, *effect.UserEntry); err != nil {
			if errors.Is(err, repository.ErrActivePartnerEntry) {
				return errors.Wrap(domainerrors.ErrPartnershipExists, "concurrent partnership request")
			}

			return errors.Wrap(err, "failed to append partner business")
		}

		created, business = req, biz

		return nil
	})
	metrics.CountTransition(actionRequest, err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute partnership request transaction")
	}

	srv.log(ctx).Info("Partnership requested",
		slog.String("request_id", created.ID.String()),
		slog.String("business_ref", business.ID),
		slog.String("user_id", created.UserID().String()),
	)

	srv.dispatch(ctx, created, service.PartnershipEventRequested, entity.BusinessAccountRef(business.ID),
		"New delivery partner request",
		fmt.Sprintf("%s would like to deliver for %s", created.UserSnapshot.DisplayName, business.DisplayName),
	)

	return created, nil
}

// AcceptPartnership marks a pending request accepted and records the partnership on both sides.
func (srv *partnershipService) AcceptPartnership(ctx context.Context, input *usecase.DecidePartnershipInput) (*entity.PartnershipRequest, error) {
	decided, business, err := srv.decide(ctx, input, partnership.Accept)
	metrics.CountTransition(actionAccept, err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute partnership accept transaction")
	}

	srv.log(ctx).Info("Partnership accepted",
		slog.String("request_id", decided.ID.String()),
		slog.String("business_ref", business.ID),
	)

	srv.dispatch(ctx, decided, service.PartnershipEventAccepted, entity.UserAccountRef(decided.UserID()),
		"Partnership accepted",
		fmt.Sprintf("%s accepted you as a delivery partner", business.DisplayName),
	)

	return decided, nil
}

// RejectPartnership marks a pending request rejected and removes the user's entry.
func (srv *partnershipService) RejectPartnership(ctx context.Context, input *usecase.DecidePartnershipInput) (*entity.PartnershipRequest, error) {
	decided, business, err := srv.decide(ctx, input, partnership.Reject)
	metrics.CountTransition(actionReject, err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute partnership reject transaction")
	}

	displayName := business.DisplayName
	if displayName == "" {
		displayName = input.BusinessDisplayName
	}

	srv.log(ctx).Info("Partnership rejected",
		slog.String("request_id", decided.ID.String()),
		slog.String("business_ref", business.ID),
	)

	srv.dispatch(ctx, decided, service.PartnershipEventRejected, entity.UserAccountRef(decided.UserID()),
		"Partnership request declined",
		fmt.Sprintf("%s declined your delivery partnership request", displayName),
	)

	return decided, nil
}

// decide runs a business decision on a pending request. All reads happen before the first write.
func (srv *partnershipService) decide(
	ctx context.Context,
	input *usecase.DecidePartnershipInput,
	transition func(*entity.PartnershipRequest) (partnership.Effect, error),
) (*entity.PartnershipRequest, *entity.Business, error) {
	var (
		decided  *entity.PartnershipRequest
		business *entity.Business
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repos := newTxRepos(factory)

		req, err := repos.requests.FindRequestByID(ctx, input.RequestID)
		if err != nil {
			if errors.Is(err, repository.ErrPartnershipRequestNotFound) {
				return errors.Wrap(domainerrors.ErrPartnershipRequestNotFound, "failed to find partnership request")
			}

			return errors.Wrap(err, "failed to find partnership request")
		}

		if !req.BelongsTo(input.UserID, input.BusinessRefID) {
			return errors.Wrap(domainerrors.ErrPartnershipRequestMismatch, "partnership request pair mismatch")
		}

		user, err := findUser(ctx, repos.users, input.UserID)
		if err != nil {
			return err
		}

		biz, err := findBusiness(ctx, repos.businesses, input.BusinessRefID)
		if err != nil {
			return err
		}

		effect, err := transition(req)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInvalidTransition, err.Error())
		}

		now := srv.clock.Now()
		if err := repos.requests.UpdateRequestStatus(ctx, req.ID, entity.PartnershipPending, effect.Status, now); err != nil {
			if errors.Is(err, repository.ErrStatusMismatch) {
				return errors.Wrap(domainerrors.ErrInvalidTransition, "partnership request decided concurrently")
			}

			return errors.Wrap(err, "failed to update partnership request status")
		}

		if err := applyEffect(ctx, repos, user.ID, biz.ID, effect); err != nil {
			return err
		}

		updated := *req
		updated.Status = effect.Status
		updated.UpdatedAt = now
		decided, business = &updated, biz

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return decided, business, nil
}

// applyEffect writes the aggregate side of a transition: user list first, then business list.
func applyEffect(ctx context.Context, repos txRepos, userID uuid.UUID, businessRefID string, effect partnership.Effect) error {
	switch {
	case effect.UserEntry != nil:
		if err := repos.users.UpsertPartnerBusiness(ctx, userID, *effect.UserEntry); err != nil {
			return errors.Wrap(err, "failed to upsert partner business")
		}
	case effect.RemoveUserEntry:
		if err := repos.users.RemovePartnerBusiness(ctx, userID, businessRefID); err != nil {
			return errors.Wrap(err, "failed to remove partner business")
		}
	}

	if effect.BusinessEntry != nil {
		if err := repos.businesses.UpsertPartner(ctx, businessRefID, *effect.BusinessEntry); err != nil {
			return errors.Wrap(err, "failed to upsert business partner")
		}
	}

	return nil
}

// ListPartnerships returns the requests addressed to an account, newest first.
func (srv *partnershipService) ListPartnerships(ctx context.Context, accountRef string) ([]*entity.PartnershipRequest, error) {
	if _, _, ok := entity.ParseAccountRef(accountRef); !ok {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid account reference")
	}

	requests, err := srv.requestRepo.FindRequestsByAccountRef(ctx, accountRef)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find partnership requests by account")
	}

	return requests, nil
}

// GeneratePartnerInviteQR renders a QR code a delivery agent can scan to request a partnership.
func (srv *partnershipService) GeneratePartnerInviteQR(ctx context.Context, businessRefID string) ([]byte, error) {
	if _, err := findBusiness(ctx, srv.businessRepo, businessRefID); err != nil {
		return nil, err
	}

	qrBytes, err := srv.qrcode.GeneratePartnerInviteQR(businessRefID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate partner invite QR code")
	}

	return qrBytes, nil
}

// RequestPartnershipByQRCode parses a scanned invite and requests a partnership with its business.
func (srv *partnershipService) RequestPartnershipByQRCode(ctx context.Context, userID uuid.UUID, qrData string) (*entity.PartnershipRequest, error) {
	businessRefID, err := srv.qrcode.ParsePartnerInviteQR(qrData)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidQRCode, err.Error())
	}

	return srv.RequestPartnership(ctx, &usecase.RequestPartnershipInput{
		UserID:        userID,
		BusinessRefID: businessRefID,
	})
}

func (srv *partnershipService) dispatch(
	ctx context.Context,
	req *entity.PartnershipRequest,
	eventType service.PartnershipEventType,
	target, title, body string,
) {
	srv.dispatcher.Dispatch(ctx, &service.PartnershipEvent{
		RequestID:        deliverycontext.RequestIDFrom(ctx),
		EventID:          uuid.NewString(),
		Type:             eventType,
		PartnershipID:    req.ID.String(),
		TargetAccountRef: target,
		Title:            title,
		Body:             body,
		OccurredAt:       req.UpdatedAt,
	})
}

func findUser(ctx context.Context, users repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := users.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to find user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func findBusiness(ctx context.Context, businesses repository.BusinessRepository, id string) (*entity.Business, error) {
	business, err := businesses.FindBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "failed to find business")
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

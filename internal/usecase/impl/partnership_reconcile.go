package impl

import (
	"context"
	"log/slog"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/partnership"
	"localdrop/internal/domain/repository"
	"localdrop/internal/errors"
	"localdrop/internal/infra/metrics"
	"localdrop/internal/usecase"

	"github.com/google/uuid"
)

const (
	reconcileConsistent = "consistent"
	reconcileRepaired   = "repaired"
	reconcileFailed     = "failed"
)

type pairKey struct {
	userID        uuid.UUID
	businessRefID string
}

// Reconcile rewrites the partner lists of every pair whose request changed since the given time so
// they match the status of the pair's latest request. Pairs are repaired one transaction each; a
// failing pair is logged and left for the next pass.
func (srv *partnershipService) Reconcile(ctx context.Context, since time.Time) (*usecase.ReconcileOutput, error) {
	requests, err := srv.requestRepo.FindRequestsUpdatedSince(ctx, since, srv.batch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find partnership requests updated since")
	}

	output := &usecase.ReconcileOutput{Scanned: len(requests), Until: since}

	seen := make(map[pairKey]struct{}, len(requests))
	order := make([]pairKey, 0, len(requests))
	for _, req := range requests {
		key := pairKey{userID: req.UserID(), businessRefID: req.BusinessRefID()}
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			order = append(order, key)
		}

		if req.UpdatedAt.After(output.Until) {
			output.Until = req.UpdatedAt
		}
	}

	for _, key := range order {
		if err := ctx.Err(); err != nil {
			return output, errors.Wrap(err, "reconcile interrupted")
		}

		repaired, repairErr := srv.reconcilePair(ctx, key)
		switch {
		case repairErr != nil:
			output.Failed++
			metrics.CountReconciled(reconcileFailed)
			srv.log(ctx).Warn("Failed to reconcile partnership pair",
				slog.String("user_id", key.userID.String()),
				slog.String("business_ref", key.businessRefID),
				slog.Any("error", repairErr),
			)
		case repaired:
			output.Repaired++
			metrics.CountReconciled(reconcileRepaired)
			srv.log(ctx).Info("Reconciled partnership pair",
				slog.String("user_id", key.userID.String()),
				slog.String("business_ref", key.businessRefID),
			)
		default:
			metrics.CountReconciled(reconcileConsistent)
		}
	}

	return output, nil
}

// reconcilePair loads the pair's latest request inside a transaction and writes only the entries that
// differ from what its status implies. The scanned batch may hold a request the pair has since moved
// past, so the batch record itself is never trusted.
func (srv *partnershipService) reconcilePair(ctx context.Context, key pairKey) (bool, error) {
	var repaired bool

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repaired = false
		repos := newTxRepos(factory)

		req, err := repos.requests.FindLatestRequestForPair(ctx, key.userID, key.businessRefID)
		if err != nil {
			return errors.Wrap(err, "failed to find latest partnership request")
		}

		user, err := findUser(ctx, repos.users, req.UserID())
		if err != nil {
			return err
		}

		business, err := findBusiness(ctx, repos.businesses, req.BusinessRefID())
		if err != nil {
			return err
		}

		drift := driftFrom(partnership.Expected(req), user, business)
		if drift.isEmpty() {
			return nil
		}

		if err := applyEffect(ctx, repos, user.ID, business.ID, drift.effect); err != nil {
			return err
		}
		repaired = true

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to execute reconcile transaction")
	}

	return repaired, nil
}

type drift struct {
	effect partnership.Effect
}

func (d drift) isEmpty() bool {
	return d.effect.UserEntry == nil && !d.effect.RemoveUserEntry && d.effect.BusinessEntry == nil
}

// driftFrom keeps the parts of expected the aggregates do not already reflect.
func driftFrom(expected partnership.Effect, user *entity.User, business *entity.Business) drift {
	var d drift
	d.effect.Status = expected.Status

	if expected.UserEntry != nil {
		current, found := partnership.FindUserEntry(user.PartnerBusinesses, expected.UserEntry.BusinessRefID)
		if !found || current != *expected.UserEntry {
			d.effect.UserEntry = expected.UserEntry
		}
	}

	if expected.RemoveUserEntry {
		if _, found := partnership.FindUserEntry(user.PartnerBusinesses, business.ID); found {
			d.effect.RemoveUserEntry = true
		}
	}

	if expected.BusinessEntry != nil {
		current, found := partnership.FindBusinessEntry(business.Partners, expected.BusinessEntry.UserID)
		if !found || current != *expected.BusinessEntry {
			d.effect.BusinessEntry = expected.BusinessEntry
		}
	}

	return d
}

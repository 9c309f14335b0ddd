package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"localdrop/config"
	"localdrop/internal/delivery"
	"localdrop/internal/domain/service"
	"localdrop/internal/usecase"

	"go.uber.org/fx"
)

// reconciler periodically repairs partner lists from the request records changed since its last pass.
type reconciler struct {
	partnershipUC usecase.PartnershipUsecase
	clock         service.Clock
	logger        *slog.Logger
	interval      time.Duration
	lookback      time.Duration
	batch         int

	since  time.Time
	cancel context.CancelFunc
	mu     sync.Mutex
	done   chan struct{}
}

// ReconcilerParams holds dependencies for the reconciler
type ReconcilerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	Clock         service.Clock
	PartnershipUC usecase.PartnershipUsecase
}

// NewReconciler creates the recovery loop. A zero interval disables it.
func NewReconciler(params ReconcilerParams) delivery.Delivery {
	cfg := params.Cfg.Reconcile
	if cfg == nil {
		cfg = &config.ReconcileConfig{}
	}

	r := &reconciler{
		partnershipUC: params.PartnershipUC,
		clock:         params.Clock,
		logger:        params.Logger,
		interval:      cfg.Interval,
		lookback:      cfg.Lookback,
		batch:         cfg.Batch,
		done:          make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: r.stop,
	})

	return r
}

// Serve runs a pass immediately and then on every tick until the reconciler is stopped.
func (r *reconciler) Serve(ctx context.Context) error {
	defer close(r.done)

	if r.interval <= 0 {
		r.logger.Info("Reconcile interval not set, recovery pass disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()
	defer cancel()

	r.logger.Info("Starting recovery pass",
		slog.Duration("interval", r.interval),
		slog.Duration("lookback", r.lookback),
	)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.runOnce(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// runOnce drains every record changed since the previous pass, one batch at a time.
func (r *reconciler) runOnce(ctx context.Context) {
	// Never look further back than the lookback window, and always overlap it so records committed
	// late by a slow transaction are still seen
	since := r.clock.Now().Add(-r.lookback)
	if r.since.After(since) {
		since = r.since
	}

	var failed bool
	for ctx.Err() == nil {
		output, err := r.partnershipUC.Reconcile(ctx, since)
		if err != nil {
			r.logger.ErrorContext(ctx, "Recovery pass failed", slog.Time("since", since), slog.Any("error", err))

			return
		}

		if output.Repaired > 0 || output.Failed > 0 {
			r.logger.InfoContext(ctx, "Recovery pass finished",
				slog.Int("scanned", output.Scanned),
				slog.Int("repaired", output.Repaired),
				slog.Int("failed", output.Failed),
			)
		}

		// A failed pair keeps the window where it is so the next pass retries it
		failed = failed || output.Failed > 0
		if !failed {
			r.since = output.Until
		}

		if r.batch <= 0 || output.Scanned < r.batch || !output.Until.After(since) {
			return
		}
		since = output.Until
	}
}

func (r *reconciler) stop(ctx context.Context) error {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

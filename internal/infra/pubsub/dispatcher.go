package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"localdrop/config"
	deliverycontext "localdrop/internal/delivery/context"
	"localdrop/internal/domain/service"
	"localdrop/internal/infra/metrics"

	"go.uber.org/fx"
)

// asyncDispatcher queues committed events and publishes them from a fixed pool of workers. A full
// queue drops the event: notifications are best effort and never hold up a request.
type asyncDispatcher struct {
	publisher      service.EventPublisher
	logger         *slog.Logger
	queue          chan *queuedEvent
	workers        int
	publishTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

type queuedEvent struct {
	ctx   context.Context
	event *service.PartnershipEvent
}

// DispatcherParams holds dependencies for the dispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.EventPublisher
}

// NewDispatcher creates the dispatcher and ties its workers to the application lifecycle
func NewDispatcher(params DispatcherParams) service.EventDispatcher {
	cfg := params.Config.Notification
	if cfg == nil {
		cfg = &config.NotificationConfig{}
	}

	d := newAsyncDispatcher(params.Publisher, params.Logger, cfg.QueueSize, cfg.Workers, cfg.PublishTimeout)

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.stop(ctx)
		},
	})

	return d
}

func newAsyncDispatcher(publisher service.EventPublisher, logger *slog.Logger, queueSize, workers int, publishTimeout time.Duration) *asyncDispatcher {
	return &asyncDispatcher{
		publisher:      publisher,
		logger:         logger,
		queue:          make(chan *queuedEvent, max(queueSize, 1)),
		workers:        max(workers, 1),
		publishTimeout: publishTimeout,
	}
}

// Dispatch enqueues the event without blocking. The caller's cancellation does not reach the
// publish, but its request-scoped values do.
func (d *asyncDispatcher) Dispatch(ctx context.Context, event *service.PartnershipEvent) {
	logger := deliverycontext.LoggerFrom(ctx, d.logger)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.CountNotification(metrics.StageQueued, metrics.ResultDropped)
		logger.WarnContext(ctx, "Dispatcher stopped, dropping event", slog.String("event_id", event.EventID))

		return
	}

	select {
	case d.queue <- &queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
		metrics.CountNotification(metrics.StageQueued, metrics.ResultSuccess)
		metrics.SetQueueDepth(len(d.queue))
	default:
		metrics.CountNotification(metrics.StageQueued, metrics.ResultDropped)
		logger.WarnContext(ctx, "Dispatch queue full, dropping event",
			slog.String("event_id", event.EventID),
			slog.String("type", string(event.Type)),
		)
	}
}

func (d *asyncDispatcher) start() {
	for range d.workers {
		d.wg.Add(1)
		go d.work()
	}
}

// stop closes the queue and waits for the workers to drain it, or for ctx to expire.
func (d *asyncDispatcher) stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		d.logger.Warn("Dispatcher stopped before the queue drained", slog.Int("pending", len(d.queue)))

		return ctx.Err()
	}
}

func (d *asyncDispatcher) work() {
	defer d.wg.Done()

	for item := range d.queue {
		metrics.SetQueueDepth(len(d.queue))
		d.publish(item)
	}
}

func (d *asyncDispatcher) publish(item *queuedEvent) {
	ctx := item.ctx
	if d.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.publishTimeout)
		defer cancel()
	}

	logger := deliverycontext.LoggerFrom(ctx, d.logger)

	if err := d.publisher.PublishPartnershipEvent(ctx, item.event); err != nil {
		metrics.CountNotification(metrics.StagePublished, metrics.ResultError)
		logger.ErrorContext(ctx, "Failed to publish partnership event",
			slog.String("event_id", item.event.EventID),
			slog.String("type", string(item.event.Type)),
			slog.String("target_account_ref", item.event.TargetAccountRef),
			slog.Any("error", err),
		)

		return
	}

	metrics.CountNotification(metrics.StagePublished, metrics.ResultSuccess)
}

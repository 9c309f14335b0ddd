package pubsub

import (
	"context"
	"log/slog"

	"localdrop/config"
	"localdrop/internal/domain/constants"
	"localdrop/internal/domain/service"
	"localdrop/internal/errors"

	"go.uber.org/fx"
)

// directPublisher delivers events in-process when no broker is configured
type directPublisher struct {
	notifier service.Notifier
}

// NewDirectPublisher creates a publisher that hands events straight to the notifier
func NewDirectPublisher(notifier service.Notifier) service.EventPublisher {
	return &directPublisher{notifier: notifier}
}

func (p *directPublisher) PublishPartnershipEvent(ctx context.Context, event *service.PartnershipEvent) error {
	return p.notifier.Notify(ctx, event.TargetAccountRef, event.Message())
}

func (p *directPublisher) Close() error {
	return nil
}

// noopPublisher drops events when neither a broker nor a notifier is available
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishPartnershipEvent(ctx context.Context, event *service.PartnershipEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Notifier service.Notifier `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		if params.Notifier == nil {
			logger.Info("PubSub not configured, using no-op publisher")

			return &noopPublisher{logger: logger}, nil
		}
		logger.Info("PubSub not configured, notifying in-process")

		return NewDirectPublisher(params.Notifier), nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module: the configured publisher behind the async dispatcher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher, NewDispatcher),
)

package main

import (
	"context"
	"log/slog"
	"os"

	"localdrop/config"
	"localdrop/internal/delivery"
	"localdrop/internal/delivery/worker"
	"localdrop/internal/delivery/worker/handler"
	"localdrop/internal/domain/service"
	"localdrop/internal/infra/clock"
	"localdrop/internal/infra/firebase"
	logs "localdrop/internal/infra/log"
	"localdrop/internal/infra/notification"
	"localdrop/internal/infra/persistence"
	"localdrop/internal/infra/pubsub"
	"localdrop/internal/infra/qrcode"
	"localdrop/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		persistence.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clock.NewRealClock,
			newQRCodeService,
			notification.NewNotificationService,
			notification.NewDeviceNotifier,
			// Repairs run by the recovery pass notify in-process instead of republishing
			pubsub.NewDirectPublisher,
			pubsub.NewDispatcher,
		),
	)
}

// newQRCodeService creates a QR code service from the qrcode config section
func newQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	return qrcode.NewQRCodeService(cfg.QRCode)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPartnershipService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewReconciler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

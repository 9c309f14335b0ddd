package main

import (
	"context"
	"log/slog"
	"os"

	"localdrop/config"
	"localdrop/internal/delivery"
	"localdrop/internal/delivery/api"
	"localdrop/internal/delivery/api/middleware"
	"localdrop/internal/delivery/api/router/handler"
	"localdrop/internal/domain/service"
	"localdrop/internal/infra/auth"
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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		pubsub.Module,
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
			auth.NewJWTService,
			newQRCodeService,
			notification.NewNotificationService,
			notification.NewDeviceNotifier,
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
			impl.NewAvailabilityService,
			impl.NewPartnershipService,
			impl.NewBusinessService,
			impl.NewUserService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAvailabilityHandler,
			handler.NewPartnershipHandler,
			handler.NewBusinessHandler,
			handler.NewUserHandler,
			handler.NewDeviceHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

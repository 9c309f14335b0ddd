package impl

import (
	"io"
	"log/slog"
	"time"

	"localdrop/config"
	"localdrop/internal/infra/clock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(commonRangeMeters float64, launchPostalCodes ...string) *config.Config {
	return &config.Config{
		Marketplace: &config.MarketplaceConfig{
			CommonDeliveryRangeMeters: commonRangeMeters,
			LaunchPostalCodes:         launchPostalCodes,
		},
		Reconcile: &config.ReconcileConfig{Batch: 100},
	}
}

// testNow is a Wednesday 23:30 UTC.
var testNow = time.Date(2024, 3, 6, 23, 30, 0, 0, time.UTC)

func newTestClock() *clock.FixedClock {
	return clock.NewFixedClock(testNow)
}

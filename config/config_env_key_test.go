package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"marketplace": map[string]any{
			"commonDeliveryRangeMeters": 8000,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MARKETPLACE_COMMONDELIVERYRANGEMETERS", want: "marketplace.commonDeliveryRangeMeters"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Storage.Driver != "postgres" {
		t.Fatalf("Storage.Driver = %q, want postgres", cfg.Storage.Driver)
	}
	if cfg.Marketplace == nil || cfg.PubSub == nil {
		t.Fatal("expected marketplace and pubsub sections to be allocated")
	}
	if cfg.Notification.QueueSize != defaultNotificationQueueSize || cfg.Notification.Workers != defaultNotificationWorkers {
		t.Fatalf("unexpected notification defaults: %+v", cfg.Notification)
	}
	if cfg.Reconcile.Lookback != defaultReconcileLookback || cfg.Reconcile.Batch != defaultReconcileBatch {
		t.Fatalf("unexpected reconcile defaults: %+v", cfg.Reconcile)
	}
	if cfg.Reconcile.Interval != 0 {
		t.Fatalf("Reconcile.Interval = %v, want disabled", cfg.Reconcile.Interval)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Fatalf("Metrics.Path = %q, want /metrics", cfg.Metrics.Path)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Storage:      &StorageConfig{Driver: "memory"},
		Notification: &NotificationConfig{QueueSize: 8, Workers: 1, PublishTimeout: time.Second},
	}
	applyDefaults(cfg)

	if cfg.Storage.Driver != "memory" {
		t.Fatalf("Storage.Driver = %q, want memory", cfg.Storage.Driver)
	}
	if cfg.Notification.QueueSize != 8 || cfg.Notification.Workers != 1 || cfg.Notification.PublishTimeout != time.Second {
		t.Fatalf("explicit notification values overwritten: %+v", cfg.Notification)
	}
}

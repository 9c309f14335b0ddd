// Package metrics holds the Prometheus collectors shared by the API and the worker.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "localdrop"

var (
	availabilityDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "availability_query_seconds",
		Help:      "Time spent answering availability queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})

	availabilityCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "availability_candidates",
		Help:      "Candidates returned by the range query per availability request.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	partnershipTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "partnership_transitions_total",
		Help:      "Partnership transitions grouped by action and outcome.",
	}, []string{"action", "result"})

	reconciledPairs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "partnership_reconciled_pairs_total",
		Help:      "Pairs examined by the recovery pass grouped by outcome.",
	}, []string{"result"})

	notificationEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_events_total",
		Help:      "Partnership events grouped by dispatch stage and outcome.",
	}, []string{"stage", "result"})

	notificationQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Events waiting in the in-process dispatch queue.",
	})

	pushDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "push_deliveries_total",
		Help:      "Device push deliveries grouped by outcome.",
	}, []string{"result"})
)

// Outcome labels.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultEmpty   = "empty"
	ResultDropped = "dropped"
	ResultInvalid = "invalid_token"
)

// Dispatch stages.
const (
	StageQueued    = "queued"
	StagePublished = "published"
	StageDelivered = "delivered"
)

// ObserveAvailability records one availability query.
func ObserveAvailability(start time.Time, candidates, results int, err error) {
	result := ResultSuccess
	switch {
	case err != nil:
		result = ResultError
	case results == 0:
		result = ResultEmpty
	}

	availabilityDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	if err == nil {
		availabilityCandidates.Observe(float64(candidates))
	}
}

// CountTransition records the outcome of a partnership transition.
func CountTransition(action string, err error) {
	partnershipTransitions.WithLabelValues(action, resultOf(err)).Inc()
}

// CountReconciled records one pair examined by the recovery pass.
func CountReconciled(result string) {
	reconciledPairs.WithLabelValues(result).Inc()
}

// CountNotification records a partnership event passing a dispatch stage.
func CountNotification(stage, result string) {
	notificationEvents.WithLabelValues(stage, result).Inc()
}

// SetQueueDepth reports the current dispatch queue length.
func SetQueueDepth(depth int) {
	notificationQueueDepth.Set(float64(depth))
}

// CountPushDeliveries adds device delivery outcomes.
func CountPushDeliveries(success, failure, invalid int) {
	pushDeliveries.WithLabelValues(ResultSuccess).Add(float64(success))
	pushDeliveries.WithLabelValues(ResultError).Add(float64(max(failure-invalid, 0)))
	pushDeliveries.WithLabelValues(ResultInvalid).Add(float64(invalid))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func resultOf(err error) string {
	if err != nil {
		return ResultError
	}

	return ResultSuccess
}

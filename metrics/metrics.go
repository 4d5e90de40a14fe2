// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package metrics publishes Prometheus counters, gauges, and histograms for
// a Cable session. A Recorder is optional: a nil *Recorder is valid and
// every method on it is a no-op, so instrumenting a Client costs nothing
// for callers who never call WithMetrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures a Recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "cable").
	Namespace string
	// Subsystem is the metrics subsystem (default: "").
	Subsystem string
	// ConstLabels are constant labels added to every metric.
	ConstLabels prometheus.Labels
	// Buckets are the histogram buckets used for latency/RTT observations.
	// Default: prometheus.DefBuckets.
	Buckets []float64
	// Registry is the registerer metrics are registered against.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures a Config.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) { c.Namespace = namespace }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) { c.Subsystem = subsystem }
}

// WithConstLabels sets constant labels applied to every metric.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) { c.ConstLabels = labels }
}

// WithBuckets overrides the default latency/RTT histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registerer metrics are registered
// against.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) { c.Registry = registry }
}

func defaultConfig() Config {
	return Config{
		Namespace: "cable",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Recorder holds every metric a Client publishes. Construct one with
// NewRecorder and pass it to WithMetrics.
type Recorder struct {
	connectAttempts  *prometheus.CounterVec
	retryDelay       prometheus.Histogram
	inFlightMessages prometheus.Gauge
	inFlightRequests prometheus.Gauge
	requestLatency   prometheus.Histogram
	heartbeatRTT     prometheus.Histogram
	sessionsClosed   *prometheus.CounterVec
}

// NewRecorder builds a Recorder, registering its metrics against opts'
// Registry (prometheus.DefaultRegisterer if unset).
func NewRecorder(opts ...Option) *Recorder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Recorder{
		connectAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "connect_attempts_total",
			Help:        "Total number of connection attempts by outcome.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"outcome"}),

		retryDelay: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "retry_delay_seconds",
			Help:        "Delay chosen by the retry controller before each reconnect attempt.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),

		inFlightMessages: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "inflight_messages",
			Help:        "Number of QoS-1 messages awaiting a Messack.",
			ConstLabels: cfg.ConstLabels,
		}),

		inFlightRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "inflight_requests",
			Help:        "Number of Requests awaiting a Response.",
			ConstLabels: cfg.ConstLabels,
		}),

		requestLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "Time from sending a Request to receiving its Response.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),

		heartbeatRTT: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "heartbeat_rtt_seconds",
			Help:        "Time from sending a Ping to receiving its Pong.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),

		sessionsClosed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "sessions_closed_total",
			Help:        "Total number of times the session reached Closed, by reason.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"reason"}),
	}
}

// ConnectAttempt records a connection attempt's outcome. The Client passes
// the Connack code's name: "accepted", "rejected", "duplicate", or
// "unknown".
func (r *Recorder) ConnectAttempt(outcome string) {
	if r == nil {
		return
	}
	r.connectAttempts.WithLabelValues(outcome).Inc()
}

// RetryDelay records a delay chosen by the retry controller.
func (r *Recorder) RetryDelay(d time.Duration) {
	if r == nil {
		return
	}
	r.retryDelay.Observe(d.Seconds())
}

// MessageInFlight adjusts the in-flight QoS-1 message gauge by delta.
func (r *Recorder) MessageInFlight(delta int) {
	if r == nil {
		return
	}
	r.inFlightMessages.Add(float64(delta))
}

// RequestInFlight adjusts the in-flight request gauge by delta.
func (r *Recorder) RequestInFlight(delta int) {
	if r == nil {
		return
	}
	r.inFlightRequests.Add(float64(delta))
}

// RequestLatency records the round-trip time of a completed Request.
func (r *Recorder) RequestLatency(d time.Duration) {
	if r == nil {
		return
	}
	r.requestLatency.Observe(d.Seconds())
}

// HeartbeatRTT records the round-trip time between a Ping and its Pong.
func (r *Recorder) HeartbeatRTT(d time.Duration) {
	if r == nil {
		return
	}
	r.heartbeatRTT.Observe(d.Seconds())
}

// SessionClosed records the session reaching Closed for the given reason.
// The Client passes "client" for a Close call and "give_up" when the retry
// controller declines to reconnect.
func (r *Recorder) SessionClosed(reason string) {
	if r == nil {
		return
	}
	r.sessionsClosed.WithLabelValues(reason).Inc()
}

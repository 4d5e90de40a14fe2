// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cablehq/cable-go/metrics"
)

func newTestRecorder() (*metrics.Recorder, *prometheus.Registry) {
	registry := prometheus.NewRegistry()
	return metrics.NewRecorder(metrics.WithRegistry(registry)), registry
}

func TestConnectAttemptIncrementsByOutcome(t *testing.T) {
	r, registry := newTestRecorder()
	r.ConnectAttempt("accepted")
	r.ConnectAttempt("accepted")
	r.ConnectAttempt("rejected")

	expected := `
		# HELP cable_connect_attempts_total Total number of connection attempts by outcome.
		# TYPE cable_connect_attempts_total counter
		cable_connect_attempts_total{outcome="accepted"} 2
		cable_connect_attempts_total{outcome="rejected"} 1
	`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "cable_connect_attempts_total"))
}

func TestMessageInFlightGaugeTracksDelta(t *testing.T) {
	r, registry := newTestRecorder()
	r.MessageInFlight(1)
	r.MessageInFlight(1)
	r.MessageInFlight(-1)

	expected := `
		# HELP cable_inflight_messages Number of QoS-1 messages awaiting a Messack.
		# TYPE cable_inflight_messages gauge
		cable_inflight_messages 1
	`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "cable_inflight_messages"))
}

func TestHeartbeatRTTObservesSamples(t *testing.T) {
	r, registry := newTestRecorder()
	r.HeartbeatRTT(15 * time.Millisecond)
	r.HeartbeatRTT(25 * time.Millisecond)

	families, err := registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "cable_heartbeat_rtt_seconds" {
			continue
		}
		assert.Equal(t, uint64(2), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		return
	}
	t.Fatal("cable_heartbeat_rtt_seconds not found")
}

func TestSessionClosedCountsByReason(t *testing.T) {
	r, registry := newTestRecorder()
	r.SessionClosed("client")
	r.SessionClosed("give_up")
	r.SessionClosed("give_up")

	expected := `
		# HELP cable_sessions_closed_total Total number of times the session reached Closed, by reason.
		# TYPE cable_sessions_closed_total counter
		cable_sessions_closed_total{reason="client"} 1
		cable_sessions_closed_total{reason="give_up"} 2
	`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "cable_sessions_closed_total"))
}

func TestNilRecorderIsANoop(t *testing.T) {
	var r *metrics.Recorder
	assert.NotPanics(t, func() {
		r.ConnectAttempt("accepted")
		r.RetryDelay(time.Second)
		r.MessageInFlight(1)
		r.RequestInFlight(1)
		r.RequestLatency(time.Second)
		r.HeartbeatRTT(time.Second)
		r.SessionClosed("client")
	})
}

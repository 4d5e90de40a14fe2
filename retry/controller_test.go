// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package retry_test

import (
	"testing"

	"github.com/cablehq/cable-go/packet"
	"github.com/cablehq/cable-go/retry"
	"github.com/stretchr/testify/require"
)

func TestControllerDefaultBackoffUnlimitedRetries(t *testing.T) {
	c := &retry.Controller{}
	for i := 0; i < 100; i++ {
		_, ok := c.ShouldRetry(retry.PingTimeout{})
		require.True(t, ok)
	}
}

func TestControllerRespectsLimit(t *testing.T) {
	c := &retry.Controller{Limit: 3, Backoff: retry.Const{Delay: 0}}
	for i := 0; i < 3; i++ {
		_, ok := c.ShouldRetry(retry.PingTimeout{})
		require.True(t, ok)
	}
	_, ok := c.ShouldRetry(retry.PingTimeout{})
	require.False(t, ok)
}

func TestControllerResetRestoresLimit(t *testing.T) {
	c := &retry.Controller{Limit: 1, Backoff: retry.Const{Delay: 0}}
	_, ok := c.ShouldRetry(retry.PingTimeout{})
	require.True(t, ok)
	_, ok = c.ShouldRetry(retry.PingTimeout{})
	require.False(t, ok)

	c.Reset()
	_, ok = c.ShouldRetry(retry.PingTimeout{})
	require.True(t, ok)
}

func TestControllerSuppressPreventsRetry(t *testing.T) {
	c := &retry.Controller{
		Backoff: retry.Const{Delay: 0},
		Suppress: func(r retry.Reason) bool {
			cf, ok := r.(retry.ConnectFailed)
			return ok && cf.Code == packet.Rejected
		},
	}
	_, ok := c.ShouldRetry(retry.ConnectFailed{Code: packet.Rejected})
	require.False(t, ok)

	_, ok = c.ShouldRetry(retry.ConnectFailed{Code: packet.Duplicate})
	require.True(t, ok)
}

func TestControllerDelayComesFromBackoff(t *testing.T) {
	c := &retry.Controller{Backoff: retry.Const{Delay: 2}}
	d, ok := c.ShouldRetry(retry.NetworkError{})
	require.True(t, ok)
	require.Equal(t, float64(2), d.Seconds())
}

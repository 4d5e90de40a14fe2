// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package retry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cablehq/cable-go/packet"
	"github.com/cablehq/cable-go/retry"
)

func TestSuppressOnCloseCodesMatches(t *testing.T) {
	suppress := retry.SuppressOnCloseCodes(packet.CloseAuthFailure, packet.CloseUnauthorized)
	assert.True(t, suppress(retry.ServerClosed{Code: packet.CloseAuthFailure}))
	assert.True(t, suppress(retry.ServerClosed{Code: packet.CloseUnauthorized}))
}

func TestSuppressOnCloseCodesIgnoresOtherCodes(t *testing.T) {
	suppress := retry.SuppressOnCloseCodes(packet.CloseAuthFailure)
	assert.False(t, suppress(retry.ServerClosed{Code: packet.CloseNormal}))
}

func TestSuppressOnCloseCodesIgnoresOtherReasons(t *testing.T) {
	suppress := retry.SuppressOnCloseCodes(packet.CloseAuthFailure)
	assert.False(t, suppress(retry.ConnectFailed{Code: packet.Rejected}))
	assert.False(t, suppress(retry.PingTimeout{}))
}

// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import (
	"time"

	"github.com/cablehq/cable-go/retry"
)

const (
	defaultPingInterval    = 30 * time.Second
	defaultPingTimeout     = 5 * time.Second
	defaultRequestTimeout  = 10 * time.Second
	defaultMessageTimeout  = 10 * time.Second
	defaultMessageMaxRetry = 5
)

func defaultBackoff() retry.Backoff {
	return retry.Exponential{Factor: 2, Jitter: 0.1}
}

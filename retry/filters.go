// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package retry

import (
	"github.com/cablehq/cable-go/internal"
	"github.com/cablehq/cable-go/packet"
)

// SuppressOnCloseCodes returns a Suppress predicate that gives up
// reconnecting when the peer closed the session with one of codes — a
// permanent rejection such as auth failure that a fresh Connect would only
// repeat.
func SuppressOnCloseCodes(codes ...packet.CloseCode) func(Reason) bool {
	set := internal.NewSet[packet.CloseCode]()
	for _, code := range codes {
		set.Add(code)
	}
	return func(reason Reason) bool {
		closed, ok := reason.(ServerClosed)
		return ok && set.Contains(closed.Code)
	}
}

// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package wallclock abstracts time so the session engine's timers (heartbeat,
// request/message timeouts, reconnect backoff) can be driven deterministically
// in tests.
package wallclock

import "time"

type (
	// Clock abstracts the subset of package time the session engine needs.
	Clock interface {
		Now() time.Time
		After(d time.Duration) <-chan time.Time
		NewTimer(d time.Duration) Timer
	}

	// Timer abstracts the functionality of time.Timer.
	Timer interface {
		C() <-chan time.Time
		Reset(d time.Duration) bool
		Stop() bool
	}

	realClock struct{}

	realTimer struct {
		*time.Timer
	}
)

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

func (realClock) NewTimer(d time.Duration) Timer {
	return realTimer{Timer: time.NewTimer(d)}
}

func (t realTimer) C() <-chan time.Time { return t.Timer.C }

// Instance is a Clock singleton used for indirect time-based references.
// Test code can replace it to interpose on and control apparent time.
var Instance Clock = realClock{}

// Copyright (c) 2025 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package logger

import (
	"sync"
	"time"
)

// ThrottleMetrics tracks throttle activity on a ConsoleLogger.
type ThrottleMetrics struct {
	Emitted     int64 // Throttled calls that produced a line
	Suppressed  int64 // Throttled calls dropped inside a throttle window
	TrackedKeys int   // Distinct (level, format) pairs with an active window
}

// throttleKey identifies an independent throttle window. Keying on the
// format template rather than the rendered message keeps a repeated call
// site throttled even when its arguments change every call.
type throttleKey struct {
	level  Level
	format string
}

// throttleState tracks the last emission time for each (level, format) pair.
//
// The zero value is ready for use. State grows with the number of distinct
// format strings passed to throttled calls; call sites pass literal format
// templates, so the map stays small.
type throttleState struct {
	mu         sync.Mutex
	last       map[throttleKey]time.Time
	emitted    int64
	suppressed int64

	// now is replaceable in tests; nil means time.Now.
	now func() time.Time
}

// allow reports whether a throttled call at level with the given format
// template may emit. The first call for a key always emits, as does any call
// with a non-positive period. Later calls emit only once at least period has
// elapsed since the last emission for that key.
func (t *throttleState) allow(level Level, period time.Duration, format string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if period <= 0 {
		// No window to enforce, and no key to track.
		t.emitted++
		return true
	}

	now := t.timeNow()
	key := throttleKey{level: level, format: format}

	if lastEmit, seen := t.last[key]; seen && now.Sub(lastEmit) < period {
		t.suppressed++
		return false
	}

	if t.last == nil {
		t.last = make(map[throttleKey]time.Time)
	}
	t.last[key] = now
	t.emitted++
	return true
}

// timeNow returns the current time from the configured clock.
// Callers must hold mu.
func (t *throttleState) timeNow() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

// metrics returns a consistent snapshot of the throttle counters.
func (t *throttleState) metrics() ThrottleMetrics {
	t.mu.Lock()
	defer t.mu.Unlock()

	return ThrottleMetrics{
		Emitted:     t.emitted,
		Suppressed:  t.suppressed,
		TrackedKeys: len(t.last),
	}
}

// reset clears all throttle windows and counters.
func (t *throttleState) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last = nil
	t.emitted = 0
	t.suppressed = 0
}

// ThrottleMetrics returns a snapshot of throttle activity so far.
func (c *ConsoleLogger) ThrottleMetrics() ThrottleMetrics { return c.throttle.metrics() }

// ResetThrottle clears all throttle windows and counters (useful for testing).
func (c *ConsoleLogger) ResetThrottle() { c.throttle.reset() }

// Copyright (c) 2026 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package replay

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Doom4535/rosflight/src/logger"
)

// levelOrder lists the severity levels in display order.
var levelOrder = []logger.Level{
	logger.LevelDebug,
	logger.LevelInfo,
	logger.LevelWarn,
	logger.LevelError,
	logger.LevelFatal,
}

// LevelStats accumulates the outcome of one level's dispatches.
type LevelStats struct {
	// Attempts counts logger calls made at the level, throttled and direct.
	Attempts int
	// Emitted counts the lines the logger produced: every direct call plus
	// the throttled calls that passed their window. Only meaningful when the
	// result carries throttle counts.
	Emitted int64
	// Suppressed counts the throttled calls dropped inside a throttle
	// window. Only meaningful when the result carries throttle counts.
	Suppressed int64
}

// Result summarizes a completed (or cancelled) run.
type Result struct {
	// Levels holds dispatch statistics per severity level. Levels with no
	// dispatches have no entry.
	Levels map[logger.Level]*LevelStats
	// Throttled counts the calls routed through throttled variants.
	Throttled int
	// HasThrottleCounts reports whether the logger exposed throttle metrics,
	// such as [logger.ConsoleLogger]. Without them Emitted and Suppressed
	// stay zero, since the engine cannot see what a logger discards.
	HasThrottleCounts bool
}

// stats returns the mutable entry for level, creating it on first use.
func (r *Result) stats(level logger.Level) *LevelStats {
	if r.Levels == nil {
		r.Levels = make(map[logger.Level]*LevelStats)
	}
	s, ok := r.Levels[level]
	if !ok {
		s = &LevelStats{}
		r.Levels[level] = s
	}
	return s
}

// Total returns the number of logger calls dispatched across all levels.
func (r *Result) Total() int {
	total := 0
	for _, s := range r.Levels {
		total += s.Attempts
	}
	return total
}

// Merge folds other's counts into r, for aggregating repeated runs of the
// same scenario.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	for level, s := range other.Levels {
		into := r.stats(level)
		into.Attempts += s.Attempts
		into.Emitted += s.Emitted
		into.Suppressed += s.Suppressed
	}
	r.Throttled += other.Throttled
	r.HasThrottleCounts = r.HasThrottleCounts || other.HasThrottleCounts
}

// Rows returns one summary row per level, ordered from DEBUG to FATAL, for
// table rendering: level name, attempts, emitted, suppressed, and the console
// stream the level routes to. Emitted and suppressed render as "-" when the
// logger exposed no throttle counters.
func (r *Result) Rows() [][]string {
	rows := make([][]string, 0, len(levelOrder))
	for _, level := range levelOrder {
		var s LevelStats
		if have, ok := r.Levels[level]; ok {
			s = *have
		}

		emitted, suppressed := "-", "-"
		if r.HasThrottleCounts {
			emitted = strconv.FormatInt(s.Emitted, 10)
			suppressed = strconv.FormatInt(s.Suppressed, 10)
		}

		rows = append(rows, []string{
			level.String(),
			strconv.Itoa(s.Attempts),
			emitted,
			suppressed,
			level.StreamName(),
		})
	}
	return rows
}

// throttleMetricsProvider is implemented by loggers that track throttle
// activity, such as [logger.ConsoleLogger].
type throttleMetricsProvider interface {
	ThrottleMetrics() logger.ThrottleMetrics
}

// levelMethods pairs the direct and throttled logger methods for one level.
type levelMethods struct {
	direct    func(format string, args ...any)
	throttled func(period time.Duration, format string, args ...any)
}

// methodTable maps each level to the logger methods that serve it. Dispatch
// goes through the Logger interface, so any implementation works here.
func methodTable(log logger.Logger) map[logger.Level]levelMethods {
	return map[logger.Level]levelMethods{
		logger.LevelDebug: {direct: log.Debug, throttled: log.DebugThrottle},
		logger.LevelInfo:  {direct: log.Info, throttled: log.InfoThrottle},
		logger.LevelWarn:  {direct: log.Warn, throttled: log.WarnThrottle},
		logger.LevelError: {direct: log.Error, throttled: log.ErrorThrottle},
		logger.LevelFatal: {direct: log.Fatal, throttled: log.FatalThrottle},
	}
}

// Run replays the scenario against log, pausing between repetitions and
// honoring ctx cancellation during those pauses. A nil log replays against
// [logger.NopLogger].
//
// When log exposes throttle metrics, Run reads them before and after each
// event and attributes the delta to the event's level, so the per-level
// emitted and suppressed counts are only accurate while nothing else logs
// through the same logger.
//
// Run returns the counts accumulated so far even when it stops early, so a
// cancelled run still reports what it dispatched.
func Run(ctx context.Context, log logger.Logger, scenario *Scenario) (*Result, error) {
	if log == nil {
		log = logger.NopLogger{}
	}

	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	table := methodTable(log)
	provider, hasCounts := log.(throttleMetricsProvider)
	result := &Result{
		Levels:            make(map[logger.Level]*LevelStats),
		HasThrottleCounts: hasCounts,
	}

	for i := range scenario.Events {
		event := &scenario.Events[i]

		level, err := logger.ParseLevel(event.Level)
		if err != nil {
			// Validate already screened levels; a failure here means the
			// scenario was mutated after validation.
			return result, fmt.Errorf("event %d: %w", i, err)
		}

		methods := table[level]
		period := event.Period(scenario.Defaults)
		stats := result.stats(level)

		var before logger.ThrottleMetrics
		if hasCounts {
			before = provider.ThrottleMetrics()
		}

		var stopErr error
		for rep := range event.Count() {
			if rep > 0 {
				if err := sleep(ctx, event.Interval()); err != nil {
					stopErr = fmt.Errorf("event %d: %w", i, err)
					break
				}
			}

			if event.Throttle {
				methods.throttled(period, event.Message, event.Args...)
				result.Throttled++
			} else {
				methods.direct(event.Message, event.Args...)
				if hasCounts {
					// A direct call always produces its line; only
					// throttled calls can be suppressed.
					stats.Emitted++
				}
			}
			stats.Attempts++
		}

		if hasCounts {
			after := provider.ThrottleMetrics()
			stats.Emitted += after.Emitted - before.Emitted
			stats.Suppressed += after.Suppressed - before.Suppressed
		}

		if stopErr != nil {
			return result, stopErr
		}
	}

	return result, nil
}

// sleep pauses for d, returning early with ctx's error when cancelled. A
// non-positive d only checks for cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Copyright (c) 2025 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package logger

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Tag is the subsystem tag included in every console log line.
const Tag = "mavrosflight"

// ErrUnknownLevel is returned by ParseLevel when the input does not name a
// known severity level.
var ErrUnknownLevel = errors.New("logger: unknown level name")

// Logger defines the interface for leveled logging operations.
// It provides a formatted method and a throttled variant for each of the
// five severity levels.
//
// Callers depend only on this interface, so console output, test capture,
// and discarded output are interchangeable. All methods use [fmt.Sprintf]
// semantics: a mismatched format and argument list yields fmt's "%!"
// diagnostic tokens in the message rather than failing.
type Logger interface {
	// Debug logs a formatted message at DEBUG level.
	Debug(format string, args ...any)
	// DebugThrottle logs a formatted message at DEBUG level, emitting at
	// most one message per period for each distinct format string.
	DebugThrottle(period time.Duration, format string, args ...any)
	// Info logs a formatted message at INFO level.
	Info(format string, args ...any)
	// InfoThrottle is the throttled variant of Info.
	InfoThrottle(period time.Duration, format string, args ...any)
	// Warn logs a formatted message at WARN level.
	Warn(format string, args ...any)
	// WarnThrottle is the throttled variant of Warn.
	WarnThrottle(period time.Duration, format string, args ...any)
	// Error logs a formatted message at ERROR level.
	Error(format string, args ...any)
	// ErrorThrottle is the throttled variant of Error.
	ErrorThrottle(period time.Duration, format string, args ...any)
	// Fatal logs a formatted message at FATAL level. It does not
	// terminate the process; the caller decides what follows.
	Fatal(format string, args ...any)
	// FatalThrottle is the throttled variant of Fatal.
	FatalThrottle(period time.Duration, format string, args ...any)
}

// ParseLevel converts a level name such as "debug" or "WARN" into its Level
// value. Matching is case-insensitive. It returns an error wrapping
// ErrUnknownLevel when the name is not recognized.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("parsing level %q: %w", s, ErrUnknownLevel)
}

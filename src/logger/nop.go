// Copyright (c) 2025 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package logger

import "time"

// NopLogger is a no-op Logger implementation that discards all messages.
// It is the default logger when no logger is configured, and is handy in
// tests that exercise code paths without caring about log output.
type NopLogger struct{}

// Debug implements Logger.Debug (no-op).
func (NopLogger) Debug(format string, args ...any) {}

// DebugThrottle implements Logger.DebugThrottle (no-op).
func (NopLogger) DebugThrottle(period time.Duration, format string, args ...any) {}

// Info implements Logger.Info (no-op).
func (NopLogger) Info(format string, args ...any) {}

// InfoThrottle implements Logger.InfoThrottle (no-op).
func (NopLogger) InfoThrottle(period time.Duration, format string, args ...any) {}

// Warn implements Logger.Warn (no-op).
func (NopLogger) Warn(format string, args ...any) {}

// WarnThrottle implements Logger.WarnThrottle (no-op).
func (NopLogger) WarnThrottle(period time.Duration, format string, args ...any) {}

// Error implements Logger.Error (no-op).
func (NopLogger) Error(format string, args ...any) {}

// ErrorThrottle implements Logger.ErrorThrottle (no-op).
func (NopLogger) ErrorThrottle(period time.Duration, format string, args ...any) {}

// Fatal implements Logger.Fatal (no-op).
func (NopLogger) Fatal(format string, args ...any) {}

// FatalThrottle implements Logger.FatalThrottle (no-op).
func (NopLogger) FatalThrottle(period time.Duration, format string, args ...any) {}

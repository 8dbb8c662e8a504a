// Copyright (c) 2025 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Doom4535/rosflight/src/internal/helper/gc"
)

// ConsoleLogger implements Logger by writing tagged lines to a pair of
// console streams. DEBUG and INFO messages go to the output stream, while
// WARN, ERROR, and FATAL messages go to the error stream.
//
// Each message becomes a single line of the form:
//
//	[mavrosflight][<LEVEL>]: <formatted message>
//
// Lines are assembled in a pooled buffer and written with one Write call, so
// lines from concurrent goroutines never interleave. Write errors are
// ignored: logging is fire-and-forget and never fails the caller.
//
// ConsoleLogger is safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	throttle throttleState
}

// NewConsoleLogger creates a console logger writing to [os.Stdout] and
// [os.Stderr].
func NewConsoleLogger() *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stdout, os.Stderr)
}

// NewConsoleLoggerTo creates a console logger writing to the given streams.
// A nil out falls back to [os.Stdout] and a nil errOut to [os.Stderr], so
// callers can redirect one stream and leave the other alone.
func NewConsoleLoggerTo(out, errOut io.Writer) *ConsoleLogger {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &ConsoleLogger{out: out, errOut: errOut}
}

// Debug logs a formatted message at DEBUG level.
func (c *ConsoleLogger) Debug(format string, args ...any) { c.log(LevelDebug, format, args...) }

// DebugThrottle logs a formatted message at DEBUG level, emitting at most
// one message per period for each distinct format string.
func (c *ConsoleLogger) DebugThrottle(period time.Duration, format string, args ...any) {
	c.logThrottle(LevelDebug, period, format, args...)
}

// Info logs a formatted message at INFO level.
func (c *ConsoleLogger) Info(format string, args ...any) { c.log(LevelInfo, format, args...) }

// InfoThrottle is the throttled variant of Info.
func (c *ConsoleLogger) InfoThrottle(period time.Duration, format string, args ...any) {
	c.logThrottle(LevelInfo, period, format, args...)
}

// Warn logs a formatted message at WARN level.
func (c *ConsoleLogger) Warn(format string, args ...any) { c.log(LevelWarn, format, args...) }

// WarnThrottle is the throttled variant of Warn.
func (c *ConsoleLogger) WarnThrottle(period time.Duration, format string, args ...any) {
	c.logThrottle(LevelWarn, period, format, args...)
}

// Error logs a formatted message at ERROR level.
func (c *ConsoleLogger) Error(format string, args ...any) { c.log(LevelError, format, args...) }

// ErrorThrottle is the throttled variant of Error.
func (c *ConsoleLogger) ErrorThrottle(period time.Duration, format string, args ...any) {
	c.logThrottle(LevelError, period, format, args...)
}

// Fatal logs a formatted message at FATAL level. It does not terminate the
// process; the caller decides what follows.
func (c *ConsoleLogger) Fatal(format string, args ...any) { c.log(LevelFatal, format, args...) }

// FatalThrottle is the throttled variant of Fatal.
func (c *ConsoleLogger) FatalThrottle(period time.Duration, format string, args ...any) {
	c.logThrottle(LevelFatal, period, format, args...)
}

// log assembles a tagged line in a pooled buffer and writes it to the stream
// configured for level.
func (c *ConsoleLogger) log(level Level, format string, args ...any) {
	buf := gc.Default.Get()

	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteByte('[')
	buf.WriteString(Tag)
	buf.WriteString("][")
	buf.WriteString(level.String())
	buf.WriteString("]: ")
	fmt.Fprintf(buf, format, args...)
	buf.WriteByte('\n')

	w := c.stream(level)

	// Errors are dropped; logging is fire-and-forget.
	c.mu.Lock()
	w.Write(buf.Bytes())
	c.mu.Unlock()
}

// logThrottle forwards to log when the throttle window for the
// (level, format) pair has elapsed.
func (c *ConsoleLogger) logThrottle(level Level, period time.Duration, format string, args ...any) {
	if !c.throttle.allow(level, period, format) {
		return
	}
	c.log(level, format, args...)
}

// stream returns the writer configured for level.
func (c *ConsoleLogger) stream(level Level) io.Writer {
	if level.errStream() {
		return c.errOut
	}
	return c.out
}

// Copyright (c) 2026 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package logger_test

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/Doom4535/rosflight/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "String",
			testFunc: func(t *testing.T) {
				assert.Equal(t, "DEBUG", logger.LevelDebug.String(), "expected DEBUG name")
				assert.Equal(t, "INFO", logger.LevelInfo.String(), "expected INFO name")
				assert.Equal(t, "WARN", logger.LevelWarn.String(), "expected WARN name")
				assert.Equal(t, "ERROR", logger.LevelError.String(), "expected ERROR name")
				assert.Equal(t, "FATAL", logger.LevelFatal.String(), "expected FATAL name")
			},
		},
		{
			name: "String_OutOfRange",
			testFunc: func(t *testing.T) {
				assert.Equal(t, "LEVEL(9)", logger.Level(9).String(), "expected placeholder name for unknown level")
				assert.Equal(t, "LEVEL(-1)", logger.Level(-1).String(), "expected placeholder name for negative level")
			},
		},
		{
			name: "StreamName",
			testFunc: func(t *testing.T) {
				assert.Equal(t, "stdout", logger.LevelDebug.StreamName(), "expected DEBUG on stdout")
				assert.Equal(t, "stdout", logger.LevelInfo.StreamName(), "expected INFO on stdout")
				assert.Equal(t, "stderr", logger.LevelWarn.StreamName(), "expected WARN on stderr")
				assert.Equal(t, "stderr", logger.LevelError.StreamName(), "expected ERROR on stderr")
				assert.Equal(t, "stderr", logger.LevelFatal.StreamName(), "expected FATAL on stderr")
				assert.Equal(t, "stderr", logger.Level(9).StreamName(), "expected unknown levels on stderr")
			},
		},
		{
			name: "Ordering",
			testFunc: func(t *testing.T) {
				assert.True(t, logger.LevelDebug < logger.LevelInfo, "expected DEBUG to order before INFO")
				assert.True(t, logger.LevelWarn < logger.LevelError, "expected WARN to order before ERROR")
				assert.True(t, logger.LevelError < logger.LevelFatal, "expected ERROR to order before FATAL")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    logger.Level
		wantErr bool
	}{
		{name: "Debug_Lowercase", input: "debug", want: logger.LevelDebug},
		{name: "Info_Lowercase", input: "info", want: logger.LevelInfo},
		{name: "Warn_Uppercase", input: "WARN", want: logger.LevelWarn},
		{name: "Error_MixedCase", input: "Error", want: logger.LevelError},
		{name: "Fatal_MixedCase", input: "FaTaL", want: logger.LevelFatal},
		{name: "Unknown", input: "trace", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Whitespace", input: " info", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err, "expected an error for input %q", tt.input)
				assert.ErrorIs(t, err, logger.ErrUnknownLevel, "expected error to wrap ErrUnknownLevel")
				return
			}

			require.NoError(t, err, "unexpected error for input %q", tt.input)
			assert.Equal(t, tt.want, got, "expected level %v for input %q", tt.want, tt.input)
		})
	}
}

func TestConsoleLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "LineFormat",
			testFunc: func(t *testing.T) {
				var out, errOut bytes.Buffer
				log := logger.NewConsoleLoggerTo(&out, &errOut)

				log.Info("altitude hold engaged")

				assert.Equal(t, "[mavrosflight][INFO]: altitude hold engaged\n", out.String(), "expected exact tagged line on the output stream")
				assert.Zero(t, errOut.Len(), "expected nothing on the error stream")
			},
		},
		{
			name: "FormattedArguments",
			testFunc: func(t *testing.T) {
				var out, errOut bytes.Buffer
				log := logger.NewConsoleLoggerTo(&out, &errOut)

				log.Info("battery at %d%% (%.1fV)", 73, 11.1)

				assert.Equal(t, "[mavrosflight][INFO]: battery at 73% (11.1V)\n", out.String(), "expected formatted arguments in the line")
			},
		},
		{
			name: "StreamRouting",
			testFunc: func(t *testing.T) {
				var out, errOut bytes.Buffer
				log := logger.NewConsoleLoggerTo(&out, &errOut)

				log.Debug("d")
				log.Info("i")
				log.Warn("w")
				log.Error("e")
				log.Fatal("f")

				wantOut := "[mavrosflight][DEBUG]: d\n[mavrosflight][INFO]: i\n"
				wantErr := "[mavrosflight][WARN]: w\n[mavrosflight][ERROR]: e\n[mavrosflight][FATAL]: f\n"

				assert.Equal(t, wantOut, out.String(), "expected DEBUG and INFO on the output stream")
				assert.Equal(t, wantErr, errOut.String(), "expected WARN, ERROR, and FATAL on the error stream")
			},
		},
		{
			name: "FormatMismatch_WrongVerb",
			testFunc: func(t *testing.T) {
				var out, errOut bytes.Buffer
				log := logger.NewConsoleLoggerTo(&out, &errOut)

				format := "count: %d"
				log.Info(format, "oops")

				output := out.String()
				assert.Contains(t, output, "%!d(string=oops)", "expected fmt mismatch token instead of a crash")
				assert.True(t, strings.HasPrefix(output, "[mavrosflight][INFO]: "), "expected the line to stay tagged")
			},
		},
		{
			name: "FormatMismatch_ExtraArgs",
			testFunc: func(t *testing.T) {
				var out, errOut bytes.Buffer
				log := logger.NewConsoleLoggerTo(&out, &errOut)

				format := "ready"
				log.Info(format, 42)

				assert.Contains(t, out.String(), "%!(EXTRA int=42)", "expected fmt extra-argument token")
			},
		},
		{
			name: "FormatMismatch_MissingArgs",
			testFunc: func(t *testing.T) {
				var out, errOut bytes.Buffer
				log := logger.NewConsoleLoggerTo(&out, &errOut)

				format := "value: %d and %s"
				log.Info(format, 7)

				assert.Contains(t, out.String(), "%!s(MISSING)", "expected fmt missing-argument token")
			},
		},
		{
			name: "Fatal_ReturnsToCaller",
			testFunc: func(t *testing.T) {
				var out, errOut bytes.Buffer
				log := logger.NewConsoleLoggerTo(&out, &errOut)

				log.Fatal("lost mavlink heartbeat")

				// Reaching this assertion proves Fatal returned.
				assert.Equal(t, "[mavrosflight][FATAL]: lost mavlink heartbeat\n", errOut.String(), "expected FATAL line on the error stream")
			},
		},
		{
			name: "IdenticalCallsProduceIdenticalLines",
			testFunc: func(t *testing.T) {
				var out, errOut bytes.Buffer
				log := logger.NewConsoleLoggerTo(&out, &errOut)

				log.Info("airspeed %.2f m/s at %d Hz", 14.27, 50)
				log.Info("airspeed %.2f m/s at %d Hz", 14.27, 50)

				lines := strings.SplitAfter(out.String(), "\n")
				require.Len(t, lines, 3, "expected two lines plus the trailing empty split")
				assert.Equal(t, lines[0], lines[1], "expected repeated calls to produce byte-identical lines")
			},
		},
		{
			name: "NilErrOut_KeepsOutStream",
			testFunc: func(t *testing.T) {
				var out bytes.Buffer
				log := logger.NewConsoleLoggerTo(&out, nil)

				log.Info("param %s set", "MAV_SYS_ID")

				assert.Equal(t, "[mavrosflight][INFO]: param MAV_SYS_ID set\n", out.String(), "expected INFO on the redirected output stream")
			},
		},
		{
			name: "NilOut_KeepsErrStream",
			testFunc: func(t *testing.T) {
				var errOut bytes.Buffer
				log := logger.NewConsoleLoggerTo(nil, &errOut)

				log.Warn("unsupported msg id %d", 253)

				assert.Equal(t, "[mavrosflight][WARN]: unsupported msg id 253\n", errOut.String(), "expected WARN on the redirected error stream")
			},
		},
		{
			name: "DefaultConstructor",
			testFunc: func(t *testing.T) {
				log := logger.NewConsoleLogger()
				assert.NotNil(t, log, "NewConsoleLogger() returned nil")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestConsoleLogger_Concurrent(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "DistinctLines",
			testFunc: func(t *testing.T) {
				var out, errOut bytes.Buffer
				log := logger.NewConsoleLoggerTo(&out, &errOut)

				const numGoroutines = 100
				const messagesPerGoroutine = 10

				var wg sync.WaitGroup
				wg.Add(numGoroutines)

				for i := range numGoroutines {
					go func(id int) {
						defer wg.Done()
						for j := range messagesPerGoroutine {
							log.Info("goroutine %d message %d", id, j)
						}
					}(i)
				}

				wg.Wait()

				output := out.String()
				lines := strings.Split(strings.TrimSpace(output), "\n")

				expectedLines := numGoroutines * messagesPerGoroutine
				assert.Equal(t, expectedLines, len(lines), "expected %d log lines", expectedLines)

				for i, line := range lines {
					require.True(t, strings.HasPrefix(line, "[mavrosflight][INFO]: goroutine "), "line %d: expected a tagged INFO line, got %q", i+1, line)
					assert.Equal(t, 1, strings.Count(line, "[mavrosflight]"), "line %d: expected exactly one tag, lines must not interleave", i+1)
				}
			},
		},
		{
			name: "MixedStreams",
			testFunc: func(t *testing.T) {
				var out, errOut bytes.Buffer
				log := logger.NewConsoleLoggerTo(&out, &errOut)

				const numGoroutines = 50
				const messagesPerGoroutine = 10

				var wg sync.WaitGroup
				wg.Add(numGoroutines * 2)

				for i := range numGoroutines {
					go func(id int) {
						defer wg.Done()
						for j := range messagesPerGoroutine {
							log.Info("info goroutine %d message %d", id, j)
						}
					}(i)

					go func(id int) {
						defer wg.Done()
						for j := range messagesPerGoroutine {
							log.Error("error goroutine %d message %d", id, j)
						}
					}(i)
				}

				wg.Wait()

				outLines := strings.Split(strings.TrimSpace(out.String()), "\n")
				errLines := strings.Split(strings.TrimSpace(errOut.String()), "\n")

				expectedPerStream := numGoroutines * messagesPerGoroutine
				assert.Equal(t, expectedPerStream, len(outLines), "expected %d INFO lines on the output stream", expectedPerStream)
				assert.Equal(t, expectedPerStream, len(errLines), "expected %d ERROR lines on the error stream", expectedPerStream)

				for i, line := range outLines {
					assert.True(t, strings.HasPrefix(line, "[mavrosflight][INFO]: "), "line %d: unexpected line on the output stream: %q", i+1, line)
				}
				for i, line := range errLines {
					assert.True(t, strings.HasPrefix(line, "[mavrosflight][ERROR]: "), "line %d: unexpected line on the error stream: %q", i+1, line)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestNopLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "DiscardsEverything",
			testFunc: func(t *testing.T) {
				var log logger.Logger = logger.NopLogger{}

				log.Debug("dropped %d", 1)
				log.DebugThrottle(0, "dropped")
				log.Info("dropped %d", 2)
				log.InfoThrottle(0, "dropped")
				log.Warn("dropped %d", 3)
				log.WarnThrottle(0, "dropped")
				log.Error("dropped %d", 4)
				log.ErrorThrottle(0, "dropped")
				log.Fatal("dropped %d", 5)
				log.FatalThrottle(0, "dropped")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestLoggerInterfaceCompliance(t *testing.T) {
	var _ logger.Logger = (*logger.ConsoleLogger)(nil)
	var _ logger.Logger = logger.NopLogger{}
}

// recorderLogger captures formatted INFO messages, standing in for any
// alternative Logger implementation a caller might supply.
type recorderLogger struct {
	logger.NopLogger
	lines []string
}

func (r *recorderLogger) Info(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// reportLinkQuality logs through a type parameter constrained by
// [logger.Logger], so the concrete logger is bound at compile time.
func reportLinkQuality[L logger.Logger](log L, percent int) {
	log.Info("link quality %d%%", percent)
}

func TestLoggerSubstitution(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "RecorderBehindGenericCallSite",
			testFunc: func(t *testing.T) {
				rec := &recorderLogger{}

				reportLinkQuality(rec, 97)

				require.Len(t, rec.lines, 1, "expected the recorder to capture the call")
				assert.Equal(t, "link quality 97%", rec.lines[0], "expected the recorder to receive the formatted message")
			},
		},
		{
			name: "ConsoleBehindSameCallSite",
			testFunc: func(t *testing.T) {
				var out, errOut bytes.Buffer

				reportLinkQuality(logger.NewConsoleLoggerTo(&out, &errOut), 97)

				assert.Equal(t, "[mavrosflight][INFO]: link quality 97%\n", out.String(), "expected the console logger to serve the unchanged call site")
			},
		},
		{
			name: "NopBehindSameCallSite",
			testFunc: func(t *testing.T) {
				reportLinkQuality(logger.NopLogger{}, 97)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

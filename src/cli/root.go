// Copyright (c) 2026 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/Doom4535/rosflight/src/internal/helper/posix"
	"github.com/Doom4535/rosflight/src/internal/replay"
	"github.com/Doom4535/rosflight/src/logger"
)

// scenarioEnvVar is consulted when no scenario file is given on the command line.
const scenarioEnvVar = "MAVLOG_SCENARIO"

// ErrScenarioFileRequired indicates that no scenario file was supplied via
// the -f flag or the MAVLOG_SCENARIO environment variable.
var ErrScenarioFileRequired = errors.New("cli: no scenario file specified (use -f or set MAVLOG_SCENARIO)")

// ReplayPerformed reports whether a scenario replay ran to completion during
// the last Execute call. Help and version invocations leave it false, so the
// caller can decide whether a completion message is warranted.
var ReplayPerformed bool

var (
	scenarioFile string
	loops        int
	quiet        bool
	showSummary  bool
)

// Execute runs the root command, replaying the selected scenario through a
// console logger over the process streams.
//
// Parameters:
//   - ctx: Context for cancellation; an interrupted replay returns the
//     context's error alongside a partial dispatch count
//   - version: Version string reported by the --version flag
//   - log: Destination for the tool's own diagnostics; nil falls back to
//     NopLogger. Replayed scenario output does not go through log.
//
// Returns:
//   - error: Error from flag parsing, scenario loading, or the replay itself
func Execute(ctx context.Context, version string, log logger.Logger) error {
	ReplayPerformed = false

	if log == nil {
		log = logger.NopLogger{}
	}

	rootCmd := &cobra.Command{
		Use:   posix.GetExecutableName() + " [flags]",
		Short: "Replay mavrosflight log scenarios through the console logger",
		Long: `Replays a scenario file (JSON or YAML) through the mavrosflight console
logger, reproducing the tagged output stream of a flight session. Throttled
events exercise the rate limiter the same way the live telemetry path does.

The scenario file is taken from -f, or from the MAVLOG_SCENARIO environment
variable when the flag is omitted.`,
		Example: "  mavlog -f scenario.yaml --summary\n  mavlog -f burst.json -n 10 -q --summary",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.Context(), log)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&scenarioFile, "file", "f", "", "scenario file to replay (default: $MAVLOG_SCENARIO)")
	rootCmd.Flags().IntVarP(&loops, "loops", "n", 1, "number of times to replay the scenario")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "discard replay output, keeping the line and dispatch counters")
	rootCmd.Flags().BoolVar(&showSummary, "summary", false, "print a dispatch summary table after the replay")

	return rootCmd.ExecuteContext(ctx)
}

// runReplay loads the scenario and replays it the requested number of times,
// printing the summary table when asked for.
//
// The replay target is a dedicated console logger over line-counting
// writers, so the summary can report how many lines landed on each stream;
// with -q the lines are counted and then discarded.
func runReplay(ctx context.Context, log logger.Logger) error {
	path := scenarioFile
	if path == "" {
		path = os.Getenv(scenarioEnvVar)
	}
	if path == "" {
		return ErrScenarioFileRequired
	}

	if loops < 1 {
		return fmt.Errorf("cli: loops must be at least 1, got %d", loops)
	}

	scenario, err := replay.Load(path)
	if err != nil {
		return err
	}

	outSink, errSink := replayOut, replayErr
	if quiet {
		log = logger.NopLogger{}
		outSink, errSink = io.Discard, io.Discard
	}
	outLines := newLineCounter(outSink)
	errLines := newLineCounter(errSink)
	target := logger.NewConsoleLoggerTo(outLines, errLines)

	log.Debug("loaded scenario %s: %d event(s)", path, len(scenario.Events))

	combined := &replay.Result{}
	for loop := range loops {
		result, runErr := replay.Run(ctx, target, scenario)
		combined.Merge(result)
		if runErr != nil {
			return fmt.Errorf("replay loop %d: %w", loop+1, runErr)
		}
	}

	ReplayPerformed = true

	if showSummary {
		fmt.Fprint(summaryOut, renderSummary(combined, outLines.Lines(), errLines.Lines()))
	}
	return nil
}

// renderSummary formats a replay result as a markdown table with one row per
// level, followed by the dispatch totals and the per-stream line counts.
func renderSummary(result *replay.Result, outLines, errLines int64) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	// Headers with emojis
	headers := []string{"🏷️ Level", "📨 Attempts", "✅ Emitted", "🔇 Suppressed", "📤 Stream"}
	table.Header(headers)

	table.Bulk(result.Rows())
	table.Render()

	fmt.Fprintf(&buf, "\nDispatched: %d call(s), %d throttled\n", result.Total(), result.Throttled)
	fmt.Fprintf(&buf, "Stream lines: %d stdout, %d stderr\n", outLines, errLines)
	return buf.String()
}

// Copyright (c) 2026 Doom4535 All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// mavlog is a command-line tool for replaying mavrosflight log scenarios
// through the console logger, reproducing the tagged output stream of a
// flight session including throttled bursts.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/Doom4535/rosflight/cmd/mavlog@latest
//
// # Usage
//
//	mavlog -f SCENARIO_FILE [FLAGS]
//
// # Flags
//
//	-f, --file    Scenario file to replay, JSON or YAML (default: $MAVLOG_SCENARIO)
//	-n, --loops   Number of times to replay the scenario (default: 1)
//	-q, --quiet   Discard replay output, keeping the line and dispatch counters
//	    --summary Print a dispatch summary table after the replay
//
// # Examples
//
// Replay a scenario and show the per-level dispatch table:
//
//	mavlog -f scenario.yaml --summary
//
// Replay a burst ten times without output to inspect the throttle counters:
//
//	mavlog -f burst.json -n 10 -q --summary
//
// Pick up the scenario from the environment:
//
//	MAVLOG_SCENARIO=scenario.yaml mavlog --summary
//
// Messages below WARN go to stdout and the rest to stderr, so the streams
// can be split the usual way:
//
//	mavlog -f scenario.yaml 2>errors.log
package main

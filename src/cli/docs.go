// Copyright (c) 2026 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package cli provides the command-line interface for the mavrosflight
// scenario replay tool. It implements a Cobra-based CLI that loads a
// scenario file (JSON or YAML), replays its events through a console logger
// over line-counting streams, and optionally prints a per-level summary as
// a markdown table with attempt, emitted, and suppressed counts. The
// package handles flag parsing, the MAVLOG_SCENARIO environment fallback,
// context cancellation, and quiet playback, which discards the replayed
// bytes while the line counters keep running.
package cli

// Copyright (c) 2026 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package replay loads scripted logging scenarios and replays them against a
// [logger.Logger]. A scenario is a JSON or YAML file describing a sequence of
// log events: each event names a severity level, a message template, optional
// arguments, a repeat count with an interval, and whether the event goes
// through the throttled variant of its level. [Run] reports per-level
// attempt, emitted, and suppressed counts when the target logger exposes
// throttle metrics.
//
// Scenario files written in JSON decode numeric arguments as float64, so
// message templates should format arguments with %v rather than %d when they
// need to work in both formats.
package replay

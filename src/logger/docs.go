// Copyright (c) 2025 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package logger provides the leveled logging facade used by mavrosflight
// components. It defines the Logger interface with five severity levels and a
// throttled variant of each, plus two implementations: ConsoleLogger for
// human-readable console output and NopLogger for discarding output entirely.
// ConsoleLogger assembles each line in a pooled buffer and writes it with a
// single call, so it is safe for concurrent use and lines from multiple
// goroutines never interleave.
//
// Library code normally accepts a Logger value and lets the caller choose the
// implementation. Code that wants the concrete logger resolved at compile
// time can constrain a type parameter by Logger instead:
//
//	func process[L logger.Logger](log L, frames <-chan Frame) {
//		log.Debug("processing %d queued frame(s)", len(frames))
//		...
//	}
//
// Both forms accept every Logger implementation; the generic form trades a
// little verbosity for devirtualized calls in hot paths.
//
//go:generate go run ../../tools/codegen
package logger

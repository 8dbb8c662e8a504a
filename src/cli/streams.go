// Copyright (c) 2026 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"io"
	"os"
	"sync/atomic"
)

// Destinations for replayed output and the summary table, swappable in
// tests. The replay console logger is built over these rather than the
// process streams directly.
var (
	replayOut  io.Writer = os.Stdout
	replayErr  io.Writer = os.Stderr
	summaryOut io.Writer = os.Stdout
)

// lineCounter counts the complete lines passing through to the underlying
// writer, so the summary can report how many lines landed on each stream
// even when the bytes themselves go to [io.Discard].
type lineCounter struct {
	w     io.Writer
	lines atomic.Int64
}

func newLineCounter(w io.Writer) *lineCounter {
	return &lineCounter{w: w}
}

// Write forwards p to the underlying writer and counts the newlines that
// were actually delivered.
func (c *lineCounter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.lines.Add(int64(bytes.Count(p[:n], []byte{'\n'})))
	return n, err
}

// Lines returns the number of complete lines written so far.
func (c *lineCounter) Lines() int64 {
	return c.lines.Load()
}

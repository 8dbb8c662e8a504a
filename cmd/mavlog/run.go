// Copyright (c) 2026 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Doom4535/rosflight/src/cli"
	"github.com/Doom4535/rosflight/src/logger"
	verpkg "github.com/Doom4535/rosflight/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	// Diagnostics logger; replayed scenario output goes through its own
	// console logger inside the CLI so the two streams can be counted apart.
	log := logger.NewConsoleLogger()

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling using signal.NotifyContext for cleaner cancellation
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to signal completion
	done := make(chan error, 1)

	// Run the CLI in a separate goroutine
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	// Wait for either completion or context cancellation
	select {
	case err := <-done:
		if err != nil {
			log.Error("%v", err)
			os.Exit(1)
		}
		if cli.ReplayPerformed {
			log.Info("scenario replay complete")
		}
	case <-ctx.Done():
		log.Warn("received termination signal, exiting")
		// Give the replay a moment to wind down
		select {
		case <-done:
			// Replay finished winding down
		case <-time.After(100 * time.Millisecond):
			// Timeout waiting for the replay goroutine
		}
		os.Exit(130) // Standard exit code for SIGINT
	}
}

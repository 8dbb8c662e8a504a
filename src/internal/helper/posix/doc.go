// Copyright (c) 2025 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// This package contains utility functions that ensure [POSIX]-compliant behavior
// across different operating systems, particularly for executable name handling
// in CLI usage strings.
//
// # Usage Examples
//
// Basic Usage:
//
//	import "github.com/Doom4535/rosflight/src/internal/helper/posix"
//
//	// Get the current executable name for CLI usage
//	exeName := posix.GetExecutableName()
//	fmt.Printf("Usage: %s [options] -f <scenario>\n", exeName)
//
// CLI Framework Integration:
//
//	// Use in cobra command definitions
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName(),
//	    Short: "Scenario replay for the mavrosflight logging facade",
//	    Example: fmt.Sprintf(`  %s -f scenario.yaml
//	  %s --help`, posix.GetExecutableName(), posix.GetExecutableName()),
//	}
//
// Cross-Platform Behavior:
//
// The GetExecutableName function provides consistent behavior across platforms:
//
//   - Linux/macOS: "/usr/bin/mavlog" → "mavlog"
//   - Windows: "C:\bin\mavlog.exe" → "mavlog"
//   - Fallback: Empty args → "mavlog"
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix

// Copyright (c) 2025 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package version provides centralized version information for the mavrosflight logging toolkit.
package version

// Version holds the current version of the mavrosflight logging toolkit.
// This value can be overridden at build time using ldflags.
var Version = "0.1.0"

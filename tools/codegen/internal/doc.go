// Copyright (c) 2025 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package codegen provides code generation utilities for the logger package.
//
// It generates the severity level table in src/logger/levels.go from a JSON
// configuration file and a template, keeping the level names, their ordering,
// and the stdout/stderr routing in one place.
package codegen

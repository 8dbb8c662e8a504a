// Copyright (c) 2025 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	codegen "github.com/Doom4535/rosflight/tools/codegen/internal"
)

func main() {
	if err := codegen.GenerateLevels(); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating levels: %v\n", err)
		os.Exit(1)
	}
}

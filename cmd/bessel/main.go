// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bessel evaluates, tabulates and checks the single precision
// integer-order Bessel functions.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/bessel/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bessel:", err)
		os.Exit(cli.ExitCode(err))
	}
}

// SPDX-License-Identifier: MIT

// Command lvdens evaluates log-normal densities from the command line.
package main

import "github.com/katalvlaran/lvstats/internal/cli"

func main() {
	cli.Execute()
}

// SPDX-License-Identifier: MIT

// Package cli wires the lvdens command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvstats/internal/logger"
)

var log = logger.MustGet("lvdens/cli")

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "lvdens",
		Short:        "Evaluate log-normal densities for points, grids and job files",
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			logger.Setup(c.ErrOrStderr(), "lvdens: ", debug)
			log.Debugf("command %q", c.CommandPath())
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	cmd.AddCommand(evalCmd(), gridCmd(), runCmd())
	return cmd
}

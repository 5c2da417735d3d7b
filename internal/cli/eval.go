// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvstats/dens"
)

func evalCmd() *cobra.Command {
	var x, mu, sigma float64
	var logForm bool

	c := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the density at one point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := dens.ValidateParams(mu, sigma); err != nil {
				return err
			}

			v := dens.DlnormFull(x, mu, sigma, logForm)
			log.Debugf("eval x=%g mu=%g sigma=%g log=%t -> %g", x, mu, sigma, logForm, v)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatValue(v))
			return err
		},
	}

	c.Flags().Float64Var(&x, "x", 0, "evaluation point (required)")
	addParamFlags(c, &mu, &sigma, &logForm)

	_ = c.MarkFlagRequired("x")
	return c
}

// addParamFlags registers --mu, --sigma and --log with the log-normal defaults.
func addParamFlags(c *cobra.Command, mu, sigma *float64, logForm *bool) {
	c.Flags().Float64Var(mu, "mu", dens.DefaultMu, "location of ln(X)")
	c.Flags().Float64Var(sigma, "sigma", dens.DefaultSigma, "scale of ln(X), > 0")
	c.Flags().BoolVar(logForm, "log", false, "print log-densities")
}

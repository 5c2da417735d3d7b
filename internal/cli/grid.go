// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvstats/dens"
	"github.com/katalvlaran/lvstats/matrix"
)

var (
	errSteps   = errors.New("--steps must be >= 1")
	errWorkers = errors.New("--workers must be >= 1")
)

func gridCmd() *cobra.Command {
	var from, to, mu, sigma float64
	var steps, workers int
	var logForm bool

	c := &cobra.Command{
		Use:   "grid",
		Short: "Evaluate the density on an evenly spaced grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 1 {
				return errSteps
			}
			if workers < 1 {
				return errWorkers
			}
			if err := dens.ValidateParams(mu, sigma); err != nil {
				return err
			}

			X, err := matrix.NewVector(linspace(from, to, steps), matrix.WithAllowInf())
			if err != nil {
				return err
			}
			Y, err := dens.DlnormMatWith(X,
				dens.WithMu(mu), dens.WithSigma(sigma), dens.WithLogForm(logForm), dens.WithWorkers(workers))
			if err != nil {
				return err
			}
			log.Debugf("grid [%g, %g] steps=%d workers=%d", from, to, steps, workers)

			return writeGrid(cmd.OutOrStdout(), X, Y)
		},
	}

	c.Flags().Float64Var(&from, "from", 0, "first grid point")
	c.Flags().Float64Var(&to, "to", 5, "last grid point")
	c.Flags().IntVar(&steps, "steps", 11, "number of grid points")
	c.Flags().IntVar(&workers, "workers", dens.DefaultWorkers, "goroutines for bulk evaluation")
	addParamFlags(c, &mu, &sigma, &logForm)
	return c
}

// linspace returns n evenly spaced points from a to b inclusive.
func linspace(a, b float64, n int) []float64 {
	if n == 1 {
		return []float64{a}
	}
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b
	return out
}

func writeGrid(w io.Writer, X, Y matrix.Container) error {
	for k := 0; k < X.Len(); k++ {
		x, err := X.AtIndex(k)
		if err != nil {
			return err
		}
		y, err := Y.AtIndex(k)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "%s\t%s\n", formatValue(x), formatValue(y)); err != nil {
			return err
		}
	}
	return nil
}

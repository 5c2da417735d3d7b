// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvstats/internal/config"
	"github.com/katalvlaran/lvstats/matrix"
)

func runCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "run",
		Short: "Evaluate a YAML job file and print the result matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := config.LoadJob(file)
			if err != nil {
				return err
			}
			r, cols := job.Points.Shape()
			log.Infof("job %q: %dx%d points, workers=%d", job.Name, r, cols, job.Workers)

			Y, err := job.Evaluate()
			if err != nil {
				return err
			}
			return writeMatrix(cmd.OutOrStdout(), Y)
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "job file (required)")

	_ = c.MarkFlagRequired("file")
	return c
}

// writeMatrix prints one tab-separated line per row.
func writeMatrix(w io.Writer, Y matrix.Container) error {
	rows, cols := Y.Shape()
	line := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := Y.AtIndex(i*cols + j)
			if err != nil {
				return err
			}
			line[j] = formatValue(v)
		}
		if _, err := io.WriteString(w, strings.Join(line, "\t")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// formatValue prints the shortest representation that round-trips.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

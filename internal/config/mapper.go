// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvstats/dens"
	"github.com/katalvlaran/lvstats/matrix"
)

// Job is a validated, ready-to-evaluate job.
type Job struct {
	Name    string
	Points  *matrix.Dense
	Mu      dens.Param
	Sigma   dens.Param
	Log     bool
	Workers int
}

// Evaluate runs the log-normal bulk engine over the job's points.
func (j Job) Evaluate() (matrix.Container, error) {
	return dens.DlnormMatParams(j.Points, j.Mu, j.Sigma, j.Log, dens.WithWorkers(j.Workers))
}

// MapJob validates a decoded job and builds its matrix and parameters.
//
// Layout: when rows and cols are both omitted the points form a 1×n row;
// when one is given the other is derived; rows*cols must equal len(points).
// Parameters default to mu=0, sigma=1 and must satisfy dens.ValidateParams.
func MapJob(path string, yj YAMLJob) (Job, error) {
	n := len(yj.Points)
	if n == 0 {
		return Job{}, invalidField(path, "points", "at least one point is required")
	}
	for i, x := range yj.Points {
		if math.IsNaN(x) {
			return Job{}, invalidField(path, fmt.Sprintf("points[%d]", i), "NaN is not a valid point")
		}
	}

	rows, cols, err := layout(path, yj.Rows, yj.Cols, n)
	if err != nil {
		return Job{}, err
	}
	points, err := matrix.NewDenseFrom(rows, cols, yj.Points, matrix.WithAllowInf())
	if err != nil {
		return Job{}, invalidFieldErr(path, "points", "cannot build matrix", err)
	}

	mu, err := mapParam(path, "mu", yj.Mu, dens.DefaultMu, n, func(v float64) error {
		return dens.ValidateParams(v, dens.DefaultSigma)
	})
	if err != nil {
		return Job{}, err
	}
	sigma, err := mapParam(path, "sigma", yj.Sigma, dens.DefaultSigma, n, func(v float64) error {
		return dens.ValidateParams(dens.DefaultMu, v)
	})
	if err != nil {
		return Job{}, err
	}

	workers := yj.Workers
	switch {
	case workers < 0:
		return Job{}, invalidField(path, "workers", "must be >= 0")
	case workers == 0:
		workers = dens.DefaultWorkers
	}

	name := strings.TrimSpace(yj.Name)
	if name == "" {
		name = "job"
	}

	return Job{
		Name:    name,
		Points:  points,
		Mu:      mu,
		Sigma:   sigma,
		Log:     yj.Log,
		Workers: workers,
	}, nil
}

func layout(path string, rows, cols, n int) (int, int, error) {
	if rows < 0 {
		return 0, 0, invalidField(path, "rows", "must be >= 0")
	}
	if cols < 0 {
		return 0, 0, invalidField(path, "cols", "must be >= 0")
	}

	switch {
	case rows == 0 && cols == 0:
		return 1, n, nil
	case rows == 0:
		if n%cols != 0 {
			return 0, 0, invalidField(path, "cols", fmt.Sprintf("%d points do not fill rows of %d", n, cols))
		}
		return n / cols, cols, nil
	case cols == 0:
		if n%rows != 0 {
			return 0, 0, invalidField(path, "rows", fmt.Sprintf("%d points do not fill %d rows", n, rows))
		}
		return rows, n / rows, nil
	case rows*cols != n:
		return 0, 0, invalidFieldErr(path, "rows", fmt.Sprintf("%dx%d does not hold %d points", rows, cols, n),
			matrix.ErrDimensionMismatch)
	}

	return rows, cols, nil
}

func mapParam(path, field string, p YAMLParam, def float64, n int, validate func(float64) error) (dens.Param, error) {
	switch {
	case p.Scalar != nil:
		if err := validate(*p.Scalar); err != nil {
			return dens.Param{}, invalidFieldErr(path, field, "out of domain", err)
		}
		return dens.Scalar(*p.Scalar), nil
	case p.List != nil:
		if err := matrix.ValidateVecLen(p.List, n); err != nil {
			return dens.Param{}, invalidFieldErr(path, field,
				fmt.Sprintf("has %d values for %d points", len(p.List), n),
				fmt.Errorf("%w: %w", dens.ErrShapeMismatch, err))
		}
		for i, v := range p.List {
			if err := validate(v); err != nil {
				return dens.Param{}, invalidFieldErr(path, fmt.Sprintf("%s[%d]", field, i), "out of domain", err)
			}
		}
		return dens.PerElementSlice(p.List), nil
	}

	return dens.Scalar(def), nil
}

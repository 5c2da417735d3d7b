// Package lvstats evaluates probability densities of continuous
// distributions, one point at a time or element-wise over matrices.
//
// 🚀 What is in lvstats?
//
//	dens/    : density kernels, scalar adapters and the bulk broadcast engine
//	matrix/  : Dense row-major matrices, the Container capability set,
//	           a gonum adapter and element-wise helpers
//	cmd/lvdens: command-line front end (eval, grid, run job files)
//
// ✨ Numeric policy:
//
//   - Points outside the support are not errors: density 0, log-density -Inf.
//   - Invalid parameters yield NaN; validate first for a structured error.
//   - Bulk calls return sentinel errors for nil inputs and shape mismatches.
//
// Quick example:
//
//	p := dens.Dlnorm(1.0) // 1/sqrt(2π)
//	X, _ := matrix.NewVector([]float64{1, 2, 3})
//	Y, _ := dens.DlnormMatFull(X, 0, 1, true)
//
// See the dens and matrix package docs for details.
package lvstats

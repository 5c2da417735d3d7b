// Package matrix offers the dense container layer used by the density engine.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked two-dimensional view of float64 values.
//   - Container, the minimal capability set (element count, linear-index
//     access, same-shape construction) that bulk kernels consume.
//   - Dense, a row-major implementation of both, with an explicit numeric
//     policy (finite-only by default).
//   - GonumDense, an adapter exposing a gonum *mat.Dense through the same
//     interfaces.
//   - Element-wise kernels (Map, Clip, ReplaceInfNaN, AllClose) with
//     deterministic flat loops and *Dense fast paths.
//
// Linear index k of an r×c container addresses element (k / c, k % c), i.e.
// row-major order. All containers in this package agree on that order.
//
// See the examples in this package and in dens for usage patterns.
package matrix

// SPDX-License-Identifier: MIT
// Package dens: sentinel error set.
// Kernels never return errors (they follow IEEE conventions); only the bulk
// engine and parameter validators do. Tests MUST match with errors.Is.

package dens

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput is returned when the input container, or a per-element
	// parameter container, is nil.
	ErrNilInput = errors.New("dens: nil input")

	// ErrShapeMismatch is returned when a per-element parameter container
	// does not hold exactly one value per input element. The engine never
	// truncates, pads or wraps indices.
	ErrShapeMismatch = errors.New("dens: parameter shape mismatch")

	// ErrInvalidParameter is returned by validators for parameters outside
	// the family's domain (e.g. sigma <= 0, non-finite mu).
	ErrInvalidParameter = errors.New("dens: invalid parameter")
)

// densErrorf tags err with the entry point that detected it.
func densErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

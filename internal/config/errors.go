// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // optional: job file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel for the error's kind, so errors.Is(err,
// ErrInvalidConfig) works without errors.As.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindInvalidConfig:
		return target == ErrInvalidConfig
	}
	return false
}

// IsKind reports whether err carries an OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// fieldError names the offending job field.
type fieldError struct {
	Field string
	Msg   string
	Err   error
}

func (e *fieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *fieldError) Unwrap() error { return e.Err }

func invalidField(path, field, msg string) error {
	return invalidFieldErr(path, field, msg, nil)
}

func invalidFieldErr(path, field, msg string, err error) error {
	return &OpError{
		Op:   "config.map_job",
		Kind: KindInvalidConfig,
		Path: path,
		Err:  &fieldError{Field: field, Msg: msg, Err: err},
	}
}

// Package errors provides error handling for the charpos CLI.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, error wrapping, and user-facing hints. The charpos library itself
// is total over well-formed input and never returns errors; this package
// serves the command-line surface, where files go missing and offsets fall
// out of range.
//
// Usage:
//
//	if err := readInput(path); err != nil {
//	    return errors.Wrapf(err, "failed to read %s", path)
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New       = crdb.New
	Newf      = crdb.Newf
	Wrap      = crdb.Wrap
	Wrapf     = crdb.Wrapf
	WithStack = crdb.WithStack
)

// User-facing messages
var (
	WithHint  = crdb.WithHint
	WithHintf = crdb.WithHintf
)

// Error inspection
var (
	Is           = crdb.Is
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	FlattenHints = crdb.FlattenHints
)

// ErrOffsetOutOfRange indicates a byte offset beyond the end of the input.
// Wrap it with context while preserving the type for errors.Is checks.
var ErrOffsetOutOfRange = New("offset out of range")

// Package errors provides error handling for pystub.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints
//
// Usage:
//
//	// Wrap with context
//	if err := loadDescriptors(path); err != nil {
//	    return errors.Wrapf(err, "failed to load %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "receiver must be one of: instance, class, static")
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidDescriptor) {
//	    // report and skip the file
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors for pystub.
// Use these with errors.Is() and wrap them with errors.Wrap() to add context.
var (
	// ErrInvalidDescriptor indicates a registration descriptor failed validation
	ErrInvalidDescriptor = New("invalid descriptor")

	// ErrUnknownReceiver indicates a receiver kind that is not instance, class or static
	ErrUnknownReceiver = New("unknown receiver kind")

	// ErrDuplicateClass indicates a class registered twice in the same module
	ErrDuplicateClass = New("duplicate class")

	// ErrStale indicates generated stubs differ from the files on disk
	ErrStale = New("stubs are out of date")
)

// IsInvalidDescriptorError checks if an error is or wraps ErrInvalidDescriptor
func IsInvalidDescriptorError(err error) bool {
	return err != nil && Is(err, ErrInvalidDescriptor)
}

// InvalidDescriptorf creates an ErrInvalidDescriptor with a formatted message
func InvalidDescriptorf(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidDescriptor, format, args...)
}

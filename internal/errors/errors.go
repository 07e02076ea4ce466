// Package errors provides a structured error type hierarchy for actiondoc.
//
// This package defines base error types for common error conditions, wrapped error
// types that add contextual information, and helper functions for error wrapping
// and type checking.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNotFound - file or directory not found
//   - ErrInvalid - validation failed
//   - ErrIO - file I/O error
//   - ErrMarkerMissing - a README marker could not be located
//   - ErrStale - the README does not match the generated content
//
// Wrapped error types (add context):
//   - ParseError{Path, Err} - a workflow file could not be read or parsed
//   - MarkerError{Region, Marker, Err} - README splice errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	return &errors.ParseError{Path: path, Err: err}
//
//	if errors.IsMarkerMissing(err) {
//	    // README is not prepared for generation
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = baseError("not found")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")

	// ErrMarkerMissing indicates a region marker is absent from the document.
	ErrMarkerMissing = baseError("marker missing")

	// ErrStale indicates the document on disk differs from the generated one.
	ErrStale = baseError("document is out of date")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// ParseError represents a workflow file that could not be read or parsed.
type ParseError struct {
	// Path is the workflow file path.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MarkerError represents a problem locating a generated region in a document.
type MarkerError struct {
	// Region is the region name (e.g., "workflows").
	Region string
	// Marker is the literal marker text that was looked up.
	Marker string
	// Err is the underlying error.
	Err error
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("%s region: %s: %s", e.Region, e.Err, e.Marker)
}

func (e *MarkerError) Unwrap() error { return e.Err }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsMarkerMissing reports whether err is or wraps ErrMarkerMissing.
func IsMarkerMissing(err error) bool {
	return errors.Is(err, ErrMarkerMissing)
}

// IsStale reports whether err is or wraps ErrStale.
func IsStale(err error) bool {
	return errors.Is(err, ErrStale)
}

// AsParseError reports whether err can be typed as a *ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsMarkerError reports whether err can be typed as a *MarkerError.
func AsMarkerError(err error) (*MarkerError, bool) {
	var me *MarkerError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

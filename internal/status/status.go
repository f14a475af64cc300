// Package status implements the aggregable computation status returned by
// every fallible framework operation.
//
// A Status carries zero or more error descriptors. An empty Status means
// success; it is the only way an operation signals full success. Statuses
// compose: merging two Statuses unions their errors in order, so a single
// Compute call can surface problems from several validation stages at once.
package status

import (
	"errors"
	"strings"
)

// Code identifies a kind of computation failure.
type Code int

// Failure kinds understood by the framework.
const (
	NullResult Code = iota + 1
	NullParameter
	NullInput
	NullEngine
	NullLayer
	InvalidInput
	AllocationFailure
	UnsupportedConfiguration
	KernelComputationError
)

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case NullResult:
		return "null result"
	case NullParameter:
		return "null parameter"
	case NullInput:
		return "null input"
	case NullEngine:
		return "null engine"
	case NullLayer:
		return "null layer"
	case InvalidInput:
		return "invalid input"
	case AllocationFailure:
		return "allocation failure"
	case UnsupportedConfiguration:
		return "unsupported configuration"
	case KernelComputationError:
		return "kernel computation error"
	default:
		return "unknown"
	}
}

// Error is a single error descriptor inside a Status.
type Error struct {
	Code   Code
	Detail string
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Detail == "" {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.Detail
}

// Status is an ordered collection of error descriptors.
// The zero value is a success Status.
type Status struct {
	errs []Error
}

// New returns a success Status.
func New() Status {
	return Status{}
}

// Fail returns a Status carrying a single error descriptor.
func Fail(c Code, detail string) Status {
	return Status{errs: []Error{{Code: c, Detail: detail}}}
}

// OK reports whether the Status carries no errors.
func (s Status) OK() bool {
	return len(s.errs) == 0
}

// Add appends an error descriptor.
func (s *Status) Add(c Code, detail string) {
	s.errs = append(s.errs, Error{Code: c, Detail: detail})
}

// Merge appends all error descriptors of other, preserving order.
func (s *Status) Merge(other Status) {
	s.errs = append(s.errs, other.errs...)
}

// Has reports whether the Status carries an error with the given code.
func (s Status) Has(c Code) bool {
	for _, e := range s.errs {
		if e.Code == c {
			return true
		}
	}
	return false
}

// Errors returns the error descriptors in the order they were added.
// The returned slice must not be modified.
func (s Status) Errors() []Error {
	return s.errs
}

// Err bridges the Status into the error world: nil on success, otherwise
// all descriptors joined.
func (s Status) Err() error {
	if s.OK() {
		return nil
	}
	joined := make([]error, len(s.errs))
	for i, e := range s.errs {
		joined[i] = e
	}
	return errors.Join(joined...)
}

// String returns a single-line summary of the Status.
func (s Status) String() string {
	if s.OK() {
		return "ok"
	}
	parts := make([]string, len(s.errs))
	for i, e := range s.errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

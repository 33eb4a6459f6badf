// Package errors provides structured error handling for the Lucid toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUsage indicates a caller bug, such as removing a child that was
	// never added or double-adding one.
	KindUsage
	// KindInvariant indicates a violated internal invariant; a logic defect,
	// never a normal boundary condition.
	KindInvariant
	// KindPlatform indicates an external collaborator failure.
	KindPlatform
	// KindConfig indicates a configuration loading or parsing failure.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindInvariant:
		return "invariant"
	case KindPlatform:
		return "platform"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// LucidError represents a structured error in the Lucid toolkit.
type LucidError struct {
	// Op is the operation that failed (e.g., "layout.Base.RemoveChild").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LucidError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LucidError) Unwrap() error {
	return e.Err
}

// Usage creates a usage-kind error for caller bugs.
func Usage(op, format string, args ...any) *LucidError {
	return &LucidError{
		Op:   op,
		Kind: KindUsage,
		Err:  fmt.Errorf(format, args...),
	}
}

// InvariantError reports a box computed outside its declared limit after the
// solver's own clamping step. It identifies the offending box and axis so the
// defect can be tracked down; callers must treat it as fatal to the enclosing
// realign rather than re-clamp past it.
type InvariantError struct {
	// Op is the operation that detected the violation.
	Op string
	// Box labels the offending box, typically its child index.
	Box string
	// Axis is the axis on which the limit was violated.
	Axis string
	// Value is the computed size.
	Value float64
	// Limit is the declared bound that was escaped.
	Limit float64
	// Grow is true if the violated bound was a maximum, false for a minimum.
	Grow bool
}

func (e *InvariantError) Error() string {
	bound := "minimum"
	if e.Grow {
		bound = "maximum"
	}
	return fmt.Sprintf("%s: box %s exceeds %s limit on %s axis: %v vs %v",
		e.Op, e.Box, bound, e.Axis, e.Value, e.Limit)
}

// ErrorHandler receives errors reported by the Lucid toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LucidError)
}

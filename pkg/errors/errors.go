// Package errors provides structured violation reporting for the edwin tree engine.
//
// The engine has no recoverable error paths. Every failure is either a
// programmer-contract violation (a malformed tree operation) or a capacity
// violation (a fixed-size table is full). Both are described by
// [ViolationError] and routed through the installed [ErrorHandler].
package errors

import (
	"fmt"
	"time"
)

// ViolationKind identifies the category of a violation.
type ViolationKind int

const (
	// KindUnknown indicates a violation of unknown type.
	KindUnknown ViolationKind = iota
	// KindContract indicates a malformed tree operation by the caller.
	KindContract
	// KindCapacity indicates a fixed-capacity table ran out of room.
	KindCapacity
	// KindPanic indicates a recovered panic in a callback.
	KindPanic
	// KindConfig indicates an invalid configuration.
	KindConfig
)

func (k ViolationKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindCapacity:
		return "capacity"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ViolationError describes a failed engine operation.
type ViolationError struct {
	// Op is the operation that failed (e.g., "ui.Pop").
	Op string
	// Kind categorizes the violation.
	Kind ViolationKind
	// Node is the id of the node involved, or 0.
	Node int
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
	// Timestamp is when the violation occurred.
	Timestamp time.Time
}

func (e *ViolationError) Error() string {
	if e.Node != 0 {
		return fmt.Sprintf("%s [%s] node=%d: %v", e.Op, e.Kind, e.Node, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ViolationError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "ui.Tick").
	Op string
	// Node is the id of the node whose callback panicked, or 0.
	Node int
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	switch {
	case e.Op == "":
		return fmt.Sprintf("panic: %v", e.Value)
	case e.Node != 0:
		return fmt.Sprintf("panic in %s node=%d: %v", e.Op, e.Node, e.Value)
	}
	return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
}

// Violation is a convenience constructor for a ViolationError with a formatted message.
func Violation(op string, kind ViolationKind, node int, format string, args ...any) *ViolationError {
	return &ViolationError{
		Op:   op,
		Kind: kind,
		Node: node,
		Err:  fmt.Errorf(format, args...),
	}
}

// ErrorHandler receives violations reported by the engine.
type ErrorHandler interface {
	// HandleViolation is called when a tree operation is rejected.
	HandleViolation(err *ViolationError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

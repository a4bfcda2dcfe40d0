package model

import (
	"errors"
	"strings"
)

// Kind classifies the errors produced while collecting and applying mappings.
//
//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go
type Kind int

const (
	KindUnknown         Kind = iota
	KindInvalidArgument      // nil or absent source, sink or target
	KindResolution           // a marker could not be mapped to a module
	KindScan                 // the module scanner failed
	KindIngest               // a mapping type could not be accepted
	KindExportIO             // the rendered document could not be written
	KindApply                // the target configuration rejected a mapping
	KindState                // the operation is not allowed in the current state
)

// Error is the error type returned by the model and the container.
type Error struct {
	Kind    Kind   // Error classification
	Op      string // Operation that failed, e.g. "scan" or "export"
	Subject string // Module path, type name, file path or entity involved
	Err     error  // Underlying cause
}

// Sentinels for errors.Is checks against a kind.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrResolution      = &Error{Kind: KindResolution}
	ErrScan            = &Error{Kind: KindScan}
	ErrIngest          = &Error{Kind: KindIngest}
	ErrExportIO        = &Error{Kind: KindExportIO}
	ErrApply           = &Error{Kind: KindApply}
	ErrState           = &Error{Kind: KindState}
)

// NewError creates an Error.
func NewError(kind Kind, op, subject string, err error) *Error {
	return &Error{Kind: kind, Op: op, Subject: subject, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Kind.String())

	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}

	if e.Subject != "" {
		b.WriteString(" ")
		b.WriteString(e.Subject)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a bare sentinel of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Subject != "" || t.Err != nil {
		return false
	}

	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

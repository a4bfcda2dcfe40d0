package diagnostic

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fluentmap/internal/common"
)

// Codes reported while building a model.
const (
	CodeDuplicateEntity   = "duplicate-entity"
	CodeDuplicateTable    = "duplicate-table"
	CodeMissingID         = "missing-id"
	CodeDanglingReference = "dangling-reference"
	CodeAmbiguousPairing  = "ambiguous-pairing"
	CodeInvalidPairing    = "invalid-pairing"
	CodeBothSidesInverse  = "both-sides-inverse"
	CodeJoinKeyClash      = "join-key-clash"
)

// Diagnostics holds all diagnostic information from a build.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Entity identifies the class mapping this relates to (if any).
	Entity string
	// Member identifies the mapped member this relates to (if any).
	Member string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, entity, member string) {
	d.Errors = append(d.Errors, Diagnostic{SeverityError, code, message, entity, member})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, entity, member string) {
	d.Warnings = append(d.Warnings, Diagnostic{SeverityWarning, code, message, entity, member})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, entity, member string) {
	d.Infos = append(d.Infos, Diagnostic{SeverityInfo, code, message, entity, member})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Log writes warnings and infos to the logger. Errors are returned by Error instead.
func (d *Diagnostics) Log(logger *slog.Logger) {
	for _, w := range d.Warnings {
		logger.Warn(w.Message, w.attrs()...)
	}

	for _, i := range d.Infos {
		logger.Debug(i.Message, i.attrs()...)
	}
}

func (d Diagnostic) attrs() []any {
	attrs := []any{"code", d.Code}
	if d.Entity != "" {
		attrs = append(attrs, "entity", d.Entity)
	}

	if d.Member != "" {
		attrs = append(attrs, "member", d.Member)
	}

	return attrs
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	subject := d.Entity
	if d.Member != "" {
		subject += "." + d.Member
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if subject != "" {
		return subject + ": " + msg
	}

	return msg
}

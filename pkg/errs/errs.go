// Package errs provides the structured error kinds shared by the indexer,
// resolver, builder and engines: FormatError, InvalidInput, Unsupported and
// IoError (spec §7).
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a CountError.
type Kind int

const (
	// FormatError marks malformed GFA/BED/histogram input.
	FormatError Kind = iota
	// InvalidInput marks conflicting CLI flags or out-of-range thresholds.
	InvalidInput
	// Unsupported marks a condition the implementation refuses to run
	// (currently only G > 65534 groups).
	Unsupported
	// IoError wraps an error propagated from the underlying stream.
	IoError
)

func (k Kind) String() string {
	switch k {
	case FormatError:
		return "format error"
	case InvalidInput:
		return "invalid input"
	case Unsupported:
		return "unsupported"
	case IoError:
		return "io error"
	default:
		return "unknown"
	}
}

// CountError is the structured error type returned by this module. It
// always carries a Kind and, when derivable, the offending line number or
// field (spec §7: "All error messages include the offending line number or
// field when derivable").
type CountError struct {
	Kind   Kind
	Op     string // operation that failed, e.g. "gfa.Index", "resolve.BED"
	Line   int    // 1-based source line, 0 if not applicable
	Field  string // offending field name, "" if not applicable
	Reason string
	Cause  error
}

// Error implements the error interface.
func (e *CountError) Error() string {
	switch {
	case e.Line > 0 && e.Field != "":
		return fmt.Sprintf("%s: %s at line %d, field %q: %s", e.Op, e.Kind, e.Line, e.Field, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("%s: %s at line %d: %s", e.Op, e.Kind, e.Line, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("%s: %s (field %q): %s", e.Op, e.Kind, e.Field, e.Reason)
	default:
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Reason)
	}
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *CountError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error's Kind or its cause.
func (e *CountError) Is(target error) bool {
	var ce *CountError
	if errors.As(target, &ce) {
		return ce.Kind == e.Kind
	}
	return e.Cause != nil && errors.Is(e.Cause, target)
}

// Builder provides a fluent interface for constructing CountErrors, mirroring
// the teacher's ErrorBuilder pattern for storage errors.
type Builder struct {
	err CountError
}

// New starts a CountError builder for the given kind and operation.
func New(kind Kind, op string) *Builder {
	return &Builder{err: CountError{Kind: kind, Op: op}}
}

// AtLine records the offending source line.
func (b *Builder) AtLine(line int) *Builder {
	b.err.Line = line
	return b
}

// OnField records the offending field name.
func (b *Builder) OnField(field string) *Builder {
	b.err.Field = field
	return b
}

// Because records the human-readable reason.
func (b *Builder) Because(reason string, args ...any) *Builder {
	b.err.Reason = fmt.Sprintf(reason, args...)
	return b
}

// Wrap records the underlying cause.
func (b *Builder) Wrap(cause error) *Builder {
	b.err.Cause = cause
	return b
}

// Err returns the built error.
func (b *Builder) Err() error {
	return &b.err
}

// Convenience constructors for the hot paths.

// Format builds a FormatError at the given line.
func Format(op string, line int, reason string, args ...any) error {
	return New(FormatError, op).AtLine(line).Because(reason, args...).Err()
}

// Invalid builds an InvalidInput error.
func Invalid(op, reason string, args ...any) error {
	return New(InvalidInput, op).Because(reason, args...).Err()
}

// TooManyGroups builds the Unsupported error for the 65534-group ceiling.
func TooManyGroups(op string, g int) error {
	return New(Unsupported, op).Because("group count %d exceeds ceiling of %d", g, MaxGroups).Err()
}

// IO wraps a stream error.
func IO(op string, cause error) error {
	return New(IoError, op).Because("%v", cause).Wrap(cause).Err()
}

// MaxGroups is the hard ceiling on distinct groups (spec §3, §9): the
// per-item group count in the by-total abacus is stored as a 16-bit integer
// with two reserved sentinels.
const MaxGroups = 65534

// SentinelExcluded marks an item removed from the abacus by exclusion.
const SentinelExcluded uint16 = 0xFFFE

// SentinelOverflow marks an item whose group count could not be represented.
const SentinelOverflow uint16 = 0xFFFF

// KindOf extracts the Kind of err if it is (or wraps) a *CountError.
func KindOf(err error) (Kind, bool) {
	var ce *CountError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

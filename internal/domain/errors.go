package domain

import "fmt"

// ValidationError reports malformed input at the tool boundary: a bad board
// string, an out-of-range dimension, or design parameters violating
// 1 <= t < k <= v. It is the only error kind a caller is expected to handle.
type ValidationError struct {
	Field string // the offending argument, e.g. "board", "t"
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// Validationf builds a ValidationError for the given field.
func Validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// InvariantError signals an internal construction defect: a column index out
// of range, a row covering the same column twice, or fixed blocks that
// double-cover a t-subset. It indicates a logic bug, not bad input, and
// should terminate the run.
type InvariantError struct {
	Op  string // the construction step that failed
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %v", e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }

// Invariantf builds an InvariantError wrapping a formatted cause.
func Invariantf(op, format string, args ...any) error {
	return &InvariantError{Op: op, Err: fmt.Errorf(format, args...)}
}

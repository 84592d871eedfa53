package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/parsec/input"
)

// Programmer errors. These abort the run immediately and are not subject to
// Alt recovery; callers can test for them with errors.Is.
var (
	// ErrUnfilledRegister reports a read of a register never written in
	// this run.
	ErrUnfilledRegister = errors.New("read of unfilled register")
	// ErrNonConsumptiveIteration reports an iteration body that succeeded
	// without consuming input, which would loop forever.
	ErrNonConsumptiveIteration = errors.New("non-consumptive iteration")
	// ErrRegisterReuse reports a register bound to two simultaneous runs.
	ErrRegisterReuse = errors.New("register already bound to another run")
)

// ParseError is the structured failure of a run: the position, the labels
// that would have permitted progress, the token actually found, and any user
// reasons attached via Fail, Explain or FilterOut.
type ParseError struct {
	Offset     int
	Line       int
	Column     int
	Expected   []string
	Unexpected string
	Reasons    []string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d, column %d: ", e.Line, e.Column)
	switch {
	case e.Unexpected != "" && len(e.Expected) > 0:
		fmt.Fprintf(&b, "unexpected %s, expected %s", e.Unexpected, strings.Join(e.Expected, " or "))
	case e.Unexpected != "":
		fmt.Fprintf(&b, "unexpected %s", e.Unexpected)
	case len(e.Expected) > 0:
		fmt.Fprintf(&b, "expected %s", strings.Join(e.Expected, " or "))
	default:
		b.WriteString("parse failed")
	}
	for _, r := range e.Reasons {
		b.WriteString("; ")
		b.WriteString(r)
	}
	return b.String()
}

// failure is the internal error state threaded through a run.
// fatal is non-nil for programmer errors, which no combinator recovers from.
type failure struct {
	at         input.Cursor
	expected   []string
	unexpected string
	reasons    []string
	fatal      error
}

func newFailure(at input.Cursor) *failure {
	return &failure{at: at}
}

func fatalFailure(at input.Cursor, err error) *failure {
	return &failure{at: at, fatal: err}
}

func (f *failure) isFatal() bool {
	return f != nil && f.fatal != nil
}

// merge combines a failure with a later one per the progress rule: a failure
// at a strictly greater offset dominates; at equal offsets the expected sets
// union and the reasons concatenate. Fatal failures always dominate.
func (f *failure) merge(g *failure) *failure {
	switch {
	case f == nil:
		return g
	case g == nil:
		return f
	case f.isFatal():
		return f
	case g.isFatal():
		return g
	case f.at.Offset() > g.at.Offset():
		return f
	case g.at.Offset() > f.at.Offset():
		return g
	}
	merged := &failure{
		at:         f.at,
		expected:   unionLabels(f.expected, g.expected),
		unexpected: f.unexpected,
		reasons:    append(append([]string(nil), f.reasons...), g.reasons...),
	}
	if merged.unexpected == "" {
		merged.unexpected = g.unexpected
	}
	return merged
}

func unionLabels(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	out := append([]string(nil), a...)
	for _, label := range b {
		seen := false
		for _, have := range out {
			if have == label {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, label)
		}
	}
	return out
}

func (f *failure) toError() error {
	if f == nil {
		return &ParseError{Line: 1, Column: 1}
	}
	if f.fatal != nil {
		return fmt.Errorf("line %d, column %d: %w", f.at.Line(), f.at.Column(), f.fatal)
	}
	return &ParseError{
		Offset:     f.at.Offset(),
		Line:       f.at.Line(),
		Column:     f.at.Column(),
		Expected:   f.expected,
		Unexpected: f.unexpected,
		Reasons:    f.reasons,
	}
}

// failWith builds a typed failing result without touching the value.
func failWith[A any](err *failure, consumed bool) result[A] {
	return result[A]{consumed: consumed, err: err}
}

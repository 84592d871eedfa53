package parse

import "github.com/dhamidi/parsec/input"

// Hook receives callbacks around the evaluation of an observed parser.
// Implementations must not mutate parser state; they see cursors by value.
type Hook interface {
	// Enter is called before the observed parser runs.
	Enter(name string, at input.Cursor)
	// Exit is called after it returns. at is the cursor after evaluation;
	// err is nil on success.
	Exit(name string, at input.Cursor, ok, consumed bool, err error)
}

// Observe wraps p so h is notified when it runs. Semantics and results are
// those of p.
func Observe[A any](p Parser[A], name string, h Hook) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		h.Enter(name, st.cur)
		res := p.run(st)
		var err error
		if !res.ok {
			err = res.err.toError()
		}
		h.Exit(name, st.cur, res.ok, res.consumed, err)
		return res
	}}
}

// Package parse implements a composable parser algebra over an in-memory
// character sequence.
//
// A Parser[A] is an immutable value describing how to recognize input and
// produce an A. Parsers are built from primitives (Satisfy, String, Pure)
// and combinators (Alt, Many, SepBy, ...) and executed with Parse, ParseFully
// or Run.
//
// The evaluation policy is LL(1) by default: a parser that fails after
// consuming input commits, and Alt will not try its right alternative.
// Backtracking is explicit via Atomic, which converts any failure of its
// body into a non-consuming one and restores the cursor.
package parse

import (
	"sync"

	"github.com/dhamidi/parsec/input"
)

// Unit is the result type of parsers that are run only for their effect.
type Unit struct{}

// Parser recognizes a prefix of the input and produces a value of type A.
// Parser values are immutable and safe to share between goroutines; each
// top-level run owns its own mutable state.
type Parser[A any] struct {
	run func(st *state) result[A]
}

type result[A any] struct {
	ok       bool
	value    A
	consumed bool
	err      *failure
}

// state is the private evaluator state of one top-level run: the cursor, the
// register slots, and the registers bound to this run.
type state struct {
	cur   input.Cursor
	slots []slot
	free  []int
	bound []binding
}

type slot struct {
	value  any
	filled bool
}

// binding is implemented by registers so the run can release them on exit.
type binding interface {
	release()
}

func (st *state) alloc() int {
	if n := len(st.free); n > 0 {
		i := st.free[n-1]
		st.free = st.free[:n-1]
		st.slots[i] = slot{}
		return i
	}
	st.slots = append(st.slots, slot{})
	return len(st.slots) - 1
}

func (st *state) freeSlot(i int) {
	st.slots[i] = slot{}
	st.free = append(st.free, i)
}

func (st *state) unbind(b binding) {
	for i := len(st.bound) - 1; i >= 0; i-- {
		if st.bound[i] == b {
			st.bound = append(st.bound[:i], st.bound[i+1:]...)
			break
		}
	}
	b.release()
}

func (st *state) releaseAll() {
	for _, b := range st.bound {
		b.release()
	}
	st.bound = nil
	st.slots = nil
	st.free = nil
}

// Run executes p against src and returns the value, the final cursor, and an
// error. On failure the returned cursor is where evaluation stopped.
func Run[A any](p Parser[A], src string) (A, input.Cursor, error) {
	st := &state{cur: input.NewCursor(src)}
	defer st.releaseAll()
	res := p.run(st)
	if !res.ok {
		var zero A
		return zero, st.cur, res.err.toError()
	}
	return res.value, st.cur, nil
}

// Parse executes p against src.
func Parse[A any](p Parser[A], src string) (A, error) {
	v, _, err := Run(p, src)
	return v, err
}

// ParseFully executes p against src and requires it to consume all input.
func ParseFully[A any](p Parser[A], src string) (A, error) {
	return Parse(ThenSkip(p, EOF()), src)
}

// Lazy defers construction of a parser until it is first run, so mutually
// recursive grammars can be defined without infinite recursion at
// construction time. The thunk is forced at most once.
func Lazy[A any](f func() Parser[A]) Parser[A] {
	var once sync.Once
	var p Parser[A]
	return Parser[A]{run: func(st *state) result[A] {
		once.Do(func() { p = f() })
		return p.run(st)
	}}
}

// Pos yields the current cursor without consuming input.
func Pos() Parser[input.Cursor] {
	return Parser[input.Cursor]{run: func(st *state) result[input.Cursor] {
		return result[input.Cursor]{ok: true, value: st.cur}
	}}
}

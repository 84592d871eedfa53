package parse

import "sync/atomic"

// Register is a typed mutable cell whose lifetime is one top-level run. A
// register created with NewRegister is unallocated until first used inside a
// run; it is then bound to that run until the run finishes. Using the same
// register in two simultaneous runs aborts with ErrRegisterReuse; reading a
// register before anything was written to it aborts with
// ErrUnfilledRegister.
type Register[A any] struct {
	owner atomic.Pointer[state]
	slot  int
}

// NewRegister returns a fresh, unallocated register.
func NewRegister[A any]() *Register[A] {
	return &Register[A]{slot: -1}
}

// bind allocates a slot for r in st on first use within the run.
func (r *Register[A]) bind(st *state) error {
	if r.owner.Load() == st {
		return nil
	}
	if !r.owner.CompareAndSwap(nil, st) {
		return ErrRegisterReuse
	}
	r.slot = st.alloc()
	st.bound = append(st.bound, r)
	return nil
}

func (r *Register[A]) release() {
	r.slot = -1
	r.owner.Store(nil)
}

func (r *Register[A]) read(st *state) (A, *failure) {
	var zero A
	if err := r.bind(st); err != nil {
		return zero, fatalFailure(st.cur, err)
	}
	s := st.slots[r.slot]
	if !s.filled {
		return zero, fatalFailure(st.cur, ErrUnfilledRegister)
	}
	return s.value.(A), nil
}

func (r *Register[A]) write(st *state, x A) *failure {
	if err := r.bind(st); err != nil {
		return fatalFailure(st.cur, err)
	}
	st.slots[r.slot] = slot{value: x, filled: true}
	return nil
}

// Get reads the register without consuming input.
func (r *Register[A]) Get() Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		v, f := r.read(st)
		if f != nil {
			return failWith[A](f, false)
		}
		return result[A]{ok: true, value: v}
	}}
}

// Put writes x to the register without consuming input.
func (r *Register[A]) Put(x A) Parser[Unit] {
	return Parser[Unit]{run: func(st *state) result[Unit] {
		if f := r.write(st, x); f != nil {
			return failWith[Unit](f, false)
		}
		return result[Unit]{ok: true}
	}}
}

// Modify applies f to the register's value.
func (r *Register[A]) Modify(f func(A) A) Parser[Unit] {
	return Parser[Unit]{run: func(st *state) result[Unit] {
		v, fail := r.read(st)
		if fail != nil {
			return failWith[Unit](fail, false)
		}
		if fail := r.write(st, f(v)); fail != nil {
			return failWith[Unit](fail, false)
		}
		return result[Unit]{ok: true}
	}}
}

// Gets reads the register through f.
func Gets[A, B any](r *Register[A], f func(A) B) Parser[B] {
	return Map(r.Get(), f)
}

// GetsWith runs pf, then applies its function to the register's value.
func GetsWith[A, B any](r *Register[A], pf Parser[func(A) B]) Parser[B] {
	return Ap(pf, r.Get())
}

// PutFrom runs p and writes its result to the register.
func PutFrom[A any](r *Register[A], p Parser[A]) Parser[Unit] {
	return Bind(p, func(x A) Parser[Unit] { return r.Put(x) })
}

// Puts runs p and writes f of its result to the register.
func Puts[A, B any](r *Register[B], p Parser[A], f func(A) B) Parser[Unit] {
	return PutFrom(r, Map(p, f))
}

// ModifyWith runs pf and applies its function to the register's value.
func ModifyWith[A any](r *Register[A], pf Parser[func(A) A]) Parser[Unit] {
	return PutFrom(r, GetsWith(r, pf))
}

// Local runs body with the register set to x, restoring the previous
// contents when body succeeds. On failure of body the register keeps
// whatever state the body left it in; pair with Rollback when full
// restoration on failure is wanted.
func Local[A, B any](r *Register[B], x B, body Parser[A]) Parser[A] {
	return localWrite(r, body, func(st *state) *failure { return r.write(st, x) })
}

// LocalWith is Local with the new value derived from the current one.
func LocalWith[A, B any](r *Register[B], f func(B) B, body Parser[A]) Parser[A] {
	return localWrite(r, body, func(st *state) *failure {
		v, fail := r.read(st)
		if fail != nil {
			return fail
		}
		return r.write(st, f(v))
	})
}

// LocalFrom runs q, then runs body with the register set to q's result.
func LocalFrom[A, B any](r *Register[B], q Parser[B], body Parser[A]) Parser[A] {
	return Bind(q, func(x B) Parser[A] { return Local(r, x, body) })
}

func localWrite[A, B any](r *Register[B], body Parser[A], set func(st *state) *failure) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		if err := r.bind(st); err != nil {
			return failWith[A](fatalFailure(st.cur, err), false)
		}
		saved := st.slots[r.slot]
		if fail := set(st); fail != nil {
			return failWith[A](fail, false)
		}
		res := body.run(st)
		if res.ok {
			st.slots[r.slot] = saved
		}
		return res
	}}
}

// Rollback runs p; if p fails without consuming input the register is
// restored to its prior contents and the failure propagates non-consuming.
// Successes and consuming failures pass through untouched.
func Rollback[A, B any](r *Register[B], p Parser[A]) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		if err := r.bind(st); err != nil {
			return failWith[A](fatalFailure(st.cur, err), false)
		}
		saved := st.slots[r.slot]
		res := p.run(st)
		if !res.ok && !res.consumed && !res.err.isFatal() {
			st.slots[r.slot] = saved
		}
		return res
	}}
}

// Fill runs p, allocates a fresh register holding its result, and runs
// body with it. The register is deallocated when body exits, on success and
// on failure alike.
func Fill[A, B any](p Parser[A], body func(*Register[A]) Parser[B]) Parser[B] {
	return Parser[B]{run: func(st *state) result[B] {
		res := p.run(st)
		if !res.ok {
			return failWith[B](res.err, res.consumed)
		}
		r := NewRegister[A]()
		if err := r.bind(st); err != nil {
			return failWith[B](fatalFailure(st.cur, err), res.consumed)
		}
		if fail := r.write(st, res.value); fail != nil {
			return failWith[B](fail, res.consumed)
		}
		out := body(r).run(st)
		st.freeSlot(r.slot)
		st.unbind(r)
		out.consumed = out.consumed || res.consumed
		return out
	}}
}

// Persist makes the result of p available as a parser that can be consulted
// any number of times by f without reparsing.
func Persist[A, B any](p Parser[A], f func(Parser[A]) Parser[B]) Parser[B] {
	return Fill(p, func(r *Register[A]) Parser[B] { return f(r.Get()) })
}

package parse

import "strconv"

// Alt is ordered choice with the LL(1) discipline: if p fails without
// consuming input, q is tried and the expected sets merge; if p fails having
// consumed, its failure propagates and q never runs.
func Alt[A any](p, q Parser[A]) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		res := p.run(st)
		if res.ok || res.consumed || res.err.isFatal() {
			return res
		}
		out := q.run(st)
		if out.ok {
			return out
		}
		out.err = res.err.merge(out.err)
		return out
	}}
}

// Choice tries each parser in order with Alt semantics. With no arguments it
// is Empty.
func Choice[A any](ps ...Parser[A]) Parser[A] {
	if len(ps) == 0 {
		return Empty[A]()
	}
	out := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		out = Alt(ps[i], out)
	}
	return out
}

// AtomicChoice is Choice with every alternative except the last wrapped in
// Atomic, so consuming failures still fall through to the next alternative.
func AtomicChoice[A any](ps ...Parser[A]) Parser[A] {
	if len(ps) == 0 {
		return Empty[A]()
	}
	out := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		out = Alt(Atomic(ps[i]), out)
	}
	return out
}

// Atomic runs p; on any failure it restores the cursor and reports the
// failure as non-consuming at the entry position, keeping the expected set
// and reasons. This is the explicit opt-in to backtracking.
func Atomic[A any](p Parser[A]) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		saved := st.cur
		res := p.run(st)
		if res.ok || res.err.isFatal() {
			return res
		}
		st.cur = saved
		res.consumed = false
		res.err.at = saved
		return res
	}}
}

// LookAhead runs p; on success it restores the cursor and yields the value.
// Failures propagate unchanged, consumption bit included.
func LookAhead[A any](p Parser[A]) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		saved := st.cur
		res := p.run(st)
		if res.ok {
			st.cur = saved
			res.consumed = false
		}
		return res
	}}
}

// NotFollowedBy succeeds, consuming nothing, exactly when p fails. When p
// succeeds it fails without consuming, reporting the matched text as
// unexpected. The cursor is restored in all outcomes.
func NotFollowedBy[A any](p Parser[A]) Parser[Unit] {
	return Parser[Unit]{run: func(st *state) result[Unit] {
		saved := st.cur
		res := p.run(st)
		after := st.cur
		st.cur = saved
		if res.err.isFatal() {
			return failWith[Unit](res.err, false)
		}
		if res.ok {
			f := newFailure(saved)
			if matched := saved.StringTo(after); matched != "" {
				f.unexpected = strconv.Quote(matched)
			}
			return failWith[Unit](f, false)
		}
		return result[Unit]{ok: true}
	}}
}

// Optional runs p, succeeding with Unit whether or not p matched. A
// consuming failure of p still propagates.
func Optional[A any](p Parser[A]) Parser[Unit] {
	return Alt(Void(p), Pure(Unit{}))
}

// OrElse runs p, yielding x if p fails without consuming.
func OrElse[A any](p Parser[A], x A) Parser[A] {
	return Alt(p, Pure(x))
}

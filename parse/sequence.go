package parse

// Map applies f to the result of p. Consumption is p's.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return Parser[B]{run: func(st *state) result[B] {
		res := p.run(st)
		if !res.ok {
			return failWith[B](res.err, res.consumed)
		}
		return result[B]{ok: true, value: f(res.value), consumed: res.consumed}
	}}
}

// Bind runs p and feeds its result to f to obtain the continuation parser.
// A failure of the continuation after p consumed input is reported as
// consuming.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return Parser[B]{run: func(st *state) result[B] {
		res := p.run(st)
		if !res.ok {
			return failWith[B](res.err, res.consumed)
		}
		out := f(res.value).run(st)
		out.consumed = out.consumed || res.consumed
		return out
	}}
}

// Then runs p then q, keeping q's result.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Parser[B]{run: func(st *state) result[B] {
		res := p.run(st)
		if !res.ok {
			return failWith[B](res.err, res.consumed)
		}
		out := q.run(st)
		out.consumed = out.consumed || res.consumed
		return out
	}}
}

// ThenSkip runs p then q, keeping p's result.
func ThenSkip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		res := p.run(st)
		if !res.ok {
			return res
		}
		skip := q.run(st)
		if !skip.ok {
			return failWith[A](skip.err, skip.consumed || res.consumed)
		}
		res.consumed = res.consumed || skip.consumed
		return res
	}}
}

// Pair is the result of Both.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Both runs p then q and yields both results.
func Both[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return Lift2(func(a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} }, p, q)
}

// Lift2 runs p then q left to right and combines their results with f.
// f is invoked exactly once, and only on the fully successful path.
func Lift2[A, B, C any](f func(A, B) C, p Parser[A], q Parser[B]) Parser[C] {
	return Parser[C]{run: func(st *state) result[C] {
		ra := p.run(st)
		if !ra.ok {
			return failWith[C](ra.err, ra.consumed)
		}
		rb := q.run(st)
		if !rb.ok {
			return failWith[C](rb.err, rb.consumed || ra.consumed)
		}
		return result[C]{ok: true, value: f(ra.value, rb.value), consumed: ra.consumed || rb.consumed}
	}}
}

// Lift3 sequences three parsers left to right and combines their results.
func Lift3[A, B, C, D any](f func(A, B, C) D, p Parser[A], q Parser[B], r Parser[C]) Parser[D] {
	return Lift2(func(ab Pair[A, B], c C) D { return f(ab.First, ab.Second, c) }, Both(p, q), r)
}

// Lift4 sequences four parsers left to right and combines their results.
func Lift4[A, B, C, D, E any](f func(A, B, C, D) E, p Parser[A], q Parser[B], r Parser[C], s Parser[D]) Parser[E] {
	return Lift2(func(ab Pair[A, B], cd Pair[C, D]) E {
		return f(ab.First, ab.Second, cd.First, cd.Second)
	}, Both(p, q), Both(r, s))
}

// Ap runs pf then px and applies the function to the value.
func Ap[A, B any](pf Parser[func(A) B], px Parser[A]) Parser[B] {
	return Lift2(func(f func(A) B, x A) B { return f(x) }, pf, px)
}

// As replaces the result of p with x.
func As[A, B any](p Parser[A], x B) Parser[B] {
	return Map(p, func(A) B { return x })
}

// Void discards the result of p.
func Void[A any](p Parser[A]) Parser[Unit] {
	return As(p, Unit{})
}

// Either holds one of two alternatives. The zero value is a Left zero value.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds an Either holding a left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right builds an Either holding a right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// IsRight reports which side the Either holds.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// Select runs pe; on Left u it runs pf and applies the function to u, on
// Right a it yields a without running pf. This encodes conditional
// continuations.
func Select[U, A any](pe Parser[Either[U, A]], pf Parser[func(U) A]) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		res := pe.run(st)
		if !res.ok {
			return failWith[A](res.err, res.consumed)
		}
		if res.value.isRight {
			return result[A]{ok: true, value: res.value.right, consumed: res.consumed}
		}
		rf := pf.run(st)
		if !rf.ok {
			return failWith[A](rf.err, rf.consumed || res.consumed)
		}
		return result[A]{ok: true, value: rf.value(res.value.left), consumed: res.consumed || rf.consumed}
	}}
}

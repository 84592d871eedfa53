package parse

import "fmt"

// Many runs p zero or more times and collects the results. Iteration stops
// at the first non-consuming failure of p; a consuming failure fails the
// whole iteration. A body that succeeds without consuming input would loop
// forever, so Many aborts the run with ErrNonConsumptiveIteration instead.
func Many[A any](p Parser[A]) Parser[[]A] {
	return Parser[[]A]{run: func(st *state) result[[]A] {
		return manyLoop(st, p, nil, false)
	}}
}

func manyLoop[A any](st *state, p Parser[A], acc []A, consumed bool) result[[]A] {
	for {
		res := p.run(st)
		if res.ok {
			if !res.consumed {
				return failWith[[]A](fatalFailure(st.cur, ErrNonConsumptiveIteration), consumed)
			}
			acc = append(acc, res.value)
			consumed = true
			continue
		}
		if res.consumed || res.err.isFatal() {
			return failWith[[]A](res.err, consumed || res.consumed)
		}
		return result[[]A]{ok: true, value: acc, consumed: consumed}
	}
}

// Some runs p one or more times.
func Some[A any](p Parser[A]) Parser[[]A] {
	return ManyN(1, p)
}

// ManyN runs p at least n times, then as many more as possible.
// A negative n panics at construction.
func ManyN[A any](n int, p Parser[A]) Parser[[]A] {
	requireCount("ManyN", n)
	return Parser[[]A]{run: func(st *state) result[[]A] {
		acc := make([]A, 0, n)
		consumed := false
		for i := 0; i < n; i++ {
			res := p.run(st)
			if !res.ok {
				return failWith[[]A](res.err, consumed || res.consumed)
			}
			acc = append(acc, res.value)
			consumed = consumed || res.consumed
		}
		return manyLoop(st, p, acc, consumed)
	}}
}

// SkipMany runs p zero or more times, discarding the results.
func SkipMany[A any](p Parser[A]) Parser[Unit] {
	return Void(Many(p))
}

// SkipSome runs p one or more times, discarding the results.
func SkipSome[A any](p Parser[A]) Parser[Unit] {
	return Void(Some(p))
}

// SkipManyN runs p at least n times, discarding the results.
func SkipManyN[A any](n int, p Parser[A]) Parser[Unit] {
	return Void(ManyN(n, p))
}

// ManyUntil repeatedly tries end; once end succeeds (its result discarded)
// it stops and yields the accumulated p results; otherwise p must succeed
// and the loop continues. Consuming failures of either parser fail the
// whole combinator.
func ManyUntil[A, E any](p Parser[A], end Parser[E]) Parser[[]A] {
	return Parser[[]A]{run: func(st *state) result[[]A] {
		var acc []A
		consumed := false
		for {
			stop := end.run(st)
			if stop.ok {
				return result[[]A]{ok: true, value: acc, consumed: consumed || stop.consumed}
			}
			if stop.consumed || stop.err.isFatal() {
				return failWith[[]A](stop.err, consumed || stop.consumed)
			}
			res := p.run(st)
			if !res.ok {
				return failWith[[]A](res.err, consumed || res.consumed)
			}
			if !res.consumed {
				return failWith[[]A](fatalFailure(st.cur, ErrNonConsumptiveIteration), consumed)
			}
			acc = append(acc, res.value)
			consumed = true
		}
	}}
}

// SomeUntil is ManyUntil requiring at least one p, asserting up front that
// end does not match immediately.
func SomeUntil[A, E any](p Parser[A], end Parser[E]) Parser[[]A] {
	return Then(NotFollowedBy(end), Lift2(prepend[A], p, ManyUntil(p, end)))
}

// SepBy1 parses one or more p separated by sep.
func SepBy1[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return Lift2(prepend[A], p, Many(Then(sep, p)))
}

// SepBy parses zero or more p separated by sep.
func SepBy[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return Alt(SepBy1(p, sep), Pure[[]A](nil))
}

// SepEndBy1 parses one or more p separated by sep, allowing a trailing sep.
func SepEndBy1[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return Parser[[]A]{run: func(st *state) result[[]A] {
		first := p.run(st)
		if !first.ok {
			return failWith[[]A](first.err, first.consumed)
		}
		acc := []A{first.value}
		consumed := first.consumed
		for {
			s := sep.run(st)
			if !s.ok {
				if s.consumed || s.err.isFatal() {
					return failWith[[]A](s.err, consumed || s.consumed)
				}
				return result[[]A]{ok: true, value: acc, consumed: consumed}
			}
			consumed = consumed || s.consumed
			res := p.run(st)
			if !res.ok {
				if res.consumed || res.err.isFatal() {
					return failWith[[]A](res.err, consumed || res.consumed)
				}
				return result[[]A]{ok: true, value: acc, consumed: consumed}
			}
			acc = append(acc, res.value)
			consumed = consumed || res.consumed
		}
	}}
}

// SepEndBy parses zero or more p separated by sep, allowing a trailing sep.
func SepEndBy[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return Alt(SepEndBy1(p, sep), Pure[[]A](nil))
}

// EndBy1 parses one or more p, each followed by sep.
func EndBy1[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return Some(ThenSkip(p, sep))
}

// EndBy parses zero or more p, each followed by sep.
func EndBy[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return Many(ThenSkip(p, sep))
}

// Exactly runs p exactly n times. A negative n panics at construction.
func Exactly[A any](n int, p Parser[A]) Parser[[]A] {
	requireCount("Exactly", n)
	return Parser[[]A]{run: func(st *state) result[[]A] {
		acc := make([]A, 0, n)
		consumed := false
		for i := 0; i < n; i++ {
			res := p.run(st)
			if !res.ok {
				return failWith[[]A](res.err, consumed || res.consumed)
			}
			acc = append(acc, res.value)
			consumed = consumed || res.consumed
		}
		return result[[]A]{ok: true, value: acc, consumed: consumed}
	}}
}

func prepend[A any](head A, tail []A) []A {
	return append([]A{head}, tail...)
}

func requireCount(name string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("parse: %s: negative count %d", name, n))
	}
}

package parse

import "strconv"

// Label replaces the expected set of a non-consuming failure of p with
// {name}. Failures after input was consumed keep their own expectations.
func Label[A any](p Parser[A], name string) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		res := p.run(st)
		if res.ok || res.consumed || res.err.isFatal() {
			return res
		}
		res.err.expected = []string{name}
		return res
	}}
}

// Hide removes the expected set of a non-consuming failure of p, so the
// parser contributes nothing to error reports. Typical for whitespace.
func Hide[A any](p Parser[A]) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		res := p.run(st)
		if res.ok || res.consumed || res.err.isFatal() {
			return res
		}
		res.err.expected = nil
		res.err.unexpected = ""
		return res
	}}
}

// Explain appends a user reason to any failure of p.
func Explain[A any](p Parser[A], reason string) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		res := p.run(st)
		if res.ok || res.err.isFatal() {
			return res
		}
		res.err.reasons = append(res.err.reasons, reason)
		return res
	}}
}

// Filter fails when p succeeds with a value pred rejects. The failure keeps
// p's consumption, so it commits inside Alt unless wrapped in Atomic; the
// reported position is where p started.
func Filter[A any](p Parser[A], pred func(A) bool) Parser[A] {
	return filterWith(p, func(A) (string, bool) { return "", false }, pred)
}

// FilterOut fails when reject returns a reason for p's value. The reason is
// attached to the failure.
func FilterOut[A any](p Parser[A], reject func(A) (string, bool)) Parser[A] {
	return filterWith(p, reject, nil)
}

func filterWith[A any](p Parser[A], reject func(A) (string, bool), pred func(A) bool) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		entry := st.cur
		res := p.run(st)
		if !res.ok {
			return res
		}
		reason, bad := reject(res.value)
		if !bad && pred != nil {
			bad = !pred(res.value)
		}
		if !bad {
			return res
		}
		f := newFailure(entry)
		if matched := entry.StringTo(st.cur); matched != "" {
			f.unexpected = strconv.Quote(matched)
		}
		if reason != "" {
			f.reasons = []string{reason}
		}
		return failWith[A](f, res.consumed)
	}}
}

package parse

import (
	"strconv"
	"strings"
)

const endOfInput = "end of input"

// Pure succeeds with x and consumes nothing.
func Pure[A any](x A) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		return result[A]{ok: true, value: x}
	}}
}

// Empty fails with no information and consumes nothing.
func Empty[A any]() Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		return failWith[A](newFailure(st.cur), false)
	}}
}

// Fail fails with a user reason and consumes nothing.
func Fail[A any](reason string) Parser[A] {
	return Parser[A]{run: func(st *state) result[A] {
		f := newFailure(st.cur)
		f.reasons = []string{reason}
		return failWith[A](f, false)
	}}
}

// Satisfy consumes one codepoint for which pred returns true. At end of
// input or when pred rejects, it fails without consuming. An optional label
// names what was expected in error reports.
func Satisfy(pred func(rune) bool, label ...string) Parser[rune] {
	return Parser[rune]{run: func(st *state) result[rune] {
		r, ok := st.cur.Peek()
		if !ok {
			f := newFailure(st.cur)
			f.expected = label
			f.unexpected = endOfInput
			return failWith[rune](f, false)
		}
		if !pred(r) {
			f := newFailure(st.cur)
			f.expected = label
			f.unexpected = strconv.QuoteRune(r)
			return failWith[rune](f, false)
		}
		st.cur = st.cur.Advance()
		return result[rune]{ok: true, value: r, consumed: true}
	}}
}

// Item consumes any single codepoint.
func Item() Parser[rune] {
	return Satisfy(func(rune) bool { return true })
}

// Rune consumes exactly the codepoint c.
func Rune(c rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r == c }, strconv.QuoteRune(c))
}

// EOF succeeds only at end of input and consumes nothing.
func EOF() Parser[Unit] {
	return Parser[Unit]{run: func(st *state) result[Unit] {
		if r, ok := st.cur.Peek(); ok {
			f := newFailure(st.cur)
			f.expected = []string{endOfInput}
			f.unexpected = strconv.QuoteRune(r)
			return failWith[Unit](f, false)
		}
		return result[Unit]{ok: true}
	}}
}

// String matches s codepoint by codepoint. A mismatch after the first
// character fails having consumed input, so Alt will not try another
// alternative; wrap in Atomic to opt out.
func String(s string) Parser[string] {
	quoted := strconv.Quote(s)
	return Parser[string]{run: func(st *state) result[string] {
		start := st.cur
		for _, want := range s {
			got, ok := st.cur.Peek()
			if !ok || got != want {
				f := newFailure(st.cur)
				f.expected = []string{quoted}
				if ok {
					f.unexpected = strconv.QuoteRune(got)
				} else {
					f.unexpected = endOfInput
				}
				return failWith[string](f, st.cur.Offset() != start.Offset())
			}
			st.cur = st.cur.Advance()
		}
		return result[string]{ok: true, value: s, consumed: len(s) > 0}
	}}
}

// OneOf consumes any codepoint contained in set.
func OneOf(set string) Parser[rune] {
	labels := make([]string, 0, len(set))
	for _, r := range set {
		labels = append(labels, strconv.QuoteRune(r))
	}
	return Satisfy(func(r rune) bool { return strings.ContainsRune(set, r) }, labels...)
}

// NoneOf consumes any codepoint not contained in set.
func NoneOf(set string) Parser[rune] {
	return Satisfy(func(r rune) bool { return !strings.ContainsRune(set, r) })
}

package parse

import (
	"strings"
	"testing"
)

func TestLabel(t *testing.T) {
	pe := parseErr(t, Label(Rune('a'), "the letter a"), "b")
	if len(pe.Expected) != 1 || pe.Expected[0] != "the letter a" {
		t.Errorf("expected set: got %v", pe.Expected)
	}
}

func TestLabelNotAppliedAfterConsumption(t *testing.T) {
	pe := parseErr(t, Label(String("ab"), "AB"), "ax")
	if len(pe.Expected) != 1 || pe.Expected[0] != `"ab"` {
		t.Errorf("expected set: got %v, want the inner label", pe.Expected)
	}
}

func TestHide(t *testing.T) {
	pe := parseErr(t, Hide(Rune('a')), "b")
	if len(pe.Expected) != 0 {
		t.Errorf("expected set: got %v, want empty", pe.Expected)
	}

	// Hidden whitespace does not pollute the merged expected set.
	space := Hide(SkipSome(Rune(' ')))
	pe = parseErr(t, Alt(As(space, 'x'), digit()), "a")
	if len(pe.Expected) != 1 || pe.Expected[0] != "digit" {
		t.Errorf("expected set: got %v, want [digit]", pe.Expected)
	}
}

func TestExplain(t *testing.T) {
	pe := parseErr(t, Explain(digit(), "amounts are numeric"), "x")
	if len(pe.Reasons) != 1 || pe.Reasons[0] != "amounts are numeric" {
		t.Errorf("reasons: got %v", pe.Reasons)
	}
}

func TestFilter(t *testing.T) {
	even := Filter(digit(), func(d rune) bool { return (d-'0')%2 == 0 })
	if v := mustParse(t, even, "4"); v != '4' {
		t.Errorf("got %q", v)
	}
	pe := parseErr(t, even, "3")
	if pe.Column != 1 {
		t.Errorf("column: got %d, want 1 (entry position)", pe.Column)
	}
	if pe.Unexpected != `"3"` {
		t.Errorf("unexpected: got %q", pe.Unexpected)
	}
}

func TestFilterCommits(t *testing.T) {
	// Filter keeps p's consumption, so the failure commits inside Alt
	// unless wrapped in Atomic.
	even := Filter(digit(), func(d rune) bool { return (d-'0')%2 == 0 })
	parseErr(t, Alt(even, Pure('x')), "3")
	if v := mustParse(t, Alt(Atomic(even), Pure('x')), "3"); v != 'x' {
		t.Errorf("got %q, want 'x'", v)
	}
}

func TestFilterOut(t *testing.T) {
	keyword := FilterOut(Map(Some(Satisfy(func(r rune) bool { return r >= 'a' && r <= 'z' })), func(rs []rune) string { return string(rs) }),
		func(word string) (string, bool) {
			if word == "if" {
				return "keyword 'if' cannot be an identifier", true
			}
			return "", false
		})
	if v := mustParse(t, keyword, "foo"); v != "foo" {
		t.Errorf("got %q", v)
	}
	pe := parseErr(t, keyword, "if")
	if len(pe.Reasons) != 1 || !strings.Contains(pe.Reasons[0], "keyword 'if'") {
		t.Errorf("reasons: got %v", pe.Reasons)
	}
}

func TestMergeSamePosition(t *testing.T) {
	pe := parseErr(t, Alt(Rune('a'), Alt(Rune('b'), Rune('a'))), "z")
	// Union: duplicates collapse.
	if len(pe.Expected) != 2 {
		t.Errorf("expected set: got %v, want two entries", pe.Expected)
	}
	pe = parseErr(t, Alt(Fail[rune]("first"), Fail[rune]("second")), "z")
	if len(pe.Reasons) != 2 || pe.Reasons[0] != "first" || pe.Reasons[1] != "second" {
		t.Errorf("reasons: got %v, want concatenation in order", pe.Reasons)
	}
}

func TestMergeLaterPositionDominates(t *testing.T) {
	// The right alternative fails one character in, so its error wins and
	// the left's expected items are dropped.
	pe := parseErr(t, Alt(As(Rune('x'), "x"), String("ab")), "ac")
	if pe.Column != 2 {
		t.Errorf("column: got %d, want 2", pe.Column)
	}
	for _, label := range pe.Expected {
		if label == "'x'" {
			t.Errorf("earlier failure leaked into expected set: %v", pe.Expected)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	pe := parseErr(t, Alt(Rune('a'), Rune('b')), "z")
	msg := pe.Error()
	for _, want := range []string{"line 1", "column 1", "'a'", "'b'", "unexpected 'z'"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	p := Then(String("ab\n"), digit())
	pe := parseErr(t, p, "ab\nx")
	if pe.Line != 2 || pe.Column != 1 || pe.Offset != 3 {
		t.Errorf("position: got %d:%d offset %d, want 2:1 offset 3", pe.Line, pe.Column, pe.Offset)
	}
}

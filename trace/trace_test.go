package trace

import (
	"testing"

	"github.com/dhamidi/parsec/parse"
)

func TestNamedPreservesSemantics(t *testing.T) {
	digit := parse.Satisfy(func(r rune) bool { return r >= '0' && r <= '9' }, "digit")
	p := Named(parse.Some(digit), "digits")

	v, err := parse.ParseFully(p, "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(v) != "123" {
		t.Errorf("got %q, want \"123\"", string(v))
	}

	if _, err := parse.Parse(p, "x"); err == nil {
		t.Error("expected failure on non-digit input")
	}
}

func TestNamedWith(t *testing.T) {
	p := NamedWith(parse.String("ok"), "lit", log)
	if _, err := parse.Parse(p, "ok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

package parse

import (
	"errors"
	"testing"
)

func runesEqual(t *testing.T, got []rune, want string) {
	t.Helper()
	if string(got) != want {
		t.Errorf("got %q, want %q", string(got), want)
	}
}

func TestManyDigits(t *testing.T) {
	v, cur, err := Run(Many(digit()), "123")
	if err != nil {
		t.Fatal(err)
	}
	runesEqual(t, v, "123")
	if cur.Offset() != 3 {
		t.Errorf("offset: got %d, want 3", cur.Offset())
	}
}

func TestManyStopsAtNonConsumingFailure(t *testing.T) {
	v, cur, err := Run(Many(digit()), "12x3")
	if err != nil {
		t.Fatal(err)
	}
	runesEqual(t, v, "12")
	if cur.Offset() != 2 {
		t.Errorf("offset: got %d, want 2", cur.Offset())
	}
}

func TestManyEmpty(t *testing.T) {
	v := mustParse(t, Many(digit()), "abc")
	if len(v) != 0 {
		t.Errorf("got %v, want empty", v)
	}
}

func TestManyConsumingFailurePropagates(t *testing.T) {
	// The second "ab" consumes 'a' then fails, so the iteration fails
	// as consumed and commits inside Alt.
	p := Many(String("ab"))
	parseErr(t, p, "abac")
	parseErr(t, Alt(p, Pure[[]string](nil)), "abac")
}

func TestManyRejectsNonConsumptiveBody(t *testing.T) {
	_, err := Parse(Many(Pure('x')), "abc")
	if !errors.Is(err, ErrNonConsumptiveIteration) {
		t.Fatalf("got %v, want ErrNonConsumptiveIteration", err)
	}
	// Programmer errors are not recoverable by Alt.
	_, err = Parse(Alt(Many(Pure('x')), Pure[[]rune](nil)), "abc")
	if !errors.Is(err, ErrNonConsumptiveIteration) {
		t.Fatalf("after Alt: got %v, want ErrNonConsumptiveIteration", err)
	}
}

func TestSome(t *testing.T) {
	v := mustParse(t, Some(digit()), "42x")
	runesEqual(t, v, "42")
	parseErr(t, Some(digit()), "x")
}

func TestManyN(t *testing.T) {
	v := mustParse(t, ManyN(2, digit()), "1234")
	runesEqual(t, v, "1234")
	parseErr(t, ManyN(2, digit()), "1")
	v = mustParse(t, ManyN(0, digit()), "x")
	if len(v) != 0 {
		t.Errorf("got %v, want empty", v)
	}
}

func TestManyNNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative count")
		}
	}()
	ManyN(-1, digit())
}

func TestSkipVariants(t *testing.T) {
	_, cur, err := Run(SkipMany(digit()), "123x")
	if err != nil {
		t.Fatal(err)
	}
	if cur.Offset() != 3 {
		t.Errorf("SkipMany offset: got %d, want 3", cur.Offset())
	}
	parseErr(t, SkipSome(digit()), "x")
	mustParse(t, SkipManyN(2, digit()), "123")
	parseErr(t, SkipManyN(2, digit()), "1")
}

func TestManyUntil(t *testing.T) {
	v, cur, err := Run(ManyUntil(Item(), String("*/")), "hello*/")
	if err != nil {
		t.Fatal(err)
	}
	runesEqual(t, v, "hello")
	if cur.Offset() != 7 {
		t.Errorf("offset: got %d, want 7 (past the terminator)", cur.Offset())
	}
}

func TestManyUntilImmediateEnd(t *testing.T) {
	v := mustParse(t, ManyUntil(Item(), String("*/")), "*/")
	if len(v) != 0 {
		t.Errorf("got %v, want empty", v)
	}
}

func TestManyUntilUnterminated(t *testing.T) {
	parseErr(t, ManyUntil(digit(), String("*/")), "123abc")
}

func TestSomeUntil(t *testing.T) {
	v := mustParse(t, SomeUntil(Item(), String("*/")), "a*/")
	runesEqual(t, v, "a")
	// end matching immediately violates the "some" requirement
	parseErr(t, SomeUntil(Item(), String("*/")), "*/")
}

func TestSepBy(t *testing.T) {
	p := SepBy(digit(), String(", "))

	v := mustParse(t, p, "7, 3, 2")
	runesEqual(t, v, "732")

	v = mustParse(t, p, "")
	if len(v) != 0 {
		t.Errorf("empty input: got %v, want empty", v)
	}

	// Trailing separator: the sep consumed, then no digit follows.
	parseErr(t, p, "1, 2, ")
}

func TestSepBy1(t *testing.T) {
	v := mustParse(t, SepBy1(digit(), Rune(',')), "1,2,3")
	runesEqual(t, v, "123")
	parseErr(t, SepBy1(digit(), Rune(',')), "")
}

func TestSepEndBy1(t *testing.T) {
	p := SepEndBy1(digit(), Rune(','))

	v, cur, err := Run(p, "1,2,3")
	if err != nil {
		t.Fatal(err)
	}
	runesEqual(t, v, "123")
	if cur.Offset() != 5 {
		t.Errorf("offset: got %d, want 5", cur.Offset())
	}

	// Trailing separator is allowed and consumed.
	v, cur, err = Run(p, "1,2,")
	if err != nil {
		t.Fatal(err)
	}
	runesEqual(t, v, "12")
	if cur.Offset() != 4 {
		t.Errorf("trailing sep offset: got %d, want 4", cur.Offset())
	}

	parseErr(t, p, "")
}

func TestSepEndBy(t *testing.T) {
	v := mustParse(t, SepEndBy(digit(), Rune(',')), "")
	if len(v) != 0 {
		t.Errorf("got %v, want empty", v)
	}
}

func TestEndBy(t *testing.T) {
	v := mustParse(t, EndBy1(digit(), Rune(';')), "1;2;3;")
	runesEqual(t, v, "123")
	// Missing final separator commits.
	parseErr(t, EndBy1(digit(), Rune(';')), "1;2")

	v = mustParse(t, EndBy(digit(), Rune(';')), "")
	if len(v) != 0 {
		t.Errorf("EndBy on empty: got %v", v)
	}
}

func TestExactly(t *testing.T) {
	v, cur, err := Run(Exactly(3, digit()), "12345")
	if err != nil {
		t.Fatal(err)
	}
	runesEqual(t, v, "123")
	if cur.Offset() != 3 {
		t.Errorf("offset: got %d, want 3", cur.Offset())
	}
	parseErr(t, Exactly(3, digit()), "12")
}

package peg

import "testing"

func TestCaptureFaithfulness(t *testing.T) {
	g := Capture(SeqUnit(Literal("foo"), Literal("bar")))

	st := newState("foobarbaz")
	v, ok := g.eval(st)
	if !ok || v != "foobar" || st.Remaining() != "baz" {
		t.Fatalf("Capture: v=%q ok=%v remaining=%q", v, ok, st.Remaining())
	}

	st = newState("foobaz")
	if _, ok := g.eval(st); ok {
		t.Fatalf("Capture: expected failure to propagate from child")
	}
}

func TestValidate(t *testing.T) {
	threeDigits := Validate(Capture(RepeatUnit(3, 3, Class(ASCIIDigit), nil)), func(s string) bool {
		return s != "000"
	})

	st := newState("123x")
	if v, ok := threeDigits.eval(st); !ok || v != "123" {
		t.Errorf("Validate accept: v=%q ok=%v", v, ok)
	}

	st = newState("000x")
	if _, ok := threeDigits.eval(st); ok || st.Cursor() != 0 {
		t.Errorf("Validate reject: expected failure restoring cursor, cursor=%d", st.Cursor())
	}
}

func TestInspect(t *testing.T) {
	var seen string
	g := Inspect(Capture(Literal("hi")), func(v string) { seen = v })

	st := newState("hi")
	if _, ok := g.eval(st); !ok || seen != "hi" {
		t.Errorf("Inspect: ok=%v seen=%q", ok, seen)
	}
}

package peg

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// A JSON-shaped grammar assembled purely from this package's own
// combinators: the property this exercises is that the value-synthesis
// rules (tuple flattening, mapper destructuring, Optional-wrapped
// repetition) compose all the way up to a real recursive, multi-type
// grammar, not just in isolated unit tests. Values are synthesized as
// Go's usual untyped-JSON shape: nil, bool, float64, string, []any,
// map[string]any.
type jsonPair struct {
	key string
	val any
}

func buildJSONParser() *Parser[any] {
	ws := StarUnit(Class(ASCIIWhitespace))

	value := NewRule[any]("jsonValue")

	jsonNull := Supply[any](Literal("null"), nil)
	jsonTrue := Supply[any](Literal("true"), true)
	jsonFalse := Supply[any](Literal("false"), false)

	digits := PlusUnit(Class(ASCIIDigit))
	numberText := Capture(SeqUnit(
		OptionUnit(Byte('-')),
		SeqUnit(digits, OptionUnit(SeqUnit(Byte('.'), digits))),
	))
	jsonNumber := Map1(numberText, func(s string) any {
		n, _ := strconv.ParseFloat(s, 64)
		return n
	})

	// Printable ASCII excluding the closing quote; enough for this test's
	// grammar, which does not need backslash-escape handling.
	stringChar := Class(Union(ClassWithRange(0x20, 0x21), ClassWithRange(0x23, 0x7e)))
	stringText := Capture(StarUnit(stringChar))
	quoted := SeqRight(Byte('"'), SeqLeft(stringText, Byte('"')))
	jsonString := Map1(quoted, func(s string) any { return s })

	arrayElems := JoinEach(
		Construct(value.Ref(), func(v any) []any { return []any{v} }),
		func(acc *[]any, v any) { *acc = append(*acc, v) },
		SeqRight(ws, SeqRight(Byte(','), SeqRight(ws, value.Ref()))),
		nil, 0, NoLimit,
	)
	arrayBody := Construct(Option(arrayElems), func(o Optional[[]any]) []any {
		if o.Present {
			return o.Value
		}
		return []any{}
	})
	jsonArray := Map1(
		SeqRight(Byte('['), SeqLeft(SeqRight(ws, arrayBody), SeqRight(ws, Byte(']')))),
		func(v []any) any { return v },
	)

	pair := Map2(
		Seq2(quoted, SeqRight(ws, SeqRight(Byte(':'), SeqRight(ws, value.Ref())))),
		func(k string, v any) jsonPair { return jsonPair{key: k, val: v} },
	)
	objectElems := JoinEach(
		Construct(pair, func(p jsonPair) map[string]any { return map[string]any{p.key: p.val} }),
		func(acc *map[string]any, p jsonPair) { (*acc)[p.key] = p.val },
		SeqRight(ws, SeqRight(Byte(','), SeqRight(ws, pair))),
		nil, 0, NoLimit,
	)
	objectBody := Construct(Option(objectElems), func(o Optional[map[string]any]) map[string]any {
		if o.Present {
			return o.Value
		}
		return map[string]any{}
	})
	jsonObject := Map1(
		SeqRight(Byte('{'), SeqLeft(SeqRight(ws, objectBody), SeqRight(ws, Byte('}')))),
		func(v map[string]any) any { return v },
	)

	value.Define(Choice(jsonObject, Choice(jsonArray, Choice(jsonString, Choice(jsonNumber, Choice(jsonTrue, Choice(jsonFalse, jsonNull)))))))

	document := ruleFromExpr("document", SeqLeft(SeqRight(ws, value.Ref()), SeqRight(ws, Not(Any()))))
	return NewParser(document)
}

// S4: the JSON-shaped grammar scenario from the scenario catalogue.
func TestScenarioS4(t *testing.T) {
	p := buildJSONParser()

	out := p.Parse(`{"k":[1,2,3]}`)
	if !out.OK() {
		t.Fatalf("S4: expected success")
	}
	want := map[string]any{"k": []any{1.0, 2.0, 3.0}}
	if diff := cmp.Diff(want, out.Value()); diff != "" {
		t.Errorf("S4: value mismatch (-want +got):\n%s", diff)
	}

	out = p.Parse(`{"k":}`)
	if out.OK() {
		t.Fatalf("S4: expected failure on a missing value")
	}
	if out.FailurePosition().Offset != 5 {
		t.Errorf("S4: furthest failure offset = %d, want 5", out.FailurePosition().Offset)
	}
}

func TestJSONGrammarScalarsAndNesting(t *testing.T) {
	p := buildJSONParser()

	data := []struct {
		input string
		want  any
	}{
		{"null", nil},
		{"true", true},
		{"false", false},
		{`"hi"`, "hi"},
		{"3.5", 3.5},
		{"[]", []any{}},
		{"{}", map[string]any{}},
		{`{"a":{"b":[true,null]}}`, map[string]any{"a": map[string]any{"b": []any{true, nil}}}},
	}
	for _, d := range data {
		out := p.Parse(d.input)
		if !out.OK() {
			t.Fatalf("%q: expected success", d.input)
		}
		if diff := cmp.Diff(d.want, out.Value()); diff != "" {
			t.Errorf("%q: value mismatch (-want +got):\n%s", d.input, diff)
		}
	}
}

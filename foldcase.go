package peg

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LiteralFold recognizes s case-insensitively under simple Unicode case
// folding. Unlike the source library's TI, it does not special-case the
// handful of runes whose folded form has a different UTF-8 byte length
// (e.g. 'ß'/"ss"): those would require growing or shrinking the matched
// span relative to len(s), which this byte-oriented terminal does not
// attempt. Ordinary ASCII and single-rune-preserving folds (the
// overwhelming majority of real literals) are unaffected.
func LiteralFold(s string) Expr[Unit] {
	folded := foldCase(s)
	return exprFunc[Unit](func(st *State) (Unit, bool) {
		origin := st.cursor
		end := origin + len(s)
		if end > len(st.input) {
			st.fail()
			return Unit{}, false
		}
		if foldCase(st.input[origin:end]) != folded {
			st.fail()
			return Unit{}, false
		}
		st.cursor = end
		return Unit{}, true
	})
}

func foldCase(s string) string {
	if isASCII(s) {
		return strings.ToLower(s)
	}

	encoded := make([]byte, 0, len(s))
	buf := make([]byte, 4)
	for _, r := range s {
		n := utf8.EncodeRune(buf, runeFoldCase(r))
		encoded = append(encoded, buf[:n]...)
	}
	return string(encoded)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// runeFoldCase normalizes r to the lowest code point in its simple
// case-fold orbit.
func runeFoldCase(r rune) rune {
	r0 := unicode.SimpleFold(r)
	for r0 != r {
		if r0 < r {
			r = r0
		}
		r0 = unicode.SimpleFold(r0)
	}
	return r
}

package peg

import (
	"strings"
	"unicode"
)

// Predefined ASCII class sets, grounded on the common rune categories the
// source library exposes through S/R/U: the byte-level analogues a
// grammar reaches for most often.
var (
	ASCIIDigit      = ClassWithRange('0', '9')
	ASCIILower      = ClassWithRange('a', 'z')
	ASCIIUpper      = ClassWithRange('A', 'Z')
	ASCIILetter     = Union(ASCIILower, ASCIIUpper)
	ASCIIAlphaNum   = Union(ASCIILetter, ASCIIDigit)
	ASCIIWhitespace = Union(ClassWithByte(' '), ClassWithByte('\t'), ClassWithByte('\n'), ClassWithByte('\r'), ClassWithByte('\f'), ClassWithByte('\v'))
)

// unicodeRangeAliases names a handful of broad unicode.RangeTable
// categories under short, memorable names, same set the source library's
// U combinator recognizes.
var unicodeRangeAliases = map[string]*unicode.RangeTable{
	"Upper":     unicode.Lu,
	"Lower":     unicode.Ll,
	"Title":     unicode.Lt,
	"Letter":    unicode.L,
	"Mark":      unicode.M,
	"Number":    unicode.N,
	"Digit":     unicode.Nd,
	"Punct":     unicode.P,
	"Symbol":    unicode.S,
	"Separator": unicode.Z,
	"Other":     unicode.C,
	"Control":   unicode.Cc,
}

var unicodeRangeSliceAliases = map[string][]*unicode.RangeTable{
	"Graphic": unicode.GraphicRanges,
	"Print":   unicode.PrintRanges,
}

// IsUnicodeRangeName reports whether name is recognized by UnicodeRange:
// one of the aliases above, or a name from unicode.Properties,
// unicode.Scripts or unicode.Categories (e.g. "White_Space", "Latin",
// "Nd").
func IsUnicodeRangeName(name string) bool {
	_, ok := lookupUnicodeRanges(name)
	return ok
}

func lookupUnicodeRanges(name string) ([]*unicode.RangeTable, bool) {
	if r, ok := unicodeRangeAliases[name]; ok {
		return []*unicode.RangeTable{r}, true
	}
	if rs, ok := unicodeRangeSliceAliases[name]; ok {
		return rs, true
	}
	if r, ok := unicode.Properties[name]; ok {
		return []*unicode.RangeTable{r}, true
	}
	if r, ok := unicode.Scripts[name]; ok {
		return []*unicode.RangeTable{r}, true
	}
	if r, ok := unicode.Categories[name]; ok {
		return []*unicode.RangeTable{r}, true
	}
	return nil, false
}

// UnicodeRange recognizes a single code point belonging to the named
// unicode range (see IsUnicodeRangeName). A name prefixed with "-"
// excludes that range instead of requiring it; mixing inclusions and
// exclusions requires at least one rune to be in an included range and
// in none of the excluded ones. Panics if any name is undefined.
func UnicodeRange(names ...string) Expr[Unit] {
	if len(names) == 0 {
		return exprFunc[Unit](func(st *State) (Unit, bool) {
			st.fail()
			return Unit{}, false
		})
	}

	var include, exclude []*unicode.RangeTable
	for _, name := range names {
		if strings.HasPrefix(name, "-") {
			rs, ok := lookupUnicodeRanges(name[1:])
			if !ok {
				panic(errorf("unicode range name %q undefined", name[1:]))
			}
			exclude = append(exclude, rs...)
		} else {
			rs, ok := lookupUnicodeRanges(name)
			if !ok {
				panic(errorf("unicode range name %q undefined", name))
			}
			include = append(include, rs...)
		}
	}

	return exprFunc[Unit](func(st *State) (Unit, bool) {
		r, n := decodeRune(st.input, st.cursor)
		if n == 0 {
			st.fail()
			return Unit{}, false
		}
		if len(include) > 0 && !unicode.In(r, include...) {
			st.fail()
			return Unit{}, false
		}
		if len(exclude) > 0 && unicode.In(r, exclude...) {
			st.fail()
			return Unit{}, false
		}
		st.cursor += n
		return Unit{}, true
	})
}

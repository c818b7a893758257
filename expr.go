// Package peg implements a typed Parsing Expression Grammar combinator
// library. Grammars are built from small composable Expr[T] values;
// evaluating one against an input both recognizes a language and
// synthesizes a value of its declared result type T. Choice is ordered
// and committed (classic PEG semantics: no ambiguity, no backtracking
// past a successful alternative), and every combinator's result type is
// fixed by the constructor used to build it, so a grammar that does not
// typecheck never runs at all.
package peg

// Unit is the result type of expressions that recognize input but carry
// no value of their own: terminals, predicates, and the bodies that
// Capture and Not/And wrap.
type Unit struct{}

// Expr is a grammar fragment that recognizes a prefix of the input and,
// on success, synthesizes a value of type T. The eval method is
// unexported so only this package can add new kinds of expression nodes;
// callers compose Expr values exclusively through the constructors this
// package exports.
type Expr[T any] interface {
	eval(st *State) (T, bool)
}

// exprFunc adapts a plain evaluation function to the Expr interface. All
// constructors in this package build their nodes this way rather than
// with named struct types, since none of them carry state beyond their
// closed-over children.
type exprFunc[T any] func(st *State) (T, bool)

func (f exprFunc[T]) eval(st *State) (T, bool) {
	return f(st)
}

// Any recognizes a single byte, unconditionally. It never fails except at
// end of input.
func Any() Expr[Unit] {
	return exprFunc[Unit](func(st *State) (Unit, bool) {
		if st.atEnd() {
			st.fail()
			return Unit{}, false
		}
		st.cursor++
		return Unit{}, true
	})
}

// AnyRune recognizes a single well-formed UTF-8 code point. Unlike Any,
// it fails on a short buffer, an invalid lead byte, or invalid
// continuation bytes.
func AnyRune() Expr[Unit] {
	return exprFunc[Unit](func(st *State) (Unit, bool) {
		size := decodeRuneSize(st.input, st.cursor)
		if size == 0 {
			st.fail()
			return Unit{}, false
		}
		st.cursor += size
		return Unit{}, true
	})
}

// Literal recognizes an exact byte-for-byte match of s. On a mismatch,
// the furthest-failure position is the byte where the comparison
// diverged, not the start of the attempted match.
func Literal(s string) Expr[Unit] {
	return exprFunc[Unit](func(st *State) (Unit, bool) {
		origin := st.cursor
		for i := 0; i < len(s); i++ {
			if st.atEnd() || st.input[st.cursor] != s[i] {
				st.fail()
				st.seek(origin)
				return Unit{}, false
			}
			st.cursor++
		}
		return Unit{}, true
	})
}

// Byte recognizes a single specific byte.
func Byte(c byte) Expr[Unit] {
	return exprFunc[Unit](func(st *State) (Unit, bool) {
		if st.atEnd() || st.input[st.cursor] != c {
			st.fail()
			return Unit{}, false
		}
		st.cursor++
		return Unit{}, true
	})
}

// Class recognizes a single byte belonging to set.
func Class(set ClassSet) Expr[Unit] {
	return exprFunc[Unit](func(st *State) (Unit, bool) {
		if st.atEnd() || !set.Contains(st.input[st.cursor]) {
			st.fail()
			return Unit{}, false
		}
		st.cursor++
		return Unit{}, true
	})
}

// Empty always succeeds without consuming input. It is the default
// delimiter for Repeat/RepeatUnit/JoinEach.
func Empty() Expr[Unit] {
	return exprFunc[Unit](func(st *State) (Unit, bool) {
		return Unit{}, true
	})
}

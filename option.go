package peg

// Optional holds the value of an optional sub-expression. Present is
// false when the sub-expression did not match; Value is then the zero
// value of T.
type Optional[T any] struct {
	Value   T
	Present bool
}

// OptionUnit tries e; it always succeeds, whether or not e matched.
func OptionUnit(e Expr[Unit]) Expr[Unit] {
	return exprFunc[Unit](func(st *State) (Unit, bool) {
		origin := st.cursor
		if _, ok := e.eval(st); ok {
			return Unit{}, true
		}
		st.seek(origin)
		st.setOK(true)
		return Unit{}, true
	})
}

// Option tries e; it always succeeds, wrapping e's value as Present when
// e matched or the absent Optional otherwise.
func Option[T any](e Expr[T]) Expr[Optional[T]] {
	return exprFunc[Optional[T]](func(st *State) (Optional[T], bool) {
		origin := st.cursor
		if v, ok := e.eval(st); ok {
			return Optional[T]{Value: v, Present: true}, true
		}
		st.seek(origin)
		st.setOK(true)
		return Optional[T]{}, true
	})
}

package peg

// Validate evaluates e and, on success, applies check to its value. If
// check returns false, Validate fails and restores the cursor, even
// though e itself matched — adapted from the source library's Check
// combinator, generalized to a typed value instead of the matched text.
func Validate[T any](e Expr[T], check func(T) bool) Expr[T] {
	return exprFunc[T](func(st *State) (T, bool) {
		origin := st.cursor
		v, ok := e.eval(st)
		if !ok {
			return v, false
		}
		if !check(v) {
			st.seek(origin)
			st.fail()
			var zero T
			return zero, false
		}
		return v, true
	})
}

// Inspect evaluates e and, if it matched, calls observe with its value
// purely for a side effect (logging, metrics, debugging), passing the
// result through unchanged. Adapted from the source library's Trigger
// combinator.
func Inspect[T any](e Expr[T], observe func(T)) Expr[T] {
	return exprFunc[T](func(st *State) (T, bool) {
		v, ok := e.eval(st)
		if ok {
			observe(v)
		}
		return v, ok
	})
}

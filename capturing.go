package peg

// Capture returns the raw input bytes consumed by e. The Go type system
// enforces the source spec's "child must be unit-typed" constraint here
// directly, since e must already be Expr[Unit].
func Capture(e Expr[Unit]) Expr[string] {
	return exprFunc[string](func(st *State) (string, bool) {
		origin := st.cursor
		if _, ok := e.eval(st); !ok {
			return "", false
		}
		return st.Consumed(origin), true
	})
}

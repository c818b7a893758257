package peg

// Not is a negative lookahead: it succeeds iff e fails, and never
// consumes input either way. The Go type system enforces the source
// spec's "child must be unit-typed" constraint here directly, since e
// must already be Expr[Unit].
func Not(e Expr[Unit]) Expr[Unit] {
	return exprFunc[Unit](func(st *State) (Unit, bool) {
		origin := st.cursor
		_, ok := e.eval(st)
		st.seek(origin)
		if ok {
			st.fail()
			return Unit{}, false
		}
		st.setOK(true)
		return Unit{}, true
	})
}

// And is a positive lookahead: it succeeds iff e succeeds, without
// consuming input.
func And(e Expr[Unit]) Expr[Unit] {
	return Not(Not(e))
}

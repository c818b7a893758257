package peg

// SeqUnit sequences two unit-valued expressions, producing no value of
// its own.
func SeqUnit(a, b Expr[Unit]) Expr[Unit] {
	return exprFunc[Unit](func(st *State) (Unit, bool) {
		origin := st.cursor
		if _, ok := a.eval(st); !ok {
			return Unit{}, false
		}
		if _, ok := b.eval(st); !ok {
			st.seek(origin)
			st.fail()
			return Unit{}, false
		}
		return Unit{}, true
	})
}

// SeqLeft sequences a valued expression followed by a unit-valued one,
// keeping the left child's value.
func SeqLeft[A any](a Expr[A], b Expr[Unit]) Expr[A] {
	return exprFunc[A](func(st *State) (A, bool) {
		origin := st.cursor
		va, ok := a.eval(st)
		if !ok {
			var zero A
			return zero, false
		}
		if _, ok := b.eval(st); !ok {
			st.seek(origin)
			st.fail()
			var zero A
			return zero, false
		}
		return va, true
	})
}

// SeqRight sequences a unit-valued expression followed by a valued one,
// keeping the right child's value.
func SeqRight[B any](a Expr[Unit], b Expr[B]) Expr[B] {
	return exprFunc[B](func(st *State) (B, bool) {
		origin := st.cursor
		if _, ok := a.eval(st); !ok {
			var zero B
			return zero, false
		}
		vb, ok := b.eval(st)
		if !ok {
			st.seek(origin)
			st.fail()
			var zero B
			return zero, false
		}
		return vb, true
	})
}

// Seq2 sequences two valued expressions, producing a flat Tuple. If
// either child already produced a Tuple (because it came from a nested
// Seq2), its elements are spliced in rather than nested, so Seq2 is
// associative at the value level: Seq2(Seq2(a, b), c) and
// Seq2(a, Seq2(b, c)) both yield the same flat 3-element Tuple.
func Seq2[A, B any](a Expr[A], b Expr[B]) Expr[Tuple] {
	return exprFunc[Tuple](func(st *State) (Tuple, bool) {
		origin := st.cursor
		va, ok := a.eval(st)
		if !ok {
			return nil, false
		}
		vb, ok := b.eval(st)
		if !ok {
			st.seek(origin)
			st.fail()
			return nil, false
		}
		return flattenPair(va, vb), true
	})
}

// Choice tries a first; if a fails without consuming input, it tries b at
// the same starting position. Choice is strictly left-biased: if a
// succeeds, b is never attempted, regardless of whether b would also
// match.
func Choice[T any](a, b Expr[T]) Expr[T] {
	return exprFunc[T](func(st *State) (T, bool) {
		origin := st.cursor
		if v, ok := a.eval(st); ok {
			return v, true
		}
		st.seek(origin)
		st.setOK(true)
		return b.eval(st)
	})
}

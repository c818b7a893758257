package peg

// MapUnit applies a zero-argument mapper to the result of a unit-valued
// expression.
func MapUnit[B any](e Expr[Unit], f func() B) Expr[B] {
	return exprFunc[B](func(st *State) (B, bool) {
		if _, ok := e.eval(st); !ok {
			var zero B
			return zero, false
		}
		return f(), true
	})
}

// Map1 applies a one-argument mapper to the result of a singly-valued
// expression.
func Map1[A, B any](e Expr[A], f func(A) B) Expr[B] {
	return exprFunc[B](func(st *State) (B, bool) {
		v, ok := e.eval(st)
		if !ok {
			var zero B
			return zero, false
		}
		return f(v), true
	})
}

// Map1Err is Map1 for mappers that can themselves fail; a non-nil error
// turns a successful recognition into a parse failure.
func Map1Err[A, B any](e Expr[A], f func(A) (B, error)) Expr[B] {
	return exprFunc[B](func(st *State) (B, bool) {
		origin := st.cursor
		v, ok := e.eval(st)
		if !ok {
			var zero B
			return zero, false
		}
		b, err := f(v)
		if err != nil {
			st.seek(origin)
			st.fail()
			var zero B
			return zero, false
		}
		return b, true
	})
}

// Map2 destructures a Tuple-producing expression's two elements and
// applies a two-argument mapper.
func Map2[A, B, C any](e Expr[Tuple], f func(A, B) C) Expr[C] {
	return exprFunc[C](func(st *State) (C, bool) {
		t, ok := e.eval(st)
		if !ok {
			var zero C
			return zero, false
		}
		return f(TupleGet[A](t, 0), TupleGet[B](t, 1)), true
	})
}

// Map3 destructures a Tuple-producing expression's three elements and
// applies a three-argument mapper.
func Map3[A, B, C, D any](e Expr[Tuple], f func(A, B, C) D) Expr[D] {
	return exprFunc[D](func(st *State) (D, bool) {
		t, ok := e.eval(st)
		if !ok {
			var zero D
			return zero, false
		}
		return f(TupleGet[A](t, 0), TupleGet[B](t, 1), TupleGet[C](t, 2)), true
	})
}

// Map4 destructures a Tuple-producing expression's four elements and
// applies a four-argument mapper.
func Map4[A, B, C, D, E any](e Expr[Tuple], f func(A, B, C, D) E) Expr[E] {
	return exprFunc[E](func(st *State) (E, bool) {
		t, ok := e.eval(st)
		if !ok {
			var zero E
			return zero, false
		}
		return f(TupleGet[A](t, 0), TupleGet[B](t, 1), TupleGet[C](t, 2), TupleGet[D](t, 3)), true
	})
}

// Map5 destructures a Tuple-producing expression's five elements and
// applies a five-argument mapper.
func Map5[A, B, C, D, E, F any](e Expr[Tuple], f func(A, B, C, D, E) F) Expr[F] {
	return exprFunc[F](func(st *State) (F, bool) {
		t, ok := e.eval(st)
		if !ok {
			var zero F
			return zero, false
		}
		return f(
			TupleGet[A](t, 0), TupleGet[B](t, 1), TupleGet[C](t, 2),
			TupleGet[D](t, 3), TupleGet[E](t, 4),
		), true
	})
}

// Map6 destructures a Tuple-producing expression's six elements and
// applies a six-argument mapper.
func Map6[A, B, C, D, E, F, G any](e Expr[Tuple], f func(A, B, C, D, E, F) G) Expr[G] {
	return exprFunc[G](func(st *State) (G, bool) {
		t, ok := e.eval(st)
		if !ok {
			var zero G
			return zero, false
		}
		return f(
			TupleGet[A](t, 0), TupleGet[B](t, 1), TupleGet[C](t, 2),
			TupleGet[D](t, 3), TupleGet[E](t, 4), TupleGet[F](t, 5),
		), true
	})
}

// Construct is Map1 named for the common case of building a domain type
// out of a single sub-expression's value.
func Construct[A, T any](e Expr[A], ctor func(A) T) Expr[T] {
	return Map1(e, ctor)
}

// Supply ignores e's value (e must still match) and always yields the
// constant c.
func Supply[T any](e Expr[Unit], c T) Expr[T] {
	return MapUnit(e, func() T { return c })
}

// SupplyZero ignores e's value (e must still match) and always yields
// the zero value of T.
func SupplyZero[T any](e Expr[Unit]) Expr[T] {
	return MapUnit(e, func() T { var zero T; return zero })
}

// Cast evaluates e and narrows its value with assert; a false second
// return value from assert turns a successful recognition into a parse
// failure, restoring the cursor.
func Cast[T, U any](e Expr[T], assert func(T) (U, bool)) Expr[U] {
	return exprFunc[U](func(st *State) (U, bool) {
		origin := st.cursor
		v, ok := e.eval(st)
		if !ok {
			var zero U
			return zero, false
		}
		u, good := assert(v)
		if !good {
			st.seek(origin)
			st.fail()
			var zero U
			return zero, false
		}
		return u, true
	})
}

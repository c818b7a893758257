package peg

// NoLimit designates an unbounded repetition upper limit.
const NoLimit = -1

// RepeatUnit matches e between lo and hi times (hi == NoLimit for
// unbounded), separated by delim after every iteration but the first.
// delim may be nil, meaning Empty(). It stops as soon as an iteration
// fails or hi is reached, and fails (restoring the cursor) if fewer than
// lo iterations succeeded.
func RepeatUnit(lo, hi int, e Expr[Unit], delim Expr[Unit]) Expr[Unit] {
	if delim == nil {
		delim = Empty()
	}
	return exprFunc[Unit](func(st *State) (Unit, bool) {
		origin := st.cursor
		count := 0
		for (hi == NoLimit || count < hi) && !st.repeatGuard(count) {
			if count > 0 {
				dorigin := st.cursor
				if _, ok := delim.eval(st); !ok {
					st.seek(dorigin)
					st.setOK(true)
					break
				}
			}
			if _, ok := e.eval(st); !ok {
				st.setOK(true)
				break
			}
			count++
		}
		if count < lo {
			st.seek(origin)
			st.fail()
			return Unit{}, false
		}
		return Unit{}, true
	})
}

// Repeat matches e between lo and hi times (hi == NoLimit for unbounded),
// separated by delim, collecting each match's value into an ordered
// slice. Semantics otherwise mirror RepeatUnit.
func Repeat[T any](lo, hi int, e Expr[T], delim Expr[Unit]) Expr[[]T] {
	if delim == nil {
		delim = Empty()
	}
	return exprFunc[[]T](func(st *State) ([]T, bool) {
		origin := st.cursor
		var values []T
		count := 0
		for (hi == NoLimit || count < hi) && !st.repeatGuard(count) {
			if count > 0 {
				dorigin := st.cursor
				if _, ok := delim.eval(st); !ok {
					st.seek(dorigin)
					st.setOK(true)
					break
				}
			}
			v, ok := e.eval(st)
			if !ok {
				st.setOK(true)
				break
			}
			values = append(values, v)
			count++
		}
		if count < lo {
			st.seek(origin)
			st.fail()
			return nil, false
		}
		return values, true
	})
}

// StarUnit matches e zero or more times.
func StarUnit(e Expr[Unit]) Expr[Unit] {
	return RepeatUnit(0, NoLimit, e, nil)
}

// PlusUnit matches e one or more times.
func PlusUnit(e Expr[Unit]) Expr[Unit] {
	return RepeatUnit(1, NoLimit, e, nil)
}

// Star matches e zero or more times, collecting its values.
func Star[T any](e Expr[T]) Expr[[]T] {
	return Repeat(0, NoLimit, e, nil)
}

// Plus matches e one or more times, collecting its values.
func Plus[T any](e Expr[T]) Expr[[]T] {
	return Repeat(1, NoLimit, e, nil)
}

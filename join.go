package peg

// Join evaluates left, then right; on both succeeding, fold mutates
// left's accumulator with right's value.
func Join[Acc, R any](left Expr[Acc], fold func(*Acc, R), right Expr[R]) Expr[Acc] {
	return exprFunc[Acc](func(st *State) (Acc, bool) {
		origin := st.cursor
		acc, ok := left.eval(st)
		if !ok {
			var zero Acc
			return zero, false
		}
		r, ok := right.eval(st)
		if !ok {
			st.seek(origin)
			st.fail()
			var zero Acc
			return zero, false
		}
		fold(&acc, r)
		return acc, true
	})
}

// JoinEach evaluates left to seed an accumulator, then repeats each
// (separated by delim after the first iteration, delim may be nil for
// Empty()) between lo and hi times (hi == NoLimit for unbounded), folding
// every match into the accumulator. It fails, restoring the cursor, if
// fewer than lo repetitions of each succeeded.
func JoinEach[Acc, R any](left Expr[Acc], fold func(*Acc, R), each Expr[R], delim Expr[Unit], lo, hi int) Expr[Acc] {
	if delim == nil {
		delim = Empty()
	}
	return exprFunc[Acc](func(st *State) (Acc, bool) {
		origin := st.cursor
		acc, ok := left.eval(st)
		if !ok {
			var zero Acc
			return zero, false
		}

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
			v, ok := each.eval(st)
			if !ok {
				st.setOK(true)
				break
			}
			fold(&acc, v)
			count++
		}

		if count < lo {
			st.seek(origin)
			st.fail()
			var zero Acc
			return zero, false
		}
		return acc, true
	})
}

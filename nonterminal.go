package peg

// Rule is a named, typed grammar non-terminal. Forward-declare a group of
// mutually recursive rules with NewRule, build each one's pattern (which
// may call Ref on any of the others), then Define each one: Ref resolves
// the rule's pattern lazily at parse time, not at Ref-call time, so the
// order of Define calls does not matter.
type Rule[T any] struct {
	name    string
	pattern Expr[T]
	defined bool
}

// NewRule forward-declares a rule. It may be Ref'd immediately; evaluating
// it before Define is called panics.
func NewRule[T any](name string) *Rule[T] {
	return &Rule[T]{name: name}
}

// Define binds r to pattern. Calling Define twice on the same rule
// panics: a rule is defined exactly once.
func (r *Rule[T]) Define(pattern Expr[T]) {
	if r.defined {
		panic(errorRuleAlreadyDefined(r.name))
	}
	r.pattern = pattern
	r.defined = true
}

// Ref returns an expression that, when evaluated, delegates to r's
// defined pattern. Evaluating the returned expression panics if r has not
// been Defined by then.
func (r *Rule[T]) Ref() Expr[T] {
	return exprFunc[T](func(st *State) (T, bool) {
		if !r.defined {
			panic(errorNilRule(r.name))
		}
		return r.pattern.eval(st)
	})
}

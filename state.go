package peg

// State holds the input range and cursor for a single parse. It is owned
// exclusively by the call stack that runs that parse; grammars (Expr
// values and Rules) never hold one.
type State struct {
	input     string
	cursor    int
	ok        bool
	furthest  int
	maxRepeat int
}

func newState(input string) *State {
	return &State{input: input, cursor: 0, ok: true, furthest: 0}
}

// fail marks the current evaluation as failed and records the cursor as a
// furthest-failure candidate. furthest never moves backward.
func (st *State) fail() {
	st.ok = false
	if st.cursor > st.furthest {
		st.furthest = st.cursor
	}
}

func (st *State) setOK(ok bool) {
	st.ok = ok
}

// Cursor returns the current byte offset into the input.
func (st *State) Cursor() int {
	return st.cursor
}

func (st *State) seek(pos int) {
	st.cursor = pos
}

// Remaining returns the unconsumed suffix of the input.
func (st *State) Remaining() string {
	return st.input[st.cursor:]
}

// Consumed returns the bytes consumed since origin.
func (st *State) Consumed(origin int) string {
	return st.input[origin:st.cursor]
}

func (st *State) atEnd() bool {
	return st.cursor >= len(st.input)
}

// repeatGuard reports whether a bounded repetition should stop growing
// because it has hit the parser's defensive MaxRepeat cap. A guard hit is
// not itself a failure: the repetition simply stops as if the next
// iteration failed to match.
func (st *State) repeatGuard(count int) bool {
	return st.maxRepeat > 0 && count >= st.maxRepeat
}

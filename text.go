package peg

// Keywords recognizes the longest member of words that matches at the
// current position (so "in" does not shadow "instanceof" when both are
// given). It builds a byte-at-a-time trie over words once, at grammar
// construction time, rather than rescanning the word list on every
// match; this is a different shape from the source library's
// fixed-width multi-byte prefix tree (prefixtree.go), since that
// structure exists to serve the teacher's context-driven
// readNext/consume protocol, which this Expr[T] core does not have.
func Keywords(words ...string) Expr[string] {
	root := newKeywordTrie(words)

	return exprFunc[string](func(st *State) (string, bool) {
		n, ok := root.longestMatch(st.input, st.cursor)
		if !ok {
			st.fail()
			return "", false
		}
		origin := st.cursor
		st.cursor += n
		return st.input[origin:st.cursor], true
	})
}

// keywordTrie is a standard byte-indexed trie node: children maps the
// next input byte to the node reached by consuming it, and terminal
// marks a node reached by consuming exactly one of the keywords in
// full.
type keywordTrie struct {
	terminal bool
	children map[byte]*keywordTrie
}

func newKeywordTrie(words []string) *keywordTrie {
	root := &keywordTrie{}
	for _, w := range words {
		node := root
		for i := 0; i < len(w); i++ {
			c := w[i]
			child := node.children[c]
			if child == nil {
				child = &keywordTrie{}
				if node.children == nil {
					node.children = make(map[byte]*keywordTrie)
				}
				node.children[c] = child
			}
			node = child
		}
		node.terminal = true
	}
	return root
}

// longestMatch walks the trie against input starting at pos, returning
// the length of the longest keyword matched. A keyword that is itself a
// prefix of a longer one (e.g. "in" under "instanceof") is still
// reported if no longer keyword also matches.
func (root *keywordTrie) longestMatch(input string, pos int) (int, bool) {
	node := root
	best, ok := 0, node.terminal
	for i := pos; i < len(input); i++ {
		node = node.children[input[i]]
		if node == nil {
			break
		}
		if node.terminal {
			best, ok = i-pos+1, true
		}
	}
	return best, ok
}

package automata

import "golang.org/x/exp/constraints"

// Trie is an AttributedFsm whose chains carry ChainId = Attribute: every
// state reached by following a complete inserted chain is accepting and
// its attribute list contains the chain's id.
type Trie[S constraints.Unsigned, A comparable] struct {
	*AttributedFsm[S, A]
}

// NewTrie creates an empty trie.
func NewTrie[S constraints.Unsigned, A comparable](newTable func() TransitionTable[S]) *Trie[S, A] {
	return &Trie[S, A]{AttributedFsm: NewAttributedFsm[S, A](newTable)}
}

// AddChain inserts chain, creating states as needed, and marks the final
// state accepting. An empty chain is a no-op at the state level beyond
// marking Start accepting. Returns the final state.
func (t *Trie[S, A]) AddChain(chain []S) StateId {
	state := Start
	for _, sym := range chain {
		next := t.Go(state, sym)
		if next == Invalid {
			next = t.AddState(false)
			t.AddTransition(state, next, sym)
		}
		state = next
	}
	t.MakeAccept(state)
	return state
}

// AddChainWithID inserts chain and appends id to the final state's
// attribute list. Duplicate insertions of the same chain with different
// ids append multiple ids, in insertion order.
func (t *Trie[S, A]) AddChainWithID(chain []S, id A) StateId {
	state := t.AddChain(chain)
	t.AddAttribute(state, id)
	return state
}

// Search walks chain from Start and returns the final state's attribute
// list if every step was defined, or nil if the chain runs off the trie.
func (t *Trie[S, A]) Search(chain []S) []A {
	state := Start
	for _, sym := range chain {
		state = t.Go(state, sym)
		if state == Invalid {
			return nil
		}
	}
	return t.Attributes(state)
}

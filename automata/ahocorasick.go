package automata

import "golang.org/x/exp/constraints"

// AhoCorasickTrie is a Trie extended with a fail-transition vector,
// giving a multi-pattern matcher over a symbol stream. BuildFailLinks must
// be called once after all chains are inserted, before Move or either
// stream iterator is used.
type AhoCorasickTrie[S constraints.Unsigned, A comparable] struct {
	*Trie[S, A]
	fail []StateId
}

// NewAhoCorasickTrie creates an empty AC trie.
func NewAhoCorasickTrie[S constraints.Unsigned, A comparable](newTable func() TransitionTable[S]) *AhoCorasickTrie[S, A] {
	return &AhoCorasickTrie[S, A]{Trie: NewTrie[S, A](newTable)}
}

func containsAttr[A comparable](list []A, id A) bool {
	for _, x := range list {
		if x == id {
			return true
		}
	}
	return false
}

// BuildFailLinks runs the BFS fail-link construction over the trie built
// so far: fail[Start] = Start; every direct child of Start fails to
// Start; for every other state, fail[state] is the deepest proper-suffix
// state that is itself reachable, or Start if none is. After link
// construction it performs suffix-match propagation: every accepting
// state's chain-ids are unioned (in fail-chain order, skipping dupes)
// into every state whose fail chain passes through it.
func (ac *AhoCorasickTrie[S, A]) BuildFailLinks() {
	n := ac.NumStates()
	ac.fail = make([]StateId, n)
	ac.fail[Start] = Start

	queue := make([]StateId, 0, n)
	for _, e := range ac.Entries(Start) {
		ac.fail[e.To] = Start
		queue = append(queue, e.To)
	}

	for qi := 0; qi < len(queue); qi++ {
		s := queue[qi]
		for _, e := range ac.Entries(s) {
			t := e.To
			queue = append(queue, t)

			f := ac.fail[s]
			for f != Start && ac.Go(f, e.Sym) == Invalid {
				f = ac.fail[f]
			}
			if to := ac.Go(f, e.Sym); to != Invalid && to != t {
				ac.fail[t] = to
			} else {
				ac.fail[t] = Start
			}
		}
	}

	for s := StateId(1); int(s) < n; s++ {
		f := ac.fail[s]
		for f != Start {
			if ac.IsAccept(f) {
				for _, id := range ac.Attributes(f) {
					if !containsAttr(ac.Attributes(s), id) {
						ac.AddAttribute(s, id)
					}
				}
			}
			f = ac.fail[f]
		}
	}
}

// Move performs one matcher step from state on sym, following fail links
// until a defined transition is found, or returning Start if none ever
// is.
func (ac *AhoCorasickTrie[S, A]) Move(state StateId, sym S) StateId {
	t := ac.Go(state, sym)
	for t == Invalid && state > Start {
		state = ac.fail[state]
		t = ac.Go(state, sym)
	}
	if t == Invalid {
		return Start
	}
	return t
}

// SymbolSource is a pull-based source of symbols, the shape the stream
// iterators below are built over.
type SymbolSource[S constraints.Unsigned] interface {
	Next() (S, bool)
}

// SliceSource is a SymbolSource over an in-memory slice.
type SliceSource[S constraints.Unsigned] struct {
	data []S
	pos  int
}

// NewSliceSource wraps data as a SymbolSource.
func NewSliceSource[S constraints.Unsigned](data []S) *SliceSource[S] {
	return &SliceSource[S]{data: data}
}

// Next implements SymbolSource.
func (s *SliceSource[S]) Next() (S, bool) {
	if s.pos >= len(s.data) {
		var zero S
		return zero, false
	}
	v := s.data[s.pos]
	s.pos++
	return v, true
}

// StateIterator yields one matcher state per input symbol; its current
// state's attribute list is the set of chains matching ending at that
// symbol.
type StateIterator[S constraints.Unsigned, A comparable] struct {
	ac    *AhoCorasickTrie[S, A]
	src   SymbolSource[S]
	state StateId
}

// NewStateIterator creates a state iterator starting at Start.
func NewStateIterator[S constraints.Unsigned, A comparable](ac *AhoCorasickTrie[S, A], src SymbolSource[S]) *StateIterator[S, A] {
	return &StateIterator[S, A]{ac: ac, src: src, state: Start}
}

// Next consumes one symbol and advances the matcher state. Returns false
// once the source is exhausted.
func (it *StateIterator[S, A]) Next() bool {
	sym, ok := it.src.Next()
	if !ok {
		return false
	}
	it.state = it.ac.Move(it.state, sym)
	return true
}

// State returns the current matcher state.
func (it *StateIterator[S, A]) State() StateId { return it.state }

// Attributes returns the current state's attribute list.
func (it *StateIterator[S, A]) Attributes() []A { return it.ac.Attributes(it.state) }

// ChainMatch is one match event: a chain id ending at EndPos, the 1-based
// count of symbols consumed from the stream so far.
type ChainMatch[A any] struct {
	ChainID A
	EndPos  int
}

// ChainIterator yields one chain match per Next call, draining multiple
// matches at the same end-position (in attribute-list order) before
// consuming another symbol.
type ChainIterator[S constraints.Unsigned, A comparable] struct {
	ac      *AhoCorasickTrie[S, A]
	src     SymbolSource[S]
	state   StateId
	pos     int
	pending []ChainMatch[A]
}

// NewChainIterator creates a chain iterator starting at Start.
func NewChainIterator[S constraints.Unsigned, A comparable](ac *AhoCorasickTrie[S, A], src SymbolSource[S]) *ChainIterator[S, A] {
	return &ChainIterator[S, A]{ac: ac, src: src, state: Start}
}

// Next returns the next match event, or false once the stream and all
// pending matches are exhausted.
func (it *ChainIterator[S, A]) Next() (ChainMatch[A], bool) {
	for len(it.pending) == 0 {
		sym, ok := it.src.Next()
		if !ok {
			return ChainMatch[A]{}, false
		}
		it.pos++
		it.state = it.ac.Move(it.state, sym)
		for _, id := range it.ac.Attributes(it.state) {
			it.pending = append(it.pending, ChainMatch[A]{ChainID: id, EndPos: it.pos})
		}
	}
	m := it.pending[0]
	it.pending = it.pending[1:]
	return m, true
}

// Package automata implements the finite-state-machine family shared by
// the trie and the Aho-Corasick matcher: pluggable transition tables, a
// generic FSM, an attributed extension of it, a trie built on top, and
// the Aho-Corasick matcher built on top of that, plus their shared binary
// serialisation format.
package automata

// StateId identifies a state by its position in the owning machine's state
// sequence. Peer states are always addressed by this index, never by
// pointer, so the fail-link and transition graphs never form ownership
// cycles.
type StateId uint32

const (
	// Invalid is the sentinel "no such state" value. State 0 exists solely
	// so Invalid is distinct from every real state id.
	Invalid StateId = 0
	// Start is the id of the machine's start state.
	Start StateId = 1
)

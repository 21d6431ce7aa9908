package automata

import "golang.org/x/exp/constraints"

// AttributedFsm is a FiniteStateMachine extended with a parallel sequence,
// one attribute list per state. Attribute semantics are a multiset:
// duplicate appends are preserved.
type AttributedFsm[S constraints.Unsigned, A any] struct {
	*FiniteStateMachine[S]
	attrs [][]A
}

// NewAttributedFsm creates an attributed machine with states 0 and 1
// pre-allocated, each with an empty attribute list.
func NewAttributedFsm[S constraints.Unsigned, A any](newTable func() TransitionTable[S]) *AttributedFsm[S, A] {
	return &AttributedFsm[S, A]{
		FiniteStateMachine: NewFSM[S](newTable),
		attrs:              make([][]A, 2),
	}
}

// AddState appends a new state (with an empty attribute list) and returns
// its id, hiding the embedded FiniteStateMachine.AddState so the attribute
// sequence always stays in lockstep with the state sequence.
func (a *AttributedFsm[S, A]) AddState(accept bool) StateId {
	id := a.FiniteStateMachine.AddState(accept)
	a.attrs = append(a.attrs, nil)
	return id
}

// AddAttribute appends attr to state's attribute list.
func (a *AttributedFsm[S, A]) AddAttribute(state StateId, attr A) {
	a.checkState(state)
	a.attrs[state] = append(a.attrs[state], attr)
}

// Attributes returns state's attribute list.
func (a *AttributedFsm[S, A]) Attributes(state StateId) []A {
	a.checkState(state)
	return a.attrs[state]
}

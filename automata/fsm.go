package automata

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// InvalidStateError reports an out-of-range state id passed to an
// operation that requires an existing state. This is a programmer error —
// surfaced loudly (panic), never silently zeroed — per spec §7.
type InvalidStateError struct {
	State StateId
	Bound int
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("automata: state %d out of range (have %d states)", e.State, e.Bound)
}

type fsmState[S constraints.Unsigned] struct {
	trans  TransitionTable[S]
	accept bool
}

// FiniteStateMachine is an append-only sequence of states indexed from 0;
// state 0 is reserved (Invalid), state 1 is Start. Each state owns a
// transition table, selected once at construction via newTable, and an
// accept flag. States are never deleted, so serialisation reduces to a
// length-prefixed dump of the sequence.
type FiniteStateMachine[S constraints.Unsigned] struct {
	states   []fsmState[S]
	newTable func() TransitionTable[S]
}

// NewFSM creates a machine with states 0 (Invalid) and 1 (Start)
// pre-allocated, using newTable to build each state's transition table.
func NewFSM[S constraints.Unsigned](newTable func() TransitionTable[S]) *FiniteStateMachine[S] {
	f := &FiniteStateMachine[S]{newTable: newTable}
	f.states = append(f.states, fsmState[S]{trans: newTable()}) // 0: Invalid
	f.states = append(f.states, fsmState[S]{trans: newTable()}) // 1: Start
	return f
}

func (f *FiniteStateMachine[S]) checkState(s StateId) {
	if int(s) >= len(f.states) {
		panic(&InvalidStateError{State: s, Bound: len(f.states)})
	}
}

// AddState appends a new state and returns its id. The first call after
// construction yields id 2.
func (f *FiniteStateMachine[S]) AddState(accept bool) StateId {
	f.states = append(f.states, fsmState[S]{trans: f.newTable(), accept: accept})
	return StateId(len(f.states) - 1)
}

// AddTransition writes sym -> to into from's transition table. Panics if
// from or to is out of range.
func (f *FiniteStateMachine[S]) AddTransition(from, to StateId, sym S) {
	f.checkState(from)
	f.checkState(to)
	f.states[from].trans.Put(sym, to)
}

// Go follows sym from state, returning Invalid if undefined.
func (f *FiniteStateMachine[S]) Go(state StateId, sym S) StateId {
	f.checkState(state)
	return f.states[state].trans.Go(sym)
}

// MakeAccept marks state as accepting.
func (f *FiniteStateMachine[S]) MakeAccept(state StateId) {
	f.checkState(state)
	f.states[state].accept = true
}

// IsAccept reports whether state is accepting.
func (f *FiniteStateMachine[S]) IsAccept(state StateId) bool {
	f.checkState(state)
	return f.states[state].accept
}

// NumStates returns the total number of states, including the reserved
// Invalid and Start states.
func (f *FiniteStateMachine[S]) NumStates() int { return len(f.states) }

// Entries returns the populated (sym, to) transitions out of state, in the
// order its transition table defines.
func (f *FiniteStateMachine[S]) Entries(state StateId) []Entry[S] {
	f.checkState(state)
	return f.states[state].trans.Entries()
}

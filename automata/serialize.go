package automata

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// byteOrder is the shared wire order for the whole FSM family, named
// explicitly the way the retrieval pack's other binary-format readers
// (magic header, fixed byte order, gzip-wrapped payload) name theirs.
var byteOrder = binary.LittleEndian

// SerializationError wraps any I/O failure encountered while reading or
// writing the FSM family's binary format, identifying which part of the
// format was being processed.
type SerializationError struct {
	Stage string
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("automata: serialization failed at %s: %v", e.Stage, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

func wrapErr(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &SerializationError{Stage: stage, Err: err}
}

// SerializeTransitions writes num_entries followed by each (Symbol, u32
// target) pair, little-endian. The symbol's on-wire width equals S's own
// width (binary.Write reflects on the concrete fixed-size type).
func SerializeTransitions[S constraints.Unsigned](w io.Writer, entries []Entry[S]) error {
	if err := binary.Write(w, byteOrder, uint32(len(entries))); err != nil {
		return wrapErr("transition count", err)
	}
	for _, e := range entries {
		if err := binary.Write(w, byteOrder, e.Sym); err != nil {
			return wrapErr("transition symbol", err)
		}
		if err := binary.Write(w, byteOrder, uint32(e.To)); err != nil {
			return wrapErr("transition target", err)
		}
	}
	return nil
}

// DeserializeTransitions reads back what SerializeTransitions wrote.
func DeserializeTransitions[S constraints.Unsigned](r io.Reader) ([]Entry[S], error) {
	var n uint32
	if err := binary.Read(r, byteOrder, &n); err != nil {
		return nil, wrapErr("transition count", err)
	}
	entries := make([]Entry[S], n)
	for i := range entries {
		var sym S
		if err := binary.Read(r, byteOrder, &sym); err != nil {
			return nil, wrapErr("transition symbol", err)
		}
		var to uint32
		if err := binary.Read(r, byteOrder, &to); err != nil {
			return nil, wrapErr("transition target", err)
		}
		entries[i] = Entry[S]{Sym: sym, To: StateId(to)}
	}
	return entries, nil
}

// SerializeFSM writes u32 num_states (excluding state 0), then for each
// state from 1..=num_states: u8 accept, then its transition table.
func SerializeFSM[S constraints.Unsigned](w io.Writer, fsm *FiniteStateMachine[S]) error {
	n := fsm.NumStates() - 1
	if err := binary.Write(w, byteOrder, uint32(n)); err != nil {
		return wrapErr("fsm state count", err)
	}
	for s := StateId(1); int(s) < fsm.NumStates(); s++ {
		var accept uint8
		if fsm.IsAccept(s) {
			accept = 1
		}
		if err := binary.Write(w, byteOrder, accept); err != nil {
			return wrapErr("fsm accept flag", err)
		}
		if err := SerializeTransitions(w, fsm.Entries(s)); err != nil {
			return err
		}
	}
	return nil
}

// DeserializeFSM reads back what SerializeFSM wrote, rebuilding a machine
// with newTable as the per-state transition table constructor.
func DeserializeFSM[S constraints.Unsigned](r io.Reader, newTable func() TransitionTable[S]) (*FiniteStateMachine[S], error) {
	var n uint32
	if err := binary.Read(r, byteOrder, &n); err != nil {
		return nil, wrapErr("fsm state count", err)
	}
	fsm := NewFSM[S](newTable)
	// Allocate every state up front: a state's transitions may target a
	// higher-numbered state that has not been read yet.
	for id := uint32(2); id <= n; id++ {
		fsm.states = append(fsm.states, fsmState[S]{trans: newTable()})
	}
	for i := uint32(0); i < n; i++ {
		id := StateId(i + 1)
		var accept uint8
		if err := binary.Read(r, byteOrder, &accept); err != nil {
			return nil, wrapErr("fsm accept flag", err)
		}
		if accept != 0 {
			fsm.MakeAccept(id)
		}
		entries, err := DeserializeTransitions[S](r)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			fsm.AddTransition(id, e.To, e.Sym)
		}
	}
	return fsm, nil
}

// SerializeAttributedFsm writes the FSM image, then u32 num_states and for
// each state a u32 attribute count followed by that many attributes,
// written via writeAttr.
func SerializeAttributedFsm[S constraints.Unsigned, A any](w io.Writer, af *AttributedFsm[S, A], writeAttr func(io.Writer, A) error) error {
	if err := SerializeFSM(w, af.FiniteStateMachine); err != nil {
		return err
	}
	n := af.NumStates() - 1
	if err := binary.Write(w, byteOrder, uint32(n)); err != nil {
		return wrapErr("attrfsm state count", err)
	}
	for s := StateId(1); int(s) < af.NumStates(); s++ {
		attrs := af.Attributes(s)
		if err := binary.Write(w, byteOrder, uint32(len(attrs))); err != nil {
			return wrapErr("attrfsm attr count", err)
		}
		for _, a := range attrs {
			if err := writeAttr(w, a); err != nil {
				return wrapErr("attrfsm attr", err)
			}
		}
	}
	return nil
}

// DeserializeAttributedFsm reads back what SerializeAttributedFsm wrote.
func DeserializeAttributedFsm[S constraints.Unsigned, A any](r io.Reader, newTable func() TransitionTable[S], readAttr func(io.Reader) (A, error)) (*AttributedFsm[S, A], error) {
	fsm, err := DeserializeFSM(r, newTable)
	if err != nil {
		return nil, err
	}
	af := &AttributedFsm[S, A]{FiniteStateMachine: fsm, attrs: make([][]A, fsm.NumStates())}

	var n uint32
	if err := binary.Read(r, byteOrder, &n); err != nil {
		return nil, wrapErr("attrfsm state count", err)
	}
	for i := uint32(0); i < n; i++ {
		id := i + 1
		var cnt uint32
		if err := binary.Read(r, byteOrder, &cnt); err != nil {
			return nil, wrapErr("attrfsm attr count", err)
		}
		list := make([]A, cnt)
		for j := range list {
			a, err := readAttr(r)
			if err != nil {
				return nil, wrapErr("attrfsm attr", err)
			}
			list[j] = a
		}
		af.attrs[id] = list
	}
	return af, nil
}

// SerializeTrie writes the attributed-FSM image underlying t.
func SerializeTrie[S constraints.Unsigned, A comparable](w io.Writer, t *Trie[S, A], writeAttr func(io.Writer, A) error) error {
	return SerializeAttributedFsm(w, t.AttributedFsm, writeAttr)
}

// DeserializeTrie reads back what SerializeTrie wrote.
func DeserializeTrie[S constraints.Unsigned, A comparable](r io.Reader, newTable func() TransitionTable[S], readAttr func(io.Reader) (A, error)) (*Trie[S, A], error) {
	af, err := DeserializeAttributedFsm(r, newTable, readAttr)
	if err != nil {
		return nil, err
	}
	return &Trie[S, A]{AttributedFsm: af}, nil
}

// SerializeAhoCorasickTrie writes the attributed-FSM image, then
// fail_count and fail_count u32 fail states.
func SerializeAhoCorasickTrie[S constraints.Unsigned, A comparable](w io.Writer, ac *AhoCorasickTrie[S, A], writeAttr func(io.Writer, A) error) error {
	if err := SerializeAttributedFsm(w, ac.AttributedFsm, writeAttr); err != nil {
		return err
	}
	if err := binary.Write(w, byteOrder, uint32(len(ac.fail))); err != nil {
		return wrapErr("ac fail count", err)
	}
	for _, f := range ac.fail {
		if err := binary.Write(w, byteOrder, uint32(f)); err != nil {
			return wrapErr("ac fail state", err)
		}
	}
	return nil
}

// DeserializeAhoCorasickTrie reads back what SerializeAhoCorasickTrie
// wrote.
func DeserializeAhoCorasickTrie[S constraints.Unsigned, A comparable](r io.Reader, newTable func() TransitionTable[S], readAttr func(io.Reader) (A, error)) (*AhoCorasickTrie[S, A], error) {
	af, err := DeserializeAttributedFsm(r, newTable, readAttr)
	if err != nil {
		return nil, err
	}
	ac := &AhoCorasickTrie[S, A]{Trie: &Trie[S, A]{AttributedFsm: af}}

	var n uint32
	if err := binary.Read(r, byteOrder, &n); err != nil {
		return nil, wrapErr("ac fail count", err)
	}
	ac.fail = make([]StateId, n)
	for i := range ac.fail {
		var f uint32
		if err := binary.Read(r, byteOrder, &f); err != nil {
			return nil, wrapErr("ac fail state", err)
		}
		ac.fail[i] = StateId(f)
	}
	return ac, nil
}

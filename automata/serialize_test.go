package automata

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

func writeIntAttr(w io.Writer, a int) error {
	return binary.Write(w, byteOrder, int64(a))
}

func readIntAttr(r io.Reader) (int, error) {
	var v int64
	err := binary.Read(r, byteOrder, &v)
	return int(v), err
}

func sparseByteTable() func() TransitionTable[byte] {
	return func() TransitionTable[byte] { return NewSparse[byte]() }
}

// TestACSerializationRoundTrip is scenario 3: build the scenario-1 AC
// trie, serialise, deserialise, rerun, expect identical events.
func TestACSerializationRoundTrip(t *testing.T) {
	ac := NewAhoCorasickTrie[byte, int](sparseByteTable())
	ac.AddChainWithID(bytesOf("he"), 1)
	ac.AddChainWithID(bytesOf("hers"), 2)
	ac.AddChainWithID(bytesOf("his"), 3)
	ac.AddChainWithID(bytesOf("she"), 4)
	ac.BuildFailLinks()

	want := collectMatches(ac, "ushers")

	var buf bytes.Buffer
	if err := SerializeAhoCorasickTrie(&buf, ac, writeIntAttr); err != nil {
		t.Fatalf("serialize: %v", err)
	}

	ac2, err := DeserializeAhoCorasickTrie[byte, int](&buf, sparseByteTable(), readIntAttr)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	got := collectMatches(ac2, "ushers")

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for pos, ids := range want {
		if !eqSet(got[pos], ids...) {
			t.Errorf("position %d: got %v, want %v", pos, got[pos], ids)
		}
	}
}

func TestFSMSerializationRoundTrip(t *testing.T) {
	f := NewFSM[byte](sparseByteTable())
	s2 := f.AddState(false)
	s3 := f.AddState(true)
	f.AddTransition(Start, s2, 'a')
	f.AddTransition(s2, s3, 'b')

	var buf bytes.Buffer
	if err := SerializeFSM(&buf, f); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	f2, err := DeserializeFSM[byte](&buf, sparseByteTable())
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if f2.NumStates() != f.NumStates() {
		t.Fatalf("NumStates() = %d, want %d", f2.NumStates(), f.NumStates())
	}
	mid := f2.Go(Start, 'a')
	end := f2.Go(mid, 'b')
	if !f2.IsAccept(end) {
		t.Error("deserialized FSM lost its accept flag")
	}
}

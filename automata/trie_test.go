package automata

import "testing"

func newByteTrie[A comparable]() *Trie[byte, A] {
	return NewTrie[byte, A](func() TransitionTable[byte] { return NewSparse[byte]() })
}

func bytesOf(s string) []byte { return []byte(s) }

func TestTrieSearch(t *testing.T) {
	tr := newByteTrie[int]()
	tr.AddChainWithID(bytesOf("he"), 1)
	tr.AddChainWithID(bytesOf("hers"), 2)
	tr.AddChainWithID(bytesOf("his"), 3)
	tr.AddChainWithID(bytesOf("she"), 4)

	if got := tr.Search(bytesOf("he")); len(got) != 1 || got[0] != 1 {
		t.Errorf("Search(he) = %v, want [1]", got)
	}
	if got := tr.Search(bytesOf("she")); len(got) != 1 || got[0] != 4 {
		t.Errorf("Search(she) = %v, want [4]", got)
	}
	if got := tr.Search(bytesOf("her")); got != nil {
		t.Errorf("Search(her) = %v, want nil (prefix of hers, not itself a chain)", got)
	}
	if got := tr.Search(bytesOf("xyz")); got != nil {
		t.Errorf("Search(xyz) = %v, want nil", got)
	}
}

func TestTrieDuplicateChainAppendsIDs(t *testing.T) {
	tr := newByteTrie[int]()
	tr.AddChainWithID(bytesOf("а"), 1)
	tr.AddChainWithID(bytesOf("а"), 3)
	got := tr.Search(bytesOf("а"))
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Search repeated-chain = %v, want [1 3]", got)
	}
}

func TestTrieEmptyChainAcceptsStart(t *testing.T) {
	tr := newByteTrie[int]()
	tr.AddChainWithID(nil, 7)
	got := tr.Search(nil)
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("Search(nil) = %v, want [7]", got)
	}
	if !tr.IsAccept(Start) {
		t.Error("Start should be accepting after inserting the empty chain")
	}
}

package morph

import (
	"github.com/steosofficial/steosmorphy/automata"
	"github.com/steosofficial/steosmorphy/encoding"
)

// Builder is the only way to mutate a Morphologist under construction —
// mirroring the original system's modifier/builder split between a
// frozen-looking analyser and the one collaborator with write access to
// its trie and storages. A Builder is single-threaded, build-phase-only;
// once Build is called the result is read-only.
type Builder struct {
	alphabet *encoding.Alphabet
	bases    *automata.Trie[byte, baseAttr]
	suffixes *SuffixStorage
	baseStore *BaseStorage
}

// NewBuilder creates an empty Builder encoding words over alphabet.
func NewBuilder(alphabet *encoding.Alphabet) *Builder {
	return &Builder{
		alphabet: alphabet,
		bases:    automata.NewTrie[byte, baseAttr](newBaseTable),
		suffixes: NewSuffixStorage(),
		baseStore: NewBaseStorage(),
	}
}

// AddSuffixLine allocates a new suffix line and returns its id.
func (b *Builder) AddSuffixLine() LineID {
	return b.suffixes.AddLine()
}

// AddSuffix records (suffix, packedAttr) against line. suffix is UTF-8
// text; it is lower-cased and alphabet-encoded before storage.
func (b *Builder) AddSuffix(line LineID, packedAttr uint32, suffix string) error {
	return b.suffixes.AddSuffix(line, packedAttr, encodeWord(b.alphabet, suffix))
}

// AddBase records a dictionary entry: lemmaID's base word (lower-cased and
// alphabet-encoded, then inserted into the trie with its packed
// (lemmaID, line) attribute), its line, and its UTF-8 main form.
func (b *Builder) AddBase(lemmaID LemmaID, line LineID, base, mainForm string) error {
	encoded := encodeWord(b.alphabet, base)
	b.bases.AddChainWithID(encoded, packBaseAttr(lemmaID, line))
	b.baseStore.Add(lemmaID, encoded, mainForm, line)
	return nil
}

// Build freezes the Builder's accumulated state into a Morphologist.
func (b *Builder) Build() *Morphologist {
	return &Morphologist{
		alphabet: b.alphabet,
		bases:    b.bases,
		suffixes: b.suffixes,
		baseStore: b.baseStore,
	}
}

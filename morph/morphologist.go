package morph

import (
	"io"
	"strings"

	"github.com/steosofficial/steosmorphy/automata"
	"github.com/steosofficial/steosmorphy/encoding"
)

// baseAttr packs (lemma_id: u32, line_id: u32) into the single 64-bit
// attribute value carried by the base trie's accepting states.
type baseAttr uint64

func packBaseAttr(lemmaID LemmaID, line LineID) baseAttr {
	return baseAttr(uint64(lemmaID)<<32 | uint64(line))
}

func (a baseAttr) lemmaID() LemmaID { return LemmaID(uint64(a) >> 32) }
func (a baseAttr) lineID() LineID   { return LineID(uint32(a)) }

func newBaseTable() automata.TransitionTable[byte] {
	return automata.NewDense[byte](256)
}

func encodeWord(alphabet *encoding.Alphabet, word string) []byte {
	lower := strings.ToLower(word)
	runes := []rune(lower)
	out := make([]byte, len(runes))
	for i, r := range runes {
		out[i] = alphabet.Encode(r)
	}
	return out
}

// Lemma is one analysis result: a dictionary entry and a packed
// part-of-speech attribute valid for the analysed surface form.
type Lemma struct {
	LemmaID LemmaID
	Attr    uint32
}

// Morphologist ties an Alphabet, a trie of encoded dictionary bases, a
// SuffixStorage, and a BaseStorage into a single word analyser/generator.
type Morphologist struct {
	alphabet *encoding.Alphabet
	bases    *automata.Trie[byte, baseAttr]
	suffixes *SuffixStorage
	baseStore   *BaseStorage
}

// Alphabet returns the alphabet this Morphologist encodes words with.
func (m *Morphologist) Alphabet() *encoding.Alphabet { return m.alphabet }

// Analyze walks word (lower-cased and alphabet-encoded) through the base
// trie, collecting every (lemma-id, line-id) reached — including at
// Start, if accepting — paired with the byte offset at which it was
// reached. For each candidate, the remaining encoded bytes are looked up
// as a suffix against that candidate's line; every returned packed
// attribute is emitted as a Lemma. Candidate order is trie-walk discovery
// order; within a candidate, attribute order is SuffixStorage storage
// order.
func (m *Morphologist) Analyze(word string) []Lemma {
	encoded := encodeWord(m.alphabet, word)

	type candidate struct {
		attr   baseAttr
		offset int
	}
	var candidates []candidate

	state := automata.Start
	if m.bases.IsAccept(state) {
		for _, a := range m.bases.Attributes(state) {
			candidates = append(candidates, candidate{attr: a, offset: 0})
		}
	}
	for i, sym := range encoded {
		if state == automata.Invalid {
			break
		}
		state = m.bases.Go(state, sym)
		if state == automata.Invalid {
			break
		}
		if m.bases.IsAccept(state) {
			for _, a := range m.bases.Attributes(state) {
				candidates = append(candidates, candidate{attr: a, offset: i + 1})
			}
		}
	}

	var results []Lemma
	for _, c := range candidates {
		lemmaID := c.attr.lemmaID()
		line := c.attr.lineID()
		suffix := encoded[c.offset:]
		attrs, err := m.suffixes.LookupAttrs(line, suffix)
		if err != nil {
			continue
		}
		for _, pa := range attrs {
			results = append(results, Lemma{LemmaID: lemmaID, Attr: pa})
		}
	}
	return results
}

func (m *Morphologist) decodeBaseSuffix(base, suffix []byte) string {
	var sb strings.Builder
	for _, c := range base {
		sb.WriteRune(m.alphabet.Decode(c))
	}
	for _, c := range suffix {
		sb.WriteRune(m.alphabet.Decode(c))
	}
	return sb.String()
}

// Generate returns the surface form for (lemmaID, packedAttr), or "" if
// the lemma is unknown or has no primary suffix recorded for that
// attribute.
func (m *Morphologist) Generate(lemmaID LemmaID, packedAttr uint32) string {
	base, line, ok := m.baseStore.Lookup(lemmaID)
	if !ok {
		return ""
	}
	suffix, found, err := m.suffixes.LookupSuffix(line, packedAttr)
	if err != nil || !found {
		return ""
	}
	return m.decodeBaseSuffix(base, suffix)
}

// GenerateAll returns every distinct surface form obtainable by
// concatenating lemmaID's base with every suffix recorded in its line.
func (m *Morphologist) GenerateAll(lemmaID LemmaID) []string {
	base, line, ok := m.baseStore.Lookup(lemmaID)
	if !ok {
		return nil
	}
	suffixes, err := m.suffixes.AllSuffixes(line)
	if err != nil {
		return nil
	}
	seen := make(map[string]struct{}, len(suffixes))
	var out []string
	for _, suf := range suffixes {
		form := m.decodeBaseSuffix(base, suf)
		if _, dup := seen[form]; !dup {
			seen[form] = struct{}{}
			out = append(out, form)
		}
	}
	return out
}

// MainForm returns lemmaID's recorded canonical surface form, or "" if
// unknown.
func (m *Morphologist) MainForm(lemmaID LemmaID) string {
	s, _ := m.baseStore.MainForm(lemmaID)
	return s
}

// FormAttr pairs a generated surface form with the packed POS attribute
// that produced it.
type FormAttr struct {
	Word string
	Attr uint32
}

// GenerateForms returns every (form, attr) pair obtainable from
// lemmaID's base and its line's recorded suffixes — the inflection table
// a caller needs to attach grammatical tags to each generated form.
func (m *Morphologist) GenerateForms(lemmaID LemmaID) []FormAttr {
	base, line, ok := m.baseStore.Lookup(lemmaID)
	if !ok {
		return nil
	}
	suffixes, err := m.suffixes.AllSuffixes(line)
	if err != nil {
		return nil
	}
	var out []FormAttr
	for _, suf := range suffixes {
		attrs, err := m.suffixes.LookupAttrs(line, suf)
		if err != nil {
			continue
		}
		form := m.decodeBaseSuffix(base, suf)
		for _, attr := range attrs {
			out = append(out, FormAttr{Word: form, Attr: attr})
		}
	}
	return out
}

// EachLemma calls fn once per recorded lemma, in unspecified order — the
// enumeration hook OOV suffix-analogy prediction builds its index from.
func (m *Morphologist) EachLemma(fn func(id LemmaID, base []byte, mainForm string, line LineID)) {
	m.baseStore.Each(fn)
}

func writeBaseAttr(w io.Writer, a baseAttr) error {
	return writeUint64(w, uint64(a))
}

func readBaseAttr(r io.Reader) (baseAttr, error) {
	v, err := readUint64(r)
	return baseAttr(v), err
}

// Serialize writes, in order, the attributed base trie (u64 attribute),
// then the SuffixStorage, then the BaseStorage.
func (m *Morphologist) Serialize(w io.Writer) error {
	if err := automata.SerializeAttributedFsm(w, m.bases.AttributedFsm, writeBaseAttr); err != nil {
		return err
	}
	if err := m.suffixes.serialize(w); err != nil {
		return err
	}
	return m.baseStore.serialize(w)
}

// DeserializeMorphologist reads back what Morphologist.Serialize wrote.
// alphabet must match the one the Morphologist was built with (it is not
// itself part of the persisted form — the encoded bytes in the trie are
// meaningless without it).
func DeserializeMorphologist(r io.Reader, alphabet *encoding.Alphabet) (*Morphologist, error) {
	af, err := automata.DeserializeAttributedFsm[byte, baseAttr](r, newBaseTable, readBaseAttr)
	if err != nil {
		return nil, err
	}
	suffixes := NewSuffixStorage()
	if err := suffixes.deserialize(r); err != nil {
		return nil, err
	}
	bases := NewBaseStorage()
	if err := bases.deserialize(r); err != nil {
		return nil, err
	}
	return &Morphologist{
		alphabet: alphabet,
		bases:    &automata.Trie[byte, baseAttr]{AttributedFsm: af},
		suffixes: suffixes,
		baseStore:   bases,
	}, nil
}

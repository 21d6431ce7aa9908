package morph

import (
	"encoding/gob"
	"io"
)

// suffixLineWire is the gob shape of one suffix line. SuffixStorage's
// persisted form is, per spec, "a text-archive of the underlying
// map-of-maps" with any format that round-trips — gob is the teacher's
// own choice for its equivalent variable-length complex-data block.
type suffixLineWire struct {
	BySuffix map[string][]uint32
	ByAttr   map[uint32]string
}

func (s *SuffixStorage) serialize(w io.Writer) error {
	lines := make([]suffixLineWire, len(s.bySuffix))
	for i := range s.bySuffix {
		lines[i] = suffixLineWire{BySuffix: s.bySuffix[i], ByAttr: s.byAttr[i]}
	}
	return gob.NewEncoder(w).Encode(lines)
}

func (s *SuffixStorage) deserialize(r io.Reader) error {
	var lines []suffixLineWire
	if err := gob.NewDecoder(r).Decode(&lines); err != nil {
		return err
	}
	s.bySuffix = make([]map[string][]uint32, len(lines))
	s.byAttr = make([]map[uint32]string, len(lines))
	for i, l := range lines {
		s.bySuffix[i] = l.BySuffix
		s.byAttr[i] = l.ByAttr
	}
	return nil
}

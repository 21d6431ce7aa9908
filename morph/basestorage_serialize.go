package morph

import (
	"encoding/gob"
	"io"
)

type baseEntryWire struct {
	ID       LemmaID
	Base     []byte
	MainForm string
	Line     LineID
}

func (b *BaseStorage) serialize(w io.Writer) error {
	entries := make([]baseEntryWire, 0, len(b.entries))
	for id, e := range b.entries {
		entries = append(entries, baseEntryWire{ID: id, Base: e.base, MainForm: e.mainForm, Line: e.line})
	}
	return gob.NewEncoder(w).Encode(entries)
}

func (b *BaseStorage) deserialize(r io.Reader) error {
	var entries []baseEntryWire
	if err := gob.NewDecoder(r).Decode(&entries); err != nil {
		return err
	}
	b.entries = make(map[LemmaID]baseEntry, len(entries))
	for _, e := range entries {
		b.entries[e.ID] = baseEntry{base: e.Base, mainForm: e.MainForm, line: e.Line}
	}
	return nil
}

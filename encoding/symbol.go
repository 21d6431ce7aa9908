// Package encoding implements the symbol-level plumbing shared by the
// automaton and morphology cores: UTF-8 decoding/encoding, Unicode
// classification, legacy byte decoders, and the small-integer alphabet
// codecs the tries are built over.
package encoding

import "unicode"

// SymbolClassification classifies a UTF-32 codepoint and maps it to its
// upper/lower variant. The classification tables themselves are Unicode's
// own data (out of this module's scope per spec); this type only exposes
// the lookup contract the core consumes, backed by the standard library's
// own precomputed range tables.
type SymbolClassification struct{}

// IsUpper reports whether r is an uppercase letter.
func (SymbolClassification) IsUpper(r rune) bool { return unicode.IsUpper(r) }

// IsLower reports whether r is a lowercase letter.
func (SymbolClassification) IsLower(r rune) bool { return unicode.IsLower(r) }

// ToUpper returns the uppercase variant of r, or r unchanged if none.
func (SymbolClassification) ToUpper(r rune) rune { return unicode.ToUpper(r) }

// ToLower returns the lowercase variant of r, or r unchanged if none.
func (SymbolClassification) ToLower(r rune) rune { return unicode.ToLower(r) }

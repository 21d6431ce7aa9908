package encoding

import "unicode/utf8"

// EncodeRune converts a single UTF-32 codepoint into its UTF-8 byte
// sequence. Unlike the decoder, the encoding direction is a closed,
// well-defined algorithm (not a permissive-on-error state machine), so it
// is grounded directly on the standard library rather than hand-rolled.
func EncodeRune(r rune) []byte {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return buf[:n]
}

// EncodeRunes converts a sequence of UTF-32 codepoints into their
// concatenated UTF-8 byte sequence.
func EncodeRunes(rs []rune) []byte {
	out := make([]byte, 0, len(rs)*2)
	for _, r := range rs {
		out = append(out, EncodeRune(r)...)
	}
	return out
}

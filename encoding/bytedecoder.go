package encoding

// ByteDecoder is the trait shared by legacy single-byte-encoding decoders:
// a single byte maps to a UTF-32 codepoint, or 0 when undefined. The
// code-page tables themselves (CP1251, KOI8-R, ...) are out of this
// module's scope per spec; only the lookup contract and a couple of
// concrete table-driven decoders that exercise it are implemented here.
type ByteDecoder interface {
	Decode(b byte) rune
}

// TableByteDecoder is a ByteDecoder backed by a flat 256-entry lookup
// table, the shape every legacy code-page decoder in the source shares.
type TableByteDecoder struct {
	table [256]rune
}

// NewTableByteDecoder wraps a precomputed 256-entry table as a ByteDecoder.
func NewTableByteDecoder(table [256]rune) *TableByteDecoder {
	return &TableByteDecoder{table: table}
}

// Decode implements ByteDecoder.
func (d *TableByteDecoder) Decode(b byte) rune { return d.table[b] }

// ASCIIByteDecoder maps the 7-bit ASCII range to itself and leaves the
// upper half undefined (0).
var ASCIIByteDecoder = NewTableByteDecoder(asciiTable())

func asciiTable() [256]rune {
	var t [256]rune
	for i := 0; i < 0x80; i++ {
		t[i] = rune(i)
	}
	return t
}

// Latin1ByteDecoder maps every byte to its identical Unicode codepoint,
// the ISO-8859-1 convention.
var Latin1ByteDecoder = NewTableByteDecoder(latin1Table())

func latin1Table() [256]rune {
	var t [256]rune
	for i := 0; i < 256; i++ {
		t[i] = rune(i)
	}
	return t
}

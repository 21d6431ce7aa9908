package encoding

// Utf8Symbol is one decoded unit from a Utf8Decoder: the codepoint, its
// originating bytes, and their count. Len is in {1,2,3,4} for well-formed
// sequences; a malformed sequence reports Rune = 0 and whatever byte count
// was actually consumed.
type Utf8Symbol struct {
	Rune  rune
	Bytes [4]byte
	Len   int
}

// ByteSource is a pull-based source of raw bytes, the one the Utf8Decoder
// is built over. It borrows from its caller: non-restartable, finite.
type ByteSource interface {
	NextByte() (byte, bool)
}

// SliceByteSource is a ByteSource over an in-memory byte slice.
type SliceByteSource struct {
	data []byte
	pos  int
}

// NewSliceByteSource wraps data as a ByteSource.
func NewSliceByteSource(data []byte) *SliceByteSource {
	return &SliceByteSource{data: data}
}

// NextByte implements ByteSource.
func (s *SliceByteSource) NextByte() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	b := s.data[s.pos]
	s.pos++
	return b, true
}

// Utf8Decoder is a lazy forward sequence of (utf32, byte-length,
// byte-position, symbol-position) over a ByteSource. Byte and symbol
// positions are 1-based running totals: byte-position is the number of
// bytes consumed so far (including the current symbol), symbol-position is
// the number of well-formed symbols decoded so far (malformed symbols do
// not advance it).
//
// Construction reads the first symbol eagerly, mirroring the source's
// "read on construction, increment to advance" iterator shape.
type Utf8Decoder struct {
	src     ByteSource
	cur     Utf8Symbol
	bytePos int
	symPos  int
	valid   bool
}

// NewUtf8Decoder creates a decoder over src and reads its first symbol.
func NewUtf8Decoder(src ByteSource) *Utf8Decoder {
	d := &Utf8Decoder{src: src}
	d.advance()
	return d
}

// Valid reports whether Symbol/BytePos/SymPos currently hold a symbol.
// It becomes false once the source is exhausted.
func (d *Utf8Decoder) Valid() bool { return d.valid }

// Symbol returns the current decoded symbol.
func (d *Utf8Decoder) Symbol() Utf8Symbol { return d.cur }

// BytePos returns the running count of bytes consumed through the current
// symbol (1-based).
func (d *Utf8Decoder) BytePos() int { return d.bytePos }

// SymPos returns the running count of well-formed symbols decoded through
// the current one (1-based); malformed symbols do not advance this.
func (d *Utf8Decoder) SymPos() int { return d.symPos }

// Next advances to the next symbol, returning false once exhausted.
func (d *Utf8Decoder) Next() bool {
	if !d.valid {
		return false
	}
	d.advance()
	return d.valid
}

// leadInfo classifies a lead byte: the number of expected continuation
// bytes (0-3) and whether the lead byte itself is legal UTF-8 (RFC 3629
// retired the old 5/6-byte forms, so leads above 0xF4 and continuation
// bytes used as leads are both invalid).
func leadInfo(b byte) (trailCount int, valid bool) {
	switch {
	case b <= 0x7F:
		return 0, true
	case b <= 0xC1:
		return 0, false
	case b <= 0xDF:
		return 1, true
	case b <= 0xEF:
		return 2, true
	case b <= 0xF4:
		return 3, true
	default:
		return 0, false
	}
}

// leadValueMask returns the mask of value bits carried by the lead byte
// itself, given the expected continuation count.
func leadValueMask(trailCount int) rune {
	switch trailCount {
	case 1:
		return 0x1F
	case 2:
		return 0x0F
	case 3:
		return 0x07
	default:
		return 0x7F
	}
}

// firstContinuationOK enforces the RFC 3629 restricted ranges on the first
// continuation byte that follow from certain lead bytes (excludes overlong
// encodings and the surrogate range).
func firstContinuationOK(lead, b byte) bool {
	switch lead {
	case 0xE0:
		return b >= 0xA0
	case 0xED:
		return b <= 0x9F
	case 0xF0:
		return b >= 0x90
	case 0xF4:
		return b <= 0x8F
	default:
		return true
	}
}

func (d *Utf8Decoder) advance() {
	lead, ok := d.src.NextByte()
	if !ok {
		d.valid = false
		return
	}

	trailCount, ok := leadInfo(lead)
	if !ok {
		d.bytePos++
		d.cur = Utf8Symbol{Len: 1}
		d.valid = true
		return
	}
	if trailCount == 0 {
		d.bytePos++
		d.symPos++
		d.cur = Utf8Symbol{Rune: rune(lead), Bytes: [4]byte{lead}, Len: 1}
		d.valid = true
		return
	}

	var buf [4]byte
	buf[0] = lead
	n := 1
	r := rune(lead) & leadValueMask(trailCount)
	malformed := false
	for i := 0; i < trailCount; i++ {
		b, ok := d.src.NextByte()
		if !ok {
			malformed = true
			break
		}
		n++
		if b < 0x80 || b > 0xBF {
			malformed = true
			break
		}
		if i == 0 && !firstContinuationOK(lead, b) {
			malformed = true
			break
		}
		buf[n-1] = b
		r = (r << 6) | rune(b&0x3F)
	}

	d.bytePos += n
	if malformed {
		d.cur = Utf8Symbol{Len: n}
		d.valid = true
		return
	}
	d.symPos++
	d.cur = Utf8Symbol{Rune: r, Bytes: buf, Len: n}
	d.valid = true
}

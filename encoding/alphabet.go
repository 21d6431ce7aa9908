package encoding

import "fmt"

// MaxAlphabetSize is the largest alphabet this codec supports: codes must
// fit in a single non-zero byte (code 0 is reserved for "not in alphabet").
const MaxAlphabetSize = 254

// Alphabet is a bijection between a subset of UTF-32 codepoints and the
// integer range [1, Size()]. Code 0 is reserved and returned for any
// codepoint outside the alphabet (an AlphabetMiss, which per spec is data,
// not an error, and is silently propagated).
type Alphabet struct {
	toCode map[rune]byte
	toRune []rune // index 0 unused, len = Size()+1
}

// NewAlphabet builds an Alphabet over letters, assigning codes 1..len(letters)
// in the given order. Panics if letters exceeds MaxAlphabetSize — this is a
// programmer error (a malformed, hard-coded alphabet table), not recoverable
// input data.
func NewAlphabet(letters []rune) *Alphabet {
	if len(letters) > MaxAlphabetSize {
		panic(fmt.Sprintf("encoding: alphabet of %d letters exceeds max %d", len(letters), MaxAlphabetSize))
	}
	a := &Alphabet{
		toCode: make(map[rune]byte, len(letters)),
		toRune: make([]rune, len(letters)+1),
	}
	for i, r := range letters {
		code := byte(i + 1)
		a.toCode[r] = code
		a.toRune[code] = r
	}
	return a
}

// Encode returns the code for r, or 0 if r is not in the alphabet.
func (a *Alphabet) Encode(r rune) byte {
	return a.toCode[r]
}

// Decode returns the codepoint for code, or 0 if code is out of range or
// unassigned.
func (a *Alphabet) Decode(code byte) rune {
	if int(code) >= len(a.toRune) {
		return 0
	}
	return a.toRune[code]
}

// Size returns N, the number of letters in the alphabet.
func (a *Alphabet) Size() int { return len(a.toRune) - 1 }

// Russian is the 33-letter lowercase Russian alphabet, including ё.
var Russian = NewAlphabet([]rune("абвгдежзийклмнопрстуфхцчшщъыьэюяё"))

// English is the 26-letter lowercase English alphabet.
var English = NewAlphabet([]rune("abcdefghijklmnopqrstuvwxyz"))

// Package bits turns user text into bit sequences.
package bits

import (
	"fmt"
	"strings"
)

// Bits is an ordered sequence of binary digits.
type Bits []bool

// Parse keeps every '0' and '1' rune of text and drops anything else.
// dropped counts the runes that were filtered out.
func Parse(text string) (b Bits, dropped int) {
	b = make(Bits, 0, len(text))
	for _, r := range text {
		switch r {
		case '0':
			b = append(b, false)
		case '1':
			b = append(b, true)
		default:
			dropped++
		}
	}
	return
}

// MustParse is Parse for literals that are known to be clean.
func MustParse(text string) Bits {
	b, dropped := Parse(text)
	if dropped > 0 {
		panic(fmt.Sprintf("bits: %q contains %d non-bit characters", text, dropped))
	}
	return b
}

func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Ints returns the bits as 0/1 integers.
func (b Bits) Ints() []int {
	out := make([]int, len(b))
	for i, bit := range b {
		if bit {
			out[i] = 1
		}
	}
	return out
}

// FromBytes expands data MSB first.
func FromBytes(data []byte) Bits {
	out := make(Bits, 0, len(data)*8)
	for _, v := range data {
		BitSet8(v).ForEach(func(bit bool) {
			out = append(out, bit)
		})
	}
	return out
}

// Bytes packs b MSB first; a trailing partial byte is padded with zeros.
func (b Bits) Bytes() []byte {
	out := make([]byte, (len(b)+7)/8)
	for i, bit := range b {
		if bit {
			out[i/8] |= 1 << (7 - i%8)
		}
	}
	return out
}

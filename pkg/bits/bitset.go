package bits

import "strings"

// BitSet8 is a single byte viewed MSB first.
type BitSet8 byte

func (b *BitSet8) Set(pos int) {
	*b |= 1 << (7 - pos)
}

func (b *BitSet8) Clear(pos int) {
	*b &^= 1 << (7 - pos)
}

func (b BitSet8) IsSet(pos int) bool {
	return b&(1<<(7-pos)) != 0
}

func (b BitSet8) ForEach(f func(bool)) {
	for i := 0; i < 8; i++ {
		f(b.IsSet(i))
	}
}

func (b BitSet8) String() string {
	var sb strings.Builder
	b.ForEach(func(bit bool) {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	})
	return sb.String()
}

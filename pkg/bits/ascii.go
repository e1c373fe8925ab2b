package bits

// CharCode is one character of text with its code and 8-bit binary form.
type CharCode struct {
	Char   string `json:"char"`
	Code   int    `json:"code"`
	Binary string `json:"binary"`
}

// FromASCII lists the code of each rune in text. Runes above 0xff keep their
// full code point but only the low byte is shown in Binary.
func FromASCII(text string) []CharCode {
	out := make([]CharCode, 0, len(text))
	for _, r := range text {
		out = append(out, CharCode{
			Char:   string(r),
			Code:   int(r),
			Binary: BitSet8(byte(r)).String(),
		})
	}
	return out
}

// TextBits concatenates the low byte of each rune of text.
func TextBits(text string) Bits {
	out := make(Bits, 0, len(text)*8)
	for _, r := range text {
		BitSet8(byte(r)).ForEach(func(bit bool) {
			out = append(out, bit)
		})
	}
	return out
}

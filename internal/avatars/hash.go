package avatars

import "unicode/utf16"

// HashSeed computes the 31-multiplier string hash used for every element and
// style assignment on the platform. The accumulator wraps at 32-bit signed
// boundaries and the input is walked as UTF-16 code units; both details are
// part of the assignment contract — changing either reshuffles the element
// of every existing member.
func HashSeed(s string) int64 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	// Negate in 64-bit space so MinInt32 cannot overflow.
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

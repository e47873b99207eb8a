package numeric

// bitWidth is the size of T in bits.
func bitWidth[T Integer]() uint {
	var w uint
	for x := T(1); x != 0; x <<= 1 {
		w++
	}
	return w
}

// RotateLeft rotates the bits of v left by k positions. k is taken modulo
// the width of T, and a negative k rotates right.
func RotateLeft[T Unsigned](v T, k int) T {
	w := bitWidth[T]()
	s := uint(k) % w
	if k < 0 {
		s = w - uint(-k)%w
	}
	return v<<s | v>>(w-s)
}

// RotateRight rotates the bits of v right by k positions.
func RotateRight[T Unsigned](v T, k int) T {
	return RotateLeft(v, -k)
}

// Scramble mixes the bits of v into a well-distributed value of the same
// type. It is deterministic and cheap, not cryptographic. Signed values are
// sign-extended before mixing.
func Scramble[T Integer](v T) T {
	half := bitWidth[T]() / 2
	n := uint64(v)
	n = (n ^ 524287) ^ (n >> half)
	n += n << 3
	n ^= n >> 4
	n *= 24036583
	n ^= n >> (half - 1)
	return T(n)
}

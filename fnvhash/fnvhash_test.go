package fnvhash

import (
	"hash/fnv"
	"testing"
)

func TestString_MatchesFNV1aForASCII(t *testing.T) {
	for _, s := range []string{"", "a", "hello", "The quick brown fox"} {
		h32 := fnv.New32a()
		h32.Write([]byte(s))
		if got, want := String32(s), h32.Sum32(); got != want {
			t.Errorf("String32(%q) = %#x, want %#x", s, got, want)
		}
		h64 := fnv.New64a()
		h64.Write([]byte(s))
		if got, want := String64(s), h64.Sum64(); got != want {
			t.Errorf("String64(%q) = %#x, want %#x", s, got, want)
		}
	}
}

func TestString_UTF16Units(t *testing.T) {
	// U+1F600 is a surrogate pair, so it folds two units.
	want := step32(step32(OffsetBasis32, 0xD83D), 0xDE00)
	if got := String32("\U0001F600"); got != want {
		t.Errorf("String32(emoji) = %#x, want %#x", got, want)
	}
	if String32("é") == String32("e") {
		t.Error("expected distinct hashes for é and e")
	}
}

func TestIntHashing(t *testing.T) {
	const x = 0
	h1 := Int32(x)
	h2 := Combine32(x, 1, 2, 3, 4, 5)
	if h1 == x || h2 == x || h1 == h2 {
		t.Errorf("expected 0, Int32(0) and Combine32(0, 1..5) to differ: %d %d", h1, h2)
	}
	if Int64(0) == 0 || Int64(0) == Combine64(0, 1, 2, 3) {
		t.Error("64-bit hashes collided on trivial input")
	}
}

func TestCombine_BasisSwap(t *testing.T) {
	if got, want := Combine32(0, 7), Int32(7); got != want {
		t.Errorf("Combine32(0, 7) = %d, want Int32(7) = %d", got, want)
	}
	if got, want := Combine32(OffsetBasis32, 7), step32(0, 7); got != want {
		t.Errorf("Combine32(offset, 7) = %d, want %d", got, want)
	}
	if got, want := Combine64(0, 7), Int64(7); got != want {
		t.Errorf("Combine64(0, 7) = %d, want Int64(7) = %d", got, want)
	}
	if got, want := Combine64(OffsetBasis64, 7), step64(0, 7); got != want {
		t.Errorf("Combine64(offset, 7) = %d, want %d", got, want)
	}
	if got := Combine32(42); got != 42 {
		t.Errorf("Combine32 with no values = %d, want basis 42", got)
	}
}

func TestCombine_OrderMatters(t *testing.T) {
	if Combine32(0, 1, 2) == Combine32(0, 2, 1) {
		t.Error("expected order-sensitive combination")
	}
}

package fnvhash

import "unicode/utf16"

// FNV parameters.
const (
	Prime32       uint32 = 16777619
	OffsetBasis32 uint32 = 2166136261
	Prime64       uint64 = 1099511628211
	OffsetBasis64 uint64 = 14695981039346656037
)

// String32 hashes s one UTF-16 code unit at a time.
func String32(s string) uint32 {
	h := OffsetBasis32
	for _, u := range utf16.Encode([]rune(s)) {
		h = step32(h, uint32(u))
	}
	return h
}

// String64 hashes s one UTF-16 code unit at a time.
func String64(s string) uint64 {
	h := OffsetBasis64
	for _, u := range utf16.Encode([]rune(s)) {
		h = step64(h, uint64(u))
	}
	return h
}

// Int32 hashes a single 32-bit value from the offset basis.
func Int32(v int32) uint32 {
	return step32(OffsetBasis32, uint32(v))
}

// Int64 hashes a single 64-bit value from the offset basis.
func Int64(v int64) uint64 {
	return step64(OffsetBasis64, uint64(v))
}

// Combine32 folds values into basis. A zero basis starts from the offset
// basis and the offset basis itself starts from zero, so Combine32(0, v)
// equals Int32(v).
func Combine32(basis uint32, values ...int32) uint32 {
	h := swapBasis(basis, OffsetBasis32)
	for _, v := range values {
		h = step32(h, uint32(v))
	}
	return h
}

// Combine64 is the 64-bit form of Combine32.
func Combine64(basis uint64, values ...int64) uint64 {
	h := swapBasis(basis, OffsetBasis64)
	for _, v := range values {
		h = step64(h, uint64(v))
	}
	return h
}

func swapBasis[T uint32 | uint64](basis, offset T) T {
	switch basis {
	case 0:
		return offset
	case offset:
		return 0
	default:
		return basis
	}
}

func step32(h, v uint32) uint32 { return (h ^ v) * Prime32 }

func step64(h, v uint64) uint64 { return (h ^ v) * Prime64 }

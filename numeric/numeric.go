package numeric

import (
	"cmp"

	"github.com/kbukum/extkit/validation"
)

// Signed is any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number is any integer or floating-point type.
type Number interface {
	Integer | Float
}

// Between reports whether lo <= v <= hi.
func Between[T cmp.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

// Within reports whether lo < v < hi.
func Within[T cmp.Ordered](v, lo, hi T) bool {
	return v > lo && v < hi
}

// BetweenMin reports whether lo <= v < hi.
func BetweenMin[T cmp.Ordered](v, lo, hi T) bool {
	return v >= lo && v < hi
}

// BetweenMax reports whether lo < v <= hi.
func BetweenMax[T cmp.Ordered](v, lo, hi T) bool {
	return v > lo && v <= hi
}

// LesserOf returns x if it is strictly less than y, and y otherwise.
func LesserOf[T cmp.Ordered](x, y T) T {
	if cmp.Less(x, y) {
		return x
	}
	return y
}

// GreaterOf returns x if it is strictly greater than y, and y otherwise.
func GreaterOf[T cmp.Ordered](x, y T) T {
	if cmp.Less(y, x) {
		return x
	}
	return y
}

// RequirePositive returns an OUT_OF_RANGE error naming param when n <= 0.
func RequirePositive[T Number](param string, n T) error {
	return validation.Positive(param, n)
}

// RequireNonNegative returns an OUT_OF_RANGE error naming param when n < 0.
func RequireNonNegative[T Number](param string, n T) error {
	return validation.NonNegative(param, n)
}

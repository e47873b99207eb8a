package strutil

import (
	"math"
	"unicode/utf8"

	"github.com/kbukum/extkit/numeric"
)

// Ellipsis is the marker used by the ...WithEllipsis helpers.
const Ellipsis = "..."

// FromLeft keeps the first length runes of s.
func FromLeft(s string, length int) string {
	r := []rune(s)
	switch {
	case len(r) <= length:
		return s
	case length < 0:
		return FromRight(s, abs(length))
	default:
		return string(r[:length])
	}
}

// FromRight keeps the last length runes of s.
func FromRight(s string, length int) string {
	r := []rune(s)
	switch {
	case len(r) <= length:
		return s
	case length < 0:
		return FromLeft(s, abs(length))
	default:
		return string(r[len(r)-length:])
	}
}

// FromCenter keeps length runes from the middle of s. When the cut is
// uneven the extra rune is dropped from the left.
func FromCenter(s string, length int) string {
	r := []rune(s)
	switch {
	case len(r) <= length:
		return s
	case length < 0:
		return FromOutside(s, abs(length))
	default:
		start := (len(r) - length) / 2
		return string(r[start : start+length])
	}
}

// FromOutside keeps length runes split between both ends of s, dropping
// the middle. The right end gets the extra rune for odd lengths.
func FromOutside(s string, length int) string {
	r := []rune(s)
	switch {
	case len(r) <= length:
		return s
	case length < 0:
		return FromCenter(s, abs(length))
	default:
		return outside(r, length, "")
	}
}

// FromLeftWith keeps the start of s and appends marker so the result is
// length runes long. It returns "" when length is shorter than marker.
func FromLeftWith(s string, length int, marker string) string {
	r := []rune(s)
	m := utf8.RuneCountInString(marker)
	switch {
	case len(r) <= length:
		return s
	case numeric.BetweenMin(length, 0, m):
		return ""
	case length < 0:
		return FromRightWith(s, abs(length), marker)
	default:
		return string(r[:length-m]) + marker
	}
}

// FromRightWith keeps the end of s and prepends marker so the result is
// length runes long. It returns "" when length is shorter than marker.
func FromRightWith(s string, length int, marker string) string {
	r := []rune(s)
	m := utf8.RuneCountInString(marker)
	switch {
	case len(r) <= length:
		return s
	case numeric.BetweenMin(length, 0, m):
		return ""
	case length < 0:
		return FromLeftWith(s, abs(length), marker)
	default:
		return marker + string(r[len(r)-length+m:])
	}
}

// FromCenterWith keeps the middle of s with marker on both sides.
// A negative length keeps both ends joined by a single marker.
func FromCenterWith(s string, length int, marker string) string {
	if length < 0 {
		return FromOutsideWith(s, abs(length), marker)
	}
	return FromCenterWithPair(s, length, marker, marker)
}

// FromCenterWithPair keeps the middle of s between left and right markers.
// A negative length keeps both ends joined by left+right.
func FromCenterWithPair(s string, length int, left, right string) string {
	r := []rune(s)
	m := utf8.RuneCountInString(left) + utf8.RuneCountInString(right)
	switch {
	case len(r) <= length:
		return s
	case numeric.BetweenMin(length, 0, m):
		return ""
	case length < 0:
		return FromOutsideWith(s, abs(length), left+right)
	default:
		sub := length - m
		start := (len(r) - sub) / 2
		return left + string(r[start:start+sub]) + right
	}
}

// FromOutsideWith keeps both ends of s joined by marker.
func FromOutsideWith(s string, length int, marker string) string {
	r := []rune(s)
	m := utf8.RuneCountInString(marker)
	switch {
	case len(r) <= length:
		return s
	case numeric.BetweenMin(length, 0, m):
		return ""
	case length < 0:
		return FromCenterWith(s, abs(length), marker)
	default:
		return outside(r, length-m, marker)
	}
}

// FromLeftWithEllipsis is FromLeftWith using Ellipsis.
func FromLeftWithEllipsis(s string, length int) string {
	return FromLeftWith(s, length, Ellipsis)
}

// FromRightWithEllipsis is FromRightWith using Ellipsis.
func FromRightWithEllipsis(s string, length int) string {
	return FromRightWith(s, length, Ellipsis)
}

// FromCenterWithEllipsis is FromCenterWith using Ellipsis.
func FromCenterWithEllipsis(s string, length int) string {
	return FromCenterWith(s, length, Ellipsis)
}

// FromOutsideWithEllipsis is FromOutsideWith using Ellipsis.
func FromOutsideWithEllipsis(s string, length int) string {
	return FromOutsideWith(s, length, Ellipsis)
}

func outside(r []rune, keep int, marker string) string {
	head := keep / 2
	tail := keep - head
	return string(r[:head]) + marker + string(r[len(r)-tail:])
}

// abs saturates at MaxInt so MinInt cannot flip back to itself.
func abs(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}
	if n < 0 {
		return -n
	}
	return n
}

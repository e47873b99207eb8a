package numeric

import (
	"strconv"
	"strings"
)

var (
	smallNumbers = [...]string{
		"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
		"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen", "Twenty",
	}
	tens = [...]string{"Zero", "Ten", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

type scale struct {
	value uint64
	name  string
}

// Largest first. Quantities above a quadrillion are written as multiples of it.
var scales = [...]scale{
	{1_000_000_000_000_000, "Quadrillion"},
	{1_000_000_000_000, "Trillion"},
	{1_000_000_000, "Billion"},
	{1_000_000, "Million"},
	{1_000, "Thousand"},
	{100, "Hundred"},
}

// ToText spells v in English words, e.g. 345 is "Three Hundred and
// Forty-Five" and -5 is "Negative Five".
func ToText[T Integer](v T) string {
	if v < 0 {
		return "Negative " + magnitudeText(magnitude(v))
	}
	return magnitudeText(uint64(v))
}

// ToOrdinalText spells v as an English ordinal, e.g. "Twelfth" or
// "One Hundred and First".
func ToOrdinalText[T Integer](v T) string {
	text := ToText(v)
	switch {
	case strings.HasSuffix(text, "One"):
		return strings.TrimSuffix(text, "One") + "First"
	case strings.HasSuffix(text, "Two"):
		return strings.TrimSuffix(text, "Two") + "Second"
	case strings.HasSuffix(text, "Three"):
		return strings.TrimSuffix(text, "Three") + "Third"
	case strings.HasSuffix(text, "ve"):
		return strings.TrimSuffix(text, "ve") + "fth"
	case strings.HasSuffix(text, "e"):
		return strings.TrimSuffix(text, "e") + "th"
	case strings.HasSuffix(text, "y"):
		return strings.TrimSuffix(text, "y") + "ieth"
	case strings.HasSuffix(text, "t"):
		return text + "h"
	default:
		return text + "th"
	}
}

// ToOrdinal formats v with its English ordinal suffix: "1st", "12th",
// "103rd". Negative values take the suffix of their magnitude, so -1 is
// "-1st".
func ToOrdinal[T Integer](v T) string {
	var digits string
	var m uint64
	if v < 0 {
		m = magnitude(v)
		digits = "-" + strconv.FormatUint(m, 10)
	} else {
		m = uint64(v)
		digits = strconv.FormatUint(m, 10)
	}

	switch m % 100 {
	case 11, 12, 13:
		return digits + "th"
	}
	switch m % 10 {
	case 1:
		return digits + "st"
	case 2:
		return digits + "nd"
	case 3:
		return digits + "rd"
	default:
		return digits + "th"
	}
}

// magnitude returns |v| for a negative v without overflowing on the
// minimum value of T.
func magnitude[T Integer](v T) uint64 {
	return -uint64(int64(v))
}

func magnitudeText(n uint64) string {
	if n == 0 {
		return smallNumbers[0]
	}

	var b strings.Builder
	for _, s := range scales {
		if n/s.value > 0 {
			b.WriteString(magnitudeText(n / s.value))
			b.WriteByte(' ')
			b.WriteString(s.name)
			b.WriteByte(' ')
			n %= s.value
		}
	}

	if n > 0 {
		if b.Len() > 0 {
			b.WriteString("and ")
		}
		if n < 20 {
			b.WriteString(smallNumbers[n])
		} else {
			b.WriteString(tens[n/10])
			if n%10 > 0 {
				b.WriteByte('-')
				b.WriteString(smallNumbers[n%10])
			}
		}
	}
	return strings.TrimSpace(b.String())
}

package numeric

import (
	"math"

	"github.com/kbukum/extkit/validation"
)

// maxPlaces is the most decimal places a float64 carries.
const maxPlaces = 15

// RoundTo rounds v to the given number of decimal places, with midpoints
// rounded away from zero. Negative places round to tens, hundreds, ...
// Values that cannot be scaled without overflowing, and places beyond the
// precision of a float64, return v unchanged.
func RoundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || places > maxPlaces {
		return v
	}
	pow := math.Pow10(places)
	if pow == 0 {
		return math.Copysign(0, v)
	}
	scaled := v * pow
	if math.IsInf(scaled, 0) {
		return v
	}
	return math.Round(scaled) / pow
}

// RoundHigherMultiple rounds v up to the nearest multiple of m.
// A zero m is an OUT_OF_RANGE error.
func RoundHigherMultiple[T Number](v, m T) (T, error) {
	if err := validation.NonZero("multiple", m); err != nil {
		return v, err
	}
	return T(math.Ceil(float64(v)/float64(m)) * float64(m)), nil
}

// RoundLowerMultiple rounds v down to the nearest multiple of m.
// A zero m is an OUT_OF_RANGE error.
func RoundLowerMultiple[T Number](v, m T) (T, error) {
	if err := validation.NonZero("multiple", m); err != nil {
		return v, err
	}
	return T(math.Floor(float64(v)/float64(m)) * float64(m)), nil
}

// RoundNearestMultiple rounds v to the nearest multiple of m, with
// midpoints rounded away from zero. A zero m is an OUT_OF_RANGE error.
func RoundNearestMultiple[T Number](v, m T) (T, error) {
	if err := validation.NonZero("multiple", m); err != nil {
		return v, err
	}
	return T(math.Round(float64(v)/float64(m)) * float64(m)), nil
}

// Package numeric provides generic helpers for ordered and numeric values:
// range predicates, rounding to decimal places and to multiples, bit
// rotation and mixing, and English words for integers.
package numeric

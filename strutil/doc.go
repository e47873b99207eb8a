// Package strutil provides rune-aware string truncation, fixed-width
// chunking and token interpolation.
//
// The truncation helpers keep part of a string and optionally mark the cut
// with a marker such as Ellipsis:
//
//	strutil.FromLeftWithEllipsis("abcdefghij", 6)   // "abc..."
//	strutil.FromCenterWithEllipsis("abcdefghij", 7) // "...e..."
//
// A negative length selects the complementary operation: left and right
// swap, center and outside swap. Lengths are counted in runes.
package strutil

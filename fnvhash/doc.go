// Package fnvhash hashes whole values with the FNV xor-then-multiply step.
//
// Unlike hash/fnv, which folds one byte at a time, each step here folds a
// complete value: a UTF-16 code unit for strings, or a whole integer. For
// ASCII input String32 and String64 agree with FNV-1a over the bytes.
package fnvhash

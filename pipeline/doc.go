// Package pipeline provides lazy, pull-based sequences and the combinators
// that operate on them, centred on an N-ary zipper.
//
// Pipelines are lazy. No work happens until values are pulled via Collect,
// Drain, ForEach, Consume, Values or Iter. Each stage pulls from the
// previous stage on demand, and every pull starts a fresh session.
//
// # Zipping
//
// ZipWith walks any number of inputs in lockstep and hands one value per
// input to a combiner. What happens when the inputs have different lengths
// is decided by an ImbalancePolicy:
//
//   - Truncate (ZipShortest, Zip): stop at the first exhausted input
//   - Pad (ZipLongest): substitute the zero value until all are exhausted
//   - Fail (ZipEven): error with a length mismatch at the first uneven step
//
// Arguments are validated eagerly; a length mismatch is only detected while
// consuming. All inputs are closed exactly once per session. Zip2 and Zip3
// accept inputs of different element types.
//
// # Operators
//
//   - Map, FlatMap, Filter, Tap, TapEach, Reduce, Concat
//   - Take, Prepend, Append
//   - Chunk, ChunkMap, ChunkStream, Repeat, Tails
//   - Permutations, NestedLoops, Generate
//
// # Usage
//
//	letters := pipeline.Just("A", "B", "C", "D")
//	digits := pipeline.Just("1", "2", "3")
//	zipped, err := pipeline.ZipLongestIndexed(func(v []string, i int) string {
//	    return v[0] + v[1] + strconv.Itoa(i)
//	}, letters, digits)
//	if err != nil {
//	    return err
//	}
//	out, err := pipeline.Collect(ctx, zipped) // A10 B21 C32 D3
//
// A pipeline and its iterators are not safe for concurrent use.
package pipeline

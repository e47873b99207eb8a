package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/kbukum/extkit/errors"
)

// ImbalancePolicy decides what a zip does when its inputs have different lengths.
type ImbalancePolicy int

const (
	// Truncate stops at the first exhausted input. Elements already pulled
	// from earlier inputs in that step are discarded.
	Truncate ImbalancePolicy = iota
	// Pad substitutes the zero value for exhausted inputs until every input
	// is exhausted.
	Pad
	// Fail ends cleanly only when every input is exhausted at the same step
	// and fails with a length mismatch otherwise.
	Fail
)

// String returns the lower-case policy name.
func (p ImbalancePolicy) String() string {
	switch p {
	case Truncate:
		return "truncate"
	case Pad:
		return "pad"
	case Fail:
		return "fail"
	default:
		return fmt.Sprintf("ImbalancePolicy(%d)", int(p))
	}
}

// Valid reports whether p is one of the declared policies.
func (p ImbalancePolicy) Valid() bool {
	return p >= Truncate && p <= Fail
}

// ParsePolicy maps a policy name to its value. The zip entry-point names
// are accepted as synonyms: "shortest", "longest" and "even".
func ParsePolicy(s string) (ImbalancePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truncate", "shortest":
		return Truncate, nil
	case "pad", "longest":
		return Pad, nil
	case "fail", "even":
		return Fail, nil
	default:
		return Truncate, errors.InvalidFormat("policy", "truncate, pad or fail")
	}
}

// ZipWith combines the inputs position by position under policy. combine
// receives a fresh slice holding one value per input (in input order) and
// the zero-based output position.
//
// Arguments are checked before anything is consumed: a nil combiner or a
// nil input yields an INVALID_ARGUMENT error naming it. The returned
// pipeline is lazy and every consumption reopens all inputs. Each input
// iterator is closed exactly once, when the zip ends, fails, or is closed
// early by its consumer.
func ZipWith[T, O any](policy ImbalancePolicy, combine func(values []T, index int) O, inputs ...*Pipeline[T]) (*Pipeline[O], error) {
	if !policy.Valid() {
		return nil, errors.OutOfRange("policy", policy, "truncate, pad or fail")
	}
	if combine == nil {
		return nil, errors.InvalidArgument("combine")
	}
	if len(inputs) == 0 {
		return nil, errors.InvalidArgument("inputs").WithDetail("count", 0)
	}
	for k, in := range inputs {
		if in == nil {
			return nil, errors.InvalidArgument(fmt.Sprintf("inputs[%d]", k))
		}
	}
	// Copy so later changes to the caller's slice do not leak into sessions.
	srcs := append([]*Pipeline[T](nil), inputs...)
	return &Pipeline[O]{
		create: func(_ context.Context) Iterator[O] {
			return &zipIter[T, O]{policy: policy, combine: combine, inputs: srcs}
		},
	}, nil
}

// Zip is ZipShortest.
func Zip[T, O any](combine func(values []T) O, inputs ...*Pipeline[T]) (*Pipeline[O], error) {
	return ZipShortest(combine, inputs...)
}

// ZipShortest zips until the shortest input is exhausted.
func ZipShortest[T, O any](combine func(values []T) O, inputs ...*Pipeline[T]) (*Pipeline[O], error) {
	return ZipWith(Truncate, dropIndex(combine), inputs...)
}

// ZipLongest zips until every input is exhausted, padding with zero values.
func ZipLongest[T, O any](combine func(values []T) O, inputs ...*Pipeline[T]) (*Pipeline[O], error) {
	return ZipWith(Pad, dropIndex(combine), inputs...)
}

// ZipEven zips inputs that must all have the same length. A length mismatch
// surfaces as an error from the pull that detects it.
func ZipEven[T, O any](combine func(values []T) O, inputs ...*Pipeline[T]) (*Pipeline[O], error) {
	return ZipWith(Fail, dropIndex(combine), inputs...)
}

// ZipIndexed is ZipShortestIndexed.
func ZipIndexed[T, O any](combine func(values []T, index int) O, inputs ...*Pipeline[T]) (*Pipeline[O], error) {
	return ZipWith(Truncate, combine, inputs...)
}

// ZipShortestIndexed is ZipShortest with the output position passed to combine.
func ZipShortestIndexed[T, O any](combine func(values []T, index int) O, inputs ...*Pipeline[T]) (*Pipeline[O], error) {
	return ZipWith(Truncate, combine, inputs...)
}

// ZipLongestIndexed is ZipLongest with the output position passed to combine.
func ZipLongestIndexed[T, O any](combine func(values []T, index int) O, inputs ...*Pipeline[T]) (*Pipeline[O], error) {
	return ZipWith(Pad, combine, inputs...)
}

// ZipEvenIndexed is ZipEven with the output position passed to combine.
func ZipEvenIndexed[T, O any](combine func(values []T, index int) O, inputs ...*Pipeline[T]) (*Pipeline[O], error) {
	return ZipWith(Fail, combine, inputs...)
}

// Zip2 zips two inputs of different element types.
func Zip2[A, B, O any](policy ImbalancePolicy, a *Pipeline[A], b *Pipeline[B], combine func(a A, b B, index int) O) (*Pipeline[O], error) {
	if combine == nil {
		return nil, errors.InvalidArgument("combine")
	}
	if a == nil {
		return nil, errors.InvalidArgument("inputs[0]")
	}
	if b == nil {
		return nil, errors.InvalidArgument("inputs[1]")
	}
	return ZipWith(policy, func(vals []any, index int) O {
		va, _ := vals[0].(A)
		vb, _ := vals[1].(B)
		return combine(va, vb, index)
	}, erase(a), erase(b))
}

// Zip3 zips three inputs of different element types.
func Zip3[A, B, C, O any](policy ImbalancePolicy, a *Pipeline[A], b *Pipeline[B], c *Pipeline[C], combine func(a A, b B, c C, index int) O) (*Pipeline[O], error) {
	if combine == nil {
		return nil, errors.InvalidArgument("combine")
	}
	if a == nil {
		return nil, errors.InvalidArgument("inputs[0]")
	}
	if b == nil {
		return nil, errors.InvalidArgument("inputs[1]")
	}
	if c == nil {
		return nil, errors.InvalidArgument("inputs[2]")
	}
	return ZipWith(policy, func(vals []any, index int) O {
		va, _ := vals[0].(A)
		vb, _ := vals[1].(B)
		vc, _ := vals[2].(C)
		return combine(va, vb, vc, index)
	}, erase(a), erase(b), erase(c))
}

func dropIndex[T, O any](combine func([]T) O) func([]T, int) O {
	if combine == nil {
		return nil
	}
	return func(vals []T, _ int) O { return combine(vals) }
}

// erase boxes values so inputs of different types share one zip core.
// A padded slot stays nil and unboxes to the typed zero value.
func erase[T any](p *Pipeline[T]) *Pipeline[any] {
	return Map(p, func(_ context.Context, v T) (any, error) { return v, nil })
}

type zipCursor[T any] struct {
	src  Iterator[T]
	done bool
}

type zipIter[T, O any] struct {
	policy   ImbalancePolicy
	combine  func([]T, int) O
	inputs   []*Pipeline[T]
	cursors  []zipCursor[T]
	index    int
	finished bool
	released bool
	err      error
}

func (it *zipIter[T, O]) open(ctx context.Context) {
	it.cursors = make([]zipCursor[T], len(it.inputs))
	for k, in := range it.inputs {
		it.cursors[k].src = in.create(ctx)
	}
}

func (it *zipIter[T, O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	if it.finished {
		return zero, false, it.err
	}
	if err := ctx.Err(); err != nil {
		return zero, false, it.finish(err)
	}
	if it.cursors == nil {
		it.open(ctx)
	}

	vals := make([]T, len(it.cursors))
	produced, mismatch := false, false
	for k := range it.cursors {
		c := &it.cursors[k]
		if !c.done {
			v, ok, err := c.src.Next(ctx)
			if err != nil {
				return zero, false, it.finish(err)
			}
			if ok {
				vals[k] = v
				produced = true
				continue
			}
			c.done = true
		}
		switch it.policy {
		case Truncate:
			return zero, false, it.finish(nil)
		case Fail:
			mismatch = true
		}
		// Pad leaves the zero value in vals[k].
	}

	if !produced {
		return zero, false, it.finish(nil)
	}
	if mismatch {
		return zero, false, it.finish(it.mismatch())
	}
	out := it.combine(vals, it.index)
	it.index++
	return out, true, nil
}

func (it *zipIter[T, O]) mismatch() error {
	var exhausted, active []int
	for k, c := range it.cursors {
		if c.done {
			exhausted = append(exhausted, k)
		} else {
			active = append(active, k)
		}
	}
	return errors.LengthMismatch(it.index, exhausted, active)
}

// finish makes err the sticky outcome of the session and releases the
// inputs. A release failure is reported only when the session ended cleanly.
func (it *zipIter[T, O]) finish(err error) error {
	it.finished = true
	if closeErr := it.release(); err == nil {
		err = closeErr
	}
	it.err = err
	return err
}

func (it *zipIter[T, O]) release() error {
	if it.released {
		return nil
	}
	it.released = true
	var firstErr error
	for _, c := range it.cursors {
		if err := c.src.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (it *zipIter[T, O]) Close() error {
	it.finished = true
	return it.release()
}

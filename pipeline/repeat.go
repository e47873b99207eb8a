package pipeline

import (
	"context"
	"fmt"

	"github.com/kbukum/extkit/errors"
	"github.com/kbukum/extkit/validation"
)

// Repeat yields the source once and then its values count-1 more times.
// The first pass is streamed and buffered, so the source is consumed once
// per session.
func Repeat[T any](p *Pipeline[T], count int) (*Pipeline[T], error) {
	if p == nil {
		return nil, errors.InvalidArgument("source")
	}
	if count <= 0 {
		return nil, errors.OutOfRange("count", count, "greater than zero")
	}
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &repeatIter[T]{source: p.create(ctx), left: count - 1}
		},
	}, nil
}

// NestedLoops yields action once for every iteration of a set of nested
// loops with the given counts, outermost first. Ranging over the result and
// calling each action is equivalent to writing the loops by hand. No counts
// or a zero count yields nothing. A negative count is OUT_OF_RANGE and a nil
// action with a non-zero total is INVALID_ARGUMENT.
func NestedLoops(action func(), loopCounts ...int) (*Pipeline[func()], error) {
	total := 0
	for k, n := range loopCounts {
		if err := validation.NonNegative(fmt.Sprintf("loopCounts[%d]", k), n); err != nil {
			return nil, err
		}
		if k == 0 {
			total = n
		} else {
			total *= n
		}
	}
	if action == nil && total > 0 {
		return nil, errors.InvalidArgument("action")
	}
	return &Pipeline[func()]{
		create: func(_ context.Context) Iterator[func()] {
			return &repeatValueIter[func()]{value: action, left: total}
		},
	}, nil
}

type repeatIter[T any] struct {
	source    Iterator[T]
	buf       []T
	left      int
	pos       int
	replaying bool
	closed    bool
}

func (it *repeatIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.replaying {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			it.buf = append(it.buf, val)
			return val, true, nil
		}
		it.replaying = true
		if err := it.closeSource(); err != nil {
			var zero T
			return zero, false, err
		}
	}
	if len(it.buf) == 0 {
		var zero T
		return zero, false, nil
	}
	for it.left > 0 {
		if it.pos < len(it.buf) {
			val := it.buf[it.pos]
			it.pos++
			return val, true, nil
		}
		it.pos = 0
		it.left--
	}
	var zero T
	return zero, false, nil
}

func (it *repeatIter[T]) closeSource() error {
	if it.closed {
		return nil
	}
	it.closed = true
	return it.source.Close()
}

func (it *repeatIter[T]) Close() error { return it.closeSource() }

type repeatValueIter[T any] struct {
	value T
	left  int
}

func (it *repeatValueIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.left <= 0 {
		var zero T
		return zero, false, nil
	}
	it.left--
	return it.value, true, nil
}

func (it *repeatValueIter[T]) Close() error { return nil }

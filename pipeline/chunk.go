package pipeline

import (
	"context"

	"github.com/kbukum/extkit/errors"
)

// Chunk groups consecutive values into slices of size. The last slice holds
// whatever is left and may be shorter. Each slice is freshly allocated.
func Chunk[T any](p *Pipeline[T], size int) (*Pipeline[[]T], error) {
	if p == nil {
		return nil, errors.InvalidArgument("source")
	}
	if size <= 0 {
		return nil, errors.OutOfRange("size", size, "greater than zero")
	}
	return &Pipeline[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &chunkIter[T]{source: p.create(ctx), size: size}
		},
	}, nil
}

// ChunkMap is Chunk followed by a projection of every chunk.
func ChunkMap[T, O any](p *Pipeline[T], size int, fn func([]T) O) (*Pipeline[O], error) {
	if fn == nil {
		return nil, errors.InvalidArgument("fn")
	}
	chunks, err := Chunk(p, size)
	if err != nil {
		return nil, err
	}
	return Map(chunks, func(_ context.Context, c []T) (O, error) { return fn(c), nil }), nil
}

// ChunkStream groups consecutive values like Chunk without buffering them:
// every chunk is an Iterator that reads from the shared source as it is
// pulled. A chunk is only valid until the next one is requested; whatever
// it left unread is skipped then, so chunk boundaries never move. Closing
// a chunk is a no-op, the source belongs to the outer iterator.
func ChunkStream[T any](p *Pipeline[T], size int) (*Pipeline[Iterator[T]], error) {
	if p == nil {
		return nil, errors.InvalidArgument("source")
	}
	if size <= 0 {
		return nil, errors.OutOfRange("size", size, "greater than zero")
	}
	return &Pipeline[Iterator[T]]{
		create: func(ctx context.Context) Iterator[Iterator[T]] {
			return &chunkStreamIter[T]{stage: stage[T]{source: p.create(ctx)}, size: size}
		},
	}, nil
}

type chunkIter[T any] struct {
	source Iterator[T]
	size   int
	done   bool
	err    error
}

func (it *chunkIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.done {
		return nil, false, it.err
	}

	chunk := make([]T, 0, it.size)
	for len(chunk) < it.size {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			it.done, it.err = true, err
			if len(chunk) > 0 {
				// Deliver the partial chunk; the error surfaces on the next call.
				return chunk, true, nil
			}
			return nil, false, err
		}
		if !ok {
			it.done = true
			if len(chunk) > 0 {
				return chunk, true, nil
			}
			return nil, false, nil
		}
		chunk = append(chunk, val)
	}
	return chunk, true, nil
}

func (it *chunkIter[T]) Close() error { return it.source.Close() }

type chunkStreamIter[T any] struct {
	stage[T]
	size    int
	current *streamedChunk[T]
}

func (it *chunkStreamIter[T]) Next(ctx context.Context) (Iterator[T], bool, error) {
	if c := it.current; c != nil {
		it.current = nil
		for c.left > 0 {
			if _, ok, err := it.pull(ctx); !ok {
				if err != nil {
					return nil, false, err
				}
				break
			}
			c.left--
		}
		c.stale = true
	}
	head, ok, err := it.pull(ctx)
	if !ok {
		return nil, false, err
	}
	it.current = &streamedChunk[T]{owner: it, head: head, pending: true, left: it.size - 1}
	return it.current, true, nil
}

type streamedChunk[T any] struct {
	owner   *chunkStreamIter[T]
	head    T
	pending bool
	left    int
	stale   bool
}

func (c *streamedChunk[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if c.stale {
		return zero, false, nil
	}
	if c.pending {
		c.pending = false
		return c.head, true, nil
	}
	if c.left <= 0 {
		return zero, false, nil
	}
	v, ok, err := c.owner.pull(ctx)
	if !ok {
		c.left = 0
		return zero, false, err
	}
	c.left--
	return v, true, nil
}

func (c *streamedChunk[T]) Close() error { return nil }

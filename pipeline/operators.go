package pipeline

import "context"

// Map transforms each value using fn. An error from fn ends the session.
func Map[I, O any](p *Pipeline[I], fn func(context.Context, I) (O, error)) *Pipeline[O] {
	return through(p, func(ctx context.Context, v I) (O, bool, error) {
		out, err := fn(ctx, v)
		return out, true, err
	})
}

// Filter keeps only values for which keep reports true.
func Filter[T any](p *Pipeline[T], keep func(T) bool) *Pipeline[T] {
	return through(p, func(_ context.Context, v T) (T, bool, error) {
		return v, keep(v), nil
	})
}

// Tap calls fn for each value and passes the value on unchanged.
func Tap[T any](p *Pipeline[T], fn func(context.Context, T) error) *Pipeline[T] {
	return through(p, func(ctx context.Context, v T) (T, bool, error) {
		return v, true, fn(ctx, v)
	})
}

// TapEach calls fns[k] with element k of every slice and passes the slice on
// unchanged. It pairs with a zip whose combiner returns the aligned values,
// giving each input its own observer. Extra elements or extra fns are
// ignored.
func TapEach[T any](p *Pipeline[[]T], fns ...func(context.Context, T) error) *Pipeline[[]T] {
	return Tap(p, func(ctx context.Context, vals []T) error {
		for k, v := range vals[:min(len(vals), len(fns))] {
			if err := fns[k](ctx, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// FlatMap expands each value into an iterator and yields the values of every
// expansion in turn. Each expansion is closed before the next value is
// expanded. A nil iterator counts as empty.
func FlatMap[I, O any](p *Pipeline[I], expand func(context.Context, I) (Iterator[O], error)) *Pipeline[O] {
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &flatMapIter[I, O]{stage: stage[I]{source: p.create(ctx)}, expand: expand}
		},
	}
}

// Reduce folds every value into acc, starting from init, and yields the
// final accumulator as its only value. An empty source yields init.
func Reduce[T, R any](p *Pipeline[T], init R, fold func(R, T) R) *Pipeline[R] {
	return &Pipeline[R]{
		create: func(ctx context.Context) Iterator[R] {
			return &reduceIter[T, R]{stage: stage[T]{source: p.create(ctx)}, acc: init, fold: fold}
		},
	}
}

// Concat yields every value of each pipeline in order. An input is opened
// when the previous one is exhausted, so a failing input leaves the later
// ones untouched.
func Concat[T any](pipelines ...*Pipeline[T]) *Pipeline[T] {
	parts := append([]*Pipeline[T](nil), pipelines...)
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &concatIter[T]{parts: parts}
		},
	}
}

// Take yields at most the first n values and closes the source as soon as
// the n-th value has been delivered. n <= 0 yields nothing.
func Take[T any](p *Pipeline[T], n int) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &takeIter[T]{stage: stage[T]{source: p.create(ctx)}, left: n}
		},
	}
}

// Prepend yields head followed by every value of p.
func Prepend[T any](p *Pipeline[T], head T) *Pipeline[T] {
	return Concat(Just(head), p)
}

// Append yields every value of p followed by tail.
func Append[T any](p *Pipeline[T], tail T) *Pipeline[T] {
	return Concat(p, Just(tail))
}

// Identity returns v unchanged. Handy as a Map or ZipWith projection.
func Identity[T any](v T) T { return v }

// stage is the session state of a single-source operator. The first error
// or the end of the source finishes the stage: the source is released once
// and every later pull repeats the outcome.
type stage[T any] struct {
	source   Iterator[T]
	finished bool
	released bool
	err      error
}

func (s *stage[T]) pull(ctx context.Context) (T, bool, error) {
	if s.finished {
		var zero T
		return zero, false, s.err
	}
	v, ok, err := s.source.Next(ctx)
	if err != nil || !ok {
		return v, false, s.finish(err)
	}
	return v, true, nil
}

// finish records err as the outcome and releases the source. A release
// failure is reported only when the stage otherwise ended cleanly.
func (s *stage[T]) finish(err error) error {
	s.finished = true
	if closeErr := s.release(); err == nil {
		err = closeErr
	}
	s.err = err
	return err
}

func (s *stage[T]) release() error {
	if s.released {
		return nil
	}
	s.released = true
	return s.source.Close()
}

func (s *stage[T]) Close() error {
	s.finished = true
	return s.release()
}

// step handles one source value: it returns the value to emit, whether to
// emit it, and an error that ends the session.
type step[I, O any] func(context.Context, I) (O, bool, error)

func through[I, O any](p *Pipeline[I], fn step[I, O]) *Pipeline[O] {
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &stepIter[I, O]{stage: stage[I]{source: p.create(ctx)}, step: fn}
		},
	}
}

type stepIter[I, O any] struct {
	stage[I]
	step step[I, O]
}

func (it *stepIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	for {
		v, ok, err := it.pull(ctx)
		if !ok {
			return zero, false, err
		}
		out, emit, err := it.step(ctx, v)
		if err != nil {
			return zero, false, it.finish(err)
		}
		if emit {
			return out, true, nil
		}
	}
}

type flatMapIter[I, O any] struct {
	stage[I]
	expand func(context.Context, I) (Iterator[O], error)
	inner  Iterator[O]
}

func (it *flatMapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	for !it.finished {
		if it.inner != nil {
			v, ok, err := it.inner.Next(ctx)
			if ok && err == nil {
				return v, true, nil
			}
			if closeErr := it.closeInner(); err == nil {
				err = closeErr
			}
			if err != nil {
				return zero, false, it.finish(err)
			}
		}
		v, ok, err := it.pull(ctx)
		if !ok {
			return zero, false, err
		}
		if it.inner, err = it.expand(ctx, v); err != nil {
			return zero, false, it.finish(err)
		}
	}
	return zero, false, it.err
}

func (it *flatMapIter[I, O]) closeInner() error {
	inner := it.inner
	it.inner = nil
	if inner == nil {
		return nil
	}
	return inner.Close()
}

func (it *flatMapIter[I, O]) Close() error {
	innerErr := it.closeInner()
	if err := it.stage.Close(); err != nil {
		return err
	}
	return innerErr
}

type reduceIter[T, R any] struct {
	stage[T]
	acc  R
	fold func(R, T) R
}

func (it *reduceIter[T, R]) Next(ctx context.Context) (R, bool, error) {
	var zero R
	if it.finished {
		return zero, false, it.err
	}
	for {
		v, ok, err := it.pull(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			return it.acc, true, nil
		}
		it.acc = it.fold(it.acc, v)
	}
}

type takeIter[T any] struct {
	stage[T]
	left int
}

func (it *takeIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.left <= 0 {
		var zero T
		if it.finished {
			return zero, false, it.err
		}
		return zero, false, it.finish(nil)
	}
	v, ok, err := it.pull(ctx)
	if ok {
		it.left--
	}
	return v, ok, err
}

type concatIter[T any] struct {
	parts    []*Pipeline[T]
	next     int
	cur      *stage[T]
	finished bool
	err      error
}

func (it *concatIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	for !it.finished {
		if it.cur == nil {
			if it.next == len(it.parts) {
				it.finished = true
				break
			}
			it.cur = &stage[T]{source: it.parts[it.next].create(ctx)}
			it.next++
		}
		v, ok, err := it.cur.pull(ctx)
		if ok {
			return v, true, nil
		}
		it.cur = nil
		if err != nil {
			it.finished, it.err = true, err
		}
	}
	return zero, false, it.err
}

func (it *concatIter[T]) Close() error {
	it.finished = true
	if it.cur == nil {
		return nil
	}
	cur := it.cur
	it.cur = nil
	return cur.Close()
}

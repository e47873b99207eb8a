package pipeline

import "context"

// Tails yields every non-empty suffix of the source, longest first:
// [A B C] gives [A B C], [B C], [C]. The source is read fully on the first
// pull. Suffixes share one backing array and must not be appended to.
func Tails[T any](p *Pipeline[T]) *Pipeline[[]T] {
	return &Pipeline[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &tailsIter[T]{source: p.create(ctx)}
		},
	}
}

// Permutations yields every ordering of items. Orderings follow the
// positions in items lexicographically, so [1 2 3] starts with [1 2 3],
// [1 3 2], [2 1 3]. An empty input has exactly one, empty, permutation.
// Every yielded slice is freshly allocated.
func Permutations[T any](items []T) *Pipeline[[]T] {
	src := append([]T(nil), items...)
	return &Pipeline[[]T]{
		create: func(_ context.Context) Iterator[[]T] {
			return &permIter[T]{items: src}
		},
	}
}

type tailsIter[T any] struct {
	source Iterator[T]
	buf    []T
	loaded bool
	pos    int
}

func (it *tailsIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if !it.loaded {
		for {
			val, ok, err := it.source.Next(ctx)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				break
			}
			it.buf = append(it.buf, val)
		}
		it.loaded = true
	}
	if it.pos >= len(it.buf) {
		return nil, false, nil
	}
	tail := it.buf[it.pos:len(it.buf):len(it.buf)]
	it.pos++
	return tail, true, nil
}

func (it *tailsIter[T]) Close() error { return it.source.Close() }

type permIter[T any] struct {
	items   []T
	idx     []int
	started bool
	done    bool
}

func (it *permIter[T]) Next(_ context.Context) (result []T, ok bool, err error) {
	if it.done {
		return nil, false, nil
	}
	if !it.started {
		it.started = true
		it.idx = make([]int, len(it.items))
		for i := range it.idx {
			it.idx[i] = i
		}
	} else if !nextPermutation(it.idx) {
		it.done = true
		return nil, false, nil
	}
	out := make([]T, len(it.idx))
	for i, j := range it.idx {
		out[i] = it.items[j]
	}
	return out, true, nil
}

func (it *permIter[T]) Close() error { return nil }

// nextPermutation advances idx to its lexicographic successor in place and
// reports false when idx is already the last permutation.
func nextPermutation(idx []int) bool {
	i := len(idx) - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(idx) - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]
	for l, r := i+1, len(idx)-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}
	return true
}

package pipeline

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/extkit/errors"
)

// rows is the shape a two-input pad zip produces: the second input ran out
// after the first position.
var rows = [][]string{{"a1", "b1"}, {"a2", ""}, {"", ""}, {"a4", ""}}

func joinRow(_ context.Context, row []string) (string, error) {
	return strings.Join(row, "\t"), nil
}

func TestCollect_Sessions(t *testing.T) {
	p := FromSlice(rows)
	for session := range 2 {
		got, err := Collect(context.Background(), p)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(rows, got); diff != "" {
			t.Errorf("session %d mismatch (-want +got):\n%s", session, diff)
		}
	}

	shared := From[string](&sliceIter[string]{items: []string{"only once"}})
	first, _ := Collect(context.Background(), shared)
	second, _ := Collect(context.Background(), shared)
	if len(first) != 1 || len(second) != 0 {
		t.Errorf("expected a shared iterator to be consumed once, got %v then %v", first, second)
	}
}

func TestMap(t *testing.T) {
	got, err := Collect(context.Background(), Map(FromSlice(rows), joinRow))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a1\tb1", "a2\t", "\t", "a4\t"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMap_ErrorEndsSession(t *testing.T) {
	src := &countingIter[[]string]{items: [][]string{{"a1", "b1"}, {"a2"}, {"a3", "b3"}}}
	p := Map(From[[]string](src), func(ctx context.Context, row []string) (string, error) {
		if len(row) != 2 {
			return "", errors.InvalidInput("row", "expected 2 slots")
		}
		return joinRow(ctx, row)
	})

	ctx := context.Background()
	it := p.Iter(ctx)
	if v, ok, err := it.Next(ctx); err != nil || !ok || v != "a1\tb1" {
		t.Fatalf("first row: v=%q ok=%v err=%v", v, ok, err)
	}
	for pull := range 2 {
		if _, ok, err := it.Next(ctx); ok || !errors.HasCode(err, errors.ErrCodeInvalidInput) {
			t.Errorf("pull %d after the failure: expected INVALID_INPUT, got ok=%v err=%v", pull, ok, err)
		}
	}
	if src.pulls != 2 {
		t.Errorf("expected no pulls after the failure, got %d", src.pulls)
	}
	if src.closes != 1 {
		t.Errorf("expected the source released by the failure, got %d closes", src.closes)
	}
	if err := it.Close(); err != nil {
		t.Fatal(err)
	}
	if src.closes != 1 {
		t.Errorf("expected Close after the failure not to release again, got %d closes", src.closes)
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		keep func([]string) bool
		want [][]string
	}{
		{
			name: "drop blank rows",
			keep: func(row []string) bool { return strings.Join(row, "") != "" },
			want: [][]string{{"a1", "b1"}, {"a2", ""}, {"a4", ""}},
		},
		{
			name: "complete rows only",
			keep: func(row []string) bool { return row[0] != "" && row[1] != "" },
			want: [][]string{{"a1", "b1"}},
		},
		{
			name: "nothing kept",
			keep: func([]string) bool { return false },
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Collect(context.Background(), Filter(FromSlice(rows), tt.keep))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTap(t *testing.T) {
	var seen []string
	p := Tap(Map(FromSlice(rows), joinRow), func(_ context.Context, s string) error {
		seen = append(seen, s)
		if s == "\t" {
			return errors.InvalidInput("row", "blank")
		}
		return nil
	})
	got, err := Collect(context.Background(), p)
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT from the observer, got %v", err)
	}
	if diff := cmp.Diff([]string{"a1\tb1", "a2\t"}, got); diff != "" {
		t.Errorf("values before the failure (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a1\tb1", "a2\t", "\t"}, seen); diff != "" {
		t.Errorf("observed values (-want +got):\n%s", diff)
	}
}

func TestTapEach(t *testing.T) {
	blank := func(counts []int, k int) func(context.Context, string) error {
		return func(_ context.Context, s string) error {
			if s == "" {
				counts[k]++
			}
			return nil
		}
	}

	tests := []struct {
		name string
		fns  int
		want []int
	}{
		{"one observer per slot", 2, []int{1, 3}},
		{"fewer observers than slots", 1, []int{1}},
		{"extra observers are ignored", 3, []int{1, 3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := make([]int, tt.fns)
			fns := make([]func(context.Context, string) error, tt.fns)
			for k := range fns {
				fns[k] = blank(counts, k)
			}
			got, err := Collect(context.Background(), TapEach(FromSlice(rows), fns...))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(rows, got); diff != "" {
				t.Errorf("rows should pass through unchanged (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.want, counts); diff != "" {
				t.Errorf("blank counts (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlatMap(t *testing.T) {
	chunks, err := ChunkStream(Just("r0", "r1", "r2"), 2)
	if err != nil {
		t.Fatal(err)
	}
	grouped := FlatMap(chunks, func(ctx context.Context, c Iterator[string]) (Iterator[string], error) {
		return Append(From(c), "--").Iter(ctx), nil
	})
	got, err := Collect(context.Background(), grouped)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"r0", "r1", "--", "r2", "--"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatMap_EmptyExpansions(t *testing.T) {
	p := FlatMap(FromSlice(rows), func(_ context.Context, row []string) (Iterator[string], error) {
		if row[0] == "" {
			return nil, nil
		}
		var filled []string
		for _, s := range row {
			if s != "" {
				filled = append(filled, s)
			}
		}
		return &sliceIter[string]{items: filled}, nil
	})
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a1", "b1", "a2", "a4"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatMap_ExpansionFailure(t *testing.T) {
	boom := stderrors.New("boom")
	src := &countingIter[int]{items: []int{1, 2, 3}}
	var expansions []*countingIter[string]
	p := FlatMap(From[int](src), func(_ context.Context, n int) (Iterator[string], error) {
		in := &countingIter[string]{items: []string{"r" + strings.Repeat("+", n)}}
		if n == 2 {
			in.failAt, in.err = 1, boom
		}
		expansions = append(expansions, in)
		return in, nil
	})

	got, err := Collect(context.Background(), p)
	if !stderrors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if diff := cmp.Diff([]string{"r+", "r++"}, got); diff != "" {
		t.Errorf("values before the failure (-want +got):\n%s", diff)
	}
	if len(expansions) != 2 {
		t.Fatalf("expected no expansion after the failure, got %d", len(expansions))
	}
	for k, in := range expansions {
		if in.closes != 1 {
			t.Errorf("expansion %d: expected 1 close, got %d", k, in.closes)
		}
	}
	if src.closes != 1 {
		t.Errorf("expected source closed once, got %d", src.closes)
	}
}

func TestReduce(t *testing.T) {
	widest := func(w int, row []string) int { return max(w, len(strings.Join(row, ","))) }

	tests := []struct {
		name string
		src  [][]string
		init int
		want int
	}{
		{"widest row", rows, 0, 5},
		{"empty source yields init", nil, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			it := Reduce(FromSlice(tt.src), tt.init, widest).Iter(ctx)
			defer it.Close()

			got, ok, err := it.Next(ctx)
			if err != nil || !ok || got != tt.want {
				t.Fatalf("expected %d, got %d (ok=%v err=%v)", tt.want, got, ok, err)
			}
			if _, ok, err := it.Next(ctx); ok || err != nil {
				t.Errorf("expected a single value, got ok=%v err=%v", ok, err)
			}
		})
	}
}

func TestReduce_Error(t *testing.T) {
	boom := stderrors.New("boom")
	src := &countingIter[int]{items: []int{1, 2}, failAt: 1, err: boom}
	got, err := Collect(context.Background(), Reduce(From[int](src), 0, func(n, v int) int { return n + v }))
	if !stderrors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no partial accumulator, got %v", got)
	}
}

func TestConcat(t *testing.T) {
	opened := 0
	late := FromFunc(func(context.Context) Iterator[string] {
		opened++
		return &sliceIter[string]{items: []string{"late"}}
	})

	got, err := Collect(context.Background(), Concat(Just("a", "b"), Empty[string](), late))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "late"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if opened != 1 {
		t.Errorf("expected the last input opened once, got %d", opened)
	}

	t.Run("failure leaves later inputs unopened", func(t *testing.T) {
		opened = 0
		boom := stderrors.New("boom")
		failing := &countingIter[string]{items: []string{"a"}, failAt: 1, err: boom}
		got, err := Collect(context.Background(), Concat(From[string](failing), late))
		if !stderrors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if diff := cmp.Diff([]string{"a"}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
		if opened != 0 {
			t.Errorf("expected the later input never opened, got %d", opened)
		}
		if failing.closes != 1 {
			t.Errorf("expected the failing input closed once, got %d", failing.closes)
		}
	})

	t.Run("close failure of a clean input", func(t *testing.T) {
		closeErr := stderrors.New("close")
		src := &countingIter[string]{items: []string{"a"}, closeErr: closeErr}
		_, err := Collect(context.Background(), Concat(From[string](src), Just("b")))
		if !stderrors.Is(err, closeErr) {
			t.Errorf("expected the close failure, got %v", err)
		}
	})
}

func TestDrain_SinkError(t *testing.T) {
	src := &countingIter[[]string]{items: rows}
	var written []string
	err := Drain(Map(From[[]string](src), joinRow), func(_ context.Context, s string) error {
		if len(written) == 2 {
			return errors.Unavailable("stdout", nil)
		}
		written = append(written, s)
		return nil
	}).Run(context.Background())
	if !errors.HasCode(err, errors.ErrCodeUnavailable) {
		t.Fatalf("expected UNAVAILABLE, got %v", err)
	}
	if diff := cmp.Diff([]string{"a1\tb1", "a2\t"}, written); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if src.closes != 1 {
		t.Errorf("expected source closed once, got %d", src.closes)
	}
}

func TestIter(t *testing.T) {
	ctx := context.Background()
	it := Take(FromSlice(rows), 1).Iter(ctx)
	defer it.Close()

	if row, ok, err := it.Next(ctx); err != nil || !ok || row[0] != "a1" {
		t.Errorf("first Next: row=%v ok=%v err=%v", row, ok, err)
	}
	if _, ok, err := it.Next(ctx); err != nil || ok {
		t.Errorf("second Next should be exhausted: ok=%v err=%v", ok, err)
	}
}

func TestChained_ZipRows(t *testing.T) {
	zipped, err := ZipLongest(Identity[[]string], Just("a1", "", "a3"), Just("b1"))
	if err != nil {
		t.Fatal(err)
	}
	padded := 0
	ignore := func(context.Context, string) error { return nil }
	counted := TapEach(zipped, ignore, func(_ context.Context, s string) error {
		if s == "" {
			padded++
		}
		return nil
	})
	lines := Map(Filter(counted, func(row []string) bool { return row[0] != "" }), joinRow)
	total := Reduce(lines, 0, func(n int, s string) int { return n + len(s) })

	got, err := Collect(context.Background(), total)
	if err != nil {
		t.Fatal(err)
	}
	// "a1\tb1" and "a3\t"
	if diff := cmp.Diff([]int{8}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if padded != 2 {
		t.Errorf("expected 2 padded slots seen before filtering, got %d", padded)
	}
}

// countingIter serves items and records every pull and close. When err is
// set, the pull at zero-based position failAt returns it. Close returns
// closeErr.
type countingIter[T any] struct {
	items    []T
	failAt   int
	err      error
	closeErr error
	pos      int
	pulls    int
	closes   int
}

func (it *countingIter[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	it.pulls++
	if it.err != nil && it.pos == it.failAt {
		return zero, false, it.err
	}
	if it.pos >= len(it.items) {
		return zero, false, nil
	}
	v := it.items[it.pos]
	it.pos++
	return v, true, nil
}

func (it *countingIter[T]) Close() error {
	it.closes++
	return it.closeErr
}

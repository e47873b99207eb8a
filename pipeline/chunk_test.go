package pipeline

import (
	"context"
	stderrors "errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/extkit/errors"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		size  int
		want  [][]int
	}{
		{"last shorter", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"exact multiple", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"size one", []int{1, 2}, 1, [][]int{{1}, {2}}},
		{"size larger than source", []int{1, 2}, 5, [][]int{{1, 2}}},
		{"empty", nil, 3, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Chunk(FromSlice(tc.items), tc.size)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Collect(context.Background(), p)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Chunk mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChunk_InvalidArguments(t *testing.T) {
	if _, err := Chunk(Just(1), 0); !errors.HasCode(err, errors.ErrCodeOutOfRange) {
		t.Errorf("expected OUT_OF_RANGE for size 0, got %v", err)
	}
	if _, err := Chunk(Just(1), -3); !errors.HasCode(err, errors.ErrCodeOutOfRange) {
		t.Errorf("expected OUT_OF_RANGE for negative size, got %v", err)
	}
	if _, err := Chunk[int](nil, 2); !errors.HasCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT for nil source, got %v", err)
	}
}

func TestChunk_ErrorAfterPartial(t *testing.T) {
	boom := stderrors.New("boom")
	src := &countingIter[int]{items: []int{1, 2, 3}, failAt: 3, err: boom}
	p, err := Chunk(From[int](src), 2)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Collect(context.Background(), p)
	if !stderrors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if diff := cmp.Diff([][]int{{1, 2}, {3}}, got); diff != "" {
		t.Errorf("partial chunk lost (-want +got):\n%s", diff)
	}
}

func TestChunkMap(t *testing.T) {
	p, err := ChunkMap(Just(1, 2, 3, 4, 5), 2, func(c []int) int {
		sum := 0
		for _, v := range c {
			sum += v
		}
		return sum
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{3, 7, 5}) {
		t.Errorf("got %v, want [3 7 5]", got)
	}

	if _, err := ChunkMap[int, int](Just(1), 2, nil); !errors.HasCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT for nil fn, got %v", err)
	}
}

func TestChunkStream(t *testing.T) {
	p, err := ChunkStream(Just("r0", "r1", "r2", "r3", "r4"), 2)
	if err != nil {
		t.Fatal(err)
	}
	chunks, err := Collect(context.Background(), Map(p, func(ctx context.Context, c Iterator[string]) ([]string, error) {
		return Collect(ctx, From(c))
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"r0", "r1"}, {"r2", "r3"}, {"r4"}}
	if diff := cmp.Diff(want, chunks); diff != "" {
		t.Errorf("ChunkStream mismatch (-want +got):\n%s", diff)
	}
}

func TestChunkStream_PullsOnDemand(t *testing.T) {
	src := &countingIter[int]{items: []int{1, 2, 3, 4, 5, 6}}
	p, err := ChunkStream(From[int](src), 3)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	outer := p.Iter(ctx)

	first, ok, err := outer.Next(ctx)
	if err != nil || !ok {
		t.Fatalf("first chunk: ok=%v err=%v", ok, err)
	}
	if src.pulls != 1 {
		t.Errorf("expected only the chunk head pulled, got %d pulls", src.pulls)
	}
	if v, _, _ := first.Next(ctx); v != 1 {
		t.Errorf("expected 1, got %d", v)
	}

	// Requesting the next chunk skips what the first one left unread.
	second, ok, err := outer.Next(ctx)
	if err != nil || !ok {
		t.Fatalf("second chunk: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := first.Next(ctx); ok {
		t.Error("expected the first chunk to be stale once the second was requested")
	}
	got, err := Collect(ctx, From(second))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{4, 5, 6}, got); diff != "" {
		t.Errorf("second chunk mismatch (-want +got):\n%s", diff)
	}

	if _, ok, err := outer.Next(ctx); ok || err != nil {
		t.Errorf("expected the end of chunks, got ok=%v err=%v", ok, err)
	}
	if err := outer.Close(); err != nil {
		t.Fatal(err)
	}
	if src.closes != 1 {
		t.Errorf("expected source closed once, got %d", src.closes)
	}
}

func TestChunkStream_Error(t *testing.T) {
	boom := stderrors.New("boom")
	src := &countingIter[int]{items: []int{1, 2, 3}, failAt: 2, err: boom}
	p, err := ChunkStream(From[int](src), 2)
	if err != nil {
		t.Fatal(err)
	}
	var seen []int
	err = ForEach(context.Background(), p, func(ctx context.Context, c Iterator[int]) error {
		vals, err := Collect(ctx, From(c))
		seen = append(seen, vals...)
		return err
	})
	if !stderrors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if diff := cmp.Diff([]int{1, 2}, seen); diff != "" {
		t.Errorf("values before the failure (-want +got):\n%s", diff)
	}
}

func TestChunkStream_InvalidArguments(t *testing.T) {
	if _, err := ChunkStream(Just(1), 0); !errors.HasCode(err, errors.ErrCodeOutOfRange) {
		t.Errorf("expected OUT_OF_RANGE for size 0, got %v", err)
	}
	if _, err := ChunkStream[int](nil, 2); !errors.HasCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT for nil source, got %v", err)
	}
}

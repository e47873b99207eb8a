package pipeline_test

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kbukum/extkit/pipeline"
)

func ExampleZipLongestIndexed() {
	letters := pipeline.Just("A", "B", "C", "D")
	digits := pipeline.Just("1", "2", "3")
	zipped, err := pipeline.ZipLongestIndexed(func(v []string, i int) string {
		return v[0] + v[1] + strconv.Itoa(i)
	}, letters, digits)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, _ := pipeline.Collect(context.Background(), zipped)
	fmt.Println(out)
	// Output: [A10 B21 C32 D3]
}

func ExampleZipEven() {
	zipped, _ := pipeline.Zip2(pipeline.Fail, pipeline.Just("A", "B", "C"), pipeline.Just(1, 2),
		func(s string, n, _ int) string { return s + strconv.Itoa(n) })
	out, err := pipeline.Collect(context.Background(), zipped)
	fmt.Println(out)
	fmt.Println(err)
	// Output:
	// [A1 B2]
	// INVALID_OPERATION: sequences were not all the same length
}

func ExampleChunk() {
	chunks, _ := pipeline.Chunk(pipeline.Just(1, 2, 3, 4, 5), 2)
	out, _ := pipeline.Collect(context.Background(), chunks)
	fmt.Println(out)
	// Output: [[1 2] [3 4] [5]]
}

func ExampleValues() {
	evens := pipeline.Take(pipeline.Generate(0, func(n int) int { return n + 2 }), 4)
	for v, err := range pipeline.Values(context.Background(), evens) {
		if err != nil {
			break
		}
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 0 2 4 6
}

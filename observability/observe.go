package observability

import (
	"context"

	"github.com/kbukum/extkit/pipeline"
)

// Observe counts the elements of p through a Tap stage and records a
// failed session once. A nil m returns p unchanged.
func Observe[T any](p *pipeline.Pipeline[T], m *PipelineMetrics, stage string) *pipeline.Pipeline[T] {
	if m == nil || p == nil {
		return p
	}
	counted := pipeline.Tap(p, func(ctx context.Context, _ T) error {
		m.RecordElement(ctx, stage)
		return nil
	})
	return pipeline.FromFunc(func(ctx context.Context) pipeline.Iterator[T] {
		return &observedIter[T]{source: counted.Iter(ctx), metrics: m, stage: stage}
	})
}

type observedIter[T any] struct {
	source   pipeline.Iterator[T]
	metrics  *PipelineMetrics
	stage    string
	recorded bool
}

func (it *observedIter[T]) Next(ctx context.Context) (T, bool, error) {
	v, ok, err := it.source.Next(ctx)
	if err != nil && !it.recorded {
		it.recorded = true
		it.metrics.RecordError(ctx, it.stage, err)
	}
	return v, ok, err
}

func (it *observedIter[T]) Close() error { return it.source.Close() }

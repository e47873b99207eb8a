package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/extkit/errors"
)

// Command tracks one CLI command: its span, start time and metrics.
type Command struct {
	Name      string
	StartTime time.Time
	Metrics   *PipelineMetrics
	span      trace.Span
}

type commandContextKey struct{}

// StartCommand starts the command span and stores the Command in the
// returned context. If metrics is nil, metric recording is skipped.
func StartCommand(ctx context.Context, name string, metrics *PipelineMetrics) (context.Context, *Command) {
	ctx, span := StartSpan(ctx, SpanCommand, trace.WithAttributes(
		attribute.String(AttrCommand, name),
	))
	cmd := &Command{
		Name:      name,
		StartTime: time.Now(),
		Metrics:   metrics,
		span:      span,
	}
	return context.WithValue(ctx, commandContextKey{}, cmd), cmd
}

// CommandFromContext retrieves the Command from context, or nil.
func CommandFromContext(ctx context.Context) *Command {
	if c, ok := ctx.Value(commandContextKey{}).(*Command); ok {
		return c
	}
	return nil
}

// End finishes the span and records the command duration. It returns the
// recorded status: "ok", the ErrorCode kind of an AppError, or "error".
func (c *Command) End(ctx context.Context, err error) string {
	duration := c.Duration()
	status := "ok"

	if err != nil {
		status = "error"
		if appErr, ok := errors.AsAppError(err); ok {
			status = appErr.Code.Kind()
			c.span.SetAttributes(attribute.String(AttrErrorCode, string(appErr.Code)))
		}
		c.span.RecordError(err)
		c.span.SetStatus(codes.Error, err.Error())
		c.span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}

	c.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	c.span.End()

	if c.Metrics != nil {
		c.Metrics.RecordCommand(ctx, c.Name, status, duration)
	}
	return status
}

// Duration returns the elapsed time since the command started.
func (c *Command) Duration() time.Duration {
	return time.Since(c.StartTime)
}

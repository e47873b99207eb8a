// Package observability wires OpenTelemetry tracing and metrics into the
// extkit CLI.
//
// Setup:
//
//	tel, err := observability.Init(ctx, observability.Config{Enabled: true, Endpoint: "localhost:4318"})
//	defer tel.Shutdown(ctx)
//
// Commands:
//
//	ctx, cmd := observability.StartCommand(ctx, "zip", tel.Metrics)
//	defer cmd.End(ctx, err)
//
// Pipelines:
//
//	zipped = observability.Observe(zipped, tel.Metrics, "zip")
package observability

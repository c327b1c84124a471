// Package observability instruments sequences with OpenTelemetry metrics
// and zerolog tracing.
//
// Metrics:
//
//	provider, reader := observability.NewManualProvider("nextpost", version.Get().Short())
//	m, err := observability.NewSeqMetrics(provider.Meter("nextpost"))
//	counted := observability.Instrument(entries, m, "posts.entries")
//	...
//	observability.WriteSummary(ctx, os.Stdout, reader)
//
// Tracing:
//
//	traced := observability.Trace(entries, logger.WithComponent("posts"), "posts.entries")
//
// Both wrappers are themselves sequences: every enumeration of the wrapped
// value gets its own counting or logging enumerator, so a wrapped sequence
// stays re-traversable.
package observability

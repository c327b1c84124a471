package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/DavidRaab/website-sub000/seq"
)

const (
	// MetricEnumerations counts enumerators created from an instrumented sequence.
	MetricEnumerations = "seq.enumerations"
	// MetricPulls counts elements produced by an instrumented sequence.
	MetricPulls = "seq.pulls"
	// MetricCompletions counts enumerators that reached the end.
	MetricCompletions = "seq.completions"

	// AttrSeqName labels every measurement with the instrumented sequence.
	AttrSeqName = "seq.name"
)

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// SeqMetrics holds the counters recorded by Instrument.
type SeqMetrics struct {
	enumerations metric.Int64Counter
	pulls        metric.Int64Counter
	completions  metric.Int64Counter
}

// NewSeqMetrics creates the sequence counters on the given meter.
func NewSeqMetrics(meter metric.Meter) (*SeqMetrics, error) {
	enumerations, err := meter.Int64Counter(MetricEnumerations,
		metric.WithDescription("Number of enumerators created"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricEnumerations, err)
	}

	pulls, err := meter.Int64Counter(MetricPulls,
		metric.WithDescription("Number of elements pulled"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricPulls, err)
	}

	completions, err := meter.Int64Counter(MetricCompletions,
		metric.WithDescription("Number of enumerators that reached the end"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricCompletions, err)
	}

	return &SeqMetrics{
		enumerations: enumerations,
		pulls:        pulls,
		completions:  completions,
	}, nil
}

// Instrument returns a sequence yielding the same elements as s while
// recording enumerations, pulls and completions on m. A nil m returns s
// unchanged.
func Instrument[T any](s seq.Seq[T], m *SeqMetrics, name string) seq.Seq[T] {
	if m == nil {
		return s
	}
	attrs := metric.WithAttributes(attribute.String(AttrSeqName, name))
	return seq.FromFunc(func() seq.Enumerator[T] {
		m.enumerations.Add(context.Background(), 1, attrs)
		return &meteredEnum[T]{src: s.Enumerate(), m: m, attrs: attrs}
	})
}

type meteredEnum[T any] struct {
	src   seq.Enumerator[T]
	m     *SeqMetrics
	attrs metric.MeasurementOption
	done  bool
}

func (e *meteredEnum[T]) Next() (T, bool) {
	if e.done {
		var zero T
		return zero, false
	}
	v, ok := e.src.Next()
	if !ok {
		e.done = true
		e.m.completions.Add(context.Background(), 1, e.attrs)
		return v, false
	}
	e.m.pulls.Add(context.Background(), 1, e.attrs)
	return v, true
}

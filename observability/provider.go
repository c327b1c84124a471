package observability

import (
	"context"
	"fmt"
	"io"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"
)

// NewManualProvider creates a meter provider whose measurements are read on
// demand through the returned reader. Nothing is exported over the network.
func NewManualProvider(serviceName, serviceVersion string) (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	return mp, reader
}

// Sample is one counter data point.
type Sample struct {
	Metric string
	Seq    string
	Value  int64
}

// Collect reads all Int64 sum data points from reader, sorted by metric
// and sequence name.
func Collect(ctx context.Context, reader sdkmetric.Reader) ([]Sample, error) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collecting metrics: %w", err)
	}

	var samples []Sample
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				name, _ := dp.Attributes.Value(AttrSeqName)
				samples = append(samples, Sample{Metric: m.Name, Seq: name.AsString(), Value: dp.Value})
			}
		}
	}
	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Metric != samples[j].Metric {
			return samples[i].Metric < samples[j].Metric
		}
		return samples[i].Seq < samples[j].Seq
	})
	return samples, nil
}

// WriteSummary collects reader and writes one "metric{seq.name=...} value"
// line per data point.
func WriteSummary(ctx context.Context, w io.Writer, reader sdkmetric.Reader) error {
	samples, err := Collect(ctx, reader)
	if err != nil {
		return err
	}
	for _, s := range samples {
		if _, err := fmt.Fprintf(w, "%s{%s=%q} %d\n", s.Metric, AttrSeqName, s.Seq, s.Value); err != nil {
			return err
		}
	}
	return nil
}

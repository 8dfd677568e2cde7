package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter records provider metrics with OpenTelemetry and exposes them in Prometheus format
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *promclient.Registry

	meter              metric.Meter
	invocations        metric.Int64Counter
	invocationDuration metric.Float64Histogram
	requests           metric.Int64Counter
	requestDuration    metric.Float64Histogram
}

// NewOTelExporter creates an exporter writing into registry
// A nil registry gets a fresh one so several exporters can live in one process
func NewOTelExporter(registry *promclient.Registry) (*OTelExporter, error) {
	if registry == nil {
		registry = promclient.NewRegistry()
	}

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	meter := meterProvider.Meter(
		"webhookconfig-repository",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.invocations, err = oe.meter.Int64Counter(
		"provider.invocations",
		metric.WithDescription("Number of lifecycle invocations by action and outcome"),
		metric.WithUnit("{invocations}"),
	)
	if err != nil {
		return fmt.Errorf("creating invocations counter: %w", err)
	}

	oe.invocationDuration, err = oe.meter.Float64Histogram(
		"provider.invocation.duration",
		metric.WithDescription("Duration of lifecycle invocations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("creating invocation duration histogram: %w", err)
	}

	oe.requests, err = oe.meter.Int64Counter(
		"bitbucket.requests",
		metric.WithDescription("Number of requests sent to the Bitbucket API"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return fmt.Errorf("creating requests counter: %w", err)
	}

	oe.requestDuration, err = oe.meter.Float64Histogram(
		"bitbucket.request.duration",
		metric.WithDescription("Duration of requests sent to the Bitbucket API"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("creating request duration histogram: %w", err)
	}

	return nil
}

// RecordInvocation implements Recorder
func (oe *OTelExporter) RecordInvocation(ctx context.Context, action, status, errorCode string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("action", action),
		attribute.String("status", status),
		attribute.String("error_code", errorCode),
	)
	oe.invocations.Add(ctx, 1, attrs)
	oe.invocationDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("action", action),
	))
}

// RecordRequest implements Recorder
func (oe *OTelExporter) RecordRequest(ctx context.Context, method string, statusCode int, elapsed time.Duration) {
	oe.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.status_code", strconv.Itoa(statusCode)),
	))
	oe.requestDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("http.method", method),
	))
}

// ServeHTTP returns a handler serving the exporter's registry in Prometheus format
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}

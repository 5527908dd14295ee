package monitoring

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/veilscan/veilscan/internal/config"
	"github.com/veilscan/veilscan/pkg/constants"
)

// TracingManager owns the tracer provider lifecycle. When tracing is
// disabled it hands out no-op tracers and Shutdown is a no-op.
type TracingManager struct {
	provider *sdktrace.TracerProvider
	enabled  bool
}

// NewTracingManager sets up the Jaeger exporter and installs the global
// tracer provider and propagator.
func NewTracingManager(cfg *config.TracingConfig) (*TracingManager, error) {
	if !cfg.Enabled {
		return &TracingManager{}, nil
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.JaegerEndpoint)))
	if err != nil {
		return nil, fmt.Errorf("create jaeger exporter: %w", err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = constants.ServiceName
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			attribute.String("service.component", "risk-engine"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create tracing resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(cfg.SamplingRate)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &TracingManager{provider: provider, enabled: true}, nil
}

// Tracer returns a named tracer from the installed provider.
func (tm *TracingManager) Tracer(name string) trace.Tracer {
	if !tm.enabled {
		return noop.NewTracerProvider().Tracer(name)
	}
	return tm.provider.Tracer(name)
}

// Shutdown flushes pending spans.
func (tm *TracingManager) Shutdown(ctx context.Context) error {
	if !tm.enabled {
		return nil
	}
	return tm.provider.Shutdown(ctx)
}

package observability

import (
	"context"
	"time"

	"github.com/annel0/voxelcore/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// ShutdownFunc останавливает провайдер трассировки
type ShutdownFunc func(context.Context) error

// Options описывает подключение трассировки
type Options struct {
	Enabled     bool
	ServiceName string
	WorldID     string
	// Exporter подменяет OTLP экспортер (используется в тестах)
	Exporter trace.SpanExporter
}

// InitTelemetry настраивает OTLP экспортер и устанавливает глобальный TracerProvider.
// Если трассировка выключена, остаётся no-op провайдер otel, а shutdown ничего не делает.
func InitTelemetry(ctx context.Context, opts Options) (ShutdownFunc, error) {
	if !opts.Enabled {
		logging.Debug("📡 OpenTelemetry выключен")
		return func(context.Context) error { return nil }, nil
	}

	exp := opts.Exporter
	if exp == nil {
		// OTLP HTTP экспортер (по умолчанию localhost:4318)
		var err error
		exp, err = otlptracehttp.New(ctx)
		if err != nil {
			return nil, err
		}
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(opts.ServiceName),
			semconv.ServiceInstanceID(opts.WorldID),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	logging.Info("📡 OpenTelemetry инициализирован (service=%s, world=%s)", opts.ServiceName, opts.WorldID)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}
	return shutdown, nil
}

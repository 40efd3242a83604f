// Package telemetry configures OpenTelemetry trace export for the bitonic
// command. Library code never calls it: it only opens spans through the
// spans package, which stays silent until a tracer is put in the context.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amp-labs/bitonic/envutil"
	"github.com/amp-labs/bitonic/logger"
	"github.com/amp-labs/bitonic/spans"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	defaultServiceName    = "bitonic"
	defaultServiceVersion = "1.0.0"
	defaultTimeout        = 5 * time.Second
	instrumentationName   = "github.com/amp-labs/bitonic"
)

var (
	mu             sync.Mutex               //nolint:gochecknoglobals
	tracerProvider *sdktrace.TracerProvider //nolint:gochecknoglobals
	loggerProvider *sdklog.LoggerProvider   //nolint:gochecknoglobals
)

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	Enabled        bool
	Timeout        time.Duration

	// LogsEnabled also forwards slog records to LogsEndpoint.
	LogsEnabled  bool
	LogsEndpoint string
}

// LoadConfigFromEnv loads OpenTelemetry configuration from environment variables:
//
//	OTEL_ENABLED                        turn exporting on (default false)
//	OTEL_SERVICE_NAME                   defaults to the logging subsystem, then "bitonic"
//	OTEL_SERVICE_VERSION                default 1.0.0
//	OTEL_EXPORTER_OTLP_TRACES_ENDPOINT  collector URL, e.g. http://localhost:4318
//	OTEL_EXPORTER_OTLP_TRACES_TIMEOUT   export timeout (default 5s)
//	OTEL_LOGS_ENABLED                   forward logs as well (default false)
//	OTEL_EXPORTER_OTLP_LOGS_ENDPOINT    defaults to the traces endpoint
func LoadConfigFromEnv(ctx context.Context, runningEnv string) (*Config, error) {
	enabled, err := envutil.Bool(ctx, "OTEL_ENABLED", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	serviceName := logger.GetSubsystem(ctx)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	svcName, err := envutil.String(ctx, "OTEL_SERVICE_NAME", envutil.Default(serviceName)).Value()
	if err != nil {
		return nil, err
	}

	svcVersion, err := envutil.String(ctx, "OTEL_SERVICE_VERSION",
		envutil.Default(defaultServiceVersion)).
		Value()
	if err != nil {
		return nil, err
	}

	endpoint, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT",
		envutil.Default("")).
		Value()
	if err != nil {
		return nil, err
	}

	timeout, err := envutil.Duration(ctx, "OTEL_EXPORTER_OTLP_TRACES_TIMEOUT",
		envutil.Default(defaultTimeout)).
		Value()
	if err != nil {
		return nil, err
	}

	logsEnabled, err := envutil.Bool(ctx, "OTEL_LOGS_ENABLED", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	logsEndpoint, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_LOGS_ENDPOINT",
		envutil.Default(endpoint)).
		Value()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName:    svcName,
		ServiceVersion: svcVersion,
		Environment:    runningEnv,
		Endpoint:       endpoint,
		Enabled:        enabled,
		Timeout:        timeout,
		LogsEnabled:    logsEnabled,
		LogsEndpoint:   logsEndpoint,
	}, nil
}

// Initialize sets up OpenTelemetry tracing with the given configuration and
// returns a context carrying a tracer for the spans package. When tracing is
// disabled or has no endpoint, ctx is returned unchanged.
func Initialize(ctx context.Context, config *Config) (context.Context, error) {
	log := logger.Get(ctx)

	if !config.Enabled {
		log.Debug("OpenTelemetry tracing is disabled")

		return ctx, nil
	}

	if config.Endpoint == "" {
		log.Warn("OpenTelemetry endpoint not configured, tracing will be disabled")

		return ctx, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
			semconv.DeploymentEnvironmentKey.String(config.Environment),
		),
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(config.Endpoint),
		otlptracehttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	mu.Lock()
	tracerProvider = provider
	mu.Unlock()

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if config.LogsEnabled && config.LogsEndpoint != "" {
		if err := initializeLogs(ctx, config, res); err != nil {
			return ctx, err
		}
	}

	log.Info("OpenTelemetry tracing initialized",
		slog.String("service", config.ServiceName),
		slog.String("version", config.ServiceVersion),
		slog.String("environment", config.Environment),
		slog.String("endpoint", config.Endpoint),
	)

	return spans.WithTracer(ctx, provider.Tracer(instrumentationName)), nil
}

// initializeLogs exports slog records over OTLP next to the local output.
func initializeLogs(ctx context.Context, config *Config, res *resource.Resource) error {
	exporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpointURL(config.LogsEndpoint),
		otlploghttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	mu.Lock()
	loggerProvider = provider
	mu.Unlock()

	logger.Tee(otelslog.NewHandler(instrumentationName, otelslog.WithLoggerProvider(provider)))

	return nil
}

// Shutdown flushes pending spans and log records and shuts down the
// providers. It is a no-op when Initialize never installed any.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	traces, logs := tracerProvider, loggerProvider
	tracerProvider, loggerProvider = nil, nil
	mu.Unlock()

	var errs []error

	if traces != nil {
		logger.Get(ctx).Debug("Shutting down OpenTelemetry tracer provider")

		errs = append(errs, traces.Shutdown(ctx))
	}

	if logs != nil {
		errs = append(errs, logs.Shutdown(ctx))
	}

	return errors.Join(errs...)
}

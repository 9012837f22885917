package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"role-explorer/pkg/config"
	"role-explorer/pkg/version"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// TelemetryConfig controls logging and OpenTelemetry export
type TelemetryConfig struct {
	EnableTelemetry  bool
	ServiceName      string
	OTLPEndpoint     string
	LogLevel         string
	EnablePrettyLogs bool
	Environment      string
	Output           io.Writer
}

// TelemetryManager owns the default slog logger and the OpenTelemetry providers
type TelemetryManager struct {
	config        TelemetryConfig
	shutdownFuncs []func(context.Context) error
	logger        *slog.Logger
}

// ConfigFromEnv reads the telemetry settings from the environment
func ConfigFromEnv() TelemetryConfig {
	return TelemetryConfig{
		EnableTelemetry:  config.IsTelemetryEnabled(),
		ServiceName:      config.GetServiceName(),
		OTLPEndpoint:     config.GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
		LogLevel:         config.GetEnv("LOG_LEVEL", "info"),
		EnablePrettyLogs: config.GetBoolEnv("ENABLE_PRETTY_LOGS", false),
		Environment:      config.GetEnv("APP_ENV", "development"),
		Output:           os.Stdout,
	}
}

// NewTelemetryManager creates a manager configured from the environment
func NewTelemetryManager() *TelemetryManager {
	return NewTelemetryManagerWithConfig(ConfigFromEnv())
}

// NewTelemetryManagerWithConfig creates a manager from an explicit configuration
func NewTelemetryManagerWithConfig(cfg TelemetryConfig) *TelemetryManager {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return &TelemetryManager{config: cfg}
}

// Initialize installs the default logger and, when enabled, the OTLP exporters
func (tm *TelemetryManager) Initialize(ctx context.Context) error {
	// Setup structured logging first (always needed)
	tm.setupLogger()

	if !tm.config.EnableTelemetry {
		slog.Debug("Telemetry disabled", slog.String("service", tm.config.ServiceName))
		return nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(tm.config.ServiceName),
			semconv.ServiceVersionKey.String(version.Version),
			semconv.DeploymentEnvironmentKey.String(tm.config.Environment),
		),
	)
	if err != nil {
		return err
	}

	if err := tm.initTracing(ctx, res); err != nil {
		slog.Warn("Failed to initialize tracing", "error", err)
	}
	if err := tm.initLogging(ctx, res); err != nil {
		slog.Warn("Failed to initialize OpenTelemetry logging", "error", err)
	}

	slog.Info("Telemetry initialized",
		slog.String("service", tm.config.ServiceName),
		slog.String("endpoint", tm.config.OTLPEndpoint),
		slog.String("log_level", tm.config.LogLevel),
	)
	return nil
}

func (tm *TelemetryManager) initTracing(ctx context.Context, res *resource.Resource) error {
	traceExporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(tm.config.OTLPEndpoint),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithURLPath("/v1/traces"),
	)
	if err != nil {
		return err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	tm.shutdownFuncs = append(tm.shutdownFuncs, tp.Shutdown)
	return nil
}

func (tm *TelemetryManager) initLogging(ctx context.Context, res *resource.Resource) error {
	logExporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpointURL(tm.config.OTLPEndpoint),
		otlploghttp.WithInsecure(),
		otlploghttp.WithURLPath("/v1/logs"),
	)
	if err != nil {
		return err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)

	global.SetLoggerProvider(lp)
	tm.shutdownFuncs = append(tm.shutdownFuncs, lp.Shutdown)
	return nil
}

func (tm *TelemetryManager) setupLogger() {
	opts := &slog.HandlerOptions{Level: ParseLevel(tm.config.LogLevel)}

	var handler slog.Handler
	if tm.config.EnablePrettyLogs {
		handler = slog.NewTextHandler(tm.config.Output, opts)
	} else {
		handler = slog.NewJSONHandler(tm.config.Output, opts)
	}

	// Only wrap with OTel handler if telemetry is enabled
	if tm.config.EnableTelemetry {
		handler = NewOTelHandler(handler, tm.config.ServiceName)
	}

	tm.logger = slog.New(handler).With(slog.String("service", tm.config.ServiceName))
	slog.SetDefault(tm.logger)
}

// Shutdown flushes and stops the exporters
func (tm *TelemetryManager) Shutdown(ctx context.Context) error {
	for _, shutdown := range tm.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error shutting down telemetry component", "error", err)
		}
	}
	tm.shutdownFuncs = nil
	return nil
}

// Logger returns the configured logger
func (tm *TelemetryManager) Logger() *slog.Logger {
	return tm.logger
}

// ParseLevel maps a LOG_LEVEL value to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

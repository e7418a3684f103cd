package opentelemetry

import "time"

const (
	ExporterOTLP       = "otlp"
	ExporterStdout     = "stdout"
	ExporterPrometheus = "prometheus"
)

type Config struct {
	Enabled        bool              `mapstructure:"enabled" default:"false"`
	ServiceName    string            `mapstructure:"service_name" default:"engagement"`
	ServiceVersion string            `mapstructure:"service_version"`
	Labels         map[string]string `mapstructure:"labels"`
	// Exporter is used for traces and metrics. With "prometheus" metrics are
	// served by MetricsHandler and traces are not exported.
	Exporter string `mapstructure:"exporter" default:"stdout" validate:"omitempty,oneof=otlp stdout prometheus"`
	OTLP     struct {
		Headers  map[string]string `mapstructure:"headers"`
		Endpoint string            `mapstructure:"endpoint" default:"127.0.0.1:4317"`
	} `mapstructure:"otlp"`
	SamplingFraction float64       `mapstructure:"sampling_fraction" default:"1"`
	MetricInterval   time.Duration `mapstructure:"metric_interval" default:"15s"`
}

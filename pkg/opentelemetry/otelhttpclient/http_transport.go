package otelhttpclient

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "engagement.httpclient"

// HTTPTransport traces outgoing requests and records their latency per
// client name.
type HTTPTransport struct {
	name     string
	next     http.RoundTripper
	duration metric.Float64Histogram
}

func NewHTTPTransport(next http.RoundTripper, name string) *HTTPTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	duration, _ := otel.Meter(meterName).Float64Histogram(
		"http_client_request_duration_ms",
		metric.WithDescription("Latency of outgoing HTTP requests"),
		metric.WithUnit("ms"),
	)
	return &HTTPTransport{
		name:     name,
		next:     otelhttp.NewTransport(next),
		duration: duration,
	}
}

func (t *HTTPTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	attrs := []attribute.KeyValue{
		attribute.String("client", t.name),
		attribute.String("method", req.Method),
		attribute.String("host", req.URL.Host),
	}
	if resp != nil {
		attrs = append(attrs, attribute.Int("status_code", resp.StatusCode))
	}
	if t.duration != nil {
		t.duration.Record(req.Context(), float64(time.Since(start).Milliseconds()), metric.WithAttributes(attrs...))
	}
	return resp, err
}

package otelhttpclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Dafi-web/events-sub000/pkg/opentelemetry/otelhttpclient"
)

func withManualReader(t *testing.T) *sdkmetric.ManualReader {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(previous) })
	return reader
}

func findDuration(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.Histogram[float64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "http_client_request_duration_ms" {
				h, ok := m.Data.(metricdata.Histogram[float64])
				require.True(t, ok)
				return &h
			}
		}
	}
	return nil
}

func TestNew(t *testing.T) {
	t.Run("should not mutate the given client", func(t *testing.T) {
		original := &http.Client{Timeout: 3 * time.Second}

		client := otelhttpclient.New("webhook", original)

		assert.Nil(t, original.Transport)
		assert.Equal(t, 3*time.Second, client.Timeout)
		assert.IsType(t, &otelhttpclient.HTTPTransport{}, client.Transport)
	})

	t.Run("should accept a nil client", func(t *testing.T) {
		client := otelhttpclient.New("webhook", nil)

		assert.IsType(t, &otelhttpclient.HTTPTransport{}, client.Transport)
	})
}

func TestHTTPTransport_RoundTrip(t *testing.T) {
	t.Run("should record the request duration with its status code", func(t *testing.T) {
		reader := withManualReader(t)
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))
		defer ts.Close()
		tr := otelhttpclient.NewHTTPTransport(http.DefaultTransport, "webhook")

		req, err := http.NewRequest(http.MethodPost, ts.URL, nil)
		require.NoError(t, err)
		resp, err := tr.RoundTrip(req)

		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)

		h := findDuration(t, reader)
		require.NotNil(t, h)
		require.Len(t, h.DataPoints, 1)
		assert.Equal(t, uint64(1), h.DataPoints[0].Count)
		client, _ := h.DataPoints[0].Attributes.Value("client")
		assert.Equal(t, "webhook", client.AsString())
		status, _ := h.DataPoints[0].Attributes.Value("status_code")
		assert.Equal(t, int64(http.StatusAccepted), status.AsInt64())
	})

	t.Run("should return transport errors", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := ts.URL
		ts.Close()
		tr := otelhttpclient.NewHTTPTransport(nil, "webhook")

		req, err := http.NewRequest(http.MethodGet, url, nil)
		require.NoError(t, err)
		resp, err := tr.RoundTrip(req)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

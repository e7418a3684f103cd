package http

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryableTransport retries requests that failed at the transport level or
// got a 502, 503 or 504, backing off exponentially between attempts.
type RetryableTransport struct {
	Transport  http.RoundTripper
	RetryCount int
	// BaseDelay is the wait before the first retry. Defaults to one second.
	BaseDelay time.Duration
}

func (t *RetryableTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading body: %w", err)
		}
		req.Body.Close()
	}

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	var resp *http.Response
	var err error
	retries := -1
	for (retries == -1 || shouldRetry(err, resp)) && retries < t.RetryCount {
		if retries > -1 {
			drainBody(resp)
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(t.backoff(retries)):
			}
		}

		if req.Body != nil {
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
		resp, err = transport.RoundTrip(req)

		retries++
	}

	return resp, err
}

func (t *RetryableTransport) backoff(retries int) time.Duration {
	base := t.BaseDelay
	if base <= 0 {
		base = time.Second
	}
	return backoff(retries, base)
}

func backoff(retries int, base time.Duration) time.Duration {
	return time.Duration(math.Pow(2, float64(retries))) * base
}

func shouldRetry(err error, resp *http.Response) bool {
	if err != nil {
		return true
	}

	return resp.StatusCode == http.StatusBadGateway ||
		resp.StatusCode == http.StatusServiceUnavailable ||
		resp.StatusCode == http.StatusGatewayTimeout
}

func drainBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}

package http

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHttpClientCreator struct {
	mock.Mock
}

func (m *MockHttpClientCreator) GetHttpClientForGoogleOAuth2(ctx context.Context, creds []byte) (*http.Client, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Client), args.Error(1)
}

func (m *MockHttpClientCreator) GetHttpClientForGoogleIdToken(ctx context.Context, creds []byte, audience string) (*http.Client, error) {
	args := m.Called(ctx, creds, audience)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Client), args.Error(1)
}

type capturedRequest struct {
	method string
	query  string
	header http.Header
	body   string
}

func newCaptureServer(t *testing.T) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured.method = r.Method
		captured.query = r.URL.RawQuery
		captured.header = r.Header.Clone()
		captured.body = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func TestSend(t *testing.T) {
	t.Run("posts payload with api key in query", func(t *testing.T) {
		server, captured := newCaptureServer(t)
		client, err := NewHTTPClient(&HTTPClientConfig{
			URL: server.URL,
			Auth: &HTTPAuthConfig{
				Type:  "api_key",
				In:    "query",
				Key:   "test_key",
				Value: "test_value",
			},
		}, nil)
		require.NoError(t, err)

		resp, err := client.Send(context.Background(), []byte(`{"message":"hi"}`))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, http.MethodPost, captured.method)
		assert.Equal(t, "test_key=test_value", captured.query)
		assert.Equal(t, `{"message":"hi"}`, captured.body)
		assert.Equal(t, "application/json", captured.header.Get("Content-Type"))
	})

	t.Run("sets headers and api key header", func(t *testing.T) {
		server, captured := newCaptureServer(t)
		client, err := NewHTTPClient(&HTTPClientConfig{
			URL:     server.URL,
			Headers: map[string]string{"X-Source": "engagement"},
			Auth:    &HTTPAuthConfig{Type: "api_key", In: "header", Key: "X-Api-Key", Value: "secret"},
		}, nil)
		require.NoError(t, err)

		_, err = client.Send(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "engagement", captured.header.Get("X-Source"))
		assert.Equal(t, "secret", captured.header.Get("X-Api-Key"))
		assert.Empty(t, captured.body)
	})

	t.Run("uses basic and bearer auth", func(t *testing.T) {
		server, captured := newCaptureServer(t)

		client, err := NewHTTPClient(&HTTPClientConfig{
			URL:  server.URL,
			Auth: &HTTPAuthConfig{Type: "basic", Username: "user", Password: "pass"},
		}, nil)
		require.NoError(t, err)
		_, err = client.Send(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("user:pass")), captured.header.Get("Authorization"))

		client, err = NewHTTPClient(&HTTPClientConfig{
			URL:  server.URL,
			Auth: &HTTPAuthConfig{Type: "bearer", Token: "abc"},
		}, nil)
		require.NoError(t, err)
		_, err = client.Send(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer abc", captured.header.Get("Authorization"))
	})
}

func TestNewHTTPClient(t *testing.T) {
	t.Run("should validate config", func(t *testing.T) {
		_, err := NewHTTPClient(&HTTPClientConfig{URL: "not a url"}, nil)
		assert.Error(t, err)

		_, err = NewHTTPClient(&HTTPClientConfig{URL: "https://example.com", Auth: &HTTPAuthConfig{Type: "basic"}}, nil)
		assert.Error(t, err)
	})

	t.Run("should apply defaults", func(t *testing.T) {
		config := &HTTPClientConfig{URL: "https://example.com"}

		_, err := NewHTTPClient(config, nil)

		require.NoError(t, err)
		assert.Equal(t, "POST", config.Method)
		assert.Equal(t, 3, config.RetryCount)
	})
}

func TestNewHTTPClient_GoogleOAuth2(t *testing.T) {
	credsJSON := `{"type":"service_account"}`
	encodedCreds := base64.StdEncoding.EncodeToString([]byte(credsJSON))
	expectedClient := &http.Client{}

	mockCreator := new(MockHttpClientCreator)
	mockCreator.On("GetHttpClientForGoogleOAuth2", mock.Anything, []byte(credsJSON)).Return(expectedClient, nil)

	client, err := NewHTTPClient(&HTTPClientConfig{
		URL: "https://example.com",
		Auth: &HTTPAuthConfig{
			Type:                  "google_oauth2",
			CredentialsJSONBase64: encodedCreds,
		},
	}, mockCreator)

	assert.NoError(t, err)
	assert.Equal(t, expectedClient, client.httpClient)
	mockCreator.AssertExpectations(t)
}

func TestNewHTTPClient_GoogleOAuth2WithEmptyCredentialJson(t *testing.T) {
	mockCreator := new(MockHttpClientCreator)

	client, err := NewHTTPClient(&HTTPClientConfig{
		URL:  "https://example.com",
		Auth: &HTTPAuthConfig{Type: "google_oauth2"},
	}, mockCreator)

	assert.Error(t, err)
	assert.Nil(t, client)
	mockCreator.AssertExpectations(t)
}

func TestNewHTTPClient_GoogleIdToken(t *testing.T) {
	credsJSON := `{"type":"service_account"}`
	encodedCreds := base64.StdEncoding.EncodeToString([]byte(credsJSON))

	t.Run("success", func(t *testing.T) {
		expectedClient := &http.Client{}
		mockCreator := new(MockHttpClientCreator)
		mockCreator.On("GetHttpClientForGoogleIdToken", mock.Anything, []byte(credsJSON), "audience").Return(expectedClient, nil)

		client, err := NewHTTPClient(&HTTPClientConfig{
			URL: "https://example.com",
			Auth: &HTTPAuthConfig{
				Type:                  "google_idtoken",
				CredentialsJSONBase64: encodedCreds,
				Audience:              "audience",
			},
		}, mockCreator)

		assert.NoError(t, err)
		assert.Equal(t, expectedClient, client.httpClient)
		mockCreator.AssertExpectations(t)
	})

	t.Run("error", func(t *testing.T) {
		mockCreator := new(MockHttpClientCreator)
		mockCreator.On("GetHttpClientForGoogleIdToken", mock.Anything, []byte(credsJSON), "audience").
			Return(nil, fmt.Errorf("error creating http client for google_idtoken"))

		_, err := NewHTTPClient(&HTTPClientConfig{
			URL: "https://example.com",
			Auth: &HTTPAuthConfig{
				Type:                  "google_idtoken",
				CredentialsJSONBase64: encodedCreds,
				Audience:              "audience",
			},
		}, mockCreator)

		assert.EqualError(t, err, "error creating http client for google_idtoken")
	})
}

package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"
	defaults "github.com/mcuadros/go-defaults"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/Dafi-web/events-sub000/pkg/opentelemetry/otelhttpclient"
)

type HTTPAuthConfig struct {
	Type string `mapstructure:"type" json:"type" yaml:"type" validate:"required,oneof=basic api_key bearer google_idtoken google_oauth2"`

	// basic auth
	Username string `mapstructure:"username,omitempty" json:"username,omitempty" yaml:"username,omitempty" validate:"required_if=Type basic"`
	Password string `mapstructure:"password,omitempty" json:"password,omitempty" yaml:"password,omitempty" validate:"required_if=Type basic"`

	// api key
	In    string `mapstructure:"in,omitempty" json:"in,omitempty" yaml:"in,omitempty" validate:"required_if=Type api_key,omitempty,oneof=query header"`
	Key   string `mapstructure:"key,omitempty" json:"key,omitempty" yaml:"key,omitempty" validate:"required_if=Type api_key"`
	Value string `mapstructure:"value,omitempty" json:"value,omitempty" yaml:"value,omitempty" validate:"required_if=Type api_key"`

	// bearer
	Token string `mapstructure:"token,omitempty" json:"token,omitempty" yaml:"token,omitempty" validate:"required_if=Type bearer"`

	// google_idtoken
	Audience string `mapstructure:"audience,omitempty" json:"audience,omitempty" yaml:"audience,omitempty" validate:"required_if=Type google_idtoken"`
	// CredentialsJSONBase64 accept a base64 encoded JSON stringified credentials
	CredentialsJSONBase64 string `mapstructure:"credentials_json_base64,omitempty" json:"credentials_json_base64,omitempty" yaml:"credentials_json_base64,omitempty"`
}

// HTTPClientConfig describes an outgoing endpoint such as a notification
// webhook.
type HTTPClientConfig struct {
	URL        string            `mapstructure:"url" json:"url" yaml:"url" validate:"required,url"`
	Headers    map[string]string `mapstructure:"headers,omitempty" json:"headers,omitempty" yaml:"headers,omitempty"`
	Auth       *HTTPAuthConfig   `mapstructure:"auth,omitempty" json:"auth,omitempty" yaml:"auth,omitempty" validate:"omitempty"`
	Method     string            `mapstructure:"method,omitempty" json:"method,omitempty" yaml:"method,omitempty" default:"POST" validate:"omitempty,oneof=GET POST PUT PATCH"`
	Timeout    time.Duration     `mapstructure:"timeout,omitempty" json:"timeout,omitempty" yaml:"timeout,omitempty" default:"10s"`
	RetryCount int               `mapstructure:"retry_count,omitempty" json:"retry_count,omitempty" yaml:"retry_count,omitempty" default:"3"`
	HTTPClient *http.Client      `mapstructure:"-" json:"-" yaml:"-"`
}

type HTTPClient struct {
	httpClient *http.Client
	config     *HTTPClientConfig
	url        string
}

type HttpClientCreatorStruct struct{}

type HttpClientCreator interface {
	GetHttpClientForGoogleOAuth2(ctx context.Context, creds []byte) (*http.Client, error)
	GetHttpClientForGoogleIdToken(ctx context.Context, creds []byte, audience string) (*http.Client, error)
}

func NewHTTPClient(config *HTTPClientConfig, clientCreator HttpClientCreator) (*HTTPClient, error) {
	defaults.SetDefaults(config)
	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = otelhttpclient.New("WebhookHttpClient", &http.Client{
			Timeout: config.Timeout,
			Transport: &RetryableTransport{
				Transport:  http.DefaultTransport,
				RetryCount: config.RetryCount,
			},
		})
	}

	if config.Auth != nil && (config.Auth.Type == "google_idtoken" || config.Auth.Type == "google_oauth2") {
		if config.Auth.CredentialsJSONBase64 == "" {
			return nil, fmt.Errorf("missing credentials for google_idtoken or google_oauth2 auth")
		}
		creds, err := decodeCredentials(config.Auth.CredentialsJSONBase64)
		if err != nil {
			return nil, err
		}
		if clientCreator == nil {
			clientCreator = &HttpClientCreatorStruct{}
		}

		ctx := context.Background()
		if config.Auth.Type == "google_idtoken" {
			httpClient, err = clientCreator.GetHttpClientForGoogleIdToken(ctx, creds, config.Auth.Audience)
		} else {
			httpClient, err = clientCreator.GetHttpClientForGoogleOAuth2(ctx, creds)
		}
		if err != nil {
			return nil, err
		}
	}

	return &HTTPClient{
		httpClient: httpClient,
		config:     config,
		url:        config.URL,
	}, nil
}

func (c *HTTPClient) URL() string {
	return c.url
}

func (c *HttpClientCreatorStruct) GetHttpClientForGoogleOAuth2(ctx context.Context, creds []byte) (*http.Client, error) {
	credsConfig, err := google.CredentialsFromJSON(ctx, creds, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, credsConfig.TokenSource), nil
}

func (c *HttpClientCreatorStruct) GetHttpClientForGoogleIdToken(ctx context.Context, creds []byte, audience string) (*http.Client, error) {
	ts, err := idtoken.NewTokenSource(ctx, audience, idtoken.WithCredentialsJSON(creds))
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}

func decodeCredentials(encodedCreds string) ([]byte, error) {
	v, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("decoding credentials_json_base64: %w", err)
	}
	return v, nil
}

func (c *HTTPClient) setAuth(req *http.Request) {
	if c.config.Auth == nil {
		return
	}
	switch c.config.Auth.Type {
	case "basic":
		req.SetBasicAuth(c.config.Auth.Username, c.config.Auth.Password)
	case "api_key":
		switch c.config.Auth.In {
		case "query":
			q := req.URL.Query()
			q.Add(c.config.Auth.Key, c.config.Auth.Value)
			req.URL.RawQuery = q.Encode()
		case "header":
			req.Header.Add(c.config.Auth.Key, c.config.Auth.Value)
		}
	case "bearer":
		req.Header.Add("Authorization", "Bearer "+c.config.Auth.Token)
	}
}

// Send calls the configured endpoint with body as JSON payload. A nil body
// sends no payload.
func (c *HTTPClient) Send(ctx context.Context, body []byte) (*http.Response, error) {
	method := c.config.Method
	if method == "" {
		method = http.MethodPost
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	c.setAuth(req)

	return c.httpClient.Do(req)
}

package autosend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL   = "https://api.autosend.com/v1"
	requestTimeout   = 15 * time.Second
	defaultBodyLimit = 1 << 20
)

// HTTPClient abstracts the http.Client Do method so transports can be
// swapped in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option customises client behaviour.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Trailing slashes are stripped.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if strings.TrimSpace(baseURL) != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient overrides the HTTP client used to reach the API. The
// default client enforces the fixed 15 second request timeout; replacements
// own their timeout policy.
func WithHTTPClient(client HTTPClient) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger attaches a zerolog logger. Without it the client stays silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBodyLimit adjusts how many bytes are retained from an API response
// body.
func WithBodyLimit(limit int64) Option {
	return func(c *Client) {
		if limit > 0 {
			c.maxBodyBytes = limit
		}
	}
}

// Client talks to the Autosend API. It holds only immutable state (the
// credential, base URL and transport), so a single instance is safe for
// concurrent use. Resource facades are composed once at construction:
//
//	client, err := autosend.New("YOUR_API_KEY")
//	if err != nil {
//		// handle
//	}
//	resp, err := client.Sending.SendEmail(ctx, autosend.SendEmailParams{...})
type Client struct {
	apiKey       string
	baseURL      string
	httpClient   HTTPClient
	logger       zerolog.Logger
	maxBodyBytes int64

	// Resource facades, set once by New.
	Sending  *Sending
	Contacts *Contacts
}

// New constructs an Autosend API client. The API key must be non-empty;
// surrounding whitespace is trimmed.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ConfigurationError{Message: "API key cannot be empty"}
	}

	c := &Client{
		apiKey:       strings.TrimSpace(apiKey),
		baseURL:      defaultBaseURL,
		httpClient:   &http.Client{Timeout: requestTimeout},
		logger:       zerolog.Nop(),
		maxBodyBytes: defaultBodyLimit,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	c.Sending = &Sending{client: c}
	c.Contacts = &Contacts{client: c}

	return c, nil
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.apiKey,
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		"X-Request-ID":  uuid.NewString(),
	}
}

// do issues a single HTTP request against the API and classifies the
// outcome. A 2xx response with a JSON body decodes into the generic
// structure; non-JSON bodies are returned as raw text.
func (c *Client) do(ctx context.Context, method, endpoint string, body any) (any, error) {
	url := c.baseURL + endpoint

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &RequestError{Message: "encode request body", Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &RequestError{Message: "build request", Err: err}
	}
	for key, value := range c.headers() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Message: "HTTP request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := c.readBody(resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Msg("autosend request completed")

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &AuthenticationError{Message: "invalid or unauthorized API key"}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: raw}
	}

	if raw == "" {
		return nil, nil
	}
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw, nil
	}
	return parsed, nil
}

func (c *Client) readBody(rc io.ReadCloser) (string, error) {
	if rc == nil {
		return "", nil
	}
	limit := c.maxBodyBytes
	if limit <= 0 {
		limit = defaultBodyLimit
	}
	data, err := io.ReadAll(io.LimitReader(rc, limit))
	if err != nil {
		return "", &RequestError{Message: "read response body", Err: err}
	}
	return string(data), nil
}

func (c *Client) get(ctx context.Context, endpoint string) (any, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil)
}

func (c *Client) post(ctx context.Context, endpoint string, body any) (any, error) {
	return c.do(ctx, http.MethodPost, endpoint, body)
}

func (c *Client) delete(ctx context.Context, endpoint string) (any, error) {
	return c.do(ctx, http.MethodDelete, endpoint, nil)
}

// logUnusedKeys emits the advisory line for dynamic-data keys no template
// placeholder consumes.
func (c *Client) logUnusedKeys(endpoint string, unused []string) {
	if len(unused) == 0 {
		return
	}
	c.logger.Warn().
		Str("endpoint", endpoint).
		Strs("unused_keys", unused).
		Msg(fmt.Sprintf("dynamicData contains %d key(s) unused by the template", len(unused)))
}

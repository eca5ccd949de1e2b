// Package client talks to the FlowHigh SQL analysis API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"

	"github.com/leapstack-labs/flowhigh/pkg/submission"
)

const (
	// DefaultBaseURL is the public FlowHigh endpoint.
	DefaultBaseURL = "https://flowhigh.io"
	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = 5 * time.Second
	// DefaultUserAgent identifies this client.
	DefaultUserAgent = "go/flowhigh"
)

// ErrUnavailable is returned when the service answers 204 or times out.
var ErrUnavailable = errors.New("API is not available")

// APIError is returned for responses with a status of 400 or above.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("flowhigh api: %s", e.Status)
	}
	return fmt.Sprintf("flowhigh api: %s: %s", e.Status, e.Body)
}

// Client is a FlowHigh API client. It is safe for concurrent use when its
// Authenticator is.
type Client struct {
	baseURL   string
	http      *http.Client
	auth      Authenticator
	logger    *slog.Logger
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another deployment.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the round trip timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a Client.
func New(auth Authenticator, opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		http:      &http.Client{Timeout: DefaultTimeout},
		auth:      auth,
		logger:    slog.New(slog.DiscardHandler),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request describes one SQL submission.
type Request struct {
	SQL       string
	RealmID   string
	QueryID   string
	QueryName string
}

type processBody struct {
	SQL       string  `json:"sql"`
	RealmID   *string `json:"realmID"`
	QueryID   *string `json:"queryID"`
	QueryName *string `json:"queryName"`
	JSON      bool    `json:"json"`
	XML       bool    `json:"xml"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Process submits SQL for analysis and returns the raw response body.
func (c *Client) Process(ctx context.Context, req Request) ([]byte, error) {
	body := processBody{
		SQL:     req.SQL,
		RealmID: optional(req.RealmID),
		QueryID: optional(req.QueryID),
		JSON:    true,
		XML:     true,
	}
	if req.QueryName != "" {
		body.QueryName = optional(escape(req.QueryName))
	}
	return c.do(ctx, http.MethodPost, "/api/process", body)
}

// Analyze submits SQL and converts the response.
func (c *Client) Analyze(ctx context.Context, req Request) (*submission.Submission, error) {
	data, err := c.Process(ctx, req)
	if err != nil {
		return nil, err
	}
	return submission.Parse(data)
}

// ProcessFile submits the contents of path. A missing ".sql" extension is
// appended. req.SQL is replaced by the file contents.
func (c *Client) ProcessFile(ctx context.Context, path string, req Request) ([]byte, error) {
	path = SQLPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	req.SQL = string(data)
	return c.Process(ctx, req)
}

// SQLPath appends ".sql" to name unless it already ends with it.
func SQLPath(name string) string {
	if strings.HasSuffix(name, ".sql") {
		return name
	}
	return name + ".sql"
}

// RealmQuery is one query stored in a realm.
type RealmQuery struct {
	QueryID   string         `mapstructure:"queryID" json:"queryID"`
	QueryName string         `mapstructure:"queryName" json:"queryName"`
	SQL       string         `mapstructure:"sql" json:"sql"`
	Created   string         `mapstructure:"created" json:"created"`
	Extra     map[string]any `mapstructure:",remain" json:"extra,omitempty"`
}

// RealmQueries lists the queries stored in a realm.
func (c *Client) RealmQueries(ctx context.Context, realmID string) ([]RealmQuery, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/realm?realmID="+url.QueryEscape(realmID), nil)
	if err != nil {
		return nil, err
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding realm queries: %w", err)
	}
	if m, ok := raw.(map[string]any); ok {
		if q, ok := m["queries"]; ok {
			raw = q
		} else {
			raw = []any{m}
		}
	}

	var out []RealmQuery
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding realm queries: %w", err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
	}

	token, err := c.auth.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticating: %w", err)
	}

	resp, err := c.send(ctx, method, path, payload, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		drain(resp)
		c.logger.Debug("token rejected, refreshing", "path", path)
		token, err = c.auth.Refresh(ctx)
		if err != nil {
			return nil, fmt.Errorf("refreshing token: %w", err)
		}
		resp, err = c.send(ctx, method, path, payload, token)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNoContent {
		return nil, ErrUnavailable
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(data)),
		}
	}
	return data, nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, token string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.New().String()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() == nil && isTimeout(err) {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	c.logger.Debug("flowhigh api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start))
	return resp, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// escape percent-encodes everything but unreserved characters.
func escape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9',
			ch == '-', ch == '.', ch == '_', ch == '~':
			b.WriteByte(ch)
		default:
			fmt.Fprintf(&b, "%%%02X", ch)
		}
	}
	return b.String()
}

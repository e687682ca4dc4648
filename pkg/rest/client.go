// Package rest provides the HTTP transport behind the resource engine: an
// authenticated JSON client for Shopify-compatible admin APIs and the
// process-wide connection handle that owns it.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/shopmodel/shopmodel/pkg/resource"
	"github.com/shopmodel/shopmodel/pkg/types"
)

const (
	// AccessTokenHeader carries the OAuth access token in public mode.
	AccessTokenHeader = "X-Shopify-Access-Token"

	// RequestIDHeader carries a per-request UUID for correlation.
	RequestIDHeader = "X-Request-ID"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "shopmodel"

	tracerName = "github.com/shopmodel/shopmodel/pkg/rest"
)

// APIError represents a non-2xx response from the admin API. The resource
// core treats it as opaque and propagates it unchanged.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is the net/http implementation of resource.Caller. It performs no
// retries, backoff, or rate limiting; failures surface directly.
type Client struct {
	conn       types.Connection
	httpClient *http.Client
	logger     *zap.Logger
	tracer     trace.Tracer
	userAgent  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP timeout for the client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the client's structured logger.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTracerProvider sets the tracer provider used for per-call spans.
// The default is the global otel provider.
func WithTracerProvider(tp trace.TracerProvider) ClientOption {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// NewClient creates a client for a validated connection.
func NewClient(conn types.Connection, opts ...ClientOption) (*Client, error) {
	if err := conn.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		conn: conn,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger:    zap.NewNop(),
		tracer:    otel.Tracer(tracerName),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// RestCall implements resource.Caller. GET and DELETE parameters are
// encoded as a query string; POST and PUT parameters become the JSON
// request body.
func (c *Client) RestCall(ctx context.Context, method, path string, params resource.Params) (resource.Payload, error) {
	fullURL := "https://" + c.conn.Shop + "/" + path

	var bodyReader io.Reader
	switch method {
	case http.MethodPost, http.MethodPut:
		encoded, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	default:
		if len(params) > 0 {
			fullURL += "?" + encodeQuery(params)
		}
	}

	ctx, span := c.tracer.Start(ctx, "rest.call", trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, uuid.NewString())
	c.authorize(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &APIError{
			Code:    "connection_error",
			Message: fmt.Sprintf("cannot reach %s: %v", c.conn.Shop, err),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.logger.Debug("rest call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.parseError(resp)
		span.SetStatus(codes.Error, apiErr.Error())
		return nil, apiErr
	}

	// DELETE responses may be empty; the caller discards them anyway.
	if resp.StatusCode == http.StatusNoContent || method == http.MethodDelete {
		return resource.Payload{}, nil
	}

	var body resource.Payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return body, nil
}

// authorize attaches mode-appropriate credentials to a request.
func (c *Client) authorize(req *http.Request) {
	switch c.conn.Mode {
	case types.AuthPrivate:
		req.SetBasicAuth(c.conn.Credentials.APIKey, c.conn.Credentials.Password)
	case types.AuthPublic:
		req.Header.Set(AccessTokenHeader, c.conn.Credentials.Token)
	}
}

// parseError decodes a non-2xx response into an APIError. The admin API's
// error payload is `{"errors": ...}` with a string or object value.
func (c *Client) parseError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Errors any `json:"errors"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Errors != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       "api_error",
			Message:    fmt.Sprintf("server returned status %d: %v", resp.StatusCode, errResp.Errors),
		}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       "unknown_error",
		Message:    fmt.Sprintf("server returned status %d: %s", resp.StatusCode, string(body)),
	}
}

// encodeQuery flattens params into a query string. Values render with
// fmt.Sprint; nested structures are not supported on GET/DELETE calls.
func encodeQuery(params resource.Params) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, fmt.Sprint(v))
	}
	return q.Encode()
}

// Compile-time check.
var _ resource.Caller = (*Client)(nil)

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/beer-client/internal/constants"
	"github.com/fivetwenty-io/beer-client/pkg/beer"
	"github.com/hashicorp/go-retryablehttp"
)

// Client is the HTTP transport used by the resource clients. Every call is a
// single attempt; responses with a 4xx or 5xx status are returned together
// with a *beer.ResponseError.
type Client struct {
	baseURL     string
	httpClient  *retryablehttp.Client
	credentials beer.CredentialProvider
	userAgent   string
	logger      beer.Logger
	debug       bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger beer.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPTimeout bounds a single round trip. Zero disables the limit.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		if transport != nil {
			c.httpClient.HTTPClient.Transport = transport
		}
	}
}

// NewClient creates a new HTTP client for baseURL. credentials may be nil.
func NewClient(baseURL string, credentials beer.CredentialProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  retryClient,
		credentials: credentials,
		userAgent:   constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.debug && client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// noRetry never asks for another attempt. A cancelled context is reported so
// that the caller sees ctx.Err() rather than a transport error.
func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request represents an HTTP request.
type Request struct {
	Method string
	Path   string
	// Query is encoded with url.Values.Encode, which sorts keys. RawQuery,
	// when set, is sent verbatim and takes precedence.
	Query    url.Values
	RawQuery string
	Body     interface{}
	Headers  map[string]string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do executes an HTTP request.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req)

	var rawBody interface{}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		rawBody = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if rawBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.credentials != nil {
		err = c.credentials.Apply(ctx, httpReq.Request)
		if err != nil {
			return nil, fmt.Errorf("applying credentials: %w", err)
		}
	}

	c.logDebug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
	})

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logDebug("HTTP Response", map[string]interface{}{
		"method":   req.Method,
		"url":      fullURL,
		"status":   httpResp.StatusCode,
		"duration": time.Since(start).String(),
	})

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, beer.NewResponseError(req.Method, fullURL, httpResp.StatusCode, body)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

func (c *Client) buildURL(req *Request) string {
	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	fullURL := c.baseURL + path

	switch {
	case req.RawQuery != "":
		fullURL += "?" + req.RawQuery
	case len(req.Query) > 0:
		fullURL += "?" + req.Query.Encode()
	}

	return fullURL
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

// leveledLogger forwards go-retryablehttp's own log lines to a beer.Logger.
type leveledLogger struct {
	logger beer.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}

		fields[key] = keysAndValues[i+1]
	}

	return fields
}

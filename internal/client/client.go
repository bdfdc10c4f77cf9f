package client

import (
	"github.com/fivetwenty-io/beer-client/internal/auth"
	"github.com/fivetwenty-io/beer-client/internal/http"
	"github.com/fivetwenty-io/beer-client/pkg/beer"
)

// Client implements the beer.Client interface.
type Client struct {
	*BeersClient

	baseURL string
}

var _ beer.Client = (*Client)(nil)

// New creates a new beer API client. config.BaseURL is used as given;
// beerclient.New normalises it before calling here.
func New(config *beer.Config) (*Client, error) {
	if config == nil {
		return nil, beer.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, beer.ErrBaseURLRequired
	}

	credentials := createCredentials(config)
	httpClient := http.NewClient(config.BaseURL, credentials, createHTTPClientOptions(config)...)

	return &Client{
		BeersClient: NewBeersClient(httpClient),
		baseURL:     httpClient.BaseURL(),
	}, nil
}

// createCredentials picks the credential provider from config: Credentials,
// then AccessToken, then Username/Password. It returns nil when none is set.
func createCredentials(config *beer.Config) beer.CredentialProvider {
	if config.Credentials != nil {
		return config.Credentials
	}

	if config.AccessToken != "" {
		return auth.NewBearerToken(config.AccessToken)
	}

	if config.Username != "" || config.Password != "" {
		return auth.NewBasicAuth(config.Username, config.Password)
	}

	return nil // No authentication
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *beer.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// BaseURL returns the API base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Beers returns the beers resource client.
func (c *Client) Beers() *BeersClient {
	return c.BeersClient
}

// loggerAdapter adapts beer.Logger to the HTTP client logger.
type loggerAdapter struct {
	logger beer.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

package beerclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/beer-client/internal/client"
	"github.com/fivetwenty-io/beer-client/pkg/beer"
)

// New creates a new beer API client. The base URL has any trailing slash
// removed and gets "https://" when it carries no scheme. config is not
// modified.
func New(config *beer.Config) (beer.Client, error) {
	if config == nil {
		return nil, beer.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, beer.ErrBaseURLRequired
	}

	normalized := *config
	normalized.BaseURL = NormalizeBaseURL(config.BaseURL)

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NormalizeBaseURL trims whitespace and trailing slashes and defaults the
// scheme to https.
func NormalizeBaseURL(baseURL string) string {
	endpoint := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithEndpoint creates a new client with just a base URL (no auth).
func NewWithEndpoint(baseURL string) (beer.Client, error) {
	return New(&beer.Config{
		BaseURL: baseURL,
	})
}

// NewWithToken creates a new client with a base URL and access token.
func NewWithToken(baseURL, token string) (beer.Client, error) {
	return New(&beer.Config{
		BaseURL:     baseURL,
		AccessToken: token,
	})
}

// NewWithPassword creates a new client using HTTP Basic authentication.
func NewWithPassword(baseURL, username, password string) (beer.Client, error) {
	return New(&beer.Config{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
	})
}

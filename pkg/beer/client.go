package beer

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client provides access to the beer endpoints.
//
// Every call is independent. GetByID, List, ListAll and Delete perform one
// round trip; Create and Update perform the mutation followed by a read-back
// and only succeed when both requests succeed. Nothing is retried or cached.
type Client interface {
	PageLister

	GetByID(ctx context.Context, id uuid.UUID) (*Beer, error)
	ListAll(ctx context.Context) (*Page[Beer], error)
	Create(ctx context.Context, beer *Beer) (*Beer, error)
	Update(ctx context.Context, beer *Beer) (*Beer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PageLister fetches a single page of beers.
type PageLister interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Beer], error)
}

// CredentialProvider adds authentication to outgoing requests.
type CredentialProvider interface {
	Apply(ctx context.Context, req *http.Request) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a beer.Client.
//
// # Authentication precedence
//
//  1. Credentials: a custom provider is used as is.
//  2. AccessToken: sent as a static Bearer token.
//  3. Username/Password: sent as HTTP Basic credentials.
//  4. No credentials: requests are sent without authentication.
//
// # Timeouts
//
// Per-request deadlines should be set on the context passed to client
// methods. HTTPTimeout, when set, bounds each individual HTTP round trip.
type Config struct {
	// BaseURL of the API server (e.g. "http://localhost:8080"). beerclient.New
	// trims a trailing slash and adds "https://" if no scheme is present.
	BaseURL string

	// Username and Password for HTTP Basic authentication.
	Username string
	Password string

	// AccessToken, if set, is sent as a Bearer token.
	AccessToken string

	// Credentials overrides Username/Password/AccessToken.
	Credentials CredentialProvider

	// HTTPTimeout bounds a single HTTP round trip. Zero means no limit.
	HTTPTimeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request/response logging when a Logger is provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}

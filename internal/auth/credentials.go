package auth

import (
	"context"
	"errors"
	"net/http"
)

// ErrEmptyToken is returned when a bearer provider has no token to send.
var ErrEmptyToken = errors.New("access token is empty")

// BasicAuth sends HTTP Basic credentials with every request.
type BasicAuth struct {
	Username string
	Password string
}

// NewBasicAuth creates a Basic credential provider.
func NewBasicAuth(username, password string) *BasicAuth {
	return &BasicAuth{Username: username, Password: password}
}

// Apply sets the Authorization header.
func (b *BasicAuth) Apply(_ context.Context, req *http.Request) error {
	req.SetBasicAuth(b.Username, b.Password)

	return nil
}

// BearerToken sends a static access token with every request.
type BearerToken struct {
	Token string
}

// NewBearerToken creates a Bearer credential provider.
func NewBearerToken(token string) *BearerToken {
	return &BearerToken{Token: token}
}

// Apply sets the Authorization header.
func (b *BearerToken) Apply(_ context.Context, req *http.Request) error {
	if b.Token == "" {
		return ErrEmptyToken
	}

	req.Header.Set("Authorization", "Bearer "+b.Token)

	return nil
}

// Func adapts a plain function into a credential provider.
type Func func(ctx context.Context, req *http.Request) error

// Apply calls f.
func (f Func) Apply(ctx context.Context, req *http.Request) error {
	return f(ctx, req)
}

package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIConfigured    = errors.New("no API configured, use 'beer config set api <url>' or 'beer login'")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrNotAuthenticated   = errors.New("not authenticated, use 'beer login' first")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUsernameRequired   = errors.New("username is required")
	ErrInvalidOutputValue = errors.New("invalid output format")
)

// Validation errors.
var (
	ErrInvalidBeerID   = errors.New("invalid beer id")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrNameRequired    = errors.New("--name flag is required")
	ErrStyleRequired   = errors.New("--style flag is required")
	ErrNothingToUpdate = errors.New("no fields to update were given")
)


package beer

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrBaseURLRequired   = errors.New("base URL is required")
	ErrIDRequired        = errors.New("beer id is required")
	ErrBeerRequired      = errors.New("beer is required")
	ErrMissingLocation   = errors.New("create response did not include a Location header")
	ErrUnknownStyle      = errors.New("unknown beer style")
	ErrListerRequired    = errors.New("page lister is required")
	ErrNoMoreItems       = errors.New("no more items")
	ErrMalformedPage     = errors.New("malformed page")
	ErrMissingPageField  = errors.New("missing page field")
	ErrInvalidPageSize   = errors.New("page size must not be less than one")
	ErrInvalidPageNumber = errors.New("page index must not be less than zero")
	ErrPageOverflow      = errors.New("page content exceeds page size")
)

// ResponseError is returned for every response with a 4xx or 5xx status.
// The body is kept verbatim; Title and Detail are filled in when the body is
// a JSON error document.
type ResponseError struct {
	Method     string `json:"method"`
	URL        string `json:"url"`
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Body       []byte `json:"-"`
	Title      string `json:"title,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

// NewResponseError builds a ResponseError and parses the body when possible.
func NewResponseError(method, url string, statusCode int, body []byte) *ResponseError {
	respErr := &ResponseError{
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Body:       body,
	}

	parsed, err := ParseErrorBody(body)
	if err == nil {
		respErr.Title = parsed.Error
		respErr.Detail = parsed.Message
	}

	return respErr
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, e.Status)

	switch {
	case e.Detail != "":
		return msg + ": " + e.Detail
	case e.Title != "":
		return msg + ": " + e.Title
	case len(e.Body) > 0:
		return msg + ": " + string(e.Body)
	default:
		return msg
	}
}

// ErrorBody is the JSON error document produced by the server.
type ErrorBody struct {
	Timestamp string `json:"timestamp,omitempty"`
	Status    int    `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
	Path      string `json:"path,omitempty"`
}

// ParseErrorBody parses an error response body from JSON.
func ParseErrorBody(data []byte) (*ErrorBody, error) {
	var body ErrorBody

	err := json.Unmarshal(data, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error body: %w", err)
	}

	return &body, nil
}

// IsStatus checks if err is a ResponseError with the given status code.
func IsStatus(err error, statusCode int) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == statusCode
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return IsStatus(err, http.StatusForbidden)
}

// PageDecodeError reports why a list response could not be decoded into a Page.
type PageDecodeError struct {
	Field string
	Err   error
}

func (e *PageDecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decoding page: %v", e.Err)
	}

	return fmt.Sprintf("decoding page field %q: %v", e.Field, e.Err)
}

func (e *PageDecodeError) Unwrap() error {
	return e.Err
}

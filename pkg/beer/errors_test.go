package beer_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/beer-client/pkg/beer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponseError(t *testing.T) {
	t.Parallel()

	t.Run("json error body", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"timestamp":"2024-01-01T00:00:00.000+00:00","status":404,"error":"Not Found","message":"beer not found","path":"/api/v1/beer/123"}`)
		respErr := beer.NewResponseError(http.MethodGet, "http://localhost:8080/api/v1/beer/123", http.StatusNotFound, body)

		assert.Equal(t, http.StatusNotFound, respErr.StatusCode)
		assert.Equal(t, "Not Found", respErr.Status)
		assert.Equal(t, "Not Found", respErr.Title)
		assert.Equal(t, "beer not found", respErr.Detail)
		assert.Equal(t, "GET http://localhost:8080/api/v1/beer/123: 404 Not Found: beer not found", respErr.Error())
	})

	t.Run("plain text body", func(t *testing.T) {
		t.Parallel()

		respErr := beer.NewResponseError(http.MethodPost, "http://localhost/api/v1/beer/", http.StatusBadRequest, []byte("bad input"))

		assert.Empty(t, respErr.Title)
		assert.Empty(t, respErr.Detail)
		assert.Equal(t, "POST http://localhost/api/v1/beer/: 400 Bad Request: bad input", respErr.Error())
	})

	t.Run("title only", func(t *testing.T) {
		t.Parallel()

		respErr := beer.NewResponseError(http.MethodPut, "/x", http.StatusConflict, []byte(`{"error":"Conflict"}`))

		assert.Equal(t, "PUT /x: 409 Conflict: Conflict", respErr.Error())
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		respErr := beer.NewResponseError(http.MethodDelete, "/x", http.StatusInternalServerError, nil)

		assert.Equal(t, "DELETE /x: 500 Internal Server Error", respErr.Error())
	})
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("getting beer: %w", beer.NewResponseError(http.MethodGet, "/x", http.StatusNotFound, nil))
	unauthorized := beer.NewResponseError(http.MethodGet, "/x", http.StatusUnauthorized, nil)
	forbidden := beer.NewResponseError(http.MethodGet, "/x", http.StatusForbidden, nil)

	assert.True(t, beer.IsNotFound(notFound))
	assert.False(t, beer.IsUnauthorized(notFound))
	assert.True(t, beer.IsUnauthorized(unauthorized))
	assert.True(t, beer.IsForbidden(forbidden))
	assert.True(t, beer.IsStatus(forbidden, http.StatusForbidden))
	assert.False(t, beer.IsNotFound(beer.ErrIDRequired))
	assert.False(t, beer.IsNotFound(nil))
}

func TestParseErrorBody(t *testing.T) {
	t.Parallel()

	body, err := beer.ParseErrorBody([]byte(`{"status":400,"error":"Bad Request","message":"price must be positive","path":"/api/v1/beer/"}`))
	require.NoError(t, err)
	assert.Equal(t, 400, body.Status)
	assert.Equal(t, "price must be positive", body.Message)
	assert.Equal(t, "/api/v1/beer/", body.Path)

	_, err = beer.ParseErrorBody([]byte("<html>"))
	require.Error(t, err)
}

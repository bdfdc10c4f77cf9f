package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/beer-client/internal/constants"
	"github.com/fivetwenty-io/beer-client/internal/http"
	"github.com/fivetwenty-io/beer-client/pkg/beer"
	"github.com/google/uuid"
)

// BeersClient implements beer.Client against /api/v1/beer/.
type BeersClient struct {
	httpClient *http.Client
}

var _ beer.Client = (*BeersClient)(nil)

// NewBeersClient creates a new beers client.
func NewBeersClient(httpClient *http.Client) *BeersClient {
	return &BeersClient{
		httpClient: httpClient,
	}
}

func beerPath(id uuid.UUID) string {
	return constants.APIPathBeers + id.String()
}

// GetByID implements beer.Client.GetByID.
func (c *BeersClient) GetByID(ctx context.Context, id uuid.UUID) (*beer.Beer, error) {
	if id == uuid.Nil {
		return nil, beer.ErrIDRequired
	}

	return c.get(ctx, &http.Request{Method: "GET", Path: beerPath(id)})
}

// List implements beer.Client.List. Parameters are sent in a fixed order and
// only when set.
func (c *BeersClient) List(ctx context.Context, opts *beer.ListOptions) (*beer.Page[beer.Beer], error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:   "GET",
		Path:     constants.APIPathBeers,
		RawQuery: opts.Encode(),
	})
	if err != nil {
		return nil, fmt.Errorf("listing beers: %w", err)
	}

	page, err := beer.DecodePage[beer.Beer](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing beers list: %w", err)
	}

	return page, nil
}

// ListAll implements beer.Client.ListAll.
func (c *BeersClient) ListAll(ctx context.Context) (*beer.Page[beer.Beer], error) {
	return c.List(ctx, nil)
}

// Create implements beer.Client.Create. The server answers 201 with a
// Location header; the new beer is then read from that location.
func (c *BeersClient) Create(ctx context.Context, newBeer *beer.Beer) (*beer.Beer, error) {
	if newBeer == nil {
		return nil, beer.ErrBeerRequired
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathBeers, newBeer)
	if err != nil {
		return nil, fmt.Errorf("creating beer: %w", err)
	}

	req, err := locationRequest(resp.Headers.Get("Location"))
	if err != nil {
		return nil, fmt.Errorf("creating beer: %w", err)
	}

	return c.get(ctx, req)
}

// Update implements beer.Client.Update. The full record is sent and the
// stored beer is read back afterwards.
func (c *BeersClient) Update(ctx context.Context, updated *beer.Beer) (*beer.Beer, error) {
	if updated == nil {
		return nil, beer.ErrBeerRequired
	}

	if updated.ID == uuid.Nil {
		return nil, beer.ErrIDRequired
	}

	_, err := c.httpClient.Put(ctx, beerPath(updated.ID), updated)
	if err != nil {
		return nil, fmt.Errorf("updating beer: %w", err)
	}

	return c.GetByID(ctx, updated.ID)
}

// Delete implements beer.Client.Delete.
func (c *BeersClient) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return beer.ErrIDRequired
	}

	_, err := c.httpClient.Delete(ctx, beerPath(id))
	if err != nil {
		return fmt.Errorf("deleting beer: %w", err)
	}

	return nil
}

func (c *BeersClient) get(ctx context.Context, req *http.Request) (*beer.Beer, error) {
	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("getting beer: %w", err)
	}

	var result beer.Beer

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing beer: %w", err)
	}

	return &result, nil
}

// locationRequest turns a Location header into a GET against the configured
// base URL. Scheme and host of an absolute Location are dropped.
func locationRequest(location string) (*http.Request, error) {
	if location == "" {
		return nil, beer.ErrMissingLocation
	}

	parsed, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parsing location %q: %w", location, err)
	}

	if parsed.Path == "" {
		return nil, fmt.Errorf("%w: %q has no path", beer.ErrMissingLocation, location)
	}

	return &http.Request{
		Method:   "GET",
		Path:     parsed.EscapedPath(),
		RawQuery: parsed.RawQuery,
	}, nil
}

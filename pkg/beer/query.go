package beer

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names understood by the list endpoint.
const (
	ParamName          = "beerName"
	ParamStyle         = "beerStyle"
	ParamShowInventory = "showInventory"
	ParamPageNumber    = "pageNumber"
	ParamPageSize      = "pageSize"
)

// ListOptions holds the optional list filters. A nil field is not sent and
// the server applies its own default.
type ListOptions struct {
	Name          *string
	Style         *Style
	ShowInventory *bool
	PageNumber    *int
	PageSize      *int
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithName filters by beer name.
func (o *ListOptions) WithName(name string) *ListOptions {
	o.Name = &name

	return o
}

// WithStyle filters by beer style.
func (o *ListOptions) WithStyle(style Style) *ListOptions {
	o.Style = &style

	return o
}

// WithShowInventory asks the server to include or hide inventory quantities.
func (o *ListOptions) WithShowInventory(show bool) *ListOptions {
	o.ShowInventory = &show

	return o
}

// WithPageNumber selects the page to fetch.
func (o *ListOptions) WithPageNumber(pageNumber int) *ListOptions {
	o.PageNumber = &pageNumber

	return o
}

// WithPageSize sets the number of beers per page.
func (o *ListOptions) WithPageSize(pageSize int) *ListOptions {
	o.PageSize = &pageSize

	return o
}

// Clone returns a copy that shares no pointers with o.
func (o *ListOptions) Clone() *ListOptions {
	clone := NewListOptions()
	if o == nil {
		return clone
	}

	if o.Name != nil {
		clone.WithName(*o.Name)
	}

	if o.Style != nil {
		clone.WithStyle(*o.Style)
	}

	if o.ShowInventory != nil {
		clone.WithShowInventory(*o.ShowInventory)
	}

	if o.PageNumber != nil {
		clone.WithPageNumber(*o.PageNumber)
	}

	if o.PageSize != nil {
		clone.WithPageSize(*o.PageSize)
	}

	return clone
}

// Encode returns the raw query string for the set options in the order
// beerName, beerStyle, showInventory, pageNumber, pageSize. url.Values is not
// used because its Encode sorts keys.
func (o *ListOptions) Encode() string {
	pairs := o.pairs()
	parts := make([]string, 0, len(pairs))

	for _, pair := range pairs {
		parts = append(parts, url.QueryEscape(pair[0])+"="+url.QueryEscape(pair[1]))
	}

	return strings.Join(parts, "&")
}

// ToValues returns the set options as url.Values.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	for _, pair := range o.pairs() {
		values.Set(pair[0], pair[1])
	}

	return values
}

func (o *ListOptions) pairs() [][2]string {
	if o == nil {
		return nil
	}

	var pairs [][2]string

	if o.Name != nil {
		pairs = append(pairs, [2]string{ParamName, *o.Name})
	}

	if o.Style != nil {
		pairs = append(pairs, [2]string{ParamStyle, string(*o.Style)})
	}

	if o.ShowInventory != nil {
		pairs = append(pairs, [2]string{ParamShowInventory, strconv.FormatBool(*o.ShowInventory)})
	}

	if o.PageNumber != nil {
		pairs = append(pairs, [2]string{ParamPageNumber, strconv.Itoa(*o.PageNumber)})
	}

	if o.PageSize != nil {
		pairs = append(pairs, [2]string{ParamPageSize, strconv.Itoa(*o.PageSize)})
	}

	return pairs
}

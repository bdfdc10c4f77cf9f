package beer

import (
	"context"
	"fmt"
)

// defaultFirstPage is the first page number the server understands.
const defaultFirstPage = 1

// PageIterator walks the beers of a query one item at a time, fetching pages
// lazily. It starts at opts.PageNumber (1 when unset or below 1) and stops after an empty
// page or once TotalElements items have been returned.
type PageIterator struct {
	ctx      context.Context
	lister   PageLister
	opts     *ListOptions
	current  []Beer
	index    int
	returned int64
	total    int64
	fetched  bool
	done     bool
	err      error
}

// NewPageIterator creates an iterator over every page of the query in opts.
// opts is copied; later changes by the caller have no effect. A page number
// below 1 starts at the first page, since the server serves page 1 for 0.
func NewPageIterator(ctx context.Context, lister PageLister, opts *ListOptions) *PageIterator {
	cloned := opts.Clone()
	if cloned.PageNumber == nil || *cloned.PageNumber < defaultFirstPage {
		cloned.WithPageNumber(defaultFirstPage)
	}

	return &PageIterator{
		ctx:    ctx,
		lister: lister,
		opts:   cloned,
	}
}

// HasNext reports whether Next will return another beer. It may fetch the
// next page; a fetch error makes HasNext return true so that Next reports it.
func (it *PageIterator) HasNext() bool {
	if it.index < len(it.current) || it.err != nil {
		return true
	}

	if it.done {
		return false
	}

	it.err = it.fetch()
	if it.err != nil {
		return true
	}

	return it.index < len(it.current)
}

// Next returns the next beer.
func (it *PageIterator) Next() (*Beer, error) {
	if it.index >= len(it.current) && it.err == nil && !it.done {
		it.err = it.fetch()
	}

	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return nil, err
	}

	if it.index >= len(it.current) {
		return nil, ErrNoMoreItems
	}

	item := &it.current[it.index]
	it.index++
	it.returned++

	return item, nil
}

// Total returns TotalElements as reported by the most recent page.
func (it *PageIterator) Total() int64 {
	return it.total
}

func (it *PageIterator) fetch() error {
	if it.lister == nil {
		return ErrListerRequired
	}

	if it.fetched && it.returned >= it.total {
		it.done = true
		it.current = nil
		it.index = 0

		return nil
	}

	page, err := it.lister.List(it.ctx, it.opts)
	if err != nil {
		return fmt.Errorf("fetching page %d: %w", *it.opts.PageNumber, err)
	}

	it.fetched = true
	it.total = page.TotalElements
	it.current = page.Content
	it.index = 0

	if !page.HasContent() {
		it.done = true

		return nil
	}

	it.opts.WithPageNumber(*it.opts.PageNumber + 1)

	return nil
}

// FetchAll collects every beer matching opts across all pages.
func FetchAll(ctx context.Context, lister PageLister, opts *ListOptions) ([]Beer, error) {
	iterator := NewPageIterator(ctx, lister, opts)

	var all []Beer

	for iterator.HasNext() {
		item, err := iterator.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, *item)
	}

	return all, nil
}

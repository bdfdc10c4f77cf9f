package beer

import (
	"encoding/json"
	"fmt"
)

// Page is a bounded slice of a larger result set plus the metadata needed to
// page through it. Number is the page index reported by the server and Size
// the requested page size; TotalElements counts matches across all pages.
type Page[T any] struct {
	Content       []T   `yaml:"content"`
	Number        int   `yaml:"page"`
	Size          int   `yaml:"size"`
	TotalElements int64 `yaml:"total_elements"`
}

// NewPage creates a page from content and the page index, page size and total
// reported for it.
func NewPage[T any](content []T, number, size int, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}

	return &Page[T]{
		Content:       content,
		Number:        number,
		Size:          size,
		TotalElements: total,
	}
}

// NewSinglePage wraps content as the one and only page of an unpaged result.
// An empty result still gets a size of one so that it decodes again.
func NewSinglePage[T any](content []T) *Page[T] {
	if content == nil {
		content = []T{}
	}

	return &Page[T]{
		Content:       content,
		Number:        0,
		Size:          max(len(content), 1),
		TotalElements: int64(len(content)),
	}
}

// pageEnvelope mirrors the list response. Pointers distinguish absent fields
// from zero values; anything not listed here ("pageable", "sort", ...) is
// ignored by encoding/json.
type pageEnvelope[T any] struct {
	Content       *[]T   `json:"content"`
	Page          *int   `json:"page"`
	Number        *int   `json:"number"`
	Size          *int   `json:"size"`
	TotalElements *int64 `json:"totalElements"`
}

// DecodePage decodes a list response of the form
// {"content": [...], "page": n, "size": n, "totalElements": n, ...}.
// "number" is accepted when "page" is absent. content, size and totalElements
// are required.
func DecodePage[T any](data []byte) (*Page[T], error) {
	var envelope pageEnvelope[T]

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, &PageDecodeError{Err: fmt.Errorf("%w: %w", ErrMalformedPage, err)}
	}

	if envelope.Content == nil {
		return nil, &PageDecodeError{Field: "content", Err: ErrMissingPageField}
	}

	if envelope.Size == nil {
		return nil, &PageDecodeError{Field: "size", Err: ErrMissingPageField}
	}

	if envelope.TotalElements == nil {
		return nil, &PageDecodeError{Field: "totalElements", Err: ErrMissingPageField}
	}

	number := 0

	switch {
	case envelope.Page != nil:
		number = *envelope.Page
	case envelope.Number != nil:
		number = *envelope.Number
	}

	if number < 0 {
		return nil, &PageDecodeError{Field: "page", Err: ErrInvalidPageNumber}
	}

	if *envelope.Size < 1 {
		return nil, &PageDecodeError{Field: "size", Err: ErrInvalidPageSize}
	}

	if len(*envelope.Content) > *envelope.Size {
		return nil, &PageDecodeError{Field: "content", Err: ErrPageOverflow}
	}

	return NewPage(*envelope.Content, number, *envelope.Size, *envelope.TotalElements), nil
}

// UnmarshalJSON implements json.Unmarshaler using DecodePage.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	decoded, err := DecodePage[T](data)
	if err != nil {
		return err
	}

	*p = *decoded

	return nil
}

// MarshalJSON implements json.Marshaler with the same envelope DecodePage reads.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	content := p.Content
	if content == nil {
		content = []T{}
	}

	data, err := json.Marshal(struct {
		Content       []T   `json:"content"`
		Page          int   `json:"page"`
		Size          int   `json:"size"`
		TotalElements int64 `json:"totalElements"`
		TotalPages    int   `json:"totalPages"`
	}{
		Content:       content,
		Page:          p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages(),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding page: %w", err)
	}

	return data, nil
}

// NumberOfElements returns the number of items on this page.
func (p *Page[T]) NumberOfElements() int {
	return len(p.Content)
}

// HasContent reports whether the page holds any items.
func (p *Page[T]) HasContent() bool {
	return len(p.Content) > 0
}

// Offset returns the index of the first item of this page in the full result.
func (p *Page[T]) Offset() int64 {
	return int64(p.Number) * int64(p.Size)
}

// TotalPages returns the number of pages needed for TotalElements items.
func (p *Page[T]) TotalPages() int {
	if p.Size < 1 {
		return 1
	}

	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// HasNext reports whether a page follows this one.
func (p *Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages()
}

// HasPrevious reports whether a page precedes this one.
func (p *Page[T]) HasPrevious() bool {
	return p.Number > 0
}

// IsFirst reports whether this is the first page.
func (p *Page[T]) IsFirst() bool {
	return !p.HasPrevious()
}

// IsLast reports whether this is the last page.
func (p *Page[T]) IsLast() bool {
	return !p.HasNext()
}

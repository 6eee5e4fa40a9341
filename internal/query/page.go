package query

import (
	"context"
	"fmt"
)

// Page is one bounded, ordered slice of a larger result set plus count
// metadata. It is computed per request and never persisted.
type Page[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"total_pages"`
}

// HasPrevious reports whether a page precedes this one.
func (p *Page[T]) HasPrevious() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a page follows this one.
func (p *Page[T]) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// Paginate fetches one page from an already-ordered source: a count, then
// a bounded slice. The two reads hit the same logical source but are not
// a snapshot; under concurrent writes the total may disagree slightly
// with the fetched items. That drift is an accepted trade-off.
func Paginate[T any](ctx context.Context, src Source[T], pageNumber, pageSize int) (*Page[T], error) {
	if err := validatePageParams(pageNumber, pageSize); err != nil {
		return nil, err
	}

	total, err := src.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("paginate count: %w", err)
	}

	items, err := src.Slice((pageNumber-1)*pageSize, pageSize).Materialize(ctx)
	if err != nil {
		return nil, fmt.Errorf("paginate fetch: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return newPage(items, pageNumber, pageSize, total), nil
}

// CreateEmpty returns a zero-item page for short-circuit cases. The page
// parameters are still validated.
func CreateEmpty[T any](pageNumber, pageSize int) (*Page[T], error) {
	if err := validatePageParams(pageNumber, pageSize); err != nil {
		return nil, err
	}
	return newPage([]T{}, pageNumber, pageSize, 0), nil
}

func newPage[T any](items []T, pageNumber, pageSize, total int) *Page[T] {
	return &Page[T]{
		Items:       items,
		CurrentPage: pageNumber,
		PageSize:    pageSize,
		TotalCount:  total,
		TotalPages:  (total + pageSize - 1) / pageSize,
	}
}

func validatePageParams(pageNumber, pageSize int) error {
	if pageNumber < 1 {
		return fmt.Errorf("%w: pageNumber=%d", ErrInvalidPageParameter, pageNumber)
	}
	if pageSize < 1 {
		return fmt.Errorf("%w: pageSize=%d", ErrInvalidPageParameter, pageSize)
	}
	return nil
}

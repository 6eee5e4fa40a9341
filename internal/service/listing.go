package service

import (
	"context"

	"mattervault/internal/query"
)

// ListOptions carries the client-controlled listing parameters shared by
// every paginated operation. PageSize is expected to arrive already
// clamped by the transport layer.
type ListOptions struct {
	OrderBy    string
	Fields     string
	PageNumber int
	PageSize   int
}

// listPipeline runs the full query-shaping pipeline over a source:
// rewrite the order from the orderBy expression, fetch one page, then
// prune each item to the requested fields. Page metadata is carried over
// unchanged.
func listPipeline[T any](
	ctx context.Context,
	src query.Source[T],
	reg *query.Registry,
	srcShape, dstShape string,
	shaper *query.Shaper[T],
	opts ListOptions,
) (*query.Page[query.ShapedRecord], error) {
	sorted, err := query.ApplySort(src, reg, srcShape, dstShape, opts.OrderBy)
	if err != nil {
		return nil, err
	}

	page, err := query.Paginate(ctx, sorted, opts.PageNumber, opts.PageSize)
	if err != nil {
		return nil, err
	}

	records, err := shaper.Shape(page.Items, opts.Fields)
	if err != nil {
		return nil, err
	}

	return &query.Page[query.ShapedRecord]{
		Items:       records,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
		TotalCount:  page.TotalCount,
		TotalPages:  page.TotalPages,
	}, nil
}

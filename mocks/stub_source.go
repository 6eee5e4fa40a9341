package mocks

import (
	"context"

	"mattervault/internal/query"
)

// StubSource is an in-memory query.Source for service tests. It records
// the order fields and slice bounds it was given so tests can assert on
// them, and returns canned items or errors.
type StubSource[T any] struct {
	Items    []T
	CountErr error
	FetchErr error

	Ordered []query.OrderField
	Offset  int
	Limit   int
	Sliced  bool
}

func (s *StubSource[T]) Count(ctx context.Context) (int, error) {
	if s.CountErr != nil {
		return 0, s.CountErr
	}
	return len(s.Items), nil
}

func (s *StubSource[T]) OrderBy(fields []query.OrderField) query.Source[T] {
	s.Ordered = fields
	return s
}

func (s *StubSource[T]) Slice(offset, limit int) query.Source[T] {
	s.Offset = offset
	s.Limit = limit
	s.Sliced = true
	return s
}

func (s *StubSource[T]) Materialize(ctx context.Context) ([]T, error) {
	if s.FetchErr != nil {
		return nil, s.FetchErr
	}
	if !s.Sliced {
		return s.Items, nil
	}
	if s.Offset >= len(s.Items) {
		return nil, nil
	}
	end := s.Offset + s.Limit
	if end > len(s.Items) {
		end = len(s.Items)
	}
	return s.Items[s.Offset:end], nil
}

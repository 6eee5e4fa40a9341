package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is an in-memory Source for exercising the paginator and sort
// application without a database.
type fakeSource[T any] struct {
	items    []T
	countErr error
	fetchErr error
	ordered  []OrderField
	offset   int
	limit    int
	sliced   bool
}

func (s *fakeSource[T]) Count(_ context.Context) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return len(s.items), nil
}

func (s *fakeSource[T]) OrderBy(fields []OrderField) Source[T] {
	out := *s
	out.ordered = fields
	return &out
}

func (s *fakeSource[T]) Slice(offset, limit int) Source[T] {
	out := *s
	out.offset = offset
	out.limit = limit
	out.sliced = true
	return &out
}

func (s *fakeSource[T]) Materialize(_ context.Context) ([]T, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	if !s.sliced {
		return s.items, nil
	}
	if s.offset >= len(s.items) {
		return nil, nil
	}
	end := s.offset + s.limit
	if end > len(s.items) {
		end = len(s.items)
	}
	return s.items[s.offset:end], nil
}

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_Metadata(t *testing.T) {
	src := &fakeSource[int]{items: intRange(23)}

	page, err := Paginate[int](context.Background(), src, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 23, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 10, page.PageSize)
	assert.False(t, page.HasPrevious())
	assert.True(t, page.HasNext())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, page.Items)
}

func TestPaginate_LastPage(t *testing.T) {
	src := &fakeSource[int]{items: intRange(23)}

	page, err := Paginate[int](context.Background(), src, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{21, 22, 23}, page.Items)
	assert.True(t, page.HasPrevious())
	assert.False(t, page.HasNext())
}

func TestPaginate_PastTheEndReturnsEmptyItems(t *testing.T) {
	src := &fakeSource[int]{items: intRange(5)}

	page, err := Paginate[int](context.Background(), src, 4, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 5, page.TotalCount)
}

func TestPaginate_InvalidParameters(t *testing.T) {
	src := &fakeSource[int]{items: intRange(5)}

	_, err := Paginate[int](context.Background(), src, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidPageParameter)

	_, err = Paginate[int](context.Background(), src, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidPageParameter)

	_, err = Paginate[int](context.Background(), src, -1, -1)
	assert.ErrorIs(t, err, ErrInvalidPageParameter)
}

func TestPaginate_CountError(t *testing.T) {
	boom := errors.New("connection reset")
	src := &fakeSource[int]{countErr: boom}

	_, err := Paginate[int](context.Background(), src, 1, 10)
	assert.ErrorIs(t, err, boom)
}

func TestPaginate_FetchError(t *testing.T) {
	boom := errors.New("connection reset")
	src := &fakeSource[int]{items: intRange(5), fetchErr: boom}

	_, err := Paginate[int](context.Background(), src, 1, 10)
	assert.ErrorIs(t, err, boom)
}

func TestCreateEmpty(t *testing.T) {
	page, err := CreateEmpty[int](2, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalCount)
	assert.Equal(t, 0, page.TotalPages)
	assert.True(t, page.HasPrevious())
	assert.False(t, page.HasNext())
}

func TestCreateEmpty_StillValidatesParameters(t *testing.T) {
	_, err := CreateEmpty[int](0, 10)
	assert.ErrorIs(t, err, ErrInvalidPageParameter)

	_, err = CreateEmpty[int](1, 0)
	assert.ErrorIs(t, err, ErrInvalidPageParameter)
}

package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"mattervault/internal/query"
)

// builder returns a squirrel statement builder using PostgreSQL
// placeholders.
func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// rowSource adapts a squirrel SELECT over sqlx into a query.Source. Order
// paths are interpolated into the ORDER BY clause directly; they are safe
// because they only ever come from the field-mapping registry, never from
// raw client input. defaultOrder applies when the query engine has not
// rewritten the order.
type rowSource[T any] struct {
	db           *sqlx.DB
	sel          sq.SelectBuilder
	count        sq.SelectBuilder
	order        []string
	defaultOrder []string
	offset       int
	limit        int
	sliced       bool
}

func newRowSource[T any](db *sqlx.DB, sel, count sq.SelectBuilder, defaultOrder ...string) *rowSource[T] {
	return &rowSource[T]{db: db, sel: sel, count: count, defaultOrder: defaultOrder}
}

func (s *rowSource[T]) Count(ctx context.Context) (int, error) {
	sqlStr, args, err := s.count.ToSql()
	if err != nil {
		return 0, fmt.Errorf("rowSource.Count build: %w", err)
	}
	var total int
	if err := s.db.GetContext(ctx, &total, sqlStr, args...); err != nil {
		return 0, fmt.Errorf("rowSource.Count: %w", err)
	}
	return total, nil
}

func (s *rowSource[T]) OrderBy(fields []query.OrderField) query.Source[T] {
	out := *s
	out.order = make([]string, len(fields))
	for i, f := range fields {
		dir := " ASC"
		if f.Desc {
			dir = " DESC"
		}
		out.order[i] = f.Path + dir
	}
	return &out
}

func (s *rowSource[T]) Slice(offset, limit int) query.Source[T] {
	out := *s
	out.offset = offset
	out.limit = limit
	out.sliced = true
	return &out
}

func (s *rowSource[T]) Materialize(ctx context.Context) ([]T, error) {
	sqlStr, args, err := s.materializeSQL()
	if err != nil {
		return nil, fmt.Errorf("rowSource.Materialize build: %w", err)
	}
	var items []T
	if err := s.db.SelectContext(ctx, &items, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("rowSource.Materialize: %w", err)
	}
	return items, nil
}

func (s *rowSource[T]) materializeSQL() (string, []interface{}, error) {
	sel := s.sel
	order := s.order
	if len(order) == 0 {
		order = s.defaultOrder
	}
	if len(order) > 0 {
		sel = sel.OrderBy(order...)
	}
	if s.sliced {
		sel = sel.Offset(uint64(s.offset)).Limit(uint64(s.limit))
	}
	return sel.ToSql()
}

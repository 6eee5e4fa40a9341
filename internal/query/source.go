package query

import "context"

// OrderField is one storage-level ordering key: a column path and a
// direction. Paths always originate from a Registry, never from raw client
// input.
type OrderField struct {
	Path string
	Desc bool
}

// Source is a countable, orderable, sliceable view over a backing store.
// OrderBy and Slice return derived sources without touching the store;
// only Count and Materialize perform I/O. Implementations are expected to
// run Count and Materialize against the same logical data set, though the
// two reads may observe different snapshots under concurrent writes.
type Source[T any] interface {
	Count(ctx context.Context) (int, error)
	OrderBy(fields []OrderField) Source[T]
	Slice(offset, limit int) Source[T]
	Materialize(ctx context.Context) ([]T, error)
}

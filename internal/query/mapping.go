package query

import "fmt"

// MappingEntry describes how one client-visible field maps onto storage:
// one or more column paths, in order, plus a direction-reversal flag for
// synthetic fields whose natural order is the inverse of their backing
// column (e.g. "age" backed by a date of birth).
type MappingEntry struct {
	Paths   []string
	Reverse bool
}

// ShapeMapping is the full registration for one (source, destination)
// shape pair. Tiebreaker, when set, names a storage path appended
// ascending to every compiled ordering so paging stays reproducible even
// when the requested keys do not produce a total order.
type ShapeMapping struct {
	Entries    map[string]MappingEntry
	Tiebreaker string
}

type shapeKey struct {
	src string
	dst string
}

// Registry holds field mappings per shape pair. It is populated once at
// startup and read-only afterward, so lookups need no locking.
type Registry struct {
	mappings map[shapeKey]ShapeMapping
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{mappings: make(map[shapeKey]ShapeMapping)}
}

// Register stores the mapping for a shape pair. Registering the same pair
// twice is allowed only when the entries agree exactly; any disagreement
// is a configuration defect reported as ErrMappingConflict.
func (r *Registry) Register(src, dst string, m ShapeMapping) error {
	for field, entry := range m.Entries {
		if len(entry.Paths) == 0 {
			return fmt.Errorf("%w: %s/%s field %q has no destination paths", ErrMappingConflict, src, dst, field)
		}
	}

	key := shapeKey{src: src, dst: dst}
	existing, ok := r.mappings[key]
	if !ok {
		r.mappings[key] = m
		return nil
	}

	if existing.Tiebreaker != m.Tiebreaker {
		return fmt.Errorf("%w: %s/%s tiebreaker %q vs %q", ErrMappingConflict, src, dst, existing.Tiebreaker, m.Tiebreaker)
	}
	if len(existing.Entries) != len(m.Entries) {
		return fmt.Errorf("%w: %s/%s registered with different field sets", ErrMappingConflict, src, dst)
	}
	for field, entry := range m.Entries {
		prev, ok := existing.Entries[field]
		if !ok || !entriesEqual(prev, entry) {
			return fmt.Errorf("%w: %s/%s field %q", ErrMappingConflict, src, dst, field)
		}
	}
	return nil
}

// Resolve returns the mapping entry for one client field.
func (r *Registry) Resolve(src, dst, field string) (MappingEntry, error) {
	m, ok := r.mappings[shapeKey{src: src, dst: dst}]
	if !ok {
		return MappingEntry{}, fmt.Errorf("%w: no mapping registered for %s/%s", ErrUnknownSortField, src, dst)
	}
	entry, ok := m.Entries[field]
	if !ok {
		return MappingEntry{}, fmt.Errorf("%w: %s", ErrUnknownSortField, field)
	}
	return entry, nil
}

// ValidateAll checks that every field resolves for the shape pair,
// reporting the first missing field.
func (r *Registry) ValidateAll(src, dst string, fields []string) error {
	for _, f := range fields {
		if _, err := r.Resolve(src, dst, f); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) tiebreaker(src, dst string) string {
	return r.mappings[shapeKey{src: src, dst: dst}].Tiebreaker
}

func entriesEqual(a, b MappingEntry) bool {
	if a.Reverse != b.Reverse || len(a.Paths) != len(b.Paths) {
		return false
	}
	for i := range a.Paths {
		if a.Paths[i] != b.Paths[i] {
			return false
		}
	}
	return true
}

package query

import "errors"

var (
	// ErrUnknownSortField is returned when an orderBy clause names a field
	// with no registered mapping. The offending field is appended.
	ErrUnknownSortField = errors.New("unknown sort field")

	// ErrUnknownShapeField is returned when a fields list names a field the
	// target type has no accessor for. The offending field is appended.
	ErrUnknownShapeField = errors.New("unknown shape field")

	// ErrInvalidPageParameter is returned for pageNumber or pageSize < 1.
	ErrInvalidPageParameter = errors.New("invalid page parameter")

	// ErrMappingConflict signals two registrations of the same shape pair
	// with disagreeing entries. It is a configuration defect and surfaces
	// at startup, never per request.
	ErrMappingConflict = errors.New("conflicting field mapping registration")
)

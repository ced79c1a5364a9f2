package query

import "errors"

// Errors returned by [Normalize] for inputs that cannot be flattened into
// query parameters. Callers match them with [errors.Is].
var (
	// ErrInvalidFilterValue is returned when a filter value is neither a
	// string nor a sequence of scalars.
	ErrInvalidFilterValue = errors.New("invalid filter value")

	// ErrInvalidFilters is returned when the filters entry is not a mapping
	// from field name to value.
	ErrInvalidFilters = errors.New("invalid filters")

	// ErrInvalidPagination is returned when the pagination entry has an
	// unknown shape or non-integer current/pageSize values.
	ErrInvalidPagination = errors.New("invalid pagination")

	// ErrInvalidSorter is returned when the sorter entry has an unknown shape.
	ErrInvalidSorter = errors.New("invalid sorter")

	// ErrUnsupportedParam is returned when a passthrough parameter value has
	// no flat string representation (maps, structs, channels, ...).
	ErrUnsupportedParam = errors.New("unsupported parameter value")
)

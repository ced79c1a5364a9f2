package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName       = errors.New("name is required")
	ErrInvalidStatus   = errors.New("invalid item status")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrEmptyTag        = errors.New("tags must not be empty strings")
	ErrInvalidPage     = errors.New("page must be positive and within range")
	ErrInvalidLimit    = errors.New("limit is out of range")
	ErrUnsortableField = errors.New("field cannot be sorted on")
)

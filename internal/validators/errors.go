package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidSearchInput is matched by every *ValidationError via errors.Is.
	ErrInvalidSearchInput = errors.New("invalid search input")
)

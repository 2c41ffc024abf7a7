package textstats

import "errors"

var (
	// ErrEmptyDocument is returned when an average is taken over zero units.
	ErrEmptyDocument = errors.New("empty document")
	// ErrInvalidPattern is returned for delimiter patterns that cannot be used.
	ErrInvalidPattern = errors.New("invalid delimiter pattern")
)

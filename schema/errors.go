package schema

import "errors"

// Errors returned at the scoring boundary.
var (
	// ErrUnknownQuestion means an answer references a question id that is not in the catalog.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrUnknownCategory means an answer's category does not match any catalog category.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidAnswer means an answer value is out of range or not allowed by the answer mode.
	ErrInvalidAnswer = errors.New("invalid answer")
)

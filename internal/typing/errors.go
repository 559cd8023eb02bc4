package typing

import "errors"

var (
	// ErrNoPhrases indicates an empty phrase list.
	ErrNoPhrases = errors.New("typing: phrase list is empty")

	// ErrNegativeDuration indicates a timing value below zero.
	ErrNegativeDuration = errors.New("typing: duration must not be negative")
)

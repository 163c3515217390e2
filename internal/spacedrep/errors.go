package spacedrep

import "errors"

var (
	// ErrInvalidRating marks a rating outside Again..Easy.
	ErrInvalidRating = errors.New("spacedrep: invalid rating")

	// ErrCardNotFound marks a lookup for a skill with no review card.
	ErrCardNotFound = errors.New("spacedrep: card not found")
)

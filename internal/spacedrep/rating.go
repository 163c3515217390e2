// Package spacedrep schedules skill reviews with an FSRS-style model:
// each card carries a stability (how slowly memory fades) and a
// difficulty (how hard the material is), both updated from the learner's
// self-graded review outcomes.
package spacedrep

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Rating is the learner's self-assessment of a review outcome.
type Rating int8

const (
	Again Rating = iota + 1 // failed to recall
	Hard                    // recalled with serious effort
	Good                    // recalled correctly
	Easy                    // recalled effortlessly
)

var ratingNames = map[Rating]string{
	Again: "again",
	Hard:  "hard",
	Good:  "good",
	Easy:  "easy",
}

// ParseRating converts the wire form back to a Rating.
func ParseRating(s string) (Rating, error) {
	for r, name := range ratingNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRating, s)
}

// IsValid reports whether r is one of the four defined ratings.
func (r Rating) IsValid() bool {
	_, ok := ratingNames[r]
	return ok
}

func (r Rating) String() string {
	if name, ok := ratingNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rating(%d)", int8(r))
}

func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, int8(r))
	}
	return []byte(r.String()), nil
}

func (r *Rating) UnmarshalText(b []byte) error {
	parsed, err := ParseRating(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	b, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(b))
}

func (r *Rating) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}

var (
	_ encoding.TextMarshaler   = Good
	_ encoding.TextUnmarshaler = (*Rating)(nil)
	_ json.Marshaler           = Good
	_ json.Unmarshaler         = (*Rating)(nil)
)

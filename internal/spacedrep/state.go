package spacedrep

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// State is a card's position in the review lifecycle.
type State int8

const (
	New        State = iota // never reviewed
	Learning                // first review done, interval still short
	Review                  // graduated to long intervals
	Relearning              // lapsed out of Review
)

var stateNames = map[State]string{
	New:        "new",
	Learning:   "learning",
	Review:     "review",
	Relearning: "relearning",
}

// ParseState converts the wire form back to a State.
func ParseState(s string) (State, error) {
	for st, name := range stateNames {
		if name == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("spacedrep: unknown state %q", s)
}

// IsValid reports whether s is one of the four defined states.
func (s State) IsValid() bool {
	_, ok := stateNames[s]
	return ok
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int8(s))
}

func (s State) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("spacedrep: unknown state %d", int8(s))
	}
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	parsed, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s State) MarshalJSON() ([]byte, error) {
	b, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(b))
}

func (s *State) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(str))
}

var (
	_ encoding.TextMarshaler   = Review
	_ encoding.TextUnmarshaler = (*State)(nil)
	_ json.Marshaler           = Review
	_ json.Unmarshaler         = (*State)(nil)
)

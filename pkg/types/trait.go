package types

import (
	"fmt"
	"strings"
)

// TypeTrait says whether instances of a type may be used from any execution
// context. The zero value is TraitAgile.
type TypeTrait int

// Type traits.
const (
	TraitAgile TypeTrait = iota
	TraitConfined
)

// Text forms of the type traits.
const (
	TraitNameAgile    = "agile"
	TraitNameConfined = "confined"
)

// String returns the text form of the trait.
func (t TypeTrait) String() string {
	switch t {
	case TraitAgile:
		return TraitNameAgile
	case TraitConfined:
		return TraitNameConfined
	default:
		return fmt.Sprintf("TypeTrait(%d)", int(t))
	}
}

// Valid reports whether t is one of the defined traits.
func (t TypeTrait) Valid() bool {
	return t == TraitAgile || t == TraitConfined
}

// ParseTrait converts a text form into a TypeTrait. Matching is
// case-insensitive and an empty string yields TraitAgile.
// Returns ErrInvalidTrait if the text is not recognized.
func ParseTrait(s string) (TypeTrait, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", TraitNameAgile:
		return TraitAgile, nil
	case TraitNameConfined:
		return TraitConfined, nil
	default:
		return TraitAgile, fmt.Errorf("%w: %q", ErrInvalidTrait, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TypeTrait) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTrait, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TypeTrait) UnmarshalText(b []byte) error {
	v, err := ParseTrait(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

package code39

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCharacter is returned in strict mode when the input holds a
	// character that Code 39 cannot represent.
	ErrUnsupportedCharacter = errors.New("unsupported character")

	// ErrInvalidDimension is returned when a layout dimension is not a
	// positive finite number.
	ErrInvalidDimension = errors.New("invalid dimension")
)

// UnsupportedCharacterError reports the first rejected character of a strict
// encode. Index counts runes of the uppercased input.
type UnsupportedCharacterError struct {
	Char  rune
	Index int
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("%v: %q at index %d", ErrUnsupportedCharacter, e.Char, e.Index)
}

// Unwrap lets errors.Is match ErrUnsupportedCharacter.
func (e *UnsupportedCharacterError) Unwrap() error {
	return ErrUnsupportedCharacter
}

package code39

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mode selects how the encoder treats characters missing from the table.
type Mode int

const (
	// Lenient substitutes the space pattern for unsupported characters.
	Lenient Mode = iota
	// Strict rejects unsupported characters and a literal sentinel.
	Strict
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

// Encoder encodes text into Code 39 module sequences.
type Encoder struct {
	mode Mode
}

// NewEncoder creates an encoder using the given mode.
func NewEncoder(mode Mode) *Encoder {
	return &Encoder{mode: mode}
}

// Mode returns the encoder mode.
func (e *Encoder) Mode() Mode {
	return e.mode
}

// Encode uppercases text, frames it with sentinels and expands every
// character into nine modules, separated by one narrow space. In Lenient
// mode it never returns an error.
func (e *Encoder) Encode(text string) (Sequence, error) {
	upper := normalize(text)
	if e.mode == Strict {
		i := 0
		for _, r := range upper {
			if r == Sentinel || !Supported(r) {
				return nil, &UnsupportedCharacterError{Char: r, Index: i}
			}
			i++
		}
	}
	return encodeNormalized(upper), nil
}

// Encode is the lenient, total form of Encoder.Encode.
func Encode(text string) Sequence {
	return encodeNormalized(normalize(text))
}

// Encoded returns len(Encode(text)) without building the sequence.
func Encoded(text string) int {
	n := utf8.RuneCountInString(normalize(text))
	return 2*PatternLen + 1 + n*(PatternLen+1)
}

// normalize uppercases with full Unicode case mapping. A Caser keeps state
// between calls, so each call gets its own.
func normalize(text string) string {
	return cases.Upper(language.Und).String(text)
}

func encodeNormalized(upper string) Sequence {
	seq := make(Sequence, 0, 2*PatternLen+1+utf8.RuneCountInString(upper)*(PatternLen+1))
	seq = appendPattern(seq, Lookup(Sentinel))
	seq = append(seq, gap)
	for _, r := range upper {
		seq = appendPattern(seq, Lookup(r))
		seq = append(seq, gap)
	}
	return appendPattern(seq, Lookup(Sentinel))
}

var gap = Module{Kind: Space, Width: Narrow}

func appendPattern(seq Sequence, p Pattern) Sequence {
	for i := 0; i < PatternLen; i++ {
		seq = append(seq, p.Module(i))
	}
	return seq
}

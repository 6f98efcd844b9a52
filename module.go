package code39

import (
	"strings"

	"github.com/ericlevine/code39/bitutil"
)

// WideRatio is the width of a wide element in narrow units. It is fixed by
// the symbology.
const WideRatio = 3

// Kind tells bars from spaces.
type Kind uint8

const (
	Bar Kind = iota
	Space
)

// String returns "bar" or "space".
func (k Kind) String() string {
	if k == Space {
		return "space"
	}
	return "bar"
}

// Width is the width class of a module.
type Width uint8

const (
	Narrow Width = iota
	Wide
)

// String returns "narrow" or "wide".
func (w Width) String() string {
	if w == Wide {
		return "wide"
	}
	return "narrow"
}

// Module is one bar or space element.
type Module struct {
	Kind  Kind
	Width Width
}

// Units returns the module width in narrow units.
func (m Module) Units() int {
	if m.Width == Wide {
		return WideRatio
	}
	return 1
}

// String returns the compact two letter form, e.g. "Bn" or "Sw".
func (m Module) String() string {
	b := [2]byte{'B', 'n'}
	if m.Kind == Space {
		b[0] = 'S'
	}
	if m.Width == Wide {
		b[1] = 'w'
	}
	return string(b[:])
}

// Sequence is an encoded symbol in left-to-right draw order.
type Sequence []Module

// Units returns the total width of the sequence in narrow units.
func (s Sequence) Units() int {
	n := 0
	for _, m := range s {
		n += m.Units()
	}
	return n
}

// Bars returns the number of bar modules.
func (s Sequence) Bars() int {
	n := 0
	for _, m := range s {
		if m.Kind == Bar {
			n++
		}
	}
	return n
}

// Row expands the sequence into one cell per narrow unit, with cells covered
// by a bar set.
func (s Sequence) Row() *bitutil.BitArray {
	row := bitutil.NewBitArray(s.Units())
	pos := 0
	for _, m := range s {
		u := m.Units()
		if m.Kind == Bar {
			row.SetRange(pos, pos+u)
		}
		pos += u
	}
	return row
}

// String joins the compact form of every module, e.g. "BnSwBnSn...".
func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(2 * len(s))
	for _, m := range s {
		sb.WriteString(m.String())
	}
	return sb.String()
}

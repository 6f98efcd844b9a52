package code39

import "strings"

// Alphabet lists every payload character the table encodes. The start/stop
// sentinel is not part of it. '$', '+' and '%' are left out and degrade to
// the space pattern like any other unsupported character.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. /"

// Sentinel frames every encoded symbol on both ends.
const Sentinel = '*'

// PatternLen is the number of elements per character: five bars, four spaces.
const PatternLen = 9

var characterEncodings = [len(Alphabet)]Pattern{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064, // 0-9
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00D, 0x10C, 0x04C, 0x01C, // A-J
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016, // K-T
	0x181, 0x0C1, 0x1C0, 0x091, 0x190, 0x0D0, // U-Z
	0x085, 0x184, 0x0C4, 0x0A2, // - . space /
}

const sentinelEncoding Pattern = 0x094

// symbolTable is built once and only read afterwards, so concurrent lookups
// need no locking.
var symbolTable = func() map[rune]Pattern {
	t := make(map[rune]Pattern, len(Alphabet)+1)
	for i, r := range Alphabet {
		t[r] = characterEncodings[i]
	}
	t[Sentinel] = sentinelEncoding
	return t
}()

// Pattern is the 9-bit wide/narrow encoding of one character. The most
// significant of the nine bits describes the first (leftmost) element.
type Pattern uint16

// Lookup returns the pattern for r. Characters outside the table degrade to
// the space pattern instead of failing.
func Lookup(r rune) Pattern {
	if p, ok := symbolTable[r]; ok {
		return p
	}
	return symbolTable[' ']
}

// Supported reports whether r has its own entry in the table. The sentinel
// counts as supported.
func Supported(r rune) bool {
	_, ok := symbolTable[r]
	return ok
}

// Wide reports whether element i (0..8) is wide.
func (p Pattern) Wide(i int) bool {
	return p&(1<<uint(PatternLen-1-i)) != 0
}

// Module expands element i of the pattern. Even indices are bars, odd
// indices are spaces.
func (p Pattern) Module(i int) Module {
	m := Module{Kind: Bar, Width: Narrow}
	if i%2 == 1 {
		m.Kind = Space
	}
	if p.Wide(i) {
		m.Width = Wide
	}
	return m
}

// Modules expands all nine elements in draw order.
func (p Pattern) Modules() [PatternLen]Module {
	var ms [PatternLen]Module
	for i := range ms {
		ms[i] = p.Module(i)
	}
	return ms
}

// String returns the pattern as nine '0'/'1' characters, '1' meaning wide.
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(PatternLen)
	for i := 0; i < PatternLen; i++ {
		if p.Wide(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Package bitutil provides the bit containers used to rasterize barcodes.
package bitutil

import (
	"math/bits"
	"strings"
)

// BitArray is a fixed-size array of bits packed into uint32 words. In a
// barcode row each bit is one narrow unit, set where a bar covers it.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a cleared BitArray holding size bits.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{bits: make([]uint32, (size+31)/32), size: size}
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// Get returns true if bit i is set.
func (ba *BitArray) Get(i int) bool {
	return ba.bits[i/32]&(1<<uint(i&0x1F)) != 0
}

// Set sets bit i.
func (ba *BitArray) Set(i int) {
	ba.bits[i/32] |= 1 << uint(i&0x1F)
}

// SetRange sets bits [start, end).
func (ba *BitArray) SetRange(start, end int) {
	if end < start || start < 0 || end > ba.size {
		panic("bitarray: invalid range")
	}
	for i := start; i < end; {
		word, off := i/32, i&0x1F
		n := min(32-off, end-i)
		mask := ^uint32(0) >> uint(32-n) << uint(off)
		ba.bits[word] |= mask
		i += n
	}
}

// NextSet returns the index of the first set bit at or after from, or Size
// if there is none.
func (ba *BitArray) NextSet(from int) int {
	return ba.next(from, 0)
}

// NextUnset returns the index of the first unset bit at or after from, or
// Size if there is none.
func (ba *BitArray) NextUnset(from int) int {
	return ba.next(from, ^uint32(0))
}

// next scans for the first bit differing from the fill word.
func (ba *BitArray) next(from int, fill uint32) int {
	if from >= ba.size {
		return ba.size
	}
	word := from / 32
	cur := (ba.bits[word] ^ fill) & (^uint32(0) << uint(from&0x1F))
	for cur == 0 {
		word++
		if word == len(ba.bits) {
			return ba.size
		}
		cur = ba.bits[word] ^ fill
	}
	return min(word*32+bits.TrailingZeros32(cur), ba.size)
}

// Runs calls fn for every maximal run of set bits, in order.
func (ba *BitArray) Runs(fn func(start, end int)) {
	for start := ba.NextSet(0); start < ba.size; {
		end := ba.NextUnset(start)
		fn(start, end)
		start = ba.NextSet(end)
	}
}

// String renders set bits as 'X' and unset bits as '.'.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size)
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

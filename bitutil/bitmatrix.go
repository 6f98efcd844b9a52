package bitutil

import (
	"image"
	"image/color"
	"strings"
)

// BitMatrix is a 2D matrix of bits, x being the column and y the row with
// the origin at the top-left. A set bit is a dark pixel.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a cleared matrix of the given size.
func NewBitMatrix(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// Get returns true if the pixel at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	return bm.data[y*bm.rowSize+x/32]&(1<<uint(x&0x1F)) != 0
}

// Set sets the pixel at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	bm.data[y*bm.rowSize+x/32] |= 1 << uint(x&0x1F)
}

// SetRegion sets every pixel of the width x height region whose top-left
// corner is (left, top).
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	if top < 0 || left < 0 {
		panic("bitmatrix: left and top must be nonnegative")
	}
	if height < 1 || width < 1 {
		panic("bitmatrix: height and width must be at least 1")
	}
	if top+height > bm.height || left+width > bm.width {
		panic("bitmatrix: region must fit inside the matrix")
	}
	row := NewBitArray(bm.width)
	row.SetRange(left, left+width)
	for y := top; y < top+height; y++ {
		line := bm.data[y*bm.rowSize : (y+1)*bm.rowSize]
		for i, w := range row.bits {
			line[i] |= w
		}
	}
}

// Row returns a copy of row y.
func (bm *BitMatrix) Row(y int) *BitArray {
	row := NewBitArray(bm.width)
	copy(row.bits, bm.data[y*bm.rowSize:(y+1)*bm.rowSize])
	return row
}

// Width returns the width in pixels.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height in pixels.
func (bm *BitMatrix) Height() int { return bm.height }

// ColorModel implements image.Image.
func (bm *BitMatrix) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (bm *BitMatrix) Bounds() image.Rectangle {
	return image.Rect(0, 0, bm.width, bm.height)
}

// At implements image.Image; set pixels are black, others white.
func (bm *BitMatrix) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= bm.width || y >= bm.height {
		return color.White
	}
	if bm.Get(x, y) {
		return color.Black
	}
	return color.White
}

// String renders the matrix with "X " for set and "  " for unset pixels.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars renders the matrix one text line per row.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*len(setString) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package bitutil

import (
	"image/color"
	"testing"
)

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrix(10, 10)
	bm.Set(3, 5)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
}

func TestBitMatrixSetRegion(t *testing.T) {
	bm := NewBitMatrix(40, 8)
	bm.SetRegion(30, 2, 4, 4)
	for y := 0; y < 8; y++ {
		for x := 0; x < 40; x++ {
			expected := x >= 30 && x < 34 && y >= 2 && y < 6
			if bm.Get(x, y) != expected {
				t.Errorf("(%d,%d) = %v, want %v", x, y, bm.Get(x, y), expected)
			}
		}
	}
}

func TestBitMatrixSetRegionOutside(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for region outside the matrix")
		}
	}()
	NewBitMatrix(4, 4).SetRegion(2, 0, 3, 1)
}

func TestBitMatrixRow(t *testing.T) {
	bm := NewBitMatrix(8, 4)
	bm.Set(3, 2)
	bm.Set(5, 2)
	row := bm.Row(2)
	if row.String() != "...X.X.." {
		t.Errorf("row = %q, want %q", row.String(), "...X.X..")
	}
	row.Set(0)
	if bm.Get(0, 2) {
		t.Error("row should be a copy")
	}
}

func TestBitMatrixImage(t *testing.T) {
	bm := NewBitMatrix(3, 2)
	bm.Set(1, 1)
	if b := bm.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}
	if got := color.GrayModel.Convert(bm.At(1, 1)).(color.Gray); got.Y != 0 {
		t.Errorf("At(1,1) = %v, want black", got)
	}
	if got := color.GrayModel.Convert(bm.At(0, 0)).(color.Gray); got.Y != 0xFF {
		t.Errorf("At(0,0) = %v, want white", got)
	}
	if got := color.GrayModel.Convert(bm.At(5, 5)).(color.Gray); got.Y != 0xFF {
		t.Errorf("At(5,5) = %v, want white outside bounds", got)
	}
}

func TestBitMatrixString(t *testing.T) {
	bm := NewBitMatrix(3, 2)
	bm.SetRegion(0, 0, 1, 2)
	want := "#..\n#..\n"
	if got := bm.StringWithChars("#", "."); got != want {
		t.Errorf("StringWithChars = %q, want %q", got, want)
	}
}

package code39

import (
	"fmt"
	"math"
)

// Rect is a drawable rectangle of a render plan. Only bars produce
// rectangles, so Filled is always true in plans built by Layout.
type Rect struct {
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Filled bool    `json:"-"`
}

// Plan is the geometry of an encoded symbol. Rects are ordered left to right
// and never overlap.
type Plan struct {
	Rects  []Rect  `json:"rects"`
	Width  float64 `json:"total_width"`
	Height float64 `json:"total_height"`
	Unit   float64 `json:"unit_width"`
}

// Layout maps modules to rectangles. A narrow module is unitWidth wide, a
// wide one WideRatio times that. Spaces only advance the cursor.
func Layout(seq Sequence, unitWidth, barHeight float64) (Plan, error) {
	if !positive(unitWidth) {
		return Plan{}, fmt.Errorf("unit width %v: %w", unitWidth, ErrInvalidDimension)
	}
	if !positive(barHeight) {
		return Plan{}, fmt.Errorf("bar height %v: %w", barHeight, ErrInvalidDimension)
	}

	p := Plan{
		Rects:  make([]Rect, 0, seq.Bars()),
		Height: barHeight,
		Unit:   unitWidth,
	}
	x := 0.0
	for _, m := range seq {
		w := unitWidth * float64(m.Units())
		if m.Kind == Bar {
			p.Rects = append(p.Rects, Rect{X: x, Width: w, Height: barHeight, Filled: true})
		}
		x += w
	}
	p.Width = x
	return p, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

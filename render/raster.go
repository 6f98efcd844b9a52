package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ericlevine/code39"
	"github.com/ericlevine/code39/bitutil"
)

const captionPadding = 4

// MaxPixels bounds the area of any raster Matrix or PNG allocates.
const MaxPixels = 1 << 25

// ErrTooLarge is returned when a raster would exceed MaxPixels.
var ErrTooLarge = errors.New("raster too large")

// RasterSize returns the pixel size of the bars and quiet zone, caption
// excluded. It fails with ErrTooLarge before anything is allocated.
func RasterSize(p code39.Plan, opts ...Option) (width, height int, err error) {
	return rasterSize(p, newOptions(opts))
}

func rasterSize(p code39.Plan, o options) (int, int, error) {
	scale := float64(o.scale)
	w := max(math.Round((p.Width+2*o.quietZone*p.Unit)*scale), 1)
	h := max(math.Round(p.Height*scale), 1)
	// NaN and Inf fail the comparison too.
	if !(w*h <= MaxPixels) {
		return 0, 0, fmt.Errorf("%w: %vx%v pixels exceeds %d", ErrTooLarge, w, h, MaxPixels)
	}
	return int(w), int(h), nil
}

// Matrix rasterizes the plan's bars, quiet zone included. Edges are rounded
// to whole pixels independently, so neighbouring bars never overlap.
func Matrix(p code39.Plan, opts ...Option) (*bitutil.BitMatrix, error) {
	return matrix(p, newOptions(opts))
}

func matrix(p code39.Plan, o options) (*bitutil.BitMatrix, error) {
	width, height, err := rasterSize(p, o)
	if err != nil {
		return nil, err
	}
	scale := float64(o.scale)
	margin := o.quietZone * p.Unit
	px := func(v float64) int { return int(math.Round(v * scale)) }

	m := bitutil.NewBitMatrix(width, height)
	for _, r := range p.Rects {
		left := px(r.X + margin)
		right := min(px(r.X+r.Width+margin), width)
		if right > left {
			m.SetRegion(left, 0, right-left, height)
		}
	}
	return m, nil
}

// PNG writes the plan as a grayscale PNG. A caption is drawn under the bars
// in a fixed 7x13 bitmap font.
func PNG(w io.Writer, p code39.Plan, opts ...Option) error {
	o := newOptions(opts)
	m, err := matrix(p, o)
	if err != nil {
		return err
	}

	bounds := m.Bounds()
	face := basicfont.Face7x13
	if o.caption != "" {
		textWidth := font.MeasureString(face, o.caption).Ceil()
		bounds.Max.X = max(bounds.Max.X, textWidth+2*captionPadding)
		bounds.Max.Y += face.Metrics().Height.Ceil() + 2*captionPadding
		if bounds.Dx()*bounds.Dy() > MaxPixels {
			return fmt.Errorf("%w: caption needs %dx%d pixels", ErrTooLarge, bounds.Dx(), bounds.Dy())
		}
	}

	img := image.NewGray(bounds)
	draw.Draw(img, bounds, image.White, image.Point{}, draw.Src)
	offset := image.Pt((bounds.Dx()-m.Width())/2, 0)
	draw.Draw(img, m.Bounds().Add(offset), m, image.Point{}, draw.Src)

	if o.caption != "" {
		d := font.Drawer{Dst: img, Src: image.Black, Face: face}
		textWidth := d.MeasureString(o.caption)
		x := (fixed.I(bounds.Dx()) - textWidth) / 2
		y := fixed.I(m.Height()+captionPadding) + face.Metrics().Ascent
		d.Dot = fixed.Point26_6{X: x, Y: y}
		d.DrawString(o.caption)
	}
	return png.Encode(w, img)
}

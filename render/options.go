// Package render draws code39 layout plans as SVG, PNG, raster matrices and
// JSON.
package render

// DefaultQuietZone is the blank margin on each side of the bars, in narrow
// units.
const DefaultQuietZone = 10

// Option configures a sink.
type Option func(*options)

type options struct {
	quietZone  float64
	caption    string
	bar        string
	background string
	scale      int
}

func newOptions(opts []Option) options {
	o := options{
		quietZone:  DefaultQuietZone,
		bar:        "black",
		background: "white",
		scale:      1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithQuietZone sets the margin on each side in narrow units. Negative values
// are treated as zero.
func WithQuietZone(units float64) Option {
	return func(o *options) { o.quietZone = max(units, 0) }
}

// WithCaption prints text centered under the bars.
func WithCaption(text string) Option {
	return func(o *options) { o.caption = text }
}

// WithColors sets the SVG bar and background fill colors.
func WithColors(bar, background string) Option {
	return func(o *options) {
		if bar != "" {
			o.bar = bar
		}
		if background != "" {
			o.background = background
		}
	}
}

// WithScale multiplies plan coordinates into raster pixels (default 1).
func WithScale(n int) Option {
	return func(o *options) { o.scale = max(n, 1) }
}

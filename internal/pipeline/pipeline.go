// Package pipeline runs encode, layout and render as one step for the CLI
// and the HTTP service, so both produce identical artifacts.
package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ericlevine/code39"
	"github.com/ericlevine/code39/internal/config"
	"github.com/ericlevine/code39/render"
)

// Options describes one render request.
type Options struct {
	Text       string
	Format     string
	Unit       float64
	Height     float64
	QuietZone  float64
	Scale      int
	Strict     bool
	Caption    bool
	BarColor   string
	Background string
}

// FromConfig fills Options for text from configured defaults.
func FromConfig(cfg config.Config, text string) Options {
	return Options{
		Text:       text,
		Format:     cfg.Format,
		Unit:       cfg.Unit,
		Height:     cfg.Height,
		QuietZone:  cfg.QuietZone,
		Scale:      cfg.Scale,
		Strict:     cfg.Strict,
		Caption:    cfg.Caption,
		BarColor:   cfg.BarColor,
		Background: cfg.Background,
	}
}

// Config converts the options back into a validatable config.
func (o Options) Config() config.Config {
	return config.Config{
		Unit:       o.Unit,
		Height:     o.Height,
		QuietZone:  o.QuietZone,
		Scale:      o.Scale,
		Strict:     o.Strict,
		Caption:    o.Caption,
		Format:     o.Format,
		BarColor:   o.BarColor,
		Background: o.Background,
	}
}

// Artifact is a rendered barcode.
type Artifact struct {
	Data        []byte
	ContentType string
	Plan        code39.Plan
	Modules     int
}

// Run encodes, lays out and renders o.Text in o.Format.
func Run(o Options) (*Artifact, error) {
	cfg := o.Config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seq, err := code39.NewEncoder(cfg.Mode()).Encode(o.Text)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", o.Text, err)
	}
	plan, err := code39.Layout(seq, o.Unit, o.Height)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	a := &Artifact{Plan: plan, Modules: len(seq), ContentType: ContentType(o.Format)}
	opts := cfg.RenderOptions(o.Text)
	switch o.Format {
	case config.FormatSVG:
		a.Data = render.SVG(plan, opts...)
	case config.FormatPNG:
		var buf bytes.Buffer
		if err := render.PNG(&buf, plan, opts...); err != nil {
			if errors.Is(err, render.ErrTooLarge) {
				return nil, fmt.Errorf("%w: %w", config.ErrInvalid, err)
			}
			return nil, fmt.Errorf("render png: %w", err)
		}
		a.Data = buf.Bytes()
	case config.FormatJSON:
		if a.Data, err = render.JSON(plan); err != nil {
			return nil, fmt.Errorf("render json: %w", err)
		}
	case config.FormatModules:
		a.Data = []byte(seq.String() + "\n")
	}
	return a, nil
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case config.FormatSVG:
		return "image/svg+xml"
	case config.FormatPNG:
		return "image/png"
	case config.FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

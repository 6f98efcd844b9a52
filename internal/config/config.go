// Package config loads code39 tool settings from TOML.
package config

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ericlevine/code39"
	"github.com/ericlevine/code39/render"
)

// Output formats understood by the CLI and the HTTP service.
const (
	FormatSVG     = "svg"
	FormatPNG     = "png"
	FormatJSON    = "json"
	FormatModules = "modules"
)

// Formats lists every valid output format.
var Formats = []string{FormatSVG, FormatPNG, FormatJSON, FormatModules}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Upper bounds for a single render. Raster area is further capped by
// render.MaxPixels.
const (
	MaxUnit      = 100
	MaxHeight    = 10000
	MaxQuietZone = 100
	MaxScale     = 16
)

// colorPattern accepts #rgb, #rrggbb and SVG color keywords.
var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]+)$`)

// Config holds rendering defaults and service settings.
type Config struct {
	Unit       float64 `toml:"unit"`
	Height     float64 `toml:"height"`
	QuietZone  float64 `toml:"quiet_zone"`
	Caption    bool    `toml:"caption"`
	Strict     bool    `toml:"strict"`
	Format     string  `toml:"format"`
	Scale      int     `toml:"scale"`
	BarColor   string  `toml:"bar_color"`  // SVG only; rasters stay black on white
	Background string  `toml:"background"` // SVG only
	Addr       string  `toml:"addr"`
}

// Default returns the built-in settings: 1.5 units per narrow module and
// 40 high bars, lenient encoding, SVG output.
func Default() Config {
	return Config{
		Unit:       1.5,
		Height:     40,
		QuietZone:  render.DefaultQuietZone,
		Caption:    true,
		Format:     FormatSVG,
		Scale:      1,
		BarColor:   "black",
		Background: "white",
		Addr:       ":8080",
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if err := inRange("unit", c.Unit, MaxUnit); err != nil {
		return err
	}
	if err := inRange("height", c.Height, MaxHeight); err != nil {
		return err
	}
	if c.QuietZone < 0 || c.QuietZone > MaxQuietZone || math.IsNaN(c.QuietZone) {
		return fmt.Errorf("%w: quiet_zone must be between 0 and %d, got %v", ErrInvalid, MaxQuietZone, c.QuietZone)
	}
	if c.Scale < 1 || c.Scale > MaxScale {
		return fmt.Errorf("%w: scale must be between 1 and %d, got %d", ErrInvalid, MaxScale, c.Scale)
	}
	for _, col := range []struct{ key, v string }{{"bar_color", c.BarColor}, {"background", c.Background}} {
		if !colorPattern.MatchString(col.v) {
			return fmt.Errorf("%w: %s %q is not a color", ErrInvalid, col.key, col.v)
		}
	}
	if err := ValidateFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// inRange requires 0 < v <= limit; NaN fails both comparisons.
func inRange(key string, v float64, limit float64) error {
	if !(v > 0 && v <= limit) {
		return fmt.Errorf("%w: %s must be in (0, %v], got %v", ErrInvalid, key, limit, v)
	}
	return nil
}

// Mode returns the encoding mode selected by Strict.
func (c Config) Mode() code39.Mode {
	if c.Strict {
		return code39.Strict
	}
	return code39.Lenient
}

// RenderOptions returns the sink options for the settings, with caption text
// when captions are enabled.
func (c Config) RenderOptions(caption string) []render.Option {
	opts := []render.Option{
		render.WithQuietZone(c.QuietZone),
		render.WithScale(c.Scale),
		render.WithColors(c.BarColor, c.Background),
	}
	if c.Caption && caption != "" {
		opts = append(opts, render.WithCaption(caption))
	}
	return opts
}

// ValidateFormat reports whether f is one of Formats.
func ValidateFormat(f string) error {
	for _, v := range Formats {
		if f == v {
			return nil
		}
	}
	return fmt.Errorf("%w: format %q, want one of %s", ErrInvalid, f, strings.Join(Formats, ", "))
}

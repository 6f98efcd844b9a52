// Package cli implements the code39 command-line interface.
//
// Commands:
//   - encode: print the module sequence of a text
//   - render: write SVG, PNG, JSON or module output
//   - preview: draw the barcode in the terminal
//   - serve: run the HTTP rendering service
//
// Defaults come from config.Default, then the file named by --config, then
// command flags.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ericlevine/code39/internal/buildinfo"
	"github.com/ericlevine/code39/internal/config"
	"github.com/ericlevine/code39/internal/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "code39",
		Short:        "code39 encodes text as Code 39 barcodes",
		Long:         `code39 turns text into Code 39 linear barcodes and renders them as SVG, PNG, JSON geometry or terminal art.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file with rendering defaults")

	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	return root
}

// loadConfig returns the defaults, overlaid with --config when given.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("loaded config", "path", c.configPath)
	return cfg, nil
}

// renderFlags are the layout flags shared by render and serve.
type renderFlags struct {
	format     string
	unit       float64
	height     float64
	quiet      float64
	scale      int
	strict     bool
	caption    bool
	barColor   string
	background string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	def := config.Default()
	flags := cmd.Flags()
	flags.StringVarP(&f.format, "format", "f", def.Format, "output format: svg, png, json, modules")
	flags.Float64Var(&f.unit, "unit", def.Unit, "narrow module width")
	flags.Float64Var(&f.height, "height", def.Height, "bar height")
	flags.Float64Var(&f.quiet, "quiet", def.QuietZone, "quiet zone on each side, in narrow modules")
	flags.IntVar(&f.scale, "scale", def.Scale, "raster pixels per unit (png)")
	flags.BoolVar(&f.strict, "strict", def.Strict, "reject characters outside the Code 39 alphabet")
	flags.BoolVar(&f.caption, "caption", def.Caption, "print the text under the bars")
	flags.StringVar(&f.barColor, "bar-color", def.BarColor, "bar and caption color (svg)")
	flags.StringVar(&f.background, "background", def.Background, "background color (svg)")
}

// apply overrides cfg with every flag the user set explicitly.
func (f *renderFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = f.format
	}
	if flags.Changed("unit") {
		cfg.Unit = f.unit
	}
	if flags.Changed("height") {
		cfg.Height = f.height
	}
	if flags.Changed("quiet") {
		cfg.QuietZone = f.quiet
	}
	if flags.Changed("scale") {
		cfg.Scale = f.scale
	}
	if flags.Changed("strict") {
		cfg.Strict = f.strict
	}
	if flags.Changed("caption") {
		cfg.Caption = f.caption
	}
	if flags.Changed("bar-color") {
		cfg.BarColor = f.barColor
	}
	if flags.Changed("background") {
		cfg.Background = f.background
	}
}

func (c *CLI) options(cmd *cobra.Command, f *renderFlags, text string) (pipeline.Options, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, err
	}
	f.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return pipeline.Options{}, fmt.Errorf("flags: %w", err)
	}
	return pipeline.FromConfig(cfg, text), nil
}

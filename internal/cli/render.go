package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericlevine/code39/internal/config"
	"github.com/ericlevine/code39/internal/pipeline"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags  renderFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "render TEXT",
		Short: "Render TEXT as SVG, PNG, JSON or modules",
		Long: `Render TEXT as a Code 39 barcode.

Without --output the result goes to stdout. With --output and no --format,
the format follows the file extension (.svg, .png, .json, .txt).`,
		Example: `  code39 render "FUAZ/23/AGR/0567" -o student.svg
  code39 render "fuaz/stf/00123" -o staff.png --scale 4 --no-caption`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && output != "-" && !cmd.Flags().Changed("format") {
				if f, ok := formatFromPath(output); ok {
					if err := cmd.Flags().Set("format", f); err != nil {
						return err
					}
				}
			}
			opts, err := c.options(cmd, &flags, args[0])
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			a, err := pipeline.Run(opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %d modules as %s", a.Modules, opts.Format))

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(a.Data)
				return err
			}
			if err := os.WriteFile(output, a.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(cmd.ErrOrStderr(), "Wrote %s", output)
			printDetail(cmd.ErrOrStderr(), "%s x %s, %d bars", num(a.Plan.Width), num(a.Plan.Height), len(a.Plan.Rects))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Bool("no-caption", false, "omit the text under the bars")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if noCaption, _ := cmd.Flags().GetBool("no-caption"); noCaption {
			return cmd.Flags().Set("caption", "false")
		}
		return nil
	}
	return cmd
}

// formatFromPath maps an output file extension to a format.
func formatFromPath(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return config.FormatSVG, true
	case ".png":
		return config.FormatPNG, true
	case ".json":
		return config.FormatJSON, true
	case ".txt":
		return config.FormatModules, true
	}
	return "", false
}

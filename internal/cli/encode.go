package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericlevine/code39"
)

const (
	encodeModules = "modules"
	encodeBits    = "bits"
	encodeJSON    = "json"
)

type moduleJSON struct {
	Kind  string `json:"kind"`
	Width string `json:"width"`
}

func (c *CLI) encodeCommand() *cobra.Command {
	var (
		format string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "encode TEXT",
		Short: "Print the bar/space modules of TEXT",
		Long: `Encode TEXT and print its module sequence.

Formats:
  modules  two letters per module: B/S for bar/space, n/w for narrow/wide
  bits     one character per narrow unit: X for bar, . for space
  json     an array of {"kind","width"} objects`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("strict") {
				cfg.Strict = strict
			}

			seq, err := code39.NewEncoder(cfg.Mode()).Encode(args[0])
			if err != nil {
				return err
			}
			c.Logger.Debug("encoded", "text", args[0], "modules", len(seq), "units", seq.Units())

			out := cmd.OutOrStdout()
			switch format {
			case encodeModules:
				_, err = fmt.Fprintln(out, seq.String())
			case encodeBits:
				_, err = fmt.Fprintln(out, seq.Row().String())
			case encodeJSON:
				ms := make([]moduleJSON, len(seq))
				for i, m := range seq {
					ms[i] = moduleJSON{Kind: m.Kind.String(), Width: m.Width.String()}
				}
				enc := json.NewEncoder(out)
				err = enc.Encode(ms)
			default:
				return fmt.Errorf("unknown encode format %q (want %s, %s or %s)", format, encodeModules, encodeBits, encodeJSON)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", encodeModules, "output format: modules, bits, json")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject characters outside the Code 39 alphabet")
	return cmd
}

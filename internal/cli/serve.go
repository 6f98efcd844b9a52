package cli

import (
	"github.com/spf13/cobra"

	"github.com/ericlevine/code39/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags renderFlags
		addr  string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve barcodes over HTTP",
		Long: `Serve barcodes over HTTP until interrupted.

Endpoints:
  GET  /healthz
  GET  /v1/code39/{text}?format=&unit=&height=&quiet=&scale=&strict=&caption=&bar_color=&background=
  POST /v1/code39/   {"text", "format", "unit", "height", "scale", "strict", "caption", "bar_color", "background"}

Render flags set the defaults for requests that omit a parameter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd, &cfg)
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return server.New(cfg, c.Logger).ListenAndServe(cmd.Context())
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

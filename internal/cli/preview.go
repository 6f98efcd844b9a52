package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ericlevine/code39"
)

const (
	previewPadX   = 4
	previewPadY   = 1
	previewFull   = "█"
	previewBlank  = " "
	defaultLines  = 4
	previewMargin = 2 * previewPadX
)

func (c *CLI) previewCommand() *cobra.Command {
	var (
		lines  int
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "preview TEXT",
		Short: "Draw TEXT as a barcode in the terminal",
		Long:  `Draw TEXT in the terminal, one column per narrow module. Refuses when the barcode is wider than the terminal.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("strict") {
				cfg.Strict = strict
			}
			if lines < 1 {
				return fmt.Errorf("lines must be at least 1, got %d", lines)
			}
			seq, err := code39.NewEncoder(cfg.Mode()).Encode(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cols, ok := terminalWidth(out); ok && seq.Units()+previewMargin > cols {
				return fmt.Errorf("barcode needs %d columns, terminal has %d", seq.Units()+previewMargin, cols)
			}
			caption := ""
			if cfg.Caption {
				caption = args[0]
			}
			_, err = fmt.Fprintln(out, preview(out, seq, lines, caption))
			return err
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", defaultLines, "bar height in terminal rows")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject characters outside the Code 39 alphabet")
	return cmd
}

// preview draws the sequence as dark-on-light block characters, one column
// per narrow unit, with the caption centered below.
func preview(w io.Writer, seq code39.Sequence, lines int, caption string) string {
	row := seq.Row()
	var sb strings.Builder
	for i := 0; i < row.Size(); i++ {
		if row.Get(i) {
			sb.WriteString(previewFull)
		} else {
			sb.WriteString(previewBlank)
		}
	}
	bars := make([]string, lines, lines+1)
	for i := range bars {
		bars[i] = sb.String()
	}
	if caption != "" {
		bars = append(bars, lipgloss.PlaceHorizontal(row.Size(), lipgloss.Center, caption))
	}

	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("15")).
		Padding(previewPadY, previewPadX)
	return style.Render(strings.Join(bars, "\n"))
}

// terminalWidth returns the column count when w is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, false
	}
	return cols, true
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"brewctl/internal/status"
)

var statusJSON bool

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output JSON report")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show brew and Brewfile status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if statusJSON {
			rep, err := status.Collect(cmd.Context(), nil)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}
		return runStatus(cmd.Context(), os.Stdout)
	},
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#03BF87"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// runStatus prints the plain-text status table.
func runStatus(ctx context.Context, w io.Writer) error {
	rep, err := status.Collect(ctx, nil)
	if err != nil {
		return err
	}

	rows := [][2]string{}
	if rep.BrewInstalled {
		v := rep.BrewVersion
		if v == "" {
			v = "unknown version"
		}
		rows = append(rows, [2]string{"brew", okStyle.Render("✓ "+v) + " " + dimStyle.Render(rep.BrewPath)})
	} else {
		rows = append(rows, [2]string{"brew", warnStyle.Render("× not installed")})
	}
	if rep.BrewfileFound {
		rows = append(rows, [2]string{"Brewfile", okStyle.Render("✓") + " " + rep.Brewfile})
		rows = append(rows, [2]string{"entries", fmt.Sprintf("%d taps, %d formulae, %d casks", rep.Taps, rep.Formulae, rep.Casks)})
	} else {
		rows = append(rows, [2]string{"Brewfile", warnStyle.Render("× missing") + " " + dimStyle.Render(rep.Brewfile)})
	}

	labelW := 0
	for _, r := range rows {
		if lw := runewidth.StringWidth(r[0]); lw > labelW {
			labelW = lw
		}
	}
	for _, r := range rows {
		pad := labelW - runewidth.StringWidth(r[0])
		fmt.Fprintf(w, "%s%s  %s\n", r[0], spaces(pad), r[1])
	}
	return nil
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

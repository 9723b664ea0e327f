package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"brewctl/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		p, _ := config.Path()
		bf, err := config.BrewfilePath(cfg)
		if err != nil {
			return err
		}
		out := map[string]any{
			"configFile":   p,
			"brewfile":     bf,
			"installerURL": cfg.InstallerURLOrDefault(),
			"package":      cfg.PackageOrDefault(),
			"legacy":       cfg.Legacy,
			"timeout":      cfg.Timeout().String(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"brewctl/internal/bootstrap"
	"brewctl/internal/config"
)

var (
	bootstrapLegacy  bool
	bootstrapTimeout time.Duration
	bootstrapPackage string
	bootstrapURL     string
)

func init() {
	rootCmd.AddCommand(bootstrapCmd)
	bootstrapCmd.Flags().BoolVar(&bootstrapLegacy, "legacy", false, "ignore fetch/install failures like the original install script")
	bootstrapCmd.Flags().DurationVar(&bootstrapTimeout, "timeout", 0, "overall timeout for the run (default 15m)")
	bootstrapCmd.Flags().StringVar(&bootstrapPackage, "package", "", "formula to install (default "+config.DefaultPackage+")")
	bootstrapCmd.Flags().StringVar(&bootstrapURL, "installer-url", "", "Homebrew installer script URL")
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Install Homebrew (if missing) and brew-file",
	Long: "Installs Homebrew from the official installer script when brew is not on PATH, " +
		"installs the brew-file formula, and runs `brew doctor` after a fresh Homebrew install. " +
		"Exit codes: 0 ok, 1 failed doctor, 2 failed fetch/install (strict mode).",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		opts := bootstrap.Options{
			InstallerURL: cfg.InstallerURLOrDefault(),
			Package:      cfg.PackageOrDefault(),
			Out:          cmd.OutOrStdout(),
		}
		if bootstrapURL != "" {
			opts.InstallerURL = bootstrapURL
		}
		if bootstrapPackage != "" {
			opts.Package = bootstrapPackage
		}
		if bootstrapLegacy || cfg.Legacy {
			opts.Mode = bootstrap.Legacy
		}
		timeout := cfg.Timeout()
		if bootstrapTimeout > 0 {
			timeout = bootstrapTimeout
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		// Execute maps DiagnosticError to exit 1 and StepError to
		// exit 2; the deferred stop/cancel must run first.
		return bootstrap.Run(ctx, opts)
	},
}

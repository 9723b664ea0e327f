package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"brewctl/internal/app"
	"brewctl/internal/bootstrap"
)

var rootPlain bool

var rootCmd = &cobra.Command{
	Use:   "brewctl",
	Short: "brewctl – Homebrew bootstrap & Brewfile manager",
	Long:  "brewctl bootstraps Homebrew and brew-file, and keeps installed packages in sync with a Brewfile.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if rootPlain {
			return runStatus(cmd.Context(), os.Stdout)
		}
		// Default action: launch the status dashboard
		return app.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&rootPlain, "plain", false, "print status as plain text instead of the dashboard")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode keeps the bootstrap exit-code contract: 1 for a failed
// diagnostic, 2 for surfaced fetch/install failures, 1 otherwise.
func exitCode(err error) int {
	var de *bootstrap.DiagnosticError
	if errors.As(err, &de) {
		return bootstrap.ExitDiagnostic
	}
	var se *bootstrap.StepError
	if errors.As(err, &se) {
		return bootstrap.ExitInstall
	}
	return 1
}

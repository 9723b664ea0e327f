package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"brewctl/internal/bootstrap"
	"brewctl/internal/brew"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run `brew doctor` and report its findings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b := brew.New()
		if _, ok := b.Detect(); !ok {
			return fmt.Errorf("brew not found on PATH (run `brewctl bootstrap` first)")
		}
		res, err := b.Doctor(cmd.Context())
		if err != nil {
			return err
		}
		if res.Ok() {
			fmt.Println("Your system is ready to brew.")
			return nil
		}

		md := "# " + bootstrap.Advisory + "\n\n`brew doctor` reported:\n\n```\n" + res.Output + "\n```\n"
		if out, rerr := glamour.Render(md, "auto"); rerr == nil {
			fmt.Print(out)
		} else {
			fmt.Println(bootstrap.Advisory)
			fmt.Println(res.Output)
		}
		// Execute maps this to exit code 1.
		return &bootstrap.DiagnosticError{ExitCode: res.ExitCode, Output: res.Output}
	},
}

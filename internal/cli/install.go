package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"brewctl/internal/brew"
	"brewctl/internal/runner"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install everything listed in the Brewfile",
	Long:  "Runs before-commands, taps, formulae (with their options), casks and after-commands from the Brewfile, in that order.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, bf, err := loadBrewfile()
		if err != nil {
			return err
		}
		fmt.Printf("Applying %s\n", path)
		b := brew.New()
		if _, ok := b.Detect(); !ok {
			return fmt.Errorf("brew not found on PATH (run `brewctl bootstrap` first)")
		}

		failed := 0
		total := len(bf.Before) + len(bf.Taps) + len(bf.Brews) + len(bf.Casks) + len(bf.After)
		n := 0
		step := func(label string, run func(ctx context.Context) (runner.Result, error)) {
			n++
			fmt.Printf("[%d/%d] %s\n", n, total, label)
			ctx, cancel := context.WithTimeout(cmd.Context(), stepTimeout)
			res, err := run(ctx)
			cancel()
			if err != nil {
				fmt.Printf("  × %v\n", err)
				failed++
				return
			}
			if !res.Ok() {
				fmt.Printf("  × exited %d\n", res.ExitCode)
				for _, ln := range res.Lines() {
					fmt.Printf("    %s\n", ln)
				}
				failed++
				return
			}
			fmt.Println("  ✓ done")
		}

		for _, c := range bf.Before {
			c := c
			step("before: "+c, func(ctx context.Context) (runner.Result, error) {
				return runner.Run(ctx, runner.ShellScript(c))
			})
		}
		for _, t := range bf.Taps {
			t := t
			step("tap "+t, func(ctx context.Context) (runner.Result, error) {
				return b.Tap(ctx, t)
			})
		}
		for _, f := range bf.Brews {
			f := f
			label := "brew " + f.Name
			if f.Options != "" {
				label += " " + f.Options
			}
			step(label, func(ctx context.Context) (runner.Result, error) {
				return b.Install(ctx, f.Name, strings.Fields(f.Options)...)
			})
		}
		for _, c := range bf.Casks {
			c := c
			step("cask "+c, func(ctx context.Context) (runner.Result, error) {
				return b.InstallCask(ctx, c)
			})
		}
		for _, c := range bf.After {
			c := c
			step("after: "+c, func(ctx context.Context) (runner.Result, error) {
				return runner.Run(ctx, runner.ShellScript(c))
			})
		}

		if failed > 0 {
			return fmt.Errorf("install finished with %d failure(s)", failed)
		}
		fmt.Println("All Brewfile entries installed.")
		return nil
	},
}

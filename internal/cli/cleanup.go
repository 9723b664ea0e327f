package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"brewctl/internal/brew"
)

var cleanupYes bool

func init() {
	rootCmd.AddCommand(cleanupCmd)
	cleanupCmd.Flags().BoolVarP(&cleanupYes, "yes", "y", false, "uninstall without asking")
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Uninstall packages that are not listed in the Brewfile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, bf, err := loadBrewfile()
		if err != nil {
			return err
		}
		b := brew.New()
		if _, ok := b.Detect(); !ok {
			return fmt.Errorf("brew not found on PATH (run `brewctl bootstrap` first)")
		}
		ctx := cmd.Context()
		leaves, err := b.Leaves(ctx)
		if err != nil {
			return err
		}
		casks, err := b.ListCasks(ctx)
		if err != nil {
			return err
		}

		listed := map[string]bool{}
		for _, f := range bf.Brews {
			listed[f.Name] = true
		}
		for _, c := range bf.Casks {
			listed[c] = true
		}
		var extras []string
		for _, name := range append(leaves, casks...) {
			if !listed[name] {
				extras = append(extras, name)
			}
		}
		if len(extras) == 0 {
			fmt.Println("Nothing to clean up.")
			return nil
		}

		fmt.Println("Not in the Brewfile:")
		for _, name := range extras {
			fmt.Printf("  %s\n", name)
		}
		if !cleanupYes {
			ok := false
			confirm := huh.NewConfirm().
				Title(fmt.Sprintf("Uninstall %d package(s)?", len(extras))).
				Value(&ok)
			if err := confirm.Run(); err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		failed := 0
		for i, name := range extras {
			fmt.Printf("[%d/%d] uninstall %s\n", i+1, len(extras), name)
			sctx, cancel := context.WithTimeout(ctx, stepTimeout)
			res, err := b.Uninstall(sctx, name)
			cancel()
			if err != nil || !res.Ok() {
				fmt.Println("  × failed")
				failed++
				continue
			}
			fmt.Println("  ✓ removed")
		}
		if failed > 0 {
			return fmt.Errorf("cleanup finished with %d failure(s)", failed)
		}
		return nil
	},
}

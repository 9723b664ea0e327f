package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"brewctl/internal/brew"
	"brewctl/internal/brewfile"
)

var dumpForce bool

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().BoolVarP(&dumpForce, "force", "f", false, "overwrite an existing Brewfile without asking")
}

var dumpCmd = &cobra.Command{
	Use:     "dump",
	Aliases: []string{"init"},
	Short:   "Write the Brewfile from the currently installed packages",
	Long:    "Collects taps, requested formulae (brew leaves) and casks, and writes them as a sorted Brewfile.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := brewfilePath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !dumpForce {
			ok := false
			confirm := huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite %s?", path)).
				Value(&ok)
			if err := confirm.Run(); err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		b := brew.New()
		if _, ok := b.Detect(); !ok {
			return fmt.Errorf("brew not found on PATH (run `brewctl bootstrap` first)")
		}
		ctx := cmd.Context()
		taps, err := b.ListTaps(ctx)
		if err != nil {
			return err
		}
		leaves, err := b.Leaves(ctx)
		if err != nil {
			return err
		}
		casks, err := b.ListCasks(ctx)
		if err != nil {
			return err
		}

		bf := &brewfile.File{Taps: taps, Casks: casks}
		for _, name := range leaves {
			bf.Brews = append(bf.Brews, brewfile.Formula{Name: name})
		}
		if err := brewfile.Save(path, bf); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d taps, %d formulae, %d casks)\n", path, len(bf.Taps), len(bf.Brews), len(bf.Casks))
		return nil
	},
}

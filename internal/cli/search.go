package cli

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Fuzzy-search entries in the Brewfile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, bf, err := loadBrewfile()
		if err != nil {
			return err
		}
		entries := bf.Entries()
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		matches := fuzzy.Find(args[0], names)
		if len(matches) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		for _, m := range matches {
			e := entries[m.Index]
			fmt.Printf("%-9s %s\n", e.Kind, e.Name)
		}
		return nil
	},
}

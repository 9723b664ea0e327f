package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"brewctl/internal/config"
)

func init() {
	configCmd.AddCommand(configSchemaCmd)
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for config.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := config.MarshalSchema(config.Schema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/irah/galleria-icongen/internal/config"
)

// configCmd prints the built-in constants
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the generator constants as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Default().Encode(cmd.OutOrStdout())
	},
}

package cmd

import (
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// RootCmd represents the base command; run without a subcommand it generates the icons
var RootCmd = &cobra.Command{
	Use:   "icongen",
	Short: "Generate the Galleria launcher icons",
	Long: `Icongen draws the Galleria launcher icon (a stack of photos on a purple gradient)
and writes the round and standard PNG variants for every mipmap density bucket.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			colorize.NoColor = true
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(configCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/irah/galleria-icongen/internal/config"
	"github.com/irah/galleria-icongen/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [res_dir]",
	Short: "Validate a generated resource directory",
	Long: `Validate checks that every mipmap directory holds both launcher icons, that each
is a PNG with an alpha channel at the bucket's exact size, and that the corners are masked.
Without an argument the default resource directory is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if len(args) == 1 {
			cfg.ResDir = args[0]
		}
		return validate(cmd, cfg)
	},
}

func validate(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	v := validator.NewValidator(cfg)
	results, err := v.Validate()
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	fmt.Fprintln(out, "Validation Results:")
	fmt.Fprintln(out, "-------------------")

	if len(results.Errors) == 0 {
		fmt.Fprintf(out, "%s '%s' holds all %d icons.\n",
			colorize.GreenString("OK"), cfg.ResDir, len(cfg.Tiers)*len(v.Files))
	} else {
		fmt.Fprintf(out, "%s '%s' has %d validation errors:\n",
			colorize.RedString("FAIL"), cfg.ResDir, len(results.Errors))
		for i, e := range results.Errors {
			fmt.Fprintf(out, "%d. %s\n", i+1, e)
		}
	}

	if len(results.Warnings) > 0 {
		fmt.Fprintln(out, colorize.YellowString("\nWarnings:"))
		for i, warn := range results.Warnings {
			fmt.Fprintf(out, "%d. %s\n", i+1, warn)
		}
	}

	if len(results.Errors) > 0 {
		return fmt.Errorf("validation failed")
	}
	return nil
}

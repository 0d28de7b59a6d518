package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/irah/galleria-icongen/internal/config"
	"github.com/irah/galleria-icongen/internal/deck"
	"github.com/irah/galleria-icongen/internal/export"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compose the master icon and write every density variant",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func runGenerate(cmd *cobra.Command) error {
	return generate(cmd, config.Default())
}

func generate(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Generating Master Icon...")
	master, err := deck.Compose(cfg)
	if err != nil {
		return fmt.Errorf("error composing master icon: %w", err)
	}

	_, err = export.New(cfg).Run(master, func(r export.Result) {
		fmt.Fprintf(out, "%s %s: %dx%d\n",
			colorize.GreenString("Generated"), colorize.HiWhiteString(r.Tier.Name), r.Tier.Size, r.Tier.Size)
	})
	if err != nil {
		return fmt.Errorf("error exporting icons: %w", err)
	}

	fmt.Fprintln(out, colorize.CyanString("Icons written to: ")+cfg.ResDir)
	return nil
}

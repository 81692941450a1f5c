package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/svgtint/internal/cli"
	"github.com/spf13/cobra"
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply [instruction]",
	Short: "Apply a gradient instruction to an SVG document",
	Long: `Parses the styling instruction, embeds the resulting gradient into the
input document and binds the target shape's fill to it.

The document is read from --input (or Stdin) and written to --output (or Stdout).`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		debug, _ := cmd.Flags().GetBool("debug")
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		pretty, _ := cmd.Flags().GetBool("pretty")

		mode := cfg.Mode
		if cmd.Flags().Changed("mode") {
			mode, _ = cmd.Flags().GetString("mode")
		}

		opts := cli.ApplyOptions{
			Instruction: strings.Join(args, " "),
			InputPath:   input,
			OutputPath:  output,
			Mode:        mode,
			LogLevel:    cfg.LogLevel,
			Pretty:      pretty,
			Debug:       debug,
		}

		if err := cli.RunApply(cmd.Context(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringP("input", "i", "", "Input SVG file (default Stdin)")
	applyCmd.Flags().StringP("output", "o", "", "Output SVG file (default Stdout)")
	applyCmd.Flags().String("mode", "", "Rewriter mode: 'pattern' or 'structural' (overrides config)")
	applyCmd.Flags().Bool("pretty", false, "Print a rendered summary of the applied gradient")
}

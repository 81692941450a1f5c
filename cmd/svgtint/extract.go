package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/svgtint/internal/cli"
	"github.com/spf13/cobra"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [instruction]",
	Short: "Parse an instruction and print the gradient spec",
	Long: `Parses the styling instruction and prints the extracted gradient spec
without rewriting any document. Unrecognized input degrades to defaults.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		debug, _ := cmd.Flags().GetBool("debug")
		format, _ := cmd.Flags().GetString("format")

		opts := cli.ExtractOptions{
			Instruction: strings.Join(args, " "),
			Format:      format,
			LogLevel:    cfg.LogLevel,
			Debug:       debug,
		}

		if err := cli.RunExtract(cmd.Context(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("format", "f", "yaml", "Output format: 'yaml' or 'json'")
}

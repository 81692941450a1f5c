package main

import (
	"fmt"
	"os"

	"github.com/aretw0/svgtint/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "svgtint",
	Short: "svgtint applies gradient styling instructions to SVG documents",
	Long: `svgtint turns free-text styling instructions like
"vertical gradient from #ff0000 to #0000ff on the rect" into gradient
definitions and rewrites SVG documents to use them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "svgtint.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// loadConfig resolves the configuration for a command invocation.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/svgtint"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of svgtint",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("svgtint version %s\n", strings.TrimSpace(svgtint.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/wallethunt"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wallethunt",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wallethunt version %s\n", strings.TrimSpace(wallethunt.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"

	"github.com/aretw0/tradein/internal/cli"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tradein",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tradein version %s\n", cli.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"

	"github.com/aretw0/gameinput"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gameinput",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gameinput version %s\n", gameinput.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"github.com/aretw0/gameinput/internal/cli"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play a short number guessing game",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunDemo(cmd.Context(), globalOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

package main

import (
	"github.com/aretw0/gameinput/internal/cli"
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form FILE",
	Short: "Run a questionnaire and print the answers as YAML",
	Long:  `Loads a YAML (or .json) questionnaire, asks every question in order on stderr and writes the answers to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunForm(cmd.Context(), globalOptions(cmd), args[0])
	},
}

func init() {
	rootCmd.AddCommand(formCmd)
}

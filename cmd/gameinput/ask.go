package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/gameinput/internal/cli"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask KIND MESSAGE",
	Short: "Ask a single question and print the answer",
	Long: fmt.Sprintf(`Runs one prompt until a valid answer is entered.
Prompts and diagnostics go to stderr; the accepted value is printed on stdout.

KIND is one of: %s`, strings.Join(cli.AskKinds, ", ")),
	Args:      cobra.ExactArgs(2),
	ValidArgs: cli.AskKinds,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		a := cli.AskOptions{Kind: args[0], Message: args[1]}
		a.Numeric, _ = flags.GetBool("numeric")
		a.Min, _ = flags.GetString("min")
		a.Max, _ = flags.GetString("max")
		a.Sep, _ = flags.GetString("sep")
		a.Count, _ = flags.GetInt("count")
		a.CountMin, _ = flags.GetInt("count-min")
		a.CountMax, _ = flags.GetInt("count-max")
		a.Float, _ = flags.GetBool("float")
		return cli.RunAsk(cmd.Context(), globalOptions(cmd), a)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().Bool("numeric", false, "Accept 1/0 instead of yes/no for bool prompts")
	askCmd.Flags().String("min", "", "Lower bound for range and multi-number prompts")
	askCmd.Flags().String("max", "", "Upper bound for range and multi-number prompts")
	askCmd.Flags().String("sep", ",", "Separator for multi prompts")
	askCmd.Flags().Int("count", 0, "Exact number of units for multi prompts")
	askCmd.Flags().Int("count-min", 0, "Minimum number of units for multi prompts (needs --count-max)")
	askCmd.Flags().Int("count-max", 0, "Maximum number of units for multi prompts")
	askCmd.Flags().Bool("float", false, "Parse numbers as floating point")
	askCmd.MarkFlagsMutuallyExclusive("count", "count-min")
	askCmd.MarkFlagsMutuallyExclusive("count", "count-max")
}

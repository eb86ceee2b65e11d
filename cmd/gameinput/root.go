package main

import (
	"fmt"
	"os"

	"github.com/aretw0/gameinput"
	"github.com/aretw0/gameinput/internal/cli"
	"github.com/aretw0/gameinput/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gameinput",
	Short: "Gameinput asks validated questions on the terminal",
	Long:  `Gameinput runs single prompts, YAML questionnaires and a small demo game using retry-until-valid input loops.`,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout(), gameinput.Version)
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalOptions reads the persistent flags shared by every subcommand.
func globalOptions(cmd *cobra.Command) cli.Options {
	debug, _ := cmd.Flags().GetBool("debug")
	metrics, _ := cmd.Flags().GetBool("metrics")
	markdown, _ := cmd.Flags().GetBool("markdown")
	echo, _ := cmd.Flags().GetBool("echo")
	return cli.Options{
		Debug:    debug,
		Metrics:  metrics,
		Markdown: markdown,
		Echo:     echo,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		Err:      cmd.ErrOrStderr(),
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Bool("metrics", false, "Log prompt metric totals on exit")
	rootCmd.PersistentFlags().Bool("markdown", false, "Render instructions as markdown")
	rootCmd.PersistentFlags().Bool("echo", false, "Echo input lines read from a non-terminal")
	rootCmd.SilenceUsage = true
}

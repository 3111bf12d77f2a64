package cmd

import (
	"fmt"
	"os"

	"github.com/spendwise/cli/pkg/config"
	"github.com/spendwise/cli/pkg/logger"
	"github.com/spendwise/cli/pkg/output"
	"github.com/spendwise/cli/pkg/prefs"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "spendwise",
	Short: "Spendwise CLI - Personal expense tracking",
	Long: `Spendwise CLI is a command-line client for the Spendwise expense
tracking service. Log expenses, explore spending analytics, follow
other users, and manage your preferences from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		// Display preferences load once per process and apply everywhere
		prefs.Init()
		output.ApplyTheme(prefs.Theme())

		if !output.ValidateOutputFormat(outputFmt) {
			fmt.Fprintf(os.Stderr, "Error: invalid output format %q (text, json, table)\n", outputFmt)
			os.Exit(1)
		}
		config.Set("output.format", outputFmt)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/spendwise/cli/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(expenseCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(recurringCmd)
	rootCmd.AddCommand(breakdownCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(versionCmd)
}

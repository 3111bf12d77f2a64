package cmd

import (
	"github.com/spendwise/cli/pkg/service"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage display preferences",
	Long:  "Configure the hide-amounts flag, the color theme, and inspect configuration",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSettingsService()
		return svc.Show()
	},
}

var settingsHideAmountsCmd = &cobra.Command{
	Use:       "hide-amounts on|off",
	Short:     "Mask or unmask monetary amounts in output",
	ValidArgs: []string{"on", "off"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSettingsService()
		return svc.SetHideAmounts(args[0] == "on")
	},
}

var settingsThemeCmd = &cobra.Command{
	Use:       "theme light|dark|system",
	Short:     "Switch the color theme",
	ValidArgs: []string{"light", "dark", "system"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSettingsService()
		return svc.SetTheme(args[0])
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsHideAmountsCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
}

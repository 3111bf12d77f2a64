package cmd

import (
	"github.com/spendwise/cli/pkg/service"
	"github.com/spf13/cobra"
)

var loginEmail string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Manage your Spendwise session",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to Spendwise",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAuthService()
		return svc.Login(cmd.Context(), loginEmail)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and clear the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAuthService()
		return svc.Logout(cmd.Context())
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAuthService()
		return svc.Status(cmd.Context())
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address (prompted if omitted)")

	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(authStatusCmd)
}

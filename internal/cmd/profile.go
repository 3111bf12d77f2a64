package cmd

import (
	"github.com/spendwise/cli/pkg/service"
	"github.com/spf13/cobra"
)

var followPage int

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "User profile commands",
	Long:  "View and manage user profiles and the follow graph",
}

var profileViewCmd = &cobra.Command{
	Use:   "view [username]",
	Short: "View a user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		username := ""
		if len(args) > 0 {
			username = args[0]
		}
		svc := service.NewProfileService()
		return svc.ViewProfile(cmd.Context(), username)
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewProfileService()
		return svc.EditProfile(cmd.Context())
	},
}

var profileFollowCmd = &cobra.Command{
	Use:   "follow <username>",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewProfileService()
		return svc.FollowUser(cmd.Context(), args[0])
	},
}

var profileUnfollowCmd = &cobra.Command{
	Use:   "unfollow <username>",
	Short: "Unfollow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewProfileService()
		return svc.UnfollowUser(cmd.Context(), args[0])
	},
}

var profileFollowersCmd = &cobra.Command{
	Use:   "followers [username]",
	Short: "List followers of a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		username := ""
		if len(args) > 0 {
			username = args[0]
		}
		svc := service.NewProfileService()
		return svc.Followers(cmd.Context(), username, followPage)
	},
}

var profileFollowingCmd = &cobra.Command{
	Use:   "following [username]",
	Short: "List users someone is following",
	RunE: func(cmd *cobra.Command, args []string) error {
		username := ""
		if len(args) > 0 {
			username = args[0]
		}
		svc := service.NewProfileService()
		return svc.Following(cmd.Context(), username, followPage)
	},
}

func init() {
	for _, c := range []*cobra.Command{profileFollowersCmd, profileFollowingCmd} {
		c.Flags().IntVar(&followPage, "page", 1, "Page number")
	}

	profileCmd.AddCommand(profileViewCmd)
	profileCmd.AddCommand(profileEditCmd)
	profileCmd.AddCommand(profileFollowCmd)
	profileCmd.AddCommand(profileUnfollowCmd)
	profileCmd.AddCommand(profileFollowersCmd)
	profileCmd.AddCommand(profileFollowingCmd)
}

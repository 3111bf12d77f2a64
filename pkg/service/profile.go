package service

import (
	"context"
	"fmt"

	"github.com/spendwise/cli/pkg/api"
	"github.com/spendwise/cli/pkg/client"
	"github.com/spendwise/cli/pkg/formatter"
	"github.com/spendwise/cli/pkg/prompter"
	"github.com/spendwise/cli/pkg/session"
)

const followPageSize = 20

type ProfileService struct{}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// ViewProfile shows a user's profile; empty username means the
// current user
func (s *ProfileService) ViewProfile(ctx context.Context, username string) error {
	client.Init()

	var user *api.User
	var err error
	if username == "" {
		user, err = api.GetCurrentUser(ctx)
	} else {
		user, err = api.GetUserProfile(ctx, username)
	}
	if err != nil {
		switch {
		case api.IsNotFound(err):
			formatter.PrintError("User not found: %s", username)
		case api.IsForbidden(err):
			formatter.PrintError("This profile is private")
		default:
			formatter.PrintError("Failed to fetch profile: %v", err)
		}
		return err
	}

	fmt.Println()
	keyValues := map[string]interface{}{
		"Username":     user.Username,
		"Display Name": user.DisplayName,
		"Bio":          user.Bio,
		"Followers":    user.FollowerCount,
		"Following":    user.FollowingCount,
		"Expenses":     user.ExpenseCount,
		"Private":      user.IsPrivate,
		"Joined":       user.CreatedAt.Format("2006-01-02"),
	}
	if username != "" && user.IsFollowing {
		keyValues["You follow them"] = "yes"
	}
	formatter.PrintKeyValue(keyValues)

	return nil
}

// EditProfile edits the current user's profile interactively
func (s *ProfileService) EditProfile(ctx context.Context) error {
	sess, err := session.Load()
	if err != nil {
		return err
	}
	if sess == nil || !sess.IsValid() {
		formatter.PrintError("Not logged in. Please run 'spendwise auth login'")
		return fmt.Errorf("not authenticated")
	}

	client.Init()

	user, err := api.GetCurrentUser(ctx)
	if err != nil {
		formatter.PrintError("Failed to fetch current profile: %v", err)
		return err
	}

	fmt.Println()
	formatter.PrintInfo("Editing profile (leave blank to keep current value)")
	fmt.Println()

	displayName, _ := prompter.PromptString("Display Name [" + user.DisplayName + "]: ")
	if displayName == "" {
		displayName = user.DisplayName
	}

	bio, _ := prompter.PromptString("Bio [" + user.Bio + "]: ")
	if bio == "" {
		bio = user.Bio
	}

	updated, err := api.UpdateProfile(ctx, api.UpdateProfileRequest{
		DisplayName: displayName,
		Bio:         bio,
	})
	if err != nil {
		formatter.PrintError("Failed to update profile: %v", err)
		return err
	}

	formatter.PrintSuccess("Profile updated")
	formatter.PrintKeyValue(map[string]interface{}{
		"Display Name": updated.DisplayName,
		"Bio":          updated.Bio,
	})
	return nil
}

// FollowUser follows a user
func (s *ProfileService) FollowUser(ctx context.Context, username string) error {
	client.Init()

	if err := api.Follow(ctx, username); err != nil {
		if api.IsNotFound(err) {
			formatter.PrintError("User not found: %s", username)
		} else {
			formatter.PrintError("Failed to follow %s: %v", username, err)
		}
		return err
	}

	formatter.PrintSuccess("Now following %s", username)
	return nil
}

// UnfollowUser unfollows a user
func (s *ProfileService) UnfollowUser(ctx context.Context, username string) error {
	client.Init()

	if err := api.Unfollow(ctx, username); err != nil {
		formatter.PrintError("Failed to unfollow %s: %v", username, err)
		return err
	}

	formatter.PrintSuccess("Unfollowed %s", username)
	return nil
}

// Followers lists a user's followers
func (s *ProfileService) Followers(ctx context.Context, username string, page int) error {
	return s.followList(ctx, username, "followers", page)
}

// Following lists who a user follows
func (s *ProfileService) Following(ctx context.Context, username string, page int) error {
	return s.followList(ctx, username, "following", page)
}

func (s *ProfileService) followList(ctx context.Context, username, kind string, page int) error {
	client.Init()

	if username == "" {
		username = "me"
	}

	var users []api.User
	var total int
	var err error
	if kind == "followers" {
		users, total, err = api.GetFollowers(ctx, username, page, followPageSize)
	} else {
		users, total, err = api.GetFollowing(ctx, username, page, followPageSize)
	}
	if err != nil {
		formatter.PrintError("Failed to fetch %s: %v", kind, err)
		return err
	}

	if len(users) == 0 {
		formatter.PrintInfo("No %s to show", kind)
		return nil
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.Username, u.DisplayName, fmt.Sprintf("%d followers", u.FollowerCount)})
	}
	formatter.PrintTable([]string{"Username", "Name", "Followers"}, rows)

	fmt.Println()
	formatter.PrintInfo("Page %d, %d total", page, total)
	return nil
}

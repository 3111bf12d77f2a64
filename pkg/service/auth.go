package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spendwise/cli/pkg/api"
	"github.com/spendwise/cli/pkg/client"
	"github.com/spendwise/cli/pkg/formatter"
	"github.com/spendwise/cli/pkg/prompter"
	"github.com/spendwise/cli/pkg/session"
)

type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login prompts for credentials, authenticates, and persists the
// session cookie the server sets
func (s *AuthService) Login(ctx context.Context, email string) error {
	var err error
	if email == "" {
		email, err = prompter.PromptString("Email: ")
		if err != nil {
			return err
		}
	}
	if email == "" {
		formatter.PrintError("Email is required")
		return fmt.Errorf("email required")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}

	client.ClearSession()

	user, cookie, err := api.Login(ctx, email, password)
	if err != nil {
		formatter.PrintError("Login failed: %v", err)
		return err
	}
	if cookie == nil {
		formatter.PrintError("Server did not establish a session")
		return fmt.Errorf("no session cookie in login response")
	}

	sess := &session.Session{
		CookieName:  cookie.Name,
		CookieValue: cookie.Value,
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
	}
	if !cookie.Expires.IsZero() {
		sess.ExpiresAt = cookie.Expires
	}
	if err := session.Save(sess); err != nil {
		formatter.PrintError("Failed to save session: %v", err)
		return err
	}

	client.SetSessionCookie(cookie.Name, cookie.Value)

	formatter.PrintSuccess("Logged in as %s", user.Username)
	return nil
}

// Logout ends the server session (best effort) and clears local state
func (s *AuthService) Logout(ctx context.Context) error {
	client.Init()

	if err := api.Logout(ctx); err != nil {
		// Local state still gets cleared
		formatter.PrintWarning("Server logout failed: %v", err)
	}

	if err := session.Clear(); err != nil {
		formatter.PrintError("Failed to clear session: %v", err)
		return err
	}
	client.ClearSession()

	formatter.PrintSuccess("Logged out")
	return nil
}

// Status shows whether a usable session exists and who it belongs to
func (s *AuthService) Status(ctx context.Context) error {
	sess, err := session.Load()
	if err != nil {
		formatter.PrintError("Failed to read session: %v", err)
		return err
	}

	if sess == nil || !sess.IsValid() {
		formatter.PrintInfo("Not logged in. Run 'spendwise auth login'")
		return nil
	}

	client.Init()

	user, err := api.GetCurrentUser(ctx)
	if err != nil {
		formatter.PrintWarning("Session on disk but the server rejected it: %v", err)
		return err
	}

	keyValues := map[string]interface{}{
		"Username":     user.Username,
		"Email":        user.Email,
		"Member since": user.CreatedAt.Format("2006-01-02"),
	}
	if !sess.ExpiresAt.IsZero() {
		keyValues["Session expires"] = sess.ExpiresAt.Format(time.RFC1123)
	}
	formatter.PrintKeyValue(keyValues)
	return nil
}

package session

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spendwise/cli/pkg/config"
)

// Session is the persisted cookie-based API session
type Session struct {
	CookieName  string    `json:"cookie_name"`
	CookieValue string    `json:"cookie_value"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
}

// Load loads the session from disk
func Load() (*Session, error) {
	path := config.GetSessionPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Not logged in yet
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

// Save saves the session to disk
func Save(sess *Session) error {
	path := config.GetSessionPath()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	// Owner read/write only
	return os.WriteFile(path, data, 0600)
}

// Clear deletes the persisted session. Clearing an absent session is
// not an error.
func Clear() error {
	err := os.Remove(config.GetSessionPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsExpired checks if the session cookie is expired
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// IsValid checks if the session is usable for authenticated requests
func (s *Session) IsValid() bool {
	return s.CookieValue != "" && !s.IsExpired()
}

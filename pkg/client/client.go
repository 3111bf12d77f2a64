// Package client owns the shared resty client every API call goes
// through. It attaches the persisted session cookie to each request and
// translates 401 responses into a cleared session plus a login hint,
// the CLI equivalent of the web client's redirect-to-login interceptor.
package client

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	"github.com/spendwise/cli/pkg/config"
	"github.com/spendwise/cli/pkg/logger"
	"github.com/spendwise/cli/pkg/session"
)

// ErrSessionExpired is returned for any 401 response after the local
// session has been cleared.
var ErrSessionExpired = errors.New("session expired: run 'spendwise auth login'")

// Error codes the server may attach to a 401 body. These two are
// surfaced to the user as a notice before the login hint.
const (
	CodeSessionExpired     = "session_expired"
	CodeAccountDeactivated = "account_deactivated"
)

// SessionExpiredNotice carries the server's named reason for a 401
type SessionExpiredNotice struct {
	Code string
}

func (e *SessionExpiredNotice) Error() string {
	switch e.Code {
	case CodeAccountDeactivated:
		return "your account has been deactivated; contact support, then run 'spendwise auth login'"
	default:
		return "your session has expired; run 'spendwise auth login'"
	}
}

func (e *SessionExpiredNotice) Unwrap() error { return ErrSessionExpired }

var httpClient *resty.Client

// Init initializes the HTTP client
func Init() {
	httpClient = newClient()

	// Attach the persisted session cookie, if any
	if sess, err := session.Load(); err == nil && sess != nil && sess.IsValid() {
		httpClient.SetCookie(&http.Cookie{Name: sess.CookieName, Value: sess.CookieValue})
	}
}

func newClient() *resty.Client {
	c := resty.New()

	c.SetBaseURL(config.GetString("api.base_url"))
	c.SetTimeout(time.Duration(config.GetInt("api.timeout")) * time.Second)
	c.SetHeader("User-Agent", "Spendwise-CLI/0.1.0")

	c.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		req.Header.Set("X-Request-ID", uuid.NewString())
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	c.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())
		if resp.StatusCode() == http.StatusUnauthorized {
			return handleUnauthorized(resp)
		}
		return nil
	})

	return c
}

// handleUnauthorized clears the local session and maps the response to
// a session-expired error, surfacing a named code when the body has one.
func handleUnauthorized(resp *resty.Response) error {
	if err := session.Clear(); err != nil {
		logger.Warn("Failed to clear session", "error", err)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Code == CodeSessionExpired || body.Code == CodeAccountDeactivated {
			return &SessionExpiredNotice{Code: body.Code}
		}
	}
	return ErrSessionExpired
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetSessionCookie sets the session cookie for subsequent requests
func SetSessionCookie(name, value string) {
	if httpClient == nil {
		Init()
	}
	httpClient.SetCookie(&http.Cookie{Name: name, Value: value})
}

// ClearSession re-initializes the client without any session cookie
func ClearSession() {
	httpClient = newClient()
}

// SetBaseURL overrides the configured base URL. Used by tests to point
// the client at an httptest server.
func SetBaseURL(url string) {
	if httpClient == nil {
		Init()
	}
	httpClient.SetBaseURL(url)
}

// BaseURL returns the client's current base URL
func BaseURL() string {
	return GetClient().BaseURL
}

package api

import (
	"context"
	"net/http"

	json "github.com/json-iterator/go"
	"github.com/spendwise/cli/pkg/client"
	"github.com/spendwise/cli/pkg/logger"
)

// Login authenticates with email and password. The server establishes
// a cookie session; the session cookie is returned alongside the user
// so the caller can persist it.
func Login(ctx context.Context, email, password string) (*User, *http.Cookie, error) {
	logger.Debug("Attempting login", "email", email)

	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, nil, err
	}

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/api/auth/login")

	if err := CheckResponse(resp, err); err != nil {
		return nil, nil, err
	}

	var loginResp LoginResponse
	if err := json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return nil, nil, err
	}

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "session" || c.Name == "spendwise_session" {
			sessionCookie = c
			break
		}
	}

	logger.Debug("Login successful", "username", loginResp.User.Username)
	return &loginResp.User, sessionCookie, nil
}

// Logout ends the server-side session
func Logout(ctx context.Context) error {
	logger.Debug("Logging out")

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		Post("/api/auth/logout")

	return CheckResponse(resp, err)
}

// GetCurrentUser gets the currently authenticated user
func GetCurrentUser(ctx context.Context) (*User, error) {
	logger.Debug("Fetching current user")

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		Get("/api/auth/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var profileResp ProfileResponse
	if err := json.Unmarshal(resp.Body(), &profileResp); err != nil {
		return nil, err
	}

	return &profileResp.User, nil
}

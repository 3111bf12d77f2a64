package api

import (
	"context"
	"net/http"
	"testing"
)

func TestLoginReturnsUserAndSessionCookie(t *testing.T) {
	startTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		http.SetCookie(w, &http.Cookie{Name: "spendwise_session", Value: "tok123", Path: "/"})
		jsonResponse(w, http.StatusOK, `{
			"user": {"id": "u1", "username": "alice", "display_name": "Alice", "email": "alice@example.com"}
		}`)
	}))

	user, cookie, err := Login(context.Background(), "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if user.Username != "alice" {
		t.Errorf("Expected username alice, got %s", user.Username)
	}
	if cookie == nil {
		t.Fatal("Login should surface the session cookie")
	}
	if cookie.Name != "spendwise_session" || cookie.Value != "tok123" {
		t.Errorf("Wrong cookie returned: %s=%s", cookie.Name, cookie.Value)
	}
}

func TestLoginWithoutCookie(t *testing.T) {
	startTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, `{"user": {"id": "u1", "username": "alice"}}`)
	}))

	_, cookie, err := Login(context.Background(), "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if cookie != nil {
		t.Errorf("Expected nil cookie when the server sets none, got %v", cookie)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	startTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusBadRequest, `{"code": "invalid_credentials", "message": "wrong email or password"}`)
	}))

	_, _, err := Login(context.Background(), "alice@example.com", "wrong")
	if err == nil {
		t.Fatal("Expected error for invalid credentials")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.Code != "invalid_credentials" {
		t.Errorf("Expected code invalid_credentials, got %s", apiErr.Code)
	}
}

func TestGetCurrentUser(t *testing.T) {
	startTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		jsonResponse(w, http.StatusOK, `{"user": {"id": "u1", "username": "alice", "expense_count": 42}}`)
	}))

	user, err := GetCurrentUser(context.Background())
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if user.ExpenseCount != 42 {
		t.Errorf("Expected expense count 42, got %d", user.ExpenseCount)
	}
}

func TestLogout(t *testing.T) {
	var called bool
	startTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = r.Method == http.MethodPost && r.URL.Path == "/api/auth/logout"
		jsonResponse(w, http.StatusOK, `{}`)
	}))

	if err := Logout(context.Background()); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if !called {
		t.Error("Logout should POST /api/auth/logout")
	}
}

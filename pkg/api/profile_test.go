package api

import (
	"context"
	"net/http"
	"testing"
)

func TestGetUserProfile(t *testing.T) {
	startTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/bob" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		jsonResponse(w, http.StatusOK, `{
			"user": {"id": "u2", "username": "bob", "follower_count": 3, "is_private": true, "is_following": true}
		}`)
	}))

	user, err := GetUserProfile(context.Background(), "bob")
	if err != nil {
		t.Fatalf("GetUserProfile failed: %v", err)
	}
	if !user.IsPrivate || !user.IsFollowing {
		t.Errorf("Privacy fields decoded incorrectly: %+v", user)
	}
}

func TestGetUserProfileForbidden(t *testing.T) {
	startTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusForbidden, `{"code": "private_profile", "message": "this profile is private"}`)
	}))

	_, err := GetUserProfile(context.Background(), "bob")
	if err == nil {
		t.Fatal("Expected error for private profile")
	}
	if !IsForbidden(err) {
		t.Errorf("Expected forbidden error, got %v", err)
	}
}

func TestFollowAndUnfollow(t *testing.T) {
	var gotMethod, gotPath string
	startTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		jsonResponse(w, http.StatusOK, `{}`)
	}))

	if err := Follow(context.Background(), "bob"); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/users/bob/follow" {
		t.Errorf("Follow sent %s %s", gotMethod, gotPath)
	}

	if err := Unfollow(context.Background(), "bob"); err != nil {
		t.Fatalf("Unfollow failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/users/bob/follow" {
		t.Errorf("Unfollow sent %s %s", gotMethod, gotPath)
	}
}

func TestGetFollowers(t *testing.T) {
	var gotPage, gotPageSize string
	startTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/bob/followers" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		gotPage = r.URL.Query().Get("page")
		gotPageSize = r.URL.Query().Get("page_size")
		jsonResponse(w, http.StatusOK, `{
			"users": [{"id": "u1", "username": "alice"}, {"id": "u3", "username": "carol"}],
			"total_count": 7
		}`)
	}))

	users, total, err := GetFollowers(context.Background(), "bob", 2, 20)
	if err != nil {
		t.Fatalf("GetFollowers failed: %v", err)
	}

	if gotPage != "2" || gotPageSize != "20" {
		t.Errorf("Paging params: page=%s page_size=%s", gotPage, gotPageSize)
	}
	if len(users) != 2 || total != 7 {
		t.Errorf("Expected 2 users of 7, got %d of %d", len(users), total)
	}
}

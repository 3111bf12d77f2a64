package api

import (
	"context"
	"strconv"

	json "github.com/json-iterator/go"
	"github.com/spendwise/cli/pkg/client"
	"github.com/spendwise/cli/pkg/logger"
)

// GetUserProfile gets a user's public profile
func GetUserProfile(ctx context.Context, username string) (*User, error) {
	logger.Debug("Fetching user profile", "username", username)

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		Get("/api/users/" + username)

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var profileResp ProfileResponse
	if err := json.Unmarshal(resp.Body(), &profileResp); err != nil {
		return nil, err
	}

	return &profileResp.User, nil
}

// UpdateProfile updates the current user's profile
func UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	logger.Debug("Updating profile")

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Put("/api/users/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var profileResp ProfileResponse
	if err := json.Unmarshal(resp.Body(), &profileResp); err != nil {
		return nil, err
	}

	return &profileResp.User, nil
}

// Follow follows a user
func Follow(ctx context.Context, username string) error {
	logger.Debug("Following user", "username", username)

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		Post("/api/users/" + username + "/follow")

	return CheckResponse(resp, err)
}

// Unfollow unfollows a user
func Unfollow(ctx context.Context, username string) error {
	logger.Debug("Unfollowing user", "username", username)

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		Delete("/api/users/" + username + "/follow")

	return CheckResponse(resp, err)
}

// GetFollowers gets a user's followers, paged
func GetFollowers(ctx context.Context, username string, page, pageSize int) ([]User, int, error) {
	return getFollowList(ctx, username, "followers", page, pageSize)
}

// GetFollowing gets the users someone follows, paged
func GetFollowing(ctx context.Context, username string, page, pageSize int) ([]User, int, error) {
	return getFollowList(ctx, username, "following", page, pageSize)
}

func getFollowList(ctx context.Context, username, kind string, page, pageSize int) ([]User, int, error) {
	logger.Debug("Fetching follow list", "username", username, "kind", kind, "page", page)

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("page_size", strconv.Itoa(pageSize)).
		Get("/api/users/" + username + "/" + kind)

	if err := CheckResponse(resp, err); err != nil {
		return nil, 0, err
	}

	var listResp FollowListResponse
	if err := json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, 0, err
	}

	return listResp.Users, listResp.TotalCount, nil
}

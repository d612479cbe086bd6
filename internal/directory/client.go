// Package directory resolves team rosters and user profiles from the org directory.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrUserNotFound is returned when the directory has no record for a user.
var ErrUserNotFound = errors.New("user not found in directory")

// Member is a directory profile, the minimal shape the matching pipeline needs.
type Member struct {
	UserObjectID  string `json:"id"`
	GivenName     string `json:"givenName"`
	PrincipalName string `json:"userPrincipalName"`
}

// Client resolves team membership and user profiles.
type Client interface {
	TeamMembers(ctx context.Context, teamID string) ([]Member, error)
	GetUser(ctx context.Context, userObjectID string) (*Member, error)
}

// HTTPClient is a directory client over the org directory REST API.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPClient creates a new directory client.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// TeamMembers returns the current roster of a team.
func (c *HTTPClient) TeamMembers(ctx context.Context, teamID string) ([]Member, error) {
	var response struct {
		Value []Member `json:"value"`
	}
	path := fmt.Sprintf("/teams/%s/members", url.PathEscape(teamID))
	if err := c.get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch members of team %s: %w", teamID, err)
	}
	return response.Value, nil
}

// GetUser resolves a user object ID to a directory profile.
func (c *HTTPClient) GetUser(ctx context.Context, userObjectID string) (*Member, error) {
	var member Member
	path := fmt.Sprintf("/users/%s", url.PathEscape(userObjectID))
	if err := c.get(ctx, path, &member); err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", userObjectID, err)
	}
	return &member, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrUserNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/iaamonline/member-portal/internal/model"
)

// AuthSession is the CMS reply to a successful auth call: the account plus a
// bearer credential for subsequent authenticated requests.
type AuthSession struct {
	User model.AuthUser `json:"user"`
	JWT  string         `json:"jwt"`
}

// AuthError carries the CMS's own rejection message (duplicate email, wrong
// password, ...) so it can be surfaced to the end user verbatim.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "cms auth: " + e.Message
}

// Register creates an account through the CMS's built-in registration.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthSession, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	return c.authPost(ctx, "/api/auth/local/register", "", body)
}

// Login exchanges credentials for a session. The identifier may be a
// username or an email.
func (c *Client) Login(ctx context.Context, identifier, password string) (*AuthSession, error) {
	body := map[string]string{"identifier": identifier, "password": password}
	return c.authPost(ctx, "/api/auth/local", "", body)
}

// ChangePassword rotates the password of the authenticated account. The CMS
// answers with a fresh session.
func (c *Client) ChangePassword(ctx context.Context, jwt, current, newPassword, confirmation string) (*AuthSession, error) {
	body := map[string]string{
		"currentPassword":      current,
		"password":             newPassword,
		"passwordConfirmation": confirmation,
	}
	return c.authPost(ctx, "/api/auth/change-password", jwt, body)
}

// Me resolves the account behind a bearer credential.
func (c *Client) Me(ctx context.Context, jwt string) (*model.AuthUser, error) {
	q := NewQuery().Populate("ProfileImage")
	var user model.AuthUser
	if err := c.do(ctx, http.MethodGet, "/api/users/me", q.Values(), nil, jwt, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile writes editable profile fields on the account.
func (c *Client) UpdateProfile(ctx context.Context, jwt string, userID int, fields map[string]any) (*model.AuthUser, error) {
	var user model.AuthUser
	path := fmt.Sprintf("/api/users/%d", userID)
	if err := c.do(ctx, http.MethodPut, path, nil, fields, jwt, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// authPost posts an auth payload and decodes either {user, jwt} or the CMS
// error envelope {error:{message}}.
func (c *Client) authPost(ctx context.Context, path, bearer string, body any) (*AuthSession, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("cms: encode %s body: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("cms: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms: POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cms: read %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(raw, &failure); err == nil && failure.Error.Message != "" {
			return nil, &AuthError{Message: failure.Error.Message}
		}
		return nil, &upstreamError{status: resp.StatusCode, path: path}
	}

	var session AuthSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("cms: decode %s response: %w", path, err)
	}
	return &session, nil
}

package cms

import (
	"context"
	"encoding/json"
	"strings"
)

// The users-permissions collection answers with a bare array, not the
// {data, meta} envelope the content collections use.

// UsernameTaken reports whether a user with this username exists. The error
// return distinguishes "free" from "could not check": callers fail open.
func (c *Client) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return c.userExists(ctx, "username", username)
}

// EmailTaken reports whether a user with this email exists.
func (c *Client) EmailTaken(ctx context.Context, email string) (bool, error) {
	return c.userExists(ctx, "email", email)
}

func (c *Client) userExists(ctx context.Context, field, value string) (bool, error) {
	q := NewQuery().
		Filter(field, OpEqi, strings.TrimSpace(value)).
		Fields(field)

	var users []json.RawMessage
	if err := c.get(ctx, "/api/users", q.Values(), &users); err != nil {
		return false, err
	}
	return len(users) > 0, nil
}

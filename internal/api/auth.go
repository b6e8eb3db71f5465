package api

import (
	"context"
	"net/http"
)

// Me queries the current-session endpoint. A non-2xx answer (including
// 401 for "not logged in") surfaces as a *RequestError.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/api/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login submits credentials and returns the authenticated user plus the
// server's confirmation message. The session cookie lands in the jar.
func (c *Client) Login(ctx context.Context, username, password string) (*User, string, error) {
	payload := map[string]any{
		"username": username,
		"password": password,
	}

	var resp mutationResponse
	if err := c.send(ctx, http.MethodPost, "/api/login", payload, &resp); err != nil {
		return nil, "", err
	}
	return resp.User, resp.Message, nil
}

// Register creates a new account. It does not authenticate.
func (c *Client) Register(ctx context.Context, payload map[string]any) (string, error) {
	return c.mutate(ctx, http.MethodPost, "/api/register", payload)
}

// Logout ends the server session. Callers clear local state regardless
// of the outcome.
func (c *Client) Logout(ctx context.Context) (string, error) {
	return c.mutate(ctx, http.MethodPost, "/api/logout", nil)
}

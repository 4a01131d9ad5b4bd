package api

import (
	"context"
	"net/http"
	"net/url"
)

// Login authenticates with the API. The caller owns the returned token;
// the client does not retain it.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponseDTO, error) {
	req := LoginRequestDTO{
		Email:    email,
		Password: password,
	}

	var loginResp LoginResponseDTO
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login", req, &loginResp); err != nil {
		return nil, err
	}

	return &loginResp, nil
}

// ChangePassword sets a new password for the authenticated user.
// The server takes the new password as a query parameter on this route.
func (c *Client) ChangePassword(ctx context.Context, newPassword string) error {
	path := "/auth/change-password?new_password=" + url.QueryEscape(newPassword)
	return c.sendJSON(ctx, http.MethodPost, path, nil, nil)
}

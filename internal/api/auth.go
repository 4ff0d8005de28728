package api

import (
	"context"

	"shadow-events-cli/internal/api/dto/request"
	"shadow-events-cli/internal/api/dto/response"
	"shadow-events-cli/internal/pkg/errs"
)

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp response.LoginResponse
	err := c.post(ctx, "/auth/login", request.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errs.New("login response missing token")
	}
	return resp.Token, nil
}

func (c *Client) Signup(ctx context.Context, username, email, password string) error {
	return c.post(ctx, "/auth/signup", request.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, nil)
}

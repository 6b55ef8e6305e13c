package backend

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrEmptyToken is returned when the code exchange succeeds without an access token.
var ErrEmptyToken = errors.New("auth service returned an empty access token")

// UserClient talks to the user/auth service.
type UserClient struct {
	*client
}

// NewUserClient creates a user service client.
func NewUserClient(baseURL string, timeout time.Duration, logger *zap.Logger) *UserClient {
	return &UserClient{client: newClient("user", baseURL, timeout, logger)}
}

// Me fetches the profile of the token's owner.
func (c *UserClient) Me(ctx context.Context, token string) (User, error) {
	var user User
	err := c.execute(c.request(ctx, token), http.MethodGet, "/users/me", &user)
	return user, err
}

// ExchangeCode trades an OAuth authorization code for an access token.
// The auth service takes the code as a query parameter on a GET.
func (c *UserClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	var out tokenResponse
	req := c.request(ctx, "").SetQueryParam("code", code)
	if err := c.execute(req, http.MethodGet, "/auth/google/callback", &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", ErrEmptyToken
	}
	return out.AccessToken, nil
}

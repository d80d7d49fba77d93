package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vsinha/pos/pkg/domain/entities"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Access  string           `json:"access"`
	Refresh string           `json:"refresh"`
	User    entities.Account `json:"user"`
}

// Login exchanges credentials for a bearer token, stores it in the session and
// caches the signed-in account
func (c *Client) Login(ctx context.Context, username, password string) (*entities.Account, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/login/", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Access == "" {
		return nil, fmt.Errorf("login response carried no access token")
	}

	c.session.SetToken(resp.Access)
	if resp.User.ID != "" {
		c.session.CacheAccount(resp.User)
	}
	account := resp.User
	return &account, nil
}

// Logout drops the session token
func (c *Client) Logout() {
	c.session.Clear()
}

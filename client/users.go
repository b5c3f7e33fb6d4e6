package client

import (
	"camp_registration/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (c *Client) CreateUser(ctx context.Context, in model.CreateUserInput) (model.User, error) {
	w, err := createUserToWire(in)
	if err != nil {
		return model.User{}, err
	}
	var created userWire
	if err := c.do(ctx, http.MethodPost, "/auth/users/", nil, w, &created); err != nil {
		return model.User{}, err
	}
	return userFromWire(created)
}

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/auth/users/", nil, nil, &raw); err != nil {
		return nil, err
	}
	ws, err := list[userWire](raw)
	if err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	users := make([]model.User, 0, len(ws))
	for _, w := range ws {
		u, err := userFromWire(w)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// Login exchanges credentials for a user carrying its access and refresh tokens.
func (c *Client) Login(ctx context.Context, username, password string) (model.User, error) {
	var resp struct {
		Access  string   `json:"access"`
		Refresh string   `json:"refresh"`
		User    userWire `json:"user"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login/", nil, body, &resp); err != nil {
		return model.User{}, err
	}
	u, err := userFromWire(resp.User)
	if err != nil {
		return model.User{}, err
	}
	u.Token = resp.Access
	u.RefreshToken = resp.Refresh
	return u, nil
}

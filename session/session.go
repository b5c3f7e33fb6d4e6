package session

import (
	"camp_registration/client"
	"camp_registration/model"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Store persists the signed-in user by session id. Load returns nil when nothing is stored.
type Store interface {
	Load(ctx context.Context, sid string) (*model.User, error)
	Save(ctx context.Context, sid string, user model.User) error
	Delete(ctx context.Context, sid string) error
}

type Authenticator interface {
	Login(ctx context.Context, username, password string) (model.User, error)
}

type Manager struct {
	store Store
	auth  Authenticator
}

func NewManager(store Store, auth Authenticator) *Manager {
	return &Manager{store: store, auth: auth}
}

// Login signs in against the camp API and stores the user under a new session id.
func (m *Manager) Login(ctx context.Context, username, password string) (string, model.User, error) {
	user, err := m.auth.Login(ctx, username, password)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnauthorized) {
			return "", model.User{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Message)
		}
		return "", model.User{}, fmt.Errorf("login: %w", err)
	}
	if !user.HasToken() {
		return "", model.User{}, fmt.Errorf("login: %w", ErrInvalidCredentials)
	}
	sid := uuid.New().String()
	if err := m.store.Save(ctx, sid, user); err != nil {
		return "", model.User{}, fmt.Errorf("save session: %w", err)
	}
	return sid, user, nil
}

// Restore reads the stored user. Stored users without a token are discarded.
func (m *Manager) Restore(ctx context.Context, sid string) (model.SessionState, error) {
	if sid == "" {
		return model.SessionState{}, nil
	}
	user, err := m.store.Load(ctx, sid)
	if err != nil {
		return model.SessionState{}, fmt.Errorf("load session: %w", err)
	}
	if user == nil {
		return model.SessionState{}, nil
	}
	if !user.HasToken() {
		if err := m.store.Delete(ctx, sid); err != nil {
			return model.SessionState{}, fmt.Errorf("drop session: %w", err)
		}
		return model.SessionState{}, nil
	}
	return model.SessionState{User: user, IsAuthenticated: true}, nil
}

func (m *Manager) Logout(ctx context.Context, sid string) error {
	if err := m.store.Delete(ctx, sid); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

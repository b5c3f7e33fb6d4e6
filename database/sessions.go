package database

import (
	"camp_registration/constants"
	"camp_registration/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type SessionStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewSessionStore(rdb redis.Cmdable, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func SessionKey(sid string) string {
	return constants.SESSION_NAMESPACE + ":" + sid
}

func (s *SessionStore) Load(ctx context.Context, sid string) (*model.User, error) {
	raw, err := s.rdb.Get(ctx, SessionKey(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		// unreadable entries are treated as signed out
		return nil, nil
	}
	return &user, nil
}

func (s *SessionStore) Save(ctx context.Context, sid string, user model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.rdb.Set(ctx, SessionKey(sid), raw, s.ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, SessionKey(sid)).Err()
}

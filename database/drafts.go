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

type DraftStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewDraftStore keeps drafts for ttl after the last save; 0 keeps them forever.
func NewDraftStore(rdb redis.Cmdable, ttl time.Duration) *DraftStore {
	return &DraftStore{rdb: rdb, ttl: ttl}
}

func DraftKey(key string) string {
	return constants.DRAFT_NAMESPACE + ":" + key
}

func (s *DraftStore) Load(ctx context.Context, key string) (*model.Draft, error) {
	raw, err := s.rdb.Get(ctx, DraftKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var draft model.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", key, err)
	}
	return &draft, nil
}

func (s *DraftStore) Save(ctx context.Context, key string, draft *model.Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft %s: %w", key, err)
	}
	return s.rdb.Set(ctx, DraftKey(key), raw, s.ttl).Err()
}

func (s *DraftStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, DraftKey(key)).Err()
}

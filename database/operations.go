package database

import (
	"camp_registration/constants"
	"camp_registration/model"
	"camp_registration/utils"
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type OperationRepository struct {
	db *gorm.DB
}

func NewOperationRepository(db *gorm.DB) *OperationRepository {
	return &OperationRepository{db: db}
}

func (r *OperationRepository) Save(ctx context.Context, entry *model.OperationLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *OperationRepository) List(ctx context.Context, page model.Pagination) (model.ResponseCustom, error) {
	var rows []model.OperationLog
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.OperationLog{}).Count(&total).Error; err != nil {
		return model.ResponseCustom{}, err
	}
	query := r.db.WithContext(ctx).Order("finished_at DESC")
	if err := utils.ApplyPagination(query, page.Limit, page.Page).Find(&rows).Error; err != nil {
		return model.ResponseCustom{}, err
	}
	return model.ResponseCustom{Rows: rows, Limit: page.Limit, Page: page.Page, TotalCount: total}, nil
}

// OperationFeed publishes finished operations on the admin channel.
type OperationFeed struct {
	rdb redis.UniversalClient
}

func NewOperationFeed(rdb redis.UniversalClient) *OperationFeed {
	return &OperationFeed{rdb: rdb}
}

func (f *OperationFeed) Publish(ctx context.Context, entry model.OperationLog) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode operation: %w", err)
	}
	return f.rdb.Publish(ctx, constants.OPERATION_CHANNEL, raw).Err()
}

func (f *OperationFeed) Subscribe(ctx context.Context) *redis.PubSub {
	return f.rdb.Subscribe(ctx, constants.OPERATION_CHANNEL)
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"pcm-swm/backend/internal/model"
)

// OrderLogRepository reads order history trails.
type OrderLogRepository interface {
	ListByOrder(ctx context.Context, orderID string) ([]model.OrderLog, error)
}

type orderLogRepo struct {
	db *gorm.DB
}

// NewOrderLogRepo creates the GORM-backed OrderLogRepository.
func NewOrderLogRepo(db *gorm.DB) OrderLogRepository {
	return &orderLogRepo{db: db}
}

func (r *orderLogRepo) ListByOrder(ctx context.Context, orderID string) ([]model.OrderLog, error) {
	var entries []model.OrderLog
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("timestamp ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

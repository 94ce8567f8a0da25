package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"pcm-swm/backend/internal/model"
)

// ShutdownRepository is the shutdown-window data-access interface.
type ShutdownRepository interface {
	Create(ctx context.Context, sd *model.Shutdown) error
	GetByID(ctx context.Context, id string) (*model.Shutdown, error)
	List(ctx context.Context) ([]model.Shutdown, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]model.Shutdown, error)
	Update(ctx context.Context, sd *model.Shutdown) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type shutdownRepo struct {
	db *gorm.DB
}

// NewShutdownRepo creates the GORM-backed ShutdownRepository.
func NewShutdownRepo(db *gorm.DB) ShutdownRepository {
	return &shutdownRepo{db: db}
}

func (r *shutdownRepo) Create(ctx context.Context, sd *model.Shutdown) error {
	return r.db.WithContext(ctx).Create(sd).Error
}

func (r *shutdownRepo) GetByID(ctx context.Context, id string) (*model.Shutdown, error) {
	var sd model.Shutdown
	err := r.db.WithContext(ctx).
		Where("shutdown_id = ?", id).
		First(&sd).Error
	if err != nil {
		return nil, err
	}
	return &sd, nil
}

func (r *shutdownRepo) List(ctx context.Context) ([]model.Shutdown, error) {
	var sds []model.Shutdown
	err := r.db.WithContext(ctx).
		Order("date ASC, start_time ASC").
		Find(&sds).Error
	if err != nil {
		return nil, err
	}
	return sds, nil
}

func (r *shutdownRepo) ListBetween(ctx context.Context, start, end time.Time) ([]model.Shutdown, error) {
	var sds []model.Shutdown
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC, start_time ASC").
		Find(&sds).Error
	if err != nil {
		return nil, err
	}
	return sds, nil
}

func (r *shutdownRepo) Update(ctx context.Context, sd *model.Shutdown) error {
	return r.db.WithContext(ctx).Save(sd).Error
}

func (r *shutdownRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("shutdown_id = ?", id).
		Delete(&model.Shutdown{}).Error
}

func (r *shutdownRepo) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.Shutdown{})
	return res.RowsAffected, res.Error
}

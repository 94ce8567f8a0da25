package repository

import (
	"context"

	"gorm.io/gorm"

	"pcm-swm/backend/internal/model"
)

// AssetRepository is the asset-register data-access interface.
type AssetRepository interface {
	Create(ctx context.Context, asset *model.Asset) error
	GetByID(ctx context.Context, id string) (*model.Asset, error)
	GetByTag(ctx context.Context, tag string) (*model.Asset, error)
	List(ctx context.Context, area, criticality, status string) ([]model.Asset, error)
	Update(ctx context.Context, asset *model.Asset) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type assetRepo struct {
	db *gorm.DB
}

// NewAssetRepo creates the GORM-backed AssetRepository.
func NewAssetRepo(db *gorm.DB) AssetRepository {
	return &assetRepo{db: db}
}

func (r *assetRepo) Create(ctx context.Context, asset *model.Asset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

func (r *assetRepo) GetByID(ctx context.Context, id string) (*model.Asset, error) {
	var asset model.Asset
	err := r.db.WithContext(ctx).
		Where("asset_id = ?", id).
		First(&asset).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepo) GetByTag(ctx context.Context, tag string) (*model.Asset, error) {
	var asset model.Asset
	err := r.db.WithContext(ctx).
		Where("tag = ?", tag).
		First(&asset).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepo) List(ctx context.Context, area, criticality, status string) ([]model.Asset, error) {
	var assets []model.Asset

	db := r.db.WithContext(ctx)
	if area != "" {
		db = db.Where("area = ?", area)
	}
	if criticality != "" {
		db = db.Where("criticality = ?", criticality)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}

	if err := db.Order("tag ASC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *assetRepo) Update(ctx context.Context, asset *model.Asset) error {
	return r.db.WithContext(ctx).Save(asset).Error
}

func (r *assetRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("asset_id = ?", id).
		Delete(&model.Asset{}).Error
}

func (r *assetRepo) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.Asset{})
	return res.RowsAffected, res.Error
}

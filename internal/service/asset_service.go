package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/model"
	"pcm-swm/backend/internal/repository"
)

var (
	ErrAssetNotFound      = errors.New("asset not found")
	ErrInvalidAssetStatus = errors.New("invalid asset status")
	ErrTagTaken           = errors.New("an asset with this tag already exists")
)

// AssetService manages the asset register.
type AssetService interface {
	Create(ctx context.Context, req *dto.AssetSaveRequest) (*model.Asset, error)
	Get(ctx context.Context, id string) (*model.Asset, error)
	List(ctx context.Context, req *dto.AssetListRequest) ([]model.Asset, error)
	Update(ctx context.Context, id string, req *dto.AssetSaveRequest) (*model.Asset, error)
	Delete(ctx context.Context, id string) error
}

type assetService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssetService creates the AssetService.
func NewAssetService(repo *repository.Repository, logger *zap.Logger) AssetService {
	return &assetService{repo: repo, logger: logger}
}

func (s *assetService) Create(ctx context.Context, req *dto.AssetSaveRequest) (*model.Asset, error) {
	if !model.ValidAssetStatus(req.Status) {
		return nil, ErrInvalidAssetStatus
	}
	if _, err := s.repo.Asset.GetByTag(ctx, req.Tag); err == nil {
		return nil, ErrTagTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	asset := &model.Asset{
		Tag:         req.Tag,
		Description: req.Description,
		Area:        req.Area,
		Status:      model.AssetStatus(req.Status),
		Criticality: req.Criticality,
	}
	if err := s.repo.Asset.Create(ctx, asset); err != nil {
		s.logger.Error("create asset", zap.Error(err))
		return nil, err
	}
	return asset, nil
}

func (s *assetService) Get(ctx context.Context, id string) (*model.Asset, error) {
	asset, err := s.repo.Asset.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return asset, nil
}

func (s *assetService) List(ctx context.Context, req *dto.AssetListRequest) ([]model.Asset, error) {
	if req.Status != "" && !model.ValidAssetStatus(req.Status) {
		return nil, ErrInvalidAssetStatus
	}
	return s.repo.Asset.List(ctx, req.Area, req.Criticality, req.Status)
}

func (s *assetService) Update(ctx context.Context, id string, req *dto.AssetSaveRequest) (*model.Asset, error) {
	asset, err := s.repo.Asset.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	if !model.ValidAssetStatus(req.Status) {
		return nil, ErrInvalidAssetStatus
	}

	// Tag uniqueness only matters when it actually changed.
	if req.Tag != asset.Tag {
		if _, err := s.repo.Asset.GetByTag(ctx, req.Tag); err == nil {
			return nil, ErrTagTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	asset.Tag = req.Tag
	asset.Description = req.Description
	asset.Area = req.Area
	asset.Status = model.AssetStatus(req.Status)
	asset.Criticality = req.Criticality

	if err := s.repo.Asset.Update(ctx, asset); err != nil {
		s.logger.Error("update asset", zap.Error(err))
		return nil, err
	}
	return asset, nil
}

func (s *assetService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Asset.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssetNotFound
		}
		return err
	}
	return s.repo.Asset.Delete(ctx, id)
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"pcm-swm/backend/internal/model"
)

// TechnicianRepository is the roster data-access interface.
type TechnicianRepository interface {
	Create(ctx context.Context, tech *model.Technician) error
	GetByID(ctx context.Context, id string) (*model.Technician, error)
	List(ctx context.Context, discipline, shift string) ([]model.Technician, error)
	Update(ctx context.Context, tech *model.Technician) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type technicianRepo struct {
	db *gorm.DB
}

// NewTechnicianRepo creates the GORM-backed TechnicianRepository.
func NewTechnicianRepo(db *gorm.DB) TechnicianRepository {
	return &technicianRepo{db: db}
}

func (r *technicianRepo) Create(ctx context.Context, tech *model.Technician) error {
	return r.db.WithContext(ctx).Create(tech).Error
}

func (r *technicianRepo) GetByID(ctx context.Context, id string) (*model.Technician, error) {
	var tech model.Technician
	err := r.db.WithContext(ctx).
		Where("technician_id = ?", id).
		First(&tech).Error
	if err != nil {
		return nil, err
	}
	return &tech, nil
}

func (r *technicianRepo) List(ctx context.Context, discipline, shift string) ([]model.Technician, error) {
	var techs []model.Technician

	db := r.db.WithContext(ctx)
	if discipline != "" {
		db = db.Where("discipline = ?", discipline)
	}
	if shift != "" {
		db = db.Where("shift = ?", shift)
	}

	if err := db.Order("name ASC").Find(&techs).Error; err != nil {
		return nil, err
	}
	return techs, nil
}

func (r *technicianRepo) Update(ctx context.Context, tech *model.Technician) error {
	return r.db.WithContext(ctx).Save(tech).Error
}

func (r *technicianRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("technician_id = ?", id).
		Delete(&model.Technician{}).Error
}

func (r *technicianRepo) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.Technician{})
	return res.RowsAffected, res.Error
}

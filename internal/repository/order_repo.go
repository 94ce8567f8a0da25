package repository

import (
	"context"

	"gorm.io/gorm"

	"pcm-swm/backend/internal/model"
)

// OrderFilters narrows order listings. Zero values mean "no filter".
type OrderFilters struct {
	Discipline   string
	TechnicianID string
	Status       string
	Priority     string
	Area         string
	Search       string
}

// OrderRepository is the work-order data-access interface. Write methods
// persist the order together with its history entries in one transaction
// so an order never lands without its trail.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order, entries []model.OrderLog) error
	BatchCreate(ctx context.Context, orders []model.Order, entries []model.OrderLog) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filters OrderFilters, offset, limit int) ([]model.Order, int64, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, order *model.Order, entries []model.OrderLog) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepo creates the GORM-backed OrderRepository.
func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order, entries []model.OrderLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *orderRepo) BatchCreate(ctx context.Context, orders []model.Order, entries []model.OrderLog) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&orders, 100).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.CreateInBatches(&entries, 100).Error
	})
}

func (r *orderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Logs", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		}).
		Where("order_id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) List(ctx context.Context, filters OrderFilters, offset, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Order{})

	if filters.Discipline != "" {
		db = db.Where("discipline = ?", filters.Discipline)
	}
	if filters.TechnicianID != "" {
		db = db.Where("technician_id = ? OR collaborator_id = ?", filters.TechnicianID, filters.TechnicianID)
	}
	if filters.Status != "" {
		db = db.Where("status = ?", filters.Status)
	}
	if filters.Priority != "" {
		db = db.Where("priority = ?", filters.Priority)
	}
	if filters.Area != "" {
		db = db.Where("area = ?", filters.Area)
	}
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		db = db.Where("os_number ILIKE ? OR description ILIKE ? OR tag ILIKE ?", like, like, like)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepo) Update(ctx context.Context, order *model.Order, entries []model.OrderLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(order).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *orderRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Delete(&model.Order{}).Error
}

func (r *orderRepo) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.Order{})
	return res.RowsAffected, res.Error
}

package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface behind one entry point.
type Repository struct {
	User       UserRepository
	Order      OrderRepository
	OrderLog   OrderLogRepository
	Technician TechnicianRepository
	Shutdown   ShutdownRepository
	Asset      AssetRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Order:      NewOrderRepo(db),
		OrderLog:   NewOrderLogRepo(db),
		Technician: NewTechnicianRepo(db),
		Shutdown:   NewShutdownRepo(db),
		Asset:      NewAssetRepo(db),
	}
}

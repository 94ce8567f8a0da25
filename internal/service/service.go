package service

import (
	"go.uber.org/zap"

	"pcm-swm/backend/config"
	"pcm-swm/backend/internal/repository"
	"pcm-swm/backend/pkg/jwt"
	"pcm-swm/backend/pkg/mq"
	"pcm-swm/backend/pkg/redis"
)

// Service aggregates every business-logic interface behind one entry point.
type Service struct {
	Auth       AuthService
	Order      OrderService
	Technician TechnicianService
	Shutdown   ShutdownService
	Asset      AssetService
	Planning   PlanningService
	Export     ExportService
	System     SystemService
}

// NewService wires the service implementations.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	publisher mq.Publisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Order:      NewOrderService(cfg, repo, publisher, logger),
		Technician: NewTechnicianService(repo, logger),
		Shutdown:   NewShutdownService(repo, logger),
		Asset:      NewAssetService(repo, logger),
		Planning:   NewPlanningService(repo, logger),
		Export:     NewExportService(repo, logger),
		System:     NewSystemService(repo, publisher, logger),
	}
}

package service

import (
	"context"

	"go.uber.org/zap"

	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/repository"
	"pcm-swm/backend/pkg/mq"
)

// SystemService holds the administrative operations.
type SystemService interface {
	// WipeAll removes every order, technician, shutdown and asset.
	// User accounts survive. Admin only; there is no undo.
	WipeAll(ctx context.Context) (*dto.WipeResponse, error)
}

type systemService struct {
	repo      *repository.Repository
	publisher mq.Publisher
	logger    *zap.Logger
}

// NewSystemService creates the SystemService.
func NewSystemService(repo *repository.Repository, publisher mq.Publisher, logger *zap.Logger) SystemService {
	return &systemService{repo: repo, publisher: publisher, logger: logger}
}

func (s *systemService) WipeAll(ctx context.Context) (*dto.WipeResponse, error) {
	resp := &dto.WipeResponse{}

	// Orders first so their log trails cascade before the roster goes.
	var err error
	if resp.OrdersDeleted, err = s.repo.Order.DeleteAll(ctx); err != nil {
		s.logger.Error("wipe orders", zap.Error(err))
		return nil, err
	}
	if resp.TechniciansDeleted, err = s.repo.Technician.DeleteAll(ctx); err != nil {
		s.logger.Error("wipe technicians", zap.Error(err))
		return nil, err
	}
	if resp.ShutdownsDeleted, err = s.repo.Shutdown.DeleteAll(ctx); err != nil {
		s.logger.Error("wipe shutdowns", zap.Error(err))
		return nil, err
	}
	if resp.AssetsDeleted, err = s.repo.Asset.DeleteAll(ctx); err != nil {
		s.logger.Error("wipe assets", zap.Error(err))
		return nil, err
	}

	s.logger.Warn("all planning data wiped",
		zap.Int64("orders", resp.OrdersDeleted),
		zap.Int64("technicians", resp.TechniciansDeleted),
		zap.Int64("shutdowns", resp.ShutdownsDeleted),
		zap.Int64("assets", resp.AssetsDeleted))

	if err := s.publisher.Publish(ctx, "order.wiped", resp); err != nil {
		s.logger.Warn("publish event", zap.String("routing_key", "order.wiped"), zap.Error(err))
	}
	return resp, nil
}

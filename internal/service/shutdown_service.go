package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/model"
	"pcm-swm/backend/internal/repository"
)

var (
	ErrShutdownNotFound      = errors.New("shutdown not found")
	ErrInvalidShutdownStatus = errors.New("invalid shutdown status")
)

// ShutdownService manages machine-down maintenance windows.
type ShutdownService interface {
	Create(ctx context.Context, req *dto.ShutdownSaveRequest) (*model.Shutdown, error)
	Get(ctx context.Context, id string) (*model.Shutdown, error)
	List(ctx context.Context) ([]model.Shutdown, error)
	Update(ctx context.Context, id string, req *dto.ShutdownSaveRequest) (*model.Shutdown, error)
	Delete(ctx context.Context, id string) error
}

type shutdownService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShutdownService creates the ShutdownService.
func NewShutdownService(repo *repository.Repository, logger *zap.Logger) ShutdownService {
	return &shutdownService{repo: repo, logger: logger}
}

func (s *shutdownService) Create(ctx context.Context, req *dto.ShutdownSaveRequest) (*model.Shutdown, error) {
	sd, err := shutdownFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Shutdown.Create(ctx, sd); err != nil {
		s.logger.Error("create shutdown", zap.Error(err))
		return nil, err
	}
	return sd, nil
}

func (s *shutdownService) Get(ctx context.Context, id string) (*model.Shutdown, error) {
	sd, err := s.repo.Shutdown.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShutdownNotFound
		}
		return nil, err
	}
	return sd, nil
}

func (s *shutdownService) List(ctx context.Context) ([]model.Shutdown, error) {
	return s.repo.Shutdown.List(ctx)
}

func (s *shutdownService) Update(ctx context.Context, id string, req *dto.ShutdownSaveRequest) (*model.Shutdown, error) {
	existing, err := s.repo.Shutdown.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShutdownNotFound
		}
		return nil, err
	}

	sd, err := shutdownFromRequest(req)
	if err != nil {
		return nil, err
	}
	sd.ShutdownID = existing.ShutdownID
	sd.CreatedAt = existing.CreatedAt

	if err := s.repo.Shutdown.Update(ctx, sd); err != nil {
		s.logger.Error("update shutdown", zap.Error(err))
		return nil, err
	}
	return sd, nil
}

func (s *shutdownService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Shutdown.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShutdownNotFound
		}
		return err
	}
	return s.repo.Shutdown.Delete(ctx, id)
}

func shutdownFromRequest(req *dto.ShutdownSaveRequest) (*model.Shutdown, error) {
	if !model.ValidShutdownStatus(req.Status) {
		return nil, ErrInvalidShutdownStatus
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}
	return &model.Shutdown{
		Machine:          req.Machine,
		Date:             date,
		StartTime:        req.StartTime,
		Duration:         req.Duration,
		Service:          req.Service,
		Impact:           req.Impact,
		Status:           model.ShutdownStatus(req.Status),
		RealizedDuration: req.RealizedDuration,
	}, nil
}

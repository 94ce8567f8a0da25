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
	ErrTechnicianNotFound = errors.New("technician not found")
	ErrInvalidShift       = errors.New("invalid shift")
)

// TechnicianService manages the maintenance roster. Deletion never cascades
// to orders: dangling assignments resolve to empty names on read.
type TechnicianService interface {
	Create(ctx context.Context, req *dto.TechnicianSaveRequest) (*model.Technician, error)
	Get(ctx context.Context, id string) (*model.Technician, error)
	List(ctx context.Context, req *dto.TechnicianListRequest) ([]model.Technician, error)
	Update(ctx context.Context, id string, req *dto.TechnicianSaveRequest) (*model.Technician, error)
	Delete(ctx context.Context, id string) error
}

type technicianService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTechnicianService creates the TechnicianService.
func NewTechnicianService(repo *repository.Repository, logger *zap.Logger) TechnicianService {
	return &technicianService{repo: repo, logger: logger}
}

func (s *technicianService) Create(ctx context.Context, req *dto.TechnicianSaveRequest) (*model.Technician, error) {
	if !model.ValidDiscipline(req.Discipline) {
		return nil, ErrInvalidDiscipline
	}
	if !model.ValidShift(req.Shift) {
		return nil, ErrInvalidShift
	}

	tech := &model.Technician{
		Name:       req.Name,
		Discipline: model.Discipline(req.Discipline),
		Shift:      model.Shift(req.Shift),
		IsLeader:   req.IsLeader,
	}
	if err := s.repo.Technician.Create(ctx, tech); err != nil {
		s.logger.Error("create technician", zap.Error(err))
		return nil, err
	}
	return tech, nil
}

func (s *technicianService) Get(ctx context.Context, id string) (*model.Technician, error) {
	tech, err := s.repo.Technician.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTechnicianNotFound
		}
		return nil, err
	}
	return tech, nil
}

func (s *technicianService) List(ctx context.Context, req *dto.TechnicianListRequest) ([]model.Technician, error) {
	if req.Discipline != "" && !model.ValidDiscipline(req.Discipline) {
		return nil, ErrInvalidDiscipline
	}
	if req.Shift != "" && !model.ValidShift(req.Shift) {
		return nil, ErrInvalidShift
	}
	return s.repo.Technician.List(ctx, req.Discipline, req.Shift)
}

func (s *technicianService) Update(ctx context.Context, id string, req *dto.TechnicianSaveRequest) (*model.Technician, error) {
	tech, err := s.repo.Technician.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTechnicianNotFound
		}
		return nil, err
	}

	if !model.ValidDiscipline(req.Discipline) {
		return nil, ErrInvalidDiscipline
	}
	if !model.ValidShift(req.Shift) {
		return nil, ErrInvalidShift
	}

	tech.Name = req.Name
	tech.Discipline = model.Discipline(req.Discipline)
	tech.Shift = model.Shift(req.Shift)
	tech.IsLeader = req.IsLeader

	if err := s.repo.Technician.Update(ctx, tech); err != nil {
		s.logger.Error("update technician", zap.Error(err))
		return nil, err
	}
	return tech, nil
}

func (s *technicianService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Technician.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTechnicianNotFound
		}
		return err
	}
	return s.repo.Technician.Delete(ctx, id)
}

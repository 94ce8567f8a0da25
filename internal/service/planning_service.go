package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/model"
	"pcm-swm/backend/internal/planning"
	"pcm-swm/backend/internal/repository"
)

// PlanningService builds the weekly grid and the dashboard from a fresh
// database snapshot. All capacity math lives in the planning package; this
// layer only fetches data and shapes responses.
type PlanningService interface {
	Week(ctx context.Context, req *dto.WeekRequest) (*dto.WeekGridResponse, error)
	Dashboard(ctx context.Context, req *dto.WeekRequest) (*dto.DashboardResponse, error)
}

type planningService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewPlanningService creates the PlanningService.
func NewPlanningService(repo *repository.Repository, logger *zap.Logger) PlanningService {
	return &planningService{repo: repo, logger: logger, now: time.Now}
}

func (s *planningService) Week(ctx context.Context, req *dto.WeekRequest) (*dto.WeekGridResponse, error) {
	now := s.now()
	window, err := s.window(req, now)
	if err != nil {
		return nil, err
	}

	orders, technicians, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	weekOrders := planning.FilterWeek(orders, window, now)

	loads := planning.TeamCapacity(weekOrders, technicians)
	rows := make([]dto.TechnicianWeekRow, 0, len(loads))
	for _, load := range loads {
		row := dto.TechnicianWeekRow{TechnicianLoad: load, Orders: []model.Order{}}
		for i := range weekOrders {
			if weekOrders[i].AssignedTo(load.Technician.TechnicianID) {
				row.Orders = append(row.Orders, weekOrders[i])
			}
		}
		rows = append(rows, row)
	}

	unassigned := make([]model.Order, 0)
	for i := range weekOrders {
		if weekOrders[i].TechnicianID == nil && weekOrders[i].CollaboratorID == nil {
			unassigned = append(unassigned, weekOrders[i])
		}
	}

	return &dto.WeekGridResponse{
		Year:       window.Year,
		Week:       window.Week,
		Start:      window.Start,
		End:        window.End,
		Rows:       rows,
		Unassigned: unassigned,
		Days:       planning.DailyTeamLoad(weekOrders, len(technicians)),
	}, nil
}

func (s *planningService) Dashboard(ctx context.Context, req *dto.WeekRequest) (*dto.DashboardResponse, error) {
	now := s.now()
	window, err := s.window(req, now)
	if err != nil {
		return nil, err
	}

	orders, technicians, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	weekOrders := planning.FilterWeek(orders, window, now)

	shutdowns, err := s.repo.Shutdown.ListBetween(ctx, window.Start, window.End)
	if err != nil {
		s.logger.Error("list shutdowns", zap.Error(err))
		return nil, err
	}

	return &dto.DashboardResponse{
		Stats:       planning.Stats(weekOrders, shutdowns, len(technicians)),
		Backlog:     planning.BacklogByDiscipline(weekOrders),
		Areas:       planning.CountByArea(weekOrders),
		Bottlenecks: planning.DetectBottlenecks(weekOrders, technicians),
	}, nil
}

func (s *planningService) window(req *dto.WeekRequest, now time.Time) (planning.WeekWindow, error) {
	ref := now
	if req != nil && req.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", req.Date, now.Location())
		if err != nil {
			return planning.WeekWindow{}, err
		}
		ref = d
	}
	return planning.WeekWindowFor(ref), nil
}

func (s *planningService) snapshot(ctx context.Context) ([]model.Order, []model.Technician, error) {
	orders, err := s.repo.Order.ListAll(ctx)
	if err != nil {
		s.logger.Error("list orders", zap.Error(err))
		return nil, nil, err
	}
	technicians, err := s.repo.Technician.List(ctx, "", "")
	if err != nil {
		s.logger.Error("list technicians", zap.Error(err))
		return nil, nil, err
	}
	return orders, technicians, nil
}

package dto

import (
	"time"

	"pcm-swm/backend/internal/model"
	"pcm-swm/backend/internal/planning"
)

// WeekRequest selects the planning week. An empty date means the current week.
type WeekRequest struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// TechnicianWeekRow is one roster line of the weekly grid: the technician's
// load figures plus the orders scheduled to them in the window.
type TechnicianWeekRow struct {
	planning.TechnicianLoad
	Orders []model.Order `json:"orders"`
}

// WeekGridResponse is the full weekly program for one ISO week.
type WeekGridResponse struct {
	Year       int                 `json:"year"`
	Week       int                 `json:"week"`
	Start      time.Time           `json:"start"`
	End        time.Time           `json:"end"`
	Rows       []TechnicianWeekRow `json:"rows"`
	Unassigned []model.Order       `json:"unassigned"`
	Days       []planning.DayLoad  `json:"days"`
}

// DashboardResponse aggregates the weekly indicators.
type DashboardResponse struct {
	Stats       planning.WeeklyStats         `json:"stats"`
	Backlog     []planning.DisciplineBacklog `json:"backlog"`
	Areas       []planning.AreaCount         `json:"areas"`
	Bottlenecks planning.Bottlenecks         `json:"bottlenecks"`
}

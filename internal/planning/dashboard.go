package planning

import (
	"math"

	"pcm-swm/backend/internal/model"
)

// WeeklyStats are the headline dashboard numbers.
type WeeklyStats struct {
	TotalOrders         int     `json:"total_orders"`
	TotalHours          float64 `json:"total_hours"`
	CompletedOrders     int     `json:"completed_orders"`
	BacklogHours        float64 `json:"backlog_hours"`
	ShutdownCount       int     `json:"shutdown_count"`
	CapacityUsedPercent int     `json:"capacity_used_percent"`
}

// Stats computes the headline numbers. Capacity used is planned hours against
// techCount × 44h, rounded to the nearest percent; zero technicians yields 0.
func Stats(orders []model.Order, shutdowns []model.Shutdown, techCount int) WeeklyStats {
	s := WeeklyStats{
		TotalOrders:   len(orders),
		ShutdownCount: len(shutdowns),
	}
	for i := range orders {
		s.TotalHours += orders[i].EstimatedHours
		if orders[i].Status == model.OrderStatusCompleted {
			s.CompletedOrders++
		} else {
			s.BacklogHours += orders[i].EstimatedHours
		}
	}
	if capacity := float64(techCount) * WeeklyCapacityHours; capacity > 0 {
		s.CapacityUsedPercent = int(math.Round(s.TotalHours / capacity * 100))
	}
	return s
}

// DisciplineBacklog splits one discipline's orders into pending and
// completed counts.
type DisciplineBacklog struct {
	Discipline model.Discipline `json:"discipline"`
	Pending    int              `json:"pending"`
	Completed  int              `json:"completed"`
	Total      int              `json:"total"`
}

// BacklogByDiscipline returns one row per discipline that has orders, in the
// fixed discipline order.
func BacklogByDiscipline(orders []model.Order) []DisciplineBacklog {
	var rows []DisciplineBacklog
	for _, d := range model.Disciplines {
		row := DisciplineBacklog{Discipline: d}
		for i := range orders {
			if orders[i].Discipline != d {
				continue
			}
			row.Total++
			if orders[i].Status == model.OrderStatusCompleted {
				row.Completed++
			} else {
				row.Pending++
			}
		}
		if row.Total > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// AreaCount is the number of orders in one plant area.
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// CountByArea returns per-area order counts, areas in first-appearance order.
func CountByArea(orders []model.Order) []AreaCount {
	index := make(map[string]int)
	var rows []AreaCount
	for i := range orders {
		area := orders[i].Area
		if pos, ok := index[area]; ok {
			rows[pos].Count++
			continue
		}
		index[area] = len(rows)
		rows = append(rows, AreaCount{Area: area, Count: 1})
	}
	return rows
}

// TechnicianOverload is a technician whose weekly hours exceed capacity.
type TechnicianOverload struct {
	Technician model.Technician `json:"technician"`
	Hours      float64          `json:"hours"`
}

// Bottlenecks groups the per-technician and team-wide overload findings.
type Bottlenecks struct {
	OverloadedTechnicians []TechnicianOverload `json:"overloaded_technicians"`
	CriticalDays          []DayLoad            `json:"critical_days"`
}

// DetectBottlenecks finds weekly-overloaded technicians and critical days.
func DetectBottlenecks(orders []model.Order, technicians []model.Technician) Bottlenecks {
	var b Bottlenecks
	for _, tech := range technicians {
		hours := TechnicianWeeklyLoad(orders, tech.TechnicianID)
		if OverloadedWeekly(hours) {
			b.OverloadedTechnicians = append(b.OverloadedTechnicians, TechnicianOverload{
				Technician: tech,
				Hours:      hours,
			})
		}
	}
	for _, day := range DailyTeamLoad(orders, len(technicians)) {
		if day.Critical {
			b.CriticalDays = append(b.CriticalDays, day)
		}
	}
	return b
}

// Package planning implements the weekly capacity model: per-technician load
// aggregation, overload classification, team-wide daily load, week-window
// resolution, and the derived dashboard datasets. Every function is a pure
// function of its inputs (no clock, no I/O) so the model can be recomputed
// on any snapshot and unit-tested without infrastructure.
package planning

import "pcm-swm/backend/internal/model"

// Capacity thresholds. The per-technician day (8.5h) and the team-wide day
// (8h) intentionally differ; callers compare against the constant matching
// the view they render. Do not unify them.
const (
	DailyCapacityHours     = 8.5
	WeeklyCapacityHours    = 44.0
	TeamDailyCapacityHours = 8.0
)

// TechnicianWeeklyLoad sums the estimated hours of every order where the
// technician is the primary assignee or the collaborator. An order carrying
// the same id in both fields counts once.
func TechnicianWeeklyLoad(orders []model.Order, techID string) float64 {
	var total float64
	for i := range orders {
		if orders[i].AssignedTo(techID) {
			total += orders[i].EstimatedHours
		}
	}
	return total
}

// TechnicianDailyLoad is TechnicianWeeklyLoad restricted to orders scheduled
// on the given day name.
func TechnicianDailyLoad(orders []model.Order, techID, day string) float64 {
	var total float64
	for i := range orders {
		if orders[i].ScheduledDay == day && orders[i].AssignedTo(techID) {
			total += orders[i].EstimatedHours
		}
	}
	return total
}

// OverloadedWeekly reports whether weekly hours exceed capacity. Exactly
// 44.0 is not overloaded.
func OverloadedWeekly(hours float64) bool { return hours > WeeklyCapacityHours }

// OverloadedDaily reports whether a day's hours exceed the per-technician
// daily capacity. Exactly 8.5 is not overloaded.
func OverloadedDaily(hours float64) bool { return hours > DailyCapacityHours }

// TechnicianLoad is one technician's aggregated week.
type TechnicianLoad struct {
	Technician       model.Technician   `json:"technician"`
	WeeklyHours      float64            `json:"weekly_hours"`
	DailyHours       map[string]float64 `json:"daily_hours"`
	OverloadedWeekly bool               `json:"overloaded_weekly"`
	OverloadedDays   []string           `json:"overloaded_days,omitempty"`
}

// TeamCapacity aggregates every technician's weekly and per-day load.
// Rows preserve the roster order.
func TeamCapacity(orders []model.Order, technicians []model.Technician) []TechnicianLoad {
	loads := make([]TechnicianLoad, 0, len(technicians))
	for _, tech := range technicians {
		load := TechnicianLoad{
			Technician:  tech,
			WeeklyHours: TechnicianWeeklyLoad(orders, tech.TechnicianID),
			DailyHours:  make(map[string]float64, len(model.WeekDays)),
		}
		load.OverloadedWeekly = OverloadedWeekly(load.WeeklyHours)
		for _, day := range model.WeekDays {
			h := TechnicianDailyLoad(orders, tech.TechnicianID, day)
			load.DailyHours[day] = h
			if OverloadedDaily(h) {
				load.OverloadedDays = append(load.OverloadedDays, day)
			}
		}
		loads = append(loads, load)
	}
	return loads
}

// DayLoad is the aggregate load of one weekday across the whole team.
type DayLoad struct {
	Day      string  `json:"day"`
	Hours    float64 `json:"hours"`
	Limit    float64 `json:"limit"`
	Critical bool    `json:"critical"`
}

// DailyTeamLoad totals, per weekday, the estimated hours of every order
// scheduled that day regardless of assignee, against a team limit of
// techCount × 8h. A day is critical only when its hours exceed a non-zero
// limit: an empty roster never flags.
func DailyTeamLoad(orders []model.Order, techCount int) []DayLoad {
	limit := float64(techCount) * TeamDailyCapacityHours
	loads := make([]DayLoad, 0, len(model.WeekDays))
	for _, day := range model.WeekDays {
		var hours float64
		for i := range orders {
			if orders[i].ScheduledDay == day {
				hours += orders[i].EstimatedHours
			}
		}
		loads = append(loads, DayLoad{
			Day:      day,
			Hours:    hours,
			Limit:    limit,
			Critical: hours > limit && limit > 0,
		})
	}
	return loads
}

package planning

import (
	"time"

	"pcm-swm/backend/internal/model"
)

// WeekWindow is a Monday-to-Sunday scheduling window with its ISO-8601 week
// number.
type WeekWindow struct {
	Start time.Time `json:"start"` // Monday 00:00:00
	End   time.Time `json:"end"`   // Sunday 23:59:59
	Year  int       `json:"year"`  // ISO week-numbering year
	Week  int       `json:"week"`  // 1–53
}

// WeekWindowFor resolves the window containing ref. The ISO week number is
// Thursday-anchored: January 1 on a Friday, Saturday or Sunday belongs to the
// final week of the prior year.
func WeekWindowFor(ref time.Time) WeekWindow {
	weekday := int(ref.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).
		AddDate(0, 0, -(weekday - 1))
	end := start.AddDate(0, 0, 6).
		Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	year, week := ref.ISOWeek()
	return WeekWindow{Start: start, End: end, Year: year, Week: week}
}

// Contains reports whether t falls inside the window (inclusive bounds).
func (w WeekWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// IsCurrentWeek reports whether the window is the real calendar week
// containing now.
func (w WeekWindow) IsCurrentWeek(now time.Time) bool {
	return w.Contains(now)
}

// OrderInWindow decides whether an order belongs to the viewed week.
// Orders with an explicit scheduled date are included when the date falls in
// the window. Legacy orders carrying only a weekday name are visible only in
// the live current week; browsing past or future weeks hides them.
func OrderInWindow(o *model.Order, w WeekWindow, now time.Time) bool {
	if o.ScheduledDate != nil {
		return w.Contains(*o.ScheduledDate)
	}
	return w.IsCurrentWeek(now)
}

// FilterWeek returns the orders belonging to the window. The input slice is
// never mutated.
func FilterWeek(orders []model.Order, w WeekWindow, now time.Time) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for i := range orders {
		if OrderInWindow(&orders[i], w, now) {
			out = append(out, orders[i])
		}
	}
	return out
}

package planning

import (
	"testing"
	"time"

	"pcm-swm/backend/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekWindowFor_MidWeek(t *testing.T) {
	// Wednesday 2026-01-21
	w := WeekWindowFor(date(2026, time.January, 21))

	if !w.Start.Equal(date(2026, time.January, 19)) {
		t.Errorf("expected start Monday 2026-01-19, got %v", w.Start)
	}
	wantEnd := time.Date(2026, time.January, 25, 23, 59, 59, 0, time.UTC)
	if !w.End.Equal(wantEnd) {
		t.Errorf("expected end Sunday 2026-01-25 23:59:59, got %v", w.End)
	}
	if w.Week != 4 {
		t.Errorf("expected ISO week 4, got %d", w.Week)
	}
}

func TestWeekWindowFor_SundayReference(t *testing.T) {
	// A Sunday resolves to the window starting the Monday six days earlier
	// and ending that same Sunday.
	sunday := date(2026, time.January, 25)
	w := WeekWindowFor(sunday)

	if !w.Start.Equal(date(2026, time.January, 19)) {
		t.Errorf("expected start Monday 2026-01-19, got %v", w.Start)
	}
	wantEnd := time.Date(2026, time.January, 25, 23, 59, 59, 0, time.UTC)
	if !w.End.Equal(wantEnd) {
		t.Errorf("expected end that same Sunday 23:59:59, got %v", w.End)
	}
}

func TestWeekWindowFor_ISOYearBoundary(t *testing.T) {
	// 2027-01-01 is a Friday: Thursday-anchored numbering assigns it to
	// week 53 of 2026.
	w := WeekWindowFor(date(2027, time.January, 1))
	if w.Year != 2026 || w.Week != 53 {
		t.Errorf("expected 2026-W53, got %d-W%d", w.Year, w.Week)
	}

	// 2028-01-01 is a Saturday: it belongs to week 52 of 2027.
	w = WeekWindowFor(date(2028, time.January, 1))
	if w.Year != 2027 || w.Week != 52 {
		t.Errorf("expected 2027-W52, got %d-W%d", w.Year, w.Week)
	}
}

func TestWeekWindow_Contains(t *testing.T) {
	w := WeekWindowFor(date(2026, time.January, 21))

	if !w.Contains(date(2026, time.January, 19)) {
		t.Error("Monday start should be inside the window")
	}
	if !w.Contains(time.Date(2026, time.January, 25, 23, 59, 59, 0, time.UTC)) {
		t.Error("Sunday end should be inside the window")
	}
	if w.Contains(date(2026, time.January, 26)) {
		t.Error("the following Monday should be outside the window")
	}
}

func TestOrderInWindow_ExplicitDate(t *testing.T) {
	w := WeekWindowFor(date(2026, time.January, 21))
	now := date(2026, time.March, 10) // viewing a past week

	inside := date(2026, time.January, 20)
	outside := date(2026, time.February, 2)

	o := order(nil, nil, "Terça", 2)
	o.ScheduledDate = &inside
	if !OrderInWindow(&o, w, now) {
		t.Error("dated order inside the window should be included")
	}

	o.ScheduledDate = &outside
	if OrderInWindow(&o, w, now) {
		t.Error("dated order outside the window should be excluded")
	}
}

func TestOrderInWindow_LegacyDayNameOnly(t *testing.T) {
	legacy := order(nil, nil, "Quarta", 2) // no scheduled date

	now := date(2026, time.January, 21)
	current := WeekWindowFor(now)
	past := WeekWindowFor(date(2026, time.January, 7))
	future := WeekWindowFor(date(2026, time.February, 11))

	if !OrderInWindow(&legacy, current, now) {
		t.Error("legacy order should appear in the live current week")
	}
	if OrderInWindow(&legacy, past, now) {
		t.Error("legacy order should be hidden when browsing a past week")
	}
	if OrderInWindow(&legacy, future, now) {
		t.Error("legacy order should be hidden when browsing a future week")
	}
}

func TestFilterWeek_DeterministicAndNonMutating(t *testing.T) {
	now := date(2026, time.January, 21)
	current := WeekWindowFor(now)
	past := WeekWindowFor(date(2026, time.January, 7))

	legacy := order(nil, nil, "Quarta", 2)
	orders := []model.Order{legacy}

	if got := FilterWeek(orders, past, now); len(got) != 0 {
		t.Errorf("expected legacy order hidden in past week, got %d orders", len(got))
	}
	// Switching back to the current week shows it again without mutation.
	if got := FilterWeek(orders, current, now); len(got) != 1 {
		t.Errorf("expected legacy order visible in current week, got %d orders", len(got))
	}
	if orders[0].ScheduledDate != nil {
		t.Error("filtering must not mutate the underlying order")
	}
}

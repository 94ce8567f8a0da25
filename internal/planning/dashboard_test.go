package planning

import (
	"testing"

	"pcm-swm/backend/internal/model"
)

func TestStats(t *testing.T) {
	completed := order(strptr("t1"), nil, "Segunda", 4)
	completed.Status = model.OrderStatusCompleted

	orders := []model.Order{
		completed,
		order(strptr("t1"), nil, "Terça", 10),
		order(strptr("t2"), nil, "Quarta", 8),
	}
	shutdowns := []model.Shutdown{{Machine: "MP-1"}}

	s := Stats(orders, shutdowns, 2) // capacity 88h

	if s.TotalOrders != 3 {
		t.Errorf("expected 3 orders, got %d", s.TotalOrders)
	}
	if s.TotalHours != 22 {
		t.Errorf("expected 22h planned, got %v", s.TotalHours)
	}
	if s.CompletedOrders != 1 {
		t.Errorf("expected 1 completed, got %d", s.CompletedOrders)
	}
	if s.BacklogHours != 18 {
		t.Errorf("expected 18h backlog, got %v", s.BacklogHours)
	}
	if s.ShutdownCount != 1 {
		t.Errorf("expected 1 shutdown, got %d", s.ShutdownCount)
	}
	if s.CapacityUsedPercent != 25 { // 22/88
		t.Errorf("expected 25%% capacity used, got %d", s.CapacityUsedPercent)
	}
}

func TestStats_ZeroTechnicians(t *testing.T) {
	orders := []model.Order{order(nil, nil, "Segunda", 10)}

	s := Stats(orders, nil, 0)
	if s.CapacityUsedPercent != 0 {
		t.Errorf("expected 0%% with no technicians, got %d", s.CapacityUsedPercent)
	}
}

func TestBacklogByDiscipline(t *testing.T) {
	elec := order(nil, nil, "Segunda", 2)
	elec.Discipline = model.DisciplineElectrical
	elec.Status = model.OrderStatusCompleted

	orders := []model.Order{
		order(nil, nil, "Segunda", 4), // Mecânica, pending
		order(nil, nil, "Terça", 3),   // Mecânica, pending
		elec,
	}

	rows := BacklogByDiscipline(orders)
	if len(rows) != 2 {
		t.Fatalf("expected 2 disciplines with orders, got %d", len(rows))
	}

	if rows[0].Discipline != model.DisciplineMechanical || rows[0].Pending != 2 || rows[0].Completed != 0 {
		t.Errorf("unexpected mechanical row: %+v", rows[0])
	}
	if rows[1].Discipline != model.DisciplineElectrical || rows[1].Pending != 0 || rows[1].Completed != 1 {
		t.Errorf("unexpected electrical row: %+v", rows[1])
	}
}

func TestCountByArea(t *testing.T) {
	a := order(nil, nil, "Segunda", 1)
	a.Area = "MP-1"
	b := order(nil, nil, "Terça", 1)
	b.Area = "Caldeiras"
	c := order(nil, nil, "Quarta", 1)
	c.Area = "MP-1"

	rows := CountByArea([]model.Order{a, b, c})
	if len(rows) != 2 {
		t.Fatalf("expected 2 areas, got %d", len(rows))
	}
	if rows[0].Area != "MP-1" || rows[0].Count != 2 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Area != "Caldeiras" || rows[1].Count != 1 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestDetectBottlenecks(t *testing.T) {
	technicians := []model.Technician{
		technician("t1", "Carlos"),
		technician("t2", "Marina"),
	}
	orders := []model.Order{
		order(strptr("t1"), nil, "Segunda", 30),
		order(strptr("t1"), nil, "Terça", 20), // t1 at 50h, overloaded
		order(strptr("t2"), nil, "Segunda", 8),
	}

	b := DetectBottlenecks(orders, technicians)

	if len(b.OverloadedTechnicians) != 1 {
		t.Fatalf("expected 1 overloaded technician, got %d", len(b.OverloadedTechnicians))
	}
	if b.OverloadedTechnicians[0].Technician.TechnicianID != "t1" || b.OverloadedTechnicians[0].Hours != 50 {
		t.Errorf("unexpected overload row: %+v", b.OverloadedTechnicians[0])
	}

	// Segunda holds 38h against a 16h team limit.
	if len(b.CriticalDays) != 2 {
		t.Fatalf("expected 2 critical days (Segunda 38h, Terça 20h vs 16h limit), got %d", len(b.CriticalDays))
	}
	if b.CriticalDays[0].Day != "Segunda" {
		t.Errorf("expected Segunda first, got %s", b.CriticalDays[0].Day)
	}
}

func TestDetectBottlenecks_CleanWeek(t *testing.T) {
	technicians := []model.Technician{technician("t1", "Carlos")}
	orders := []model.Order{order(strptr("t1"), nil, "Segunda", 6)}

	b := DetectBottlenecks(orders, technicians)
	if len(b.OverloadedTechnicians) != 0 || len(b.CriticalDays) != 0 {
		t.Errorf("expected no bottlenecks, got %+v", b)
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/model"
)

func newExportServiceForTest(t *testing.T) (ExportService, *mockOrderRepo, *mockTechnicianRepo) {
	t.Helper()
	repo, orderRepo, techRepo := newMockRepository()
	svc := NewExportService(repo, zap.NewNop()).(*exportService)
	svc.now = func() time.Time { return time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC) } // Wednesday, week 35
	return svc, orderRepo, techRepo
}

func TestExportWeek_EmptyWeek(t *testing.T) {
	svc, _, _ := newExportServiceForTest(t)

	_, _, err := svc.ExportWeek(context.Background(), &dto.WeekRequest{})
	if !errors.Is(err, ErrExportNoOrders) {
		t.Errorf("err = %v, want ErrExportNoOrders", err)
	}
}

func TestExportWeek_LayoutAndFilename(t *testing.T) {
	svc, orderRepo, techRepo := newExportServiceForTest(t)
	ctx := context.Background()

	ana := &model.Technician{Name: "Ana", Discipline: model.DisciplineElectrical, Shift: model.ShiftFirst}
	bruno := &model.Technician{Name: "Bruno", Discipline: model.DisciplineMechanical, Shift: model.ShiftFirst}
	techRepo.Create(ctx, ana)
	techRepo.Create(ctx, bruno)

	orderRepo.Create(ctx, &model.Order{
		OrderID: "o1", OSNumber: "4711", Discipline: model.DisciplineElectrical,
		Status: model.OrderStatusPlanned, Priority: model.PriorityMedium,
		EstimatedHours: 5, ScheduledDay: "Segunda", TechnicianID: &ana.TechnicianID,
	}, nil)
	orderRepo.Create(ctx, &model.Order{
		OrderID: "o2", OSNumber: "4712", Discipline: model.DisciplineMechanical,
		Status: model.OrderStatusPlanned, Priority: model.PriorityMedium,
		EstimatedHours: 3, ScheduledDay: "Quarta",
	}, nil)

	buf, filename, err := svc.ExportWeek(ctx, &dto.WeekRequest{})
	if err != nil {
		t.Fatalf("ExportWeek: %v", err)
	}
	if filename != "programacao_semanal_2026_S35.xlsx" {
		t.Errorf("filename = %q", filename)
	}
	if buf.Len() < 2 || buf.Bytes()[0] != 0x50 || buf.Bytes()[1] != 0x4B {
		t.Fatal("output is not a zip-based xlsx workbook")
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	const sheet = "Programação"
	get := func(cell string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("read %s: %v", cell, err)
		}
		return v
	}

	// Row 2 is the header: Técnico, the seven weekdays, then the total.
	if got := get("A2"); got != "Técnico" {
		t.Errorf("A2 = %q, want Técnico", got)
	}
	if got := get("B2"); got != "Segunda" {
		t.Errorf("B2 = %q, want Segunda", got)
	}
	if got := get("H2"); got != "Domingo" {
		t.Errorf("H2 = %q, want Domingo", got)
	}
	if got := get("I2"); got != "Total (h)" {
		t.Errorf("I2 = %q, want Total (h)", got)
	}

	// Roster rows follow in roster order.
	if got := get("A3"); got != "Ana" {
		t.Errorf("A3 = %q, want Ana", got)
	}
	if got := get("B3"); got != "OS 4711 (5.0h)" {
		t.Errorf("B3 = %q, want Ana's Monday order", got)
	}
	if got := get("I3"); got != "5" {
		t.Errorf("I3 = %q, want the weekly total 5", got)
	}
	if got := get("A4"); got != "Bruno" {
		t.Errorf("A4 = %q, want Bruno", got)
	}
	if got := get("B4"); got != "" {
		t.Errorf("B4 = %q, Bruno has no Monday work", got)
	}

	// Unassigned work lands on the trailing row.
	if got := get("A5"); got != "Não atribuídas" {
		t.Errorf("A5 = %q, want the unassigned row", got)
	}
	if got := get("B5"); got != "OS 4712 (3.0h)" {
		t.Errorf("B5 = %q, want the unassigned order", got)
	}
}

func TestExportWeek_ExcludesOtherWeeks(t *testing.T) {
	svc, orderRepo, techRepo := newExportServiceForTest(t)
	ctx := context.Background()

	tech := &model.Technician{Name: "Ana", Discipline: model.DisciplineElectrical, Shift: model.ShiftFirst}
	techRepo.Create(ctx, tech)

	past := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	orderRepo.Create(ctx, &model.Order{
		OrderID: "o1", OSNumber: "4711", Discipline: model.DisciplineElectrical,
		Status: model.OrderStatusPlanned, Priority: model.PriorityMedium,
		EstimatedHours: 5, ScheduledDay: "Segunda", ScheduledDate: &past, TechnicianID: &tech.TechnicianID,
	}, nil)

	if _, _, err := svc.ExportWeek(ctx, &dto.WeekRequest{}); !errors.Is(err, ErrExportNoOrders) {
		t.Errorf("err = %v, out-of-window orders should leave the week empty", err)
	}
}

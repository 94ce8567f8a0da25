package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/model"
	"pcm-swm/backend/internal/planning"
	"pcm-swm/backend/internal/repository"
)

var (
	ErrExportNoOrders     = fmt.Errorf("no orders scheduled in the selected week")
	ErrExportGenerateFail = fmt.Errorf("failed to generate the spreadsheet")
)

// ExportService renders the weekly program as an XLSX workbook.
//
// Layout: one row per technician, one column per weekday, the cell listing
// that technician's orders for the day plus a weekly-total column. The buffer
// comes back to the handler, which sets the download headers.
type ExportService interface {
	ExportWeek(ctx context.Context, req *dto.WeekRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

func (s *exportService) ExportWeek(ctx context.Context, req *dto.WeekRequest) (*bytes.Buffer, string, error) {
	now := s.now()
	ref := now
	if req != nil && req.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", req.Date, now.Location())
		if err != nil {
			return nil, "", err
		}
		ref = d
	}
	window := planning.WeekWindowFor(ref)

	orders, err := s.repo.Order.ListAll(ctx)
	if err != nil {
		s.logger.Error("list orders", zap.Error(err))
		return nil, "", err
	}
	weekOrders := planning.FilterWeek(orders, window, now)
	if len(weekOrders) == 0 {
		return nil, "", ErrExportNoOrders
	}

	technicians, err := s.repo.Technician.List(ctx, "", "")
	if err != nil {
		s.logger.Error("list technicians", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Programação"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 24)
	for i := range model.WeekDays {
		col := colName(1 + i)
		f.SetColWidth(sheetName, col, col, 28)
	}
	f.SetColWidth(sheetName, colName(1+len(model.WeekDays)), colName(1+len(model.WeekDays)), 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	overloadStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#C00000"},
	})

	title := fmt.Sprintf("Programação Semanal — Semana %02d/%d (%s a %s)",
		window.Week, window.Year,
		window.Start.Format("02/01"), window.End.Format("02/01/2006"))
	f.SetCellValue(sheetName, "A1", title)
	f.MergeCell(sheetName, "A1", cellRef(colName(1+len(model.WeekDays)), 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	row := 2
	f.SetCellValue(sheetName, cellRef("A", row), "Técnico")
	for i, day := range model.WeekDays {
		f.SetCellValue(sheetName, cellRef(colName(1+i), row), day)
	}
	totalCol := colName(1 + len(model.WeekDays))
	f.SetCellValue(sheetName, cellRef(totalCol, row), "Total (h)")
	f.SetCellStyle(sheetName, cellRef("A", row), cellRef(totalCol, row), headerStyle)

	row = 3
	for _, load := range planning.TeamCapacity(weekOrders, technicians) {
		f.SetCellValue(sheetName, cellRef("A", row), load.Technician.Name)
		for i, day := range model.WeekDays {
			var lines []string
			for j := range weekOrders {
				o := &weekOrders[j]
				if o.ScheduledDay == day && o.AssignedTo(load.Technician.TechnicianID) {
					lines = append(lines, fmt.Sprintf("OS %s (%.1fh)", o.OSNumber, o.EstimatedHours))
				}
			}
			f.SetCellValue(sheetName, cellRef(colName(1+i), row), strings.Join(lines, "\n"))
		}
		f.SetCellValue(sheetName, cellRef(totalCol, row), load.WeeklyHours)
		if load.OverloadedWeekly {
			f.SetCellStyle(sheetName, cellRef(totalCol, row), cellRef(totalCol, row), overloadStyle)
		}
		row++
	}

	// Unassigned work goes on a trailing row so the printout still shows it.
	var unassigned []string
	for j := range weekOrders {
		if weekOrders[j].TechnicianID == nil && weekOrders[j].CollaboratorID == nil {
			unassigned = append(unassigned, fmt.Sprintf("OS %s (%.1fh)", weekOrders[j].OSNumber, weekOrders[j].EstimatedHours))
		}
	}
	if len(unassigned) > 0 {
		f.SetCellValue(sheetName, cellRef("A", row), "Não atribuídas")
		f.SetCellValue(sheetName, cellRef("B", row), strings.Join(unassigned, "\n"))
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write workbook", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("programacao_semanal_%d_S%02d.xlsx", window.Year, window.Week)
	return buf, filename, nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cellRef(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

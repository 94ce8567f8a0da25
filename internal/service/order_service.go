package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pcm-swm/backend/config"
	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/model"
	"pcm-swm/backend/internal/repository"
	"pcm-swm/backend/pkg/mq"
)

var (
	ErrOrderNotFound        = errors.New("work order not found")
	ErrInvalidOrderType     = errors.New("invalid order type")
	ErrInvalidDiscipline    = errors.New("invalid discipline")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidScheduledDay  = errors.New("invalid scheduled day")
	ErrSameTechnician       = errors.New("technician and collaborator must differ")
	ErrImportNoData         = errors.New("spreadsheet has no data rows")
	ErrImportNoValidRows    = errors.New("no valid orders found in the spreadsheet")
	ErrImportBadHeader      = errors.New("spreadsheet header is missing the OS column")
	ErrImportTooManyRows    = errors.New("spreadsheet exceeds the import row limit")
	ErrImportUnreadableFile = errors.New("file is not a readable XLSX spreadsheet")
)

// Attribution used for rows created by the spreadsheet importer.
const importActorName = "Sistema (Importação)"

// OrderService handles the work-order lifecycle: CRUD, the append-only
// change log and the XLSX importer.
type OrderService interface {
	Create(ctx context.Context, actor string, req *dto.OrderSaveRequest) (*model.Order, error)
	Get(ctx context.Context, id string) (*dto.OrderResponse, error)
	List(ctx context.Context, req *dto.OrderListRequest) ([]dto.OrderResponse, int64, error)
	Update(ctx context.Context, actor, id string, req *dto.OrderSaveRequest) (*model.Order, error)
	Delete(ctx context.Context, id string) error
	Logs(ctx context.Context, id string) ([]model.OrderLog, error)
	Import(ctx context.Context, reader io.Reader) (*dto.ImportOrdersResponse, error)
}

type orderService struct {
	cfg       *config.Config
	repo      *repository.Repository
	publisher mq.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewOrderService creates the OrderService.
func NewOrderService(
	cfg *config.Config,
	repo *repository.Repository,
	publisher mq.Publisher,
	logger *zap.Logger,
) OrderService {
	return &orderService{
		cfg:       cfg,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *orderService) Create(ctx context.Context, actor string, req *dto.OrderSaveRequest) (*model.Order, error) {
	order, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}

	// Ids are assigned here rather than by the database default so the
	// creation entry can reference the order inside one transaction.
	order.OrderID = uuid.New().String()
	entry := model.OrderLog{
		OrderID:   order.OrderID,
		Timestamp: s.now(),
		UserName:  actor,
		Action:    model.LogActionCreated,
	}

	if err := s.repo.Order.Create(ctx, order, []model.OrderLog{entry}); err != nil {
		s.logger.Error("create order", zap.Error(err))
		return nil, err
	}

	s.publish(ctx, "order.created", map[string]any{
		"order_id":  order.OrderID,
		"os_number": order.OSNumber,
		"status":    order.Status,
	})
	return order, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := s.repo.Order.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	names, err := s.technicianNames(ctx)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(*order, names)
	return &resp, nil
}

func (s *orderService) List(ctx context.Context, req *dto.OrderListRequest) ([]dto.OrderResponse, int64, error) {
	filters := repository.OrderFilters{
		Discipline:   req.Discipline,
		TechnicianID: req.TechnicianID,
		Status:       req.Status,
		Priority:     req.Priority,
		Area:         req.Area,
		Search:       req.Search,
	}

	orders, total, err := s.repo.Order.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list orders", zap.Error(err))
		return nil, 0, err
	}

	names, err := s.technicianNames(ctx)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, s.toResponse(o, names))
	}
	return out, total, nil
}

func (s *orderService) Update(ctx context.Context, actor, id string, req *dto.OrderSaveRequest) (*model.Order, error) {
	existing, err := s.repo.Order.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	updated, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.OrderID = existing.OrderID
	updated.CreatedAt = existing.CreatedAt

	entries := diffEntries(existing, updated, actor, s.now())

	if err := s.repo.Order.Update(ctx, updated, entries); err != nil {
		s.logger.Error("update order", zap.Error(err))
		return nil, err
	}

	s.publish(ctx, "order.updated", map[string]any{
		"order_id":  updated.OrderID,
		"os_number": updated.OSNumber,
		"status":    updated.Status,
		"changes":   len(entries),
	})
	return updated, nil
}

// diffEntries compares the watched fields of two order versions and returns
// one change-log entry per transition. Status moving to Reprogramada gets the
// reprogramming label instead of the generic status one.
func diffEntries(old, new *model.Order, actor string, ts time.Time) []model.OrderLog {
	var entries []model.OrderLog

	if old.Status != new.Status {
		action := model.LogActionStatusChange
		if new.Status == model.OrderStatusReprogrammed {
			action = model.LogActionReprogrammed
		}
		entries = append(entries, model.OrderLog{
			OrderID:   old.OrderID,
			Timestamp: ts,
			UserName:  actor,
			Action:    action,
			Field:     strptr(model.LogFieldStatus),
			OldValue:  strptr(string(old.Status)),
			NewValue:  strptr(string(new.Status)),
		})
	}

	if old.Priority != new.Priority {
		entries = append(entries, model.OrderLog{
			OrderID:   old.OrderID,
			Timestamp: ts,
			UserName:  actor,
			Action:    model.LogActionPriorityChange,
			Field:     strptr(model.LogFieldPriority),
			OldValue:  strptr(string(old.Priority)),
			NewValue:  strptr(string(new.Priority)),
		})
	}

	return entries
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Order.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if err := s.repo.Order.Delete(ctx, id); err != nil {
		s.logger.Error("delete order", zap.Error(err))
		return err
	}
	s.publish(ctx, "order.deleted", map[string]any{"order_id": id})
	return nil
}

func (s *orderService) Logs(ctx context.Context, id string) ([]model.OrderLog, error) {
	if _, err := s.repo.Order.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.repo.OrderLog.ListByOrder(ctx, id)
}

// ────────────────────── spreadsheet import ──────────────────────

// importColumns maps the spreadsheet header names the planners use to
// logical columns. Matching is case-insensitive on the trimmed header.
var importColumns = map[string]string{
	"os":          "os",
	"número":      "os",
	"numero":      "os",
	"tipo":        "type",
	"área":        "area",
	"area":        "area",
	"tag":         "tag",
	"descrição":   "description",
	"descricao":   "description",
	"disciplina":  "discipline",
	"prioridade":  "priority",
	"horas":       "hours",
	"parada":      "shutdown",
	"técnico":     "technician",
	"tecnico":     "technician",
	"colaborador": "collaborator",
	"dia":         "day",
}

func (s *orderService) Import(ctx context.Context, reader io.Reader) (*dto.ImportOrdersResponse, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportUnreadableFile, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	excelRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(excelRows) < 2 {
		return nil, ErrImportNoData
	}
	if len(excelRows)-1 > s.cfg.Import.MaxRows {
		return nil, ErrImportTooManyRows
	}

	colIndex := parseHeaderIndex(excelRows[0])
	if colIndex["os"] < 0 {
		return nil, ErrImportBadHeader
	}

	nameToID, err := s.technicianIDsByName(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ImportOrdersResponse{Total: len(excelRows) - 1}
	ts := s.now()

	var orders []model.Order
	for i := 1; i < len(excelRows); i++ {
		row := excelRows[i]
		cell := func(col string) string {
			idx, ok := colIndex[col]
			if !ok || idx < 0 || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		// Rows without an OS number are filler or subtotals in the
		// planners' sheets. They are skipped, not errors.
		osNumber := cell("os")
		if osNumber == "" {
			resp.Skipped++
			continue
		}

		order := model.Order{
			OSNumber:            osNumber,
			Type:                model.OrderTypePreventive,
			Area:                cell("area"),
			Tag:                 cell("tag"),
			Description:         cell("description"),
			Priority:            model.PriorityMedium,
			EstimatedHours:      1,
			OperationalShutdown: strings.EqualFold(cell("shutdown"), "Sim"),
			Status:              model.OrderStatusPlanned,
			ScheduledDay:        "Segunda",
		}

		if v := cell("type"); v != "" {
			if !model.ValidOrderType(v) {
				resp.Errors = append(resp.Errors, dto.ImportRowError{Row: i + 1, Reason: "tipo inválido: " + v})
				resp.Skipped++
				continue
			}
			order.Type = model.OrderType(v)
		}

		v := cell("discipline")
		if !model.ValidDiscipline(v) {
			resp.Errors = append(resp.Errors, dto.ImportRowError{Row: i + 1, Reason: "disciplina inválida: " + v})
			resp.Skipped++
			continue
		}
		order.Discipline = model.Discipline(v)

		if v := cell("priority"); v != "" {
			if !model.ValidPriority(v) {
				resp.Errors = append(resp.Errors, dto.ImportRowError{Row: i + 1, Reason: "prioridade inválida: " + v})
				resp.Skipped++
				continue
			}
			order.Priority = model.Priority(v)
		}

		if v := cell("hours"); v != "" {
			h, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
			if err != nil || h <= 0 {
				resp.Errors = append(resp.Errors, dto.ImportRowError{Row: i + 1, Reason: "horas inválidas: " + v})
				resp.Skipped++
				continue
			}
			order.EstimatedHours = h
		}

		if v := cell("day"); v != "" {
			if !model.ValidWeekDay(v) {
				resp.Errors = append(resp.Errors, dto.ImportRowError{Row: i + 1, Reason: "dia inválido: " + v})
				resp.Skipped++
				continue
			}
			order.ScheduledDay = v
		}

		// Technicians are matched by roster name. Unknown names leave the
		// order unassigned rather than failing the row.
		if id, ok := nameToID[strings.ToLower(cell("technician"))]; ok {
			order.TechnicianID = strptr(id)
		}
		if id, ok := nameToID[strings.ToLower(cell("collaborator"))]; ok {
			order.CollaboratorID = strptr(id)
		}

		order.OrderID = uuid.New().String()
		orders = append(orders, order)
	}

	// Data rows existed but none survived filtering. The partial response
	// rides along so the caller can surface the per-row reasons.
	if len(orders) == 0 {
		return resp, ErrImportNoValidRows
	}

	entries := make([]model.OrderLog, 0, len(orders))
	for _, o := range orders {
		entries = append(entries, model.OrderLog{
			OrderID:   o.OrderID,
			Timestamp: ts,
			UserName:  importActorName,
			Action:    model.LogActionImported,
		})
	}

	if err := s.repo.Order.BatchCreate(ctx, orders, entries); err != nil {
		s.logger.Error("batch create orders", zap.Error(err))
		return nil, err
	}

	resp.Imported = len(orders)
	s.publish(ctx, "order.imported", map[string]any{
		"total":    resp.Total,
		"imported": resp.Imported,
		"skipped":  resp.Skipped,
	})
	return resp, nil
}

// parseHeaderIndex maps logical column names to spreadsheet column indexes.
// Unknown headers are ignored; missing columns stay at -1.
func parseHeaderIndex(header []string) map[string]int {
	idx := map[string]int{"os": -1}
	for i, h := range header {
		lower := strings.ToLower(strings.TrimSpace(h))
		if col, ok := importColumns[lower]; ok {
			if _, seen := idx[col]; !seen || idx[col] < 0 {
				idx[col] = i
			}
		}
	}
	return idx
}

// ────────────────────── helpers ──────────────────────

func (s *orderService) fromRequest(req *dto.OrderSaveRequest) (*model.Order, error) {
	if !model.ValidOrderType(req.Type) {
		return nil, ErrInvalidOrderType
	}
	if !model.ValidDiscipline(req.Discipline) {
		return nil, ErrInvalidDiscipline
	}
	if !model.ValidPriority(req.Priority) {
		return nil, ErrInvalidPriority
	}
	if !model.ValidOrderStatus(req.Status) {
		return nil, ErrInvalidStatus
	}
	if !model.ValidWeekDay(req.ScheduledDay) {
		return nil, ErrInvalidScheduledDay
	}
	if req.TechnicianID != nil && req.CollaboratorID != nil && *req.TechnicianID == *req.CollaboratorID {
		return nil, ErrSameTechnician
	}

	order := &model.Order{
		OSNumber:            req.OSNumber,
		Type:                model.OrderType(req.Type),
		Area:                req.Area,
		Tag:                 req.Tag,
		Description:         req.Description,
		Discipline:          model.Discipline(req.Discipline),
		Priority:            model.Priority(req.Priority),
		EstimatedHours:      req.EstimatedHours,
		OperationalShutdown: req.OperationalShutdown,
		Status:              model.OrderStatus(req.Status),
		TechnicianID:        req.TechnicianID,
		CollaboratorID:      req.CollaboratorID,
		ScheduledDay:        req.ScheduledDay,
		ReprogrammingReason: req.ReprogrammingReason,
		Attachments:         req.Attachments,
	}

	if req.ScheduledDate != nil {
		d, err := time.Parse("2006-01-02", *req.ScheduledDate)
		if err != nil {
			return nil, fmt.Errorf("parse scheduled_date: %w", err)
		}
		order.ScheduledDate = &d
	}

	return order, nil
}

func (s *orderService) toResponse(order model.Order, names map[string]string) dto.OrderResponse {
	resp := dto.OrderResponse{Order: order}
	if order.TechnicianID != nil {
		resp.TechnicianName = names[*order.TechnicianID]
	}
	if order.CollaboratorID != nil {
		resp.CollaboratorName = names[*order.CollaboratorID]
	}
	return resp
}

func (s *orderService) technicianNames(ctx context.Context) (map[string]string, error) {
	techs, err := s.repo.Technician.List(ctx, "", "")
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(techs))
	for _, t := range techs {
		names[t.TechnicianID] = t.Name
	}
	return names, nil
}

func (s *orderService) technicianIDsByName(ctx context.Context) (map[string]string, error) {
	techs, err := s.repo.Technician.List(ctx, "", "")
	if err != nil {
		return nil, err
	}
	ids := make(map[string]string, len(techs))
	for _, t := range techs {
		ids[strings.ToLower(t.Name)] = t.TechnicianID
	}
	return ids, nil
}

// publish emits a lifecycle event. Broker failures are logged, never
// surfaced: eventing is best-effort and must not fail the write.
func (s *orderService) publish(ctx context.Context, routingKey string, payload any) {
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		s.logger.Warn("publish event", zap.String("routing_key", routingKey), zap.Error(err))
	}
}

func strptr(s string) *string { return &s }


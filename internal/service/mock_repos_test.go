package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pcm-swm/backend/internal/model"
	"pcm-swm/backend/internal/repository"
)

// ── mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

// ── mock OrderRepository ──

type mockOrderRepo struct {
	orders    map[string]*model.Order
	logs      []model.OrderLog
	idCounter int
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*model.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, order *model.Order, entries []model.OrderLog) error {
	if order.OrderID == "" {
		m.idCounter++
		order.OrderID = fmt.Sprintf("order-%d", m.idCounter)
	}
	cp := *order
	m.orders[order.OrderID] = &cp
	m.logs = append(m.logs, entries...)
	return nil
}

func (m *mockOrderRepo) BatchCreate(_ context.Context, orders []model.Order, entries []model.OrderLog) error {
	if len(orders) == 0 {
		return nil
	}
	for i := range orders {
		if orders[i].OrderID == "" {
			m.idCounter++
			orders[i].OrderID = fmt.Sprintf("order-%d", m.idCounter)
		}
		cp := orders[i]
		m.orders[cp.OrderID] = &cp
	}
	m.logs = append(m.logs, entries...)
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id string) (*model.Order, error) {
	if o, ok := m.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) List(_ context.Context, filters repository.OrderFilters, offset, limit int) ([]model.Order, int64, error) {
	var filtered []model.Order
	for _, o := range m.orders {
		if filters.Discipline != "" && string(o.Discipline) != filters.Discipline {
			continue
		}
		if filters.Status != "" && string(o.Status) != filters.Status {
			continue
		}
		if filters.TechnicianID != "" && !o.AssignedTo(filters.TechnicianID) {
			continue
		}
		filtered = append(filtered, *o)
	}
	total := int64(len(filtered))
	if offset >= len(filtered) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

func (m *mockOrderRepo) ListAll(_ context.Context) ([]model.Order, error) {
	var result []model.Order
	for _, o := range m.orders {
		result = append(result, *o)
	}
	return result, nil
}

func (m *mockOrderRepo) Update(_ context.Context, order *model.Order, entries []model.OrderLog) error {
	if _, ok := m.orders[order.OrderID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *order
	m.orders[order.OrderID] = &cp
	m.logs = append(m.logs, entries...)
	return nil
}

func (m *mockOrderRepo) Delete(_ context.Context, id string) error {
	delete(m.orders, id)
	return nil
}

func (m *mockOrderRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.orders))
	m.orders = make(map[string]*model.Order)
	m.logs = nil
	return n, nil
}

// logsFor filters the captured entries by order id.
func (m *mockOrderRepo) logsFor(orderID string) []model.OrderLog {
	var result []model.OrderLog
	for _, l := range m.logs {
		if l.OrderID == orderID {
			result = append(result, l)
		}
	}
	return result
}

// ── mock OrderLogRepository ──

type mockOrderLogRepo struct {
	orders *mockOrderRepo
}

func newMockOrderLogRepo(orders *mockOrderRepo) *mockOrderLogRepo {
	return &mockOrderLogRepo{orders: orders}
}

func (m *mockOrderLogRepo) ListByOrder(_ context.Context, orderID string) ([]model.OrderLog, error) {
	return m.orders.logsFor(orderID), nil
}

// ── mock TechnicianRepository ──

type mockTechnicianRepo struct {
	techs     map[string]*model.Technician
	roster    []string
	idCounter int
}

func newMockTechnicianRepo() *mockTechnicianRepo {
	return &mockTechnicianRepo{techs: make(map[string]*model.Technician)}
}

func (m *mockTechnicianRepo) Create(_ context.Context, tech *model.Technician) error {
	if tech.TechnicianID == "" {
		m.idCounter++
		tech.TechnicianID = fmt.Sprintf("tech-%d", m.idCounter)
	}
	cp := *tech
	m.techs[tech.TechnicianID] = &cp
	m.roster = append(m.roster, tech.TechnicianID)
	return nil
}

func (m *mockTechnicianRepo) GetByID(_ context.Context, id string) (*model.Technician, error) {
	if t, ok := m.techs[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTechnicianRepo) List(_ context.Context, discipline, shift string) ([]model.Technician, error) {
	var result []model.Technician
	for _, id := range m.roster {
		t, ok := m.techs[id]
		if !ok {
			continue
		}
		if discipline != "" && string(t.Discipline) != discipline {
			continue
		}
		if shift != "" && string(t.Shift) != shift {
			continue
		}
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTechnicianRepo) Update(_ context.Context, tech *model.Technician) error {
	if _, ok := m.techs[tech.TechnicianID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *tech
	m.techs[tech.TechnicianID] = &cp
	return nil
}

func (m *mockTechnicianRepo) Delete(_ context.Context, id string) error {
	delete(m.techs, id)
	for i, rid := range m.roster {
		if rid == id {
			m.roster = append(m.roster[:i], m.roster[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockTechnicianRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.techs))
	m.techs = make(map[string]*model.Technician)
	m.roster = nil
	return n, nil
}

// ── mock ShutdownRepository ──

type mockShutdownRepo struct {
	shutdowns map[string]*model.Shutdown
	idCounter int
}

func newMockShutdownRepo() *mockShutdownRepo {
	return &mockShutdownRepo{shutdowns: make(map[string]*model.Shutdown)}
}

func (m *mockShutdownRepo) Create(_ context.Context, sd *model.Shutdown) error {
	if sd.ShutdownID == "" {
		m.idCounter++
		sd.ShutdownID = fmt.Sprintf("sd-%d", m.idCounter)
	}
	cp := *sd
	m.shutdowns[sd.ShutdownID] = &cp
	return nil
}

func (m *mockShutdownRepo) GetByID(_ context.Context, id string) (*model.Shutdown, error) {
	if sd, ok := m.shutdowns[id]; ok {
		cp := *sd
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShutdownRepo) List(_ context.Context) ([]model.Shutdown, error) {
	var result []model.Shutdown
	for _, sd := range m.shutdowns {
		result = append(result, *sd)
	}
	return result, nil
}

func (m *mockShutdownRepo) ListBetween(_ context.Context, start, end time.Time) ([]model.Shutdown, error) {
	var result []model.Shutdown
	for _, sd := range m.shutdowns {
		if !sd.Date.Before(start) && !sd.Date.After(end) {
			result = append(result, *sd)
		}
	}
	return result, nil
}

func (m *mockShutdownRepo) Update(_ context.Context, sd *model.Shutdown) error {
	if _, ok := m.shutdowns[sd.ShutdownID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *sd
	m.shutdowns[sd.ShutdownID] = &cp
	return nil
}

func (m *mockShutdownRepo) Delete(_ context.Context, id string) error {
	delete(m.shutdowns, id)
	return nil
}

func (m *mockShutdownRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.shutdowns))
	m.shutdowns = make(map[string]*model.Shutdown)
	return n, nil
}

// ── mock AssetRepository ──

type mockAssetRepo struct {
	assets    map[string]*model.Asset
	idCounter int
}

func newMockAssetRepo() *mockAssetRepo {
	return &mockAssetRepo{assets: make(map[string]*model.Asset)}
}

func (m *mockAssetRepo) Create(_ context.Context, asset *model.Asset) error {
	if asset.AssetID == "" {
		m.idCounter++
		asset.AssetID = fmt.Sprintf("asset-%d", m.idCounter)
	}
	cp := *asset
	m.assets[asset.AssetID] = &cp
	return nil
}

func (m *mockAssetRepo) GetByID(_ context.Context, id string) (*model.Asset, error) {
	if a, ok := m.assets[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssetRepo) GetByTag(_ context.Context, tag string) (*model.Asset, error) {
	for _, a := range m.assets {
		if a.Tag == tag {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssetRepo) List(_ context.Context, area, criticality, status string) ([]model.Asset, error) {
	var result []model.Asset
	for _, a := range m.assets {
		if area != "" && a.Area != area {
			continue
		}
		if criticality != "" && a.Criticality != criticality {
			continue
		}
		if status != "" && string(a.Status) != status {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAssetRepo) Update(_ context.Context, asset *model.Asset) error {
	if _, ok := m.assets[asset.AssetID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *asset
	m.assets[asset.AssetID] = &cp
	return nil
}

func (m *mockAssetRepo) Delete(_ context.Context, id string) error {
	delete(m.assets, id)
	return nil
}

func (m *mockAssetRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.assets))
	m.assets = make(map[string]*model.Asset)
	return n, nil
}

// ── mock Publisher ──

type mockPublisher struct {
	events []string
}

func (m *mockPublisher) Publish(_ context.Context, routingKey string, _ any) error {
	m.events = append(m.events, routingKey)
	return nil
}

// ── helpers ──

func newMockRepository() (*repository.Repository, *mockOrderRepo, *mockTechnicianRepo) {
	orders := newMockOrderRepo()
	techs := newMockTechnicianRepo()
	return &repository.Repository{
		User:       newMockUserRepo(),
		Order:      orders,
		OrderLog:   newMockOrderLogRepo(orders),
		Technician: techs,
		Shutdown:   newMockShutdownRepo(),
		Asset:      newMockAssetRepo(),
	}, orders, techs
}

package dto

import "pcm-swm/backend/internal/model"

// ── order module ──

// OrderSaveRequest is the full-record payload for both create and update:
// saves are replace-on-save, mirroring the planning form.
type OrderSaveRequest struct {
	OSNumber            string   `json:"os_number"       binding:"required,max=50"`
	Type                string   `json:"type"            binding:"required"`
	Area                string   `json:"area"            binding:"max=100"`
	Tag                 string   `json:"tag"             binding:"max=100"`
	Description         string   `json:"description"`
	Discipline          string   `json:"discipline"      binding:"required"`
	Priority            string   `json:"priority"        binding:"required"`
	EstimatedHours      float64  `json:"estimated_hours" binding:"required,gt=0"`
	OperationalShutdown bool     `json:"operational_shutdown"`
	Status              string   `json:"status"          binding:"required"`
	TechnicianID        *string  `json:"technician_id"   binding:"omitempty,uuid"`
	CollaboratorID      *string  `json:"collaborator_id" binding:"omitempty,uuid"`
	ScheduledDay        string   `json:"scheduled_day"   binding:"required"`
	ScheduledDate       *string  `json:"scheduled_date"  binding:"omitempty,datetime=2006-01-02"`
	ReprogrammingReason *string  `json:"reprogramming_reason"`
	Attachments         []string `json:"attachments"`
}

// OrderListRequest filters the order listing.
type OrderListRequest struct {
	PaginationRequest
	Discipline   string `form:"discipline"`
	TechnicianID string `form:"technician_id" binding:"omitempty,uuid"`
	Status       string `form:"status"`
	Priority     string `form:"priority"`
	Area         string `form:"area"`
	Search       string `form:"search" binding:"omitempty,max=100"`
}

// OrderResponse is an order with its technician names resolved. Names for
// deleted technicians resolve to the empty string rather than failing.
type OrderResponse struct {
	model.Order
	TechnicianName   string `json:"technician_name,omitempty"`
	CollaboratorName string `json:"collaborator_name,omitempty"`
}

// ImportOrdersResponse summarizes an XLSX import.
type ImportOrdersResponse struct {
	Total    int               `json:"total"`
	Imported int               `json:"imported"`
	Skipped  int               `json:"skipped"`
	Errors   []ImportRowError  `json:"errors,omitempty"`
}

// ImportRowError pins an import problem to a spreadsheet row.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// WipeResponse reports what a bulk wipe removed.
type WipeResponse struct {
	OrdersDeleted      int64 `json:"orders_deleted"`
	TechniciansDeleted int64 `json:"technicians_deleted"`
	ShutdownsDeleted   int64 `json:"shutdowns_deleted"`
	AssetsDeleted      int64 `json:"assets_deleted"`
}

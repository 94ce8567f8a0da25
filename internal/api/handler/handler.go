package handler

import "pcm-swm/backend/internal/service"

// Handler aggregates every HTTP handler behind one entry point.
type Handler struct {
	Auth       *AuthHandler
	Order      *OrderHandler
	Technician *TechnicianHandler
	Shutdown   *ShutdownHandler
	Asset      *AssetHandler
	Planning   *PlanningHandler
	Export     *ExportHandler
	System     *SystemHandler
}

// NewHandler wires the handlers.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Order:      NewOrderHandler(svc.Order),
		Technician: NewTechnicianHandler(svc.Technician),
		Shutdown:   NewShutdownHandler(svc.Shutdown),
		Asset:      NewAssetHandler(svc.Asset),
		Planning:   NewPlanningHandler(svc.Planning),
		Export:     NewExportHandler(svc.Export),
		System:     NewSystemHandler(svc.System),
	}
}

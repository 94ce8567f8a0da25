package handler

import (
	"github.com/gin-gonic/gin"

	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/service"
	"pcm-swm/backend/pkg/response"
)

// PlanningHandler serves the weekly grid and dashboard endpoints.
type PlanningHandler struct {
	planningSvc service.PlanningService
}

// NewPlanningHandler creates the PlanningHandler.
func NewPlanningHandler(planningSvc service.PlanningService) *PlanningHandler {
	return &PlanningHandler{planningSvc: planningSvc}
}

// Week returns the weekly program grid.
// GET /api/v1/planning/week?date=2026-08-31
func (h *PlanningHandler) Week(c *gin.Context) {
	var req dto.WeekRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid date, expected YYYY-MM-DD")
		return
	}

	grid, err := h.planningSvc.Week(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, grid)
}

// Dashboard returns the weekly indicators.
// GET /api/v1/planning/dashboard?date=2026-08-31
func (h *PlanningHandler) Dashboard(c *gin.Context) {
	var req dto.WeekRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid date, expected YYYY-MM-DD")
		return
	}

	dash, err := h.planningSvc.Dashboard(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, dash)
}

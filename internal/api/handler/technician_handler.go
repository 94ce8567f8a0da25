package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/service"
	"pcm-swm/backend/pkg/response"
)

// TechnicianHandler serves the roster endpoints.
type TechnicianHandler struct {
	techSvc service.TechnicianService
}

// NewTechnicianHandler creates the TechnicianHandler.
func NewTechnicianHandler(techSvc service.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{techSvc: techSvc}
}

// Create adds a technician to the roster.
// POST /api/v1/technicians
func (h *TechnicianHandler) Create(c *gin.Context) {
	var req dto.TechnicianSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	tech, err := h.techSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTechError(c, err)
		return
	}
	response.Created(c, tech)
}

// List returns the roster, optionally filtered.
// GET /api/v1/technicians
func (h *TechnicianHandler) List(c *gin.Context) {
	var req dto.TechnicianListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	techs, err := h.techSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleTechError(c, err)
		return
	}
	response.OK(c, techs)
}

// Get returns one technician.
// GET /api/v1/technicians/:id
func (h *TechnicianHandler) Get(c *gin.Context) {
	tech, err := h.techSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleTechError(c, err)
		return
	}
	response.OK(c, tech)
}

// Update edits a roster entry.
// PUT /api/v1/technicians/:id
func (h *TechnicianHandler) Update(c *gin.Context) {
	var req dto.TechnicianSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	tech, err := h.techSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleTechError(c, err)
		return
	}
	response.OK(c, tech)
}

// Delete removes a technician. Assigned orders keep the dangling id.
// DELETE /api/v1/technicians/:id
func (h *TechnicianHandler) Delete(c *gin.Context) {
	if err := h.techSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleTechError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *TechnicianHandler) handleTechError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTechnicianNotFound):
		response.NotFound(c, 13001, "technician not found")
	case errors.Is(err, service.ErrInvalidDiscipline), errors.Is(err, service.ErrInvalidShift):
		response.UnprocessableEntity(c, 13002, err.Error())
	default:
		response.InternalError(c)
	}
}

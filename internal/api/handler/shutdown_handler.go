package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/service"
	"pcm-swm/backend/pkg/response"
)

// ShutdownHandler serves the shutdown-window endpoints.
type ShutdownHandler struct {
	shutdownSvc service.ShutdownService
}

// NewShutdownHandler creates the ShutdownHandler.
func NewShutdownHandler(shutdownSvc service.ShutdownService) *ShutdownHandler {
	return &ShutdownHandler{shutdownSvc: shutdownSvc}
}

// Create schedules a shutdown window.
// POST /api/v1/shutdowns
func (h *ShutdownHandler) Create(c *gin.Context) {
	var req dto.ShutdownSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	sd, err := h.shutdownSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleShutdownError(c, err)
		return
	}
	response.Created(c, sd)
}

// List returns every shutdown, soonest first.
// GET /api/v1/shutdowns
func (h *ShutdownHandler) List(c *gin.Context) {
	sds, err := h.shutdownSvc.List(c.Request.Context())
	if err != nil {
		h.handleShutdownError(c, err)
		return
	}
	response.OK(c, sds)
}

// Get returns one shutdown.
// GET /api/v1/shutdowns/:id
func (h *ShutdownHandler) Get(c *gin.Context) {
	sd, err := h.shutdownSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleShutdownError(c, err)
		return
	}
	response.OK(c, sd)
}

// Update edits a shutdown, including the realized duration after the fact.
// PUT /api/v1/shutdowns/:id
func (h *ShutdownHandler) Update(c *gin.Context) {
	var req dto.ShutdownSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	sd, err := h.shutdownSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleShutdownError(c, err)
		return
	}
	response.OK(c, sd)
}

// Delete removes a shutdown.
// DELETE /api/v1/shutdowns/:id
func (h *ShutdownHandler) Delete(c *gin.Context) {
	if err := h.shutdownSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleShutdownError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *ShutdownHandler) handleShutdownError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShutdownNotFound):
		response.NotFound(c, 14001, "shutdown not found")
	case errors.Is(err, service.ErrInvalidShutdownStatus):
		response.UnprocessableEntity(c, 14002, err.Error())
	default:
		response.InternalError(c)
	}
}

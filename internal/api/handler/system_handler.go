package handler

import (
	"github.com/gin-gonic/gin"

	"pcm-swm/backend/internal/service"
	"pcm-swm/backend/pkg/response"
)

// SystemHandler serves the administrative endpoints.
type SystemHandler struct {
	systemSvc service.SystemService
}

// NewSystemHandler creates the SystemHandler.
func NewSystemHandler(systemSvc service.SystemService) *SystemHandler {
	return &SystemHandler{systemSvc: systemSvc}
}

// Wipe deletes all planning data. Accounts survive. Admin only.
// POST /api/v1/admin/wipe
func (h *SystemHandler) Wipe(c *gin.Context) {
	result, err := h.systemSvc.WipeAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

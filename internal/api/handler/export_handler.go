package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/service"
	"pcm-swm/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the weekly-program download.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Week downloads the weekly program as an XLSX file.
// GET /api/v1/planning/export?date=2026-08-31
func (h *ExportHandler) Week(c *gin.Context) {
	var req dto.WeekRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid date, expected YYYY-MM-DD")
		return
	}

	buf, filename, err := h.exportSvc.ExportWeek(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportNoOrders):
			response.NotFound(c, 16001, "no orders scheduled in the selected week")
		case errors.Is(err, service.ErrExportGenerateFail):
			response.InternalError(c)
		default:
			response.InternalError(c)
		}
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

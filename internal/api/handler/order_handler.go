package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/service"
	"pcm-swm/backend/pkg/response"
)

// OrderHandler serves the work-order endpoints.
type OrderHandler struct {
	orderSvc service.OrderService
}

// NewOrderHandler creates the OrderHandler.
func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// Create registers a new work order.
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	actor, ok := MustGetUserName(c)
	if !ok {
		return
	}

	var req dto.OrderSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	order, err := h.orderSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}
	response.Created(c, order)
}

// List returns a filtered page of orders.
// GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	var req dto.OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	orders, total, err := h.orderSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}
	response.OKPage(c, orders, total, req.GetPage(), req.GetPageSize())
}

// Get returns one order with its change log.
// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleOrderError(c, err)
		return
	}
	response.OK(c, order)
}

// Update replaces an order's fields, recording watched-field transitions.
// PUT /api/v1/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	actor, ok := MustGetUserName(c)
	if !ok {
		return
	}

	var req dto.OrderSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	order, err := h.orderSvc.Update(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		h.handleOrderError(c, err)
		return
	}
	response.OK(c, order)
}

// Delete removes an order and its change log.
// DELETE /api/v1/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orderSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleOrderError(c, err)
		return
	}
	response.OK(c, nil)
}

// Logs returns an order's change trail, oldest first.
// GET /api/v1/orders/:id/logs
func (h *OrderHandler) Logs(c *gin.Context) {
	logs, err := h.orderSvc.Logs(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleOrderError(c, err)
		return
	}
	response.OK(c, logs)
}

// Import ingests a weekly program spreadsheet.
// POST /api/v1/orders/import  (multipart form, field "file")
func (h *OrderHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "missing file upload")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 10001, "unreadable file upload")
		return
	}
	defer file.Close()

	result, err := h.orderSvc.Import(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, service.ErrImportNoValidRows) && result != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, 12003, err.Error(), importErrorDetails(result.Errors))
			return
		}
		h.handleOrderError(c, err)
		return
	}
	response.OK(c, result)
}

func importErrorDetails(rowErrors []dto.ImportRowError) string {
	parts := make([]string, len(rowErrors))
	for i, re := range rowErrors {
		parts[i] = fmt.Sprintf("linha %d: %s", re.Row, re.Reason)
	}
	return strings.Join(parts, "; ")
}

func (h *OrderHandler) handleOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		response.NotFound(c, 12001, "work order not found")
	case errors.Is(err, service.ErrInvalidOrderType),
		errors.Is(err, service.ErrInvalidDiscipline),
		errors.Is(err, service.ErrInvalidPriority),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidScheduledDay),
		errors.Is(err, service.ErrSameTechnician):
		response.UnprocessableEntity(c, 12002, err.Error())
	case errors.Is(err, service.ErrImportUnreadableFile),
		errors.Is(err, service.ErrImportNoData),
		errors.Is(err, service.ErrImportNoValidRows),
		errors.Is(err, service.ErrImportBadHeader),
		errors.Is(err, service.ErrImportTooManyRows):
		response.BadRequest(c, 12003, err.Error())
	default:
		response.InternalError(c)
	}
}

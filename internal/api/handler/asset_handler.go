package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/service"
	"pcm-swm/backend/pkg/response"
)

// AssetHandler serves the asset-register endpoints.
type AssetHandler struct {
	assetSvc service.AssetService
}

// NewAssetHandler creates the AssetHandler.
func NewAssetHandler(assetSvc service.AssetService) *AssetHandler {
	return &AssetHandler{assetSvc: assetSvc}
}

// Create registers an asset.
// POST /api/v1/assets
func (h *AssetHandler) Create(c *gin.Context) {
	var req dto.AssetSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	asset, err := h.assetSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAssetError(c, err)
		return
	}
	response.Created(c, asset)
}

// List returns the register, optionally filtered.
// GET /api/v1/assets
func (h *AssetHandler) List(c *gin.Context) {
	var req dto.AssetListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	assets, err := h.assetSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleAssetError(c, err)
		return
	}
	response.OK(c, assets)
}

// Get returns one asset.
// GET /api/v1/assets/:id
func (h *AssetHandler) Get(c *gin.Context) {
	asset, err := h.assetSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleAssetError(c, err)
		return
	}
	response.OK(c, asset)
}

// Update edits an asset.
// PUT /api/v1/assets/:id
func (h *AssetHandler) Update(c *gin.Context) {
	var req dto.AssetSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	asset, err := h.assetSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleAssetError(c, err)
		return
	}
	response.OK(c, asset)
}

// Delete removes an asset.
// DELETE /api/v1/assets/:id
func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.assetSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleAssetError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *AssetHandler) handleAssetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssetNotFound):
		response.NotFound(c, 15001, "asset not found")
	case errors.Is(err, service.ErrTagTaken):
		response.Error(c, http.StatusConflict, 15002, "an asset with this tag already exists")
	case errors.Is(err, service.ErrInvalidAssetStatus):
		response.UnprocessableEntity(c, 15003, err.Error())
	default:
		response.InternalError(c)
	}
}

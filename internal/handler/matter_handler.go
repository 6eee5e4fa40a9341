package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mattervault/internal/config"
	"mattervault/internal/domain"
	"mattervault/internal/service"
)

// MatterHandler handles matter management endpoints.
type MatterHandler struct {
	matterService service.MatterService
	api           *config.APIConfig
}

// NewMatterHandler creates a new MatterHandler.
func NewMatterHandler(matterService service.MatterService, api *config.APIConfig) *MatterHandler {
	return &MatterHandler{matterService: matterService, api: api}
}

// Create handles POST /api/v1/matters
func (h *MatterHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Reference   string `json:"reference" binding:"required"`
		Description string `json:"description"`
		CreatedBy   string `json:"created_by" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name, reference and created_by are required")
		return
	}
	createdBy, err := uuid.Parse(req.CreatedBy)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid created_by user ID")
		return
	}

	matter, err := h.matterService.Create(c.Request.Context(), &service.CreateMatterInput{
		Name:        req.Name,
		Reference:   req.Reference,
		Description: req.Description,
		CreatedBy:   createdBy,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, matter)
}

// List handles GET /api/v1/matters
func (h *MatterHandler) List(c *gin.Context) {
	opts := parseListOptions(c, h.api)

	page, err := h.matterService.List(c.Request.Context(), opts)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPage(c, page)
}

// GetByID handles GET /api/v1/matters/:id
func (h *MatterHandler) GetByID(c *gin.Context) {
	matterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid matter ID")
		return
	}

	matter, err := h.matterService.GetByID(c.Request.Context(), matterID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, matter)
}

// Update handles PUT /api/v1/matters/:id
func (h *MatterHandler) Update(c *gin.Context) {
	matterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid matter ID")
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Status      string `json:"status" binding:"required"`
		UpdatedBy   string `json:"updated_by" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name, status and updated_by are required")
		return
	}
	updatedBy, err := uuid.Parse(req.UpdatedBy)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid updated_by user ID")
		return
	}

	matter, err := h.matterService.Update(c.Request.Context(), &service.UpdateMatterInput{
		MatterID:    matterID,
		Name:        req.Name,
		Description: req.Description,
		Status:      domain.MatterStatus(req.Status),
		UpdatedBy:   updatedBy,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, matter)
}

// Delete handles DELETE /api/v1/matters/:id
func (h *MatterHandler) Delete(c *gin.Context) {
	matterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid matter ID")
		return
	}

	if err := h.matterService.Delete(c.Request.Context(), matterID); err != nil {
		HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

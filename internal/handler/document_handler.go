package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mattervault/internal/config"
	"mattervault/internal/domain"
	"mattervault/internal/service"
)

// DocumentHandler handles document and revision endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
	api             *config.APIConfig
	maxFileSize     int64
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService, api *config.APIConfig, s3 *config.S3Config) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		api:             api,
		maxFileSize:     s3.MaxFileSizeMB * 1024 * 1024,
	}
}

// Create handles POST /api/v1/matters/:id/documents
func (h *DocumentHandler) Create(c *gin.Context) {
	matterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid matter ID")
		return
	}

	var req struct {
		Title        string `json:"title" binding:"required"`
		Description  string `json:"description"`
		DocumentType string `json:"document_type" binding:"required"`
		CreatedBy    string `json:"created_by" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "title, document_type and created_by are required")
		return
	}
	createdBy, err := uuid.Parse(req.CreatedBy)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid created_by user ID")
		return
	}

	doc, err := h.documentService.Create(c.Request.Context(), &service.CreateDocumentInput{
		MatterID:     matterID,
		Title:        req.Title,
		Description:  req.Description,
		DocumentType: req.DocumentType,
		CreatedBy:    createdBy,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// ListByMatter handles GET /api/v1/matters/:id/documents
func (h *DocumentHandler) ListByMatter(c *gin.Context) {
	matterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid matter ID")
		return
	}

	opts := parseListOptions(c, h.api)

	page, err := h.documentService.ListByMatter(c.Request.Context(), matterID, opts)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPage(c, page)
}

// GetByID handles GET /api/v1/documents/:id
func (h *DocumentHandler) GetByID(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// Update handles PUT /api/v1/documents/:id
func (h *DocumentHandler) Update(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req struct {
		Title        string `json:"title" binding:"required"`
		Description  string `json:"description"`
		DocumentType string `json:"document_type" binding:"required"`
		Status       string `json:"status" binding:"required"`
		UpdatedBy    string `json:"updated_by" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "title, document_type, status and updated_by are required")
		return
	}
	updatedBy, err := uuid.Parse(req.UpdatedBy)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid updated_by user ID")
		return
	}

	doc, err := h.documentService.Update(c.Request.Context(), &service.UpdateDocumentInput{
		DocumentID:   docID,
		Title:        req.Title,
		Description:  req.Description,
		DocumentType: req.DocumentType,
		Status:       domain.DocumentStatus(req.Status),
		UpdatedBy:    updatedBy,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// Delete handles DELETE /api/v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req struct {
		DeletedBy string `json:"deleted_by" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "deleted_by is required")
		return
	}
	deletedBy, err := uuid.Parse(req.DeletedBy)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid deleted_by user ID")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), docID, deletedBy); err != nil {
		HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Move handles POST /api/v1/documents/:id/move
func (h *DocumentHandler) Move(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req struct {
		ToMatterID string `json:"to_matter_id" binding:"required"`
		MovedBy    string `json:"moved_by" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "to_matter_id and moved_by are required")
		return
	}
	toMatterID, err := uuid.Parse(req.ToMatterID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid target matter ID")
		return
	}
	movedBy, err := uuid.Parse(req.MovedBy)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid moved_by user ID")
		return
	}

	transfer, err := h.documentService.Move(c.Request.Context(), &service.MoveDocumentInput{
		DocumentID: docID,
		ToMatterID: toMatterID,
		MovedBy:    movedBy,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, transfer)
}

// AddRevision handles POST /api/v1/documents/:id/revisions
func (h *DocumentHandler) AddRevision(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	createdBy, err := uuid.Parse(c.PostForm("created_by"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid created_by user ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file is required")
		return
	}
	if fileHeader.Size > h.maxFileSize {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		HandleError(c, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		HandleError(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	rev, err := h.documentService.AddRevision(c.Request.Context(), &service.AddRevisionInput{
		DocumentID:  docID,
		Content:     content,
		ContentType: contentType,
		CreatedBy:   createdBy,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, rev)
}

// ListRevisions handles GET /api/v1/documents/:id/revisions
func (h *DocumentHandler) ListRevisions(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	revisions, err := h.documentService.ListRevisions(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, revisions)
}

// PresignRevision handles GET /api/v1/revisions/:id/url
func (h *DocumentHandler) PresignRevision(c *gin.Context) {
	revID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid revision ID")
		return
	}

	url, err := h.documentService.PresignRevision(c.Request.Context(), revID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}

// DownloadRevision handles GET /api/v1/revisions/:id/content
func (h *DocumentHandler) DownloadRevision(c *gin.Context) {
	revID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid revision ID")
		return
	}

	rev, content, err := h.documentService.DownloadRevision(c.Request.Context(), revID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("revision-%d", rev.Number)))
	c.Data(http.StatusOK, rev.ContentType, content)
}

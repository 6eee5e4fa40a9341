package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mattervault/internal/config"
	"mattervault/internal/domain"
	"mattervault/internal/service"
)

// AuditHandler handles audit trail endpoints.
type AuditHandler struct {
	auditService service.AuditService
	api          *config.APIConfig
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService service.AuditService, api *config.APIConfig) *AuditHandler {
	return &AuditHandler{auditService: auditService, api: api}
}

// Record handles POST /api/v1/audit/records
func (h *AuditHandler) Record(c *gin.Context) {
	var req struct {
		SubjectKind string `json:"subject_kind" binding:"required"`
		SubjectID   string `json:"subject_id" binding:"required"`
		ActivityID  string `json:"activity_id" binding:"required"`
		UserID      string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "subject_kind, subject_id, activity_id and user_id are required")
		return
	}

	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid subject ID")
		return
	}
	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid activity ID")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid user ID")
		return
	}

	rec, err := h.auditService.RecordActivity(c.Request.Context(), &service.RecordActivityInput{
		SubjectKind: domain.SubjectKind(req.SubjectKind),
		SubjectID:   subjectID,
		ActivityID:  activityID,
		UserID:      userID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, rec)
}

// ListBySubject handles GET /api/v1/audit/subjects/:id
func (h *AuditHandler) ListBySubject(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid subject ID")
		return
	}

	opts := parseListOptions(c, h.api)

	page, err := h.auditService.ListBySubject(c.Request.Context(), subjectID, opts)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPage(c, page)
}

// ListActivities handles GET /api/v1/audit/activities
func (h *AuditHandler) ListActivities(c *gin.Context) {
	activities, err := h.auditService.ListActivities(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, activities)
}

// GetTransfer handles GET /api/v1/audit/transfers/:id
func (h *AuditHandler) GetTransfer(c *gin.Context) {
	transferID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid transfer ID")
		return
	}

	from, to, err := h.auditService.GetTransfer(c.Request.Context(), transferID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"from": from, "to": to})
}

// Export handles GET /api/v1/audit/subjects/:id/export
func (h *AuditHandler) Export(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid subject ID")
		return
	}

	data, err := h.auditService.ExportBySubject(c.Request.Context(), subjectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("audit-%s-%s.xlsx", subjectID, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mattervault/internal/domain"
	"mattervault/internal/query"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
	Links   *PagLinks   `json:"links,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	PageSize    int  `json:"page_size"`
	TotalCount  int  `json:"total_count"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// PagLinks holds navigation URLs for a paginated response. NextPage and
// PreviousPage are empty when no such page exists.
type PagLinks struct {
	Current      string `json:"current"`
	NextPage     string `json:"next_page,omitempty"`
	PreviousPage string `json:"previous_page,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPage sends a 200 success response for one result page, with
// pagination metadata and navigation links derived from the request URL.
func RespondPage(c *gin.Context, page *query.Page[query.ShapedRecord]) {
	meta := PagMeta{
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		PageSize:    page.PageSize,
		TotalCount:  page.TotalCount,
		HasPrevious: page.HasPrevious(),
		HasNext:     page.HasNext(),
	}
	links := pageLinks(c, page)
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: page.Items, Meta: &meta, Links: &links})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapError translates domain and query errors to HTTP status codes and
// error codes. Query errors keep their message: it names the offending
// field or parameter, which is the whole point of the 400.
func MapError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, query.ErrUnknownSortField):
		return http.StatusBadRequest, "UNKNOWN_SORT_FIELD", err.Error()
	case errors.Is(err, query.ErrUnknownShapeField):
		return http.StatusBadRequest, "UNKNOWN_FIELD", err.Error()
	case errors.Is(err, query.ErrInvalidPageParameter):
		return http.StatusBadRequest, "INVALID_PAGE_PARAMETER", err.Error()
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "INVALID_STATUS", "invalid status value"
	case errors.Is(err, domain.ErrInvalidSubjectKind):
		return http.StatusBadRequest, "INVALID_SUBJECT_KIND", "subject kind must be matter, document or revision"
	case errors.Is(err, domain.ErrReferentialIntegrity):
		return http.StatusUnprocessableEntity, "REFERENCE_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrSameMatterTransfer):
		return http.StatusUnprocessableEntity, "SAME_MATTER_TRANSFER", "document is already in the target matter"
	case errors.Is(err, domain.ErrDuplicateReference):
		return http.StatusConflict, "DUPLICATE_REFERENCE", "matter reference already exists"
	case errors.Is(err, domain.ErrMatterNotFound):
		return http.StatusNotFound, "MATTER_NOT_FOUND", "matter not found"
	case errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound, "DOCUMENT_NOT_FOUND", "document not found"
	case errors.Is(err, domain.ErrRevisionNotFound):
		return http.StatusNotFound, "REVISION_NOT_FOUND", "revision not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "USER_NOT_FOUND", "user not found"
	case errors.Is(err, domain.ErrActivityNotFound):
		return http.StatusNotFound, "ACTIVITY_NOT_FOUND", "activity not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "revision upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps an error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapError(err)
	if status >= 500 {
		requestID := c.GetString("request_id")
		zap.L().Error("internal error",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	RespondError(c, status, code, msg)
}

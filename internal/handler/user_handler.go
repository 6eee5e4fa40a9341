package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mattervault/internal/config"
	"mattervault/internal/service"
)

// UserHandler handles the read-only user directory endpoints.
type UserHandler struct {
	userService service.UserService
	api         *config.APIConfig
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, api *config.APIConfig) *UserHandler {
	return &UserHandler{userService: userService, api: api}
}

// List handles GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	opts := parseListOptions(c, h.api)

	page, err := h.userService.List(c.Request.Context(), opts)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPage(c, page)
}

// GetByID handles GET /api/v1/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid user ID")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}

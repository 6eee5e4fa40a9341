package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mattervault/internal/handler"
	"mattervault/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	logger *zap.Logger,
	matterH *handler.MatterHandler,
	documentH *handler.DocumentHandler,
	userH *handler.UserHandler,
	auditH *handler.AuditHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Matter routes
	matters := v1.Group("/matters")
	matters.POST("", matterH.Create)
	matters.GET("", matterH.List)
	matters.GET("/:id", matterH.GetByID)
	matters.PUT("/:id", matterH.Update)
	matters.DELETE("/:id", matterH.Delete)
	matters.POST("/:id/documents", documentH.Create)
	matters.GET("/:id/documents", documentH.ListByMatter)

	// Document routes
	documents := v1.Group("/documents")
	documents.GET("/:id", documentH.GetByID)
	documents.PUT("/:id", documentH.Update)
	documents.DELETE("/:id", documentH.Delete)
	documents.POST("/:id/move", documentH.Move)
	documents.POST("/:id/revisions", documentH.AddRevision)
	documents.GET("/:id/revisions", documentH.ListRevisions)

	// Revision content
	v1.GET("/revisions/:id/content", documentH.DownloadRevision)
	v1.GET("/revisions/:id/url", documentH.PresignRevision)

	// User directory
	users := v1.Group("/users")
	users.GET("", userH.List)
	users.GET("/:id", userH.GetByID)

	// Audit trail
	audit := v1.Group("/audit")
	audit.POST("/records", auditH.Record)
	audit.GET("/activities", auditH.ListActivities)
	audit.GET("/subjects/:id", auditH.ListBySubject)
	audit.GET("/subjects/:id/export", auditH.Export)
	audit.GET("/transfers/:id", auditH.GetTransfer)

	return r
}

package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"mattervault/internal/config"
	"mattervault/internal/handler"
	"mattervault/internal/logging"
	"mattervault/internal/repository/postgres"
	"mattervault/internal/router"
	"mattervault/internal/service"
	s3storage "mattervault/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	matterRepo := postgres.NewMatterRepo(db)
	docRepo := postgres.NewDocumentRepo(db)
	revRepo := postgres.NewRevisionRepo(db)
	userRepo := postgres.NewUserRepo(db)
	activityRepo := postgres.NewActivityRepo(db)
	auditRepo := postgres.NewAuditRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// The field-mapping registry is built once; a registration error is a
	// configuration defect and aborts boot.
	registry, err := service.NewFieldRegistry()
	if err != nil {
		return fmt.Errorf("failed to build field registry: %w", err)
	}

	// Initialize services
	auditSvc := service.NewAuditService(auditRepo, matterRepo, docRepo, revRepo, userRepo, activityRepo, registry)
	matterSvc := service.NewMatterService(matterRepo, activityRepo, auditSvc, registry)
	documentSvc := service.NewDocumentService(docRepo, matterRepo, revRepo, activityRepo, auditSvc, s3Client, &cfg.S3, registry, logger)
	userSvc := service.NewUserService(userRepo, registry)

	// Initialize handlers
	matterH := handler.NewMatterHandler(matterSvc, &cfg.API)
	documentH := handler.NewDocumentHandler(documentSvc, &cfg.API, &cfg.S3)
	userH := handler.NewUserHandler(userSvc, &cfg.API)
	auditH := handler.NewAuditHandler(auditSvc, &cfg.API)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(logger, matterH, documentH, userH, auditH, healthH)

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

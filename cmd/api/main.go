package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-portal-backend/config"
	v1 "job-portal-backend/internal/delivery/http/v1"
	"job-portal-backend/internal/repository/postgres"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/blob"
	"job-portal-backend/pkg/database"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/token"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Blob Store (resume files)
	blobStore, err := blob.NewS3Store(context.Background(), blob.S3Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to initialize blob store", "error", err)
		os.Exit(1)
	}

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)

	// 6. Setup Token Service (process-wide signing key)
	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(candidateRepo, employerRepo, tokens)
	profileUC := usecase.NewProfileUsecase(candidateRepo, employerRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, blobStore, cfg.MaxResumeSizeBytes)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:    authUC,
		ProfileUC: profileUC,
		ResumeUC:  resumeUC,
		Tokens:    tokens,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

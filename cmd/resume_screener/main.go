package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/zhassan-dev/resume-screener/api"
	"github.com/zhassan-dev/resume-screener/config"
	"github.com/zhassan-dev/resume-screener/internal/embedding"
	"github.com/zhassan-dev/resume-screener/internal/extract"
	"github.com/zhassan-dev/resume-screener/internal/logger"
	"github.com/zhassan-dev/resume-screener/internal/notify"
	"github.com/zhassan-dev/resume-screener/internal/pipeline"
	"github.com/zhassan-dev/resume-screener/internal/scorer"
	"github.com/zhassan-dev/resume-screener/internal/storage"
	"github.com/zhassan-dev/resume-screener/services"
	"github.com/zhassan-dev/resume-screener/store"
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	uploads, err := storage.NewUploads(cfg.UploadDir)
	if err != nil {
		zlog.Fatal("Failed to prepare upload directory", zap.Error(err))
	}
	zlog.Info("Using upload directory", zap.String("dir", uploads.Dir()))

	// The embedder is built lazily on the first scoring request, so the
	// server starts (and serves uploads without a job description) even
	// before the API key is verified.
	similarity := scorer.New(func() (services.Embedder, error) {
		return embedding.NewOpenAIEmbedder(cfg.OpenAIAPIKey, cfg.EmbeddingModel)
	})

	screener, err := pipeline.New(pipeline.Deps{
		Store:     store.NewCandidateStore(),
		Uploads:   uploads,
		Extractor: extract.New(zlog),
		Scorer:    similarity,
		Notifier:  notify.NewMailer(cfg.SMTP),
		Logger:    zlog,
	}, cfg.Threshold)
	if err != nil {
		zlog.Fatal("Failed to build pipeline", zap.Error(err))
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	api.SetupRoutes(router, screener, zlog)

	zlog.Info("Starting server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"review-cycle-backend/internal/api/routes"
	"review-cycle-backend/internal/config"
	"review-cycle-backend/internal/database"
	"review-cycle-backend/internal/lock"
	"review-cycle-backend/internal/notification"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "review-cycle-backend/docs" // This is needed for swag
)

//	@title			Review Cycle Backend API
//	@version		1.0
//	@description	Backend API for running evaluation periods: period phases, peer pairing, peer and downward evaluations.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@host		localhost:7008
//	@BasePath	/api/v1

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := routes.Dependencies{
		DB:     db,
		Config: cfg,
		Sender: newSender(cfg),
	}

	if cfg.RedisAddr != "" {
		client, err := lock.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logrus.Fatal("Failed to connect to Redis:", err)
		}
		defer client.Close()

		redisLocker := lock.NewRedisLocker(client, cfg.LockTTL())
		deps.Locker = redisLocker
		deps.Cache = redisLocker
		logrus.WithField("addr", cfg.RedisAddr).Info("Using Redis period locks")
	} else {
		deps.Locker = lock.NewMemoryLocker()
		logrus.Warn("REDIS_ADDR not set, period locks are held in process only")
	}

	router := routes.SetupRoutes(deps)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newSender(cfg *config.Config) notification.Sender {
	if cfg.SMTPHost == "" {
		logrus.Warn("SMTP_HOST not set, notification mails are only logged")
		return notification.NewLogSender()
	}
	return notification.NewSMTPSender(notification.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

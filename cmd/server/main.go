package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cs-crm-backend/internal/api/routes"
	"cs-crm-backend/internal/config"
	"cs-crm-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	_ "cs-crm-backend/docs" // This is needed for swag
)

//	@title			Customer Success CRM API
//	@version		1.0
//	@description	Organizations, DSO workspaces, memberships, access grants and invites of the customer-success CRM.

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	SessionCookie
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by the session token, or send the session cookie.

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	setupLogging(cfg.LogLevel, cfg.IsProduction())

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.IdentityFallbackEnabled {
		logrus.Warn("Identity fallback is enabled: user_id in query or body is accepted without a session")
	}

	router, err := routes.SetupRoutes(db, cfg, prometheus.NewRegistry())
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func setupLogging(level string, jsonOutput bool) {
	if jsonOutput {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

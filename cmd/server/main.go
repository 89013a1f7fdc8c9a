// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soleshelf/inventory-backend/internal/config"
	"github.com/soleshelf/inventory-backend/internal/database"
	"github.com/soleshelf/inventory-backend/internal/repository"
	"github.com/soleshelf/inventory-backend/internal/router"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	// Select the storage backend once; the repository lives for the
	// process lifetime.
	var repo repository.ShoeRepository
	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
		db, err := database.Initialize(cfg.Database, log)
		if err != nil {
			log.WithError(err).Fatal("Failed to initialize database")
		}
		defer database.Close(db, log)

		if err := database.RunMigrations(db, log); err != nil {
			log.WithError(err).Fatal("Failed to run migrations")
		}

		if cfg.Storage.SeedData {
			if err := database.SeedDemoData(db, log); err != nil {
				log.WithError(err).Fatal("Failed to seed demo data")
			}
		}

		repo = repository.NewGormShoeRepository(db)
	case config.StorageBackendMemory:
		log.Warn("Using in-memory storage backend; data will not survive a restart")
		repo = repository.NewMemoryShoeRepository()
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r, err := router.Initialize(repo, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize router")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.WithField("port", cfg.Server.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server exited")
}

package main

import (
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"clinisys-server/internal/clinic"
	"clinisys-server/internal/config"
	"clinisys-server/internal/logs"
	"clinisys-server/internal/models"
	"clinisys-server/internal/routes"
)

func main() {
	// Load environment variables; a missing .env is fine in production.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := logs.New(cfg)
	slog.SetDefault(logger)

	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	loc := time.Local
	if cfg.ClinicTimezone != "" {
		loc, err = time.LoadLocation(cfg.ClinicTimezone)
		if err != nil {
			log.Fatalf("Invalid CLINIC_TIMEZONE %q: %v", cfg.ClinicTimezone, err)
		}
	}

	store := clinic.NewGormStore(db, time.Duration(cfg.StoreTimeoutSeconds)*time.Second)
	coordinator := clinic.NewCoordinator(store, loc, logger)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, db, coordinator, cfg)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server starting", slog.String("addr", serverAddr))
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

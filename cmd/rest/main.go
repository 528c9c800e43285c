package main

import (
	"log"
	"os"
	"time"

	"photo-portfolio-be/internal/bootstrap"
	"photo-portfolio-be/internal/config"
	"photo-portfolio-be/internal/pkg/logger"
	"photo-portfolio-be/internal/server"
	"photo-portfolio-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	// 2. Readiness Gate: block until the database accepts connections, then
	// ensure schema. Exhausting the probe budget is fatal; the supervisor is
	// expected to restart the process once the dependency comes up.
	gormDB, err := database.WaitForPostgres(
		database.GormConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.Name,
			SSLMode:  cfg.Database.SSLMode,
		},
		cfg.Database.ConnectAttempts,
		time.Duration(cfg.Database.ConnectDelaySeconds)*time.Second,
		sysLogger,
	)
	if err != nil {
		sysLogger.Error("startup", "database initialization failed", map[string]interface{}{
			"error": err.Error(),
		})
		sysLogger.Sync()
		os.Exit(1)
	}

	if err := database.EnsureSchema(gormDB); err != nil {
		sysLogger.Error("startup", "schema creation failed", map[string]interface{}{
			"error": err.Error(),
		})
		sysLogger.Sync()
		os.Exit(1)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg, sysLogger)

	// 4. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}

package database

import (
	"fmt"
	"time"

	"photo-portfolio-be/internal/model"
	"photo-portfolio-be/internal/pkg/logger"

	"gorm.io/gorm"
)

// ProbeFunc attempts one database connection check.
type ProbeFunc func() error

// Await retries probe up to attempts times with a fixed delay between
// failures. It returns the last probe error once the budget is exhausted.
// This is the only place the process deliberately sleeps; it runs exactly
// once, before the server starts listening.
func Await(probe ProbeFunc, attempts int, delay time.Duration, log logger.ILogger) error {
	if attempts < 1 {
		return fmt.Errorf("readiness budget must allow at least one attempt, got %d", attempts)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = probe()
		if lastErr == nil {
			log.Info("database", "database is reachable", map[string]interface{}{
				"attempt": attempt,
			})
			return nil
		}
		log.Warn("database", "database not ready", map[string]interface{}{
			"attempt":  attempt,
			"attempts": attempts,
			"error":    lastErr.Error(),
		})
		if attempt < attempts {
			time.Sleep(delay)
		}
	}
	return fmt.Errorf("database unreachable after %d attempts: %w", attempts, lastErr)
}

// WaitForPostgres runs the startup readiness gate: probe until the database
// accepts connections, then hand back the connected handle. Schema creation
// is left to EnsureSchema so the gate never runs DDL against an unreachable
// store.
func WaitForPostgres(cfg GormConfig, attempts int, delay time.Duration, log logger.ILogger) (*gorm.DB, error) {
	var db *gorm.DB

	probe := func() error {
		conn, err := NewGormDB(cfg)
		if err != nil {
			return err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			sqlDB.Close()
			return err
		}
		db = conn
		return nil
	}

	if err := Await(probe, attempts, delay, log); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates any of the four record tables that do not yet exist.
// It never drops or alters existing tables, so running it against an
// already-provisioned store is a no-op.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Photographer{},
		&model.Shot{},
		&model.ContactMessage{},
		&model.ScheduleRequest{},
	)
}

package db

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/novareservas/reservation-api/internal/config"
	"github.com/novareservas/reservation-api/internal/models"
)

// NewDB opens the file-backed SQLite database and brings the schema up
// to date. Migration runs to completion before this returns, so no
// request is served against missing tables.
func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return db
}

// Open is split out from NewDB so tests can point it at ":memory:".
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// SQLite allows one writer at a time; a single connection keeps
	// concurrent writes queued instead of failing with SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Service{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

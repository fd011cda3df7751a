package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB wraps the GORM database handle
type DB struct {
	*gorm.DB
}

// Open opens a connection to the SQLite database
func Open(path string) (*DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on&_journal_mode=WAL"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection: %w", err)
	}

	// The store serializes access internally; a single writer is assumed.
	sqlDB.SetMaxOpenConns(1)

	return &DB{gormDB}, nil
}

// NewDBFromGorm wraps an existing GORM handle (used by tests)
func NewDBFromGorm(gormDB *gorm.DB) *DB {
	return &DB{gormDB}
}

// Migrate creates all tables and indexes. Only schema is created; the
// prompts table in particular carries no seed rows, and an absent prompt
// is a valid state the callers handle.
func (db *DB) Migrate() error {
	return db.AutoMigrate(
		&Verse{},
		&Commentary{},
		&VersionDisplayName{},
		&Prompt{},
	)
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

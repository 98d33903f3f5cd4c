// Package db provides persistent storage for cycle tracking data.
// It supports SQLite with WAL mode and provides GORM-based models for
// cycle logs, stored predictions, and per-owner settings.
package db

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is the interface for database operations
type Database interface {
	DB() *gorm.DB
	Close() error
	AutoMigrate() error
}

// database is the concrete implementation
type database struct {
	db *gorm.DB
}

// DB returns the underlying GORM database
func (d *database) DB() *gorm.DB {
	return d.db
}

// Close closes the database connection
func (d *database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate runs schema migration for all models
func (d *database) AutoMigrate() error {
	return AutoMigrate(d.db)
}

// Open opens (creating if necessary) the database at the given path.
// Parent directories are created as needed; ":memory:" is passed
// through untouched for tests.
func Open(path string, logLevel logger.LogLevel) (Database, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	gormDB, err := OpenSQLite(SQLiteConfig{Path: path, LogLevel: logLevel})
	if err != nil {
		return nil, err
	}

	return &database{db: gormDB}, nil
}

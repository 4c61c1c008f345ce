package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"fitography/internal/config"
)

type MethodsDB interface {
	CloseDB() error
	HealthCheck() error
	GetDB() *DB
}

type DB struct {
	*sqlx.DB
}

// slots is the local key-value storage: one named slot per persisted record,
// written as a full-value overwrite by a single owner.
const slotsSchema = `
	CREATE TABLE IF NOT EXISTS slots (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)
`

func ConnectDB(cfg *config.Config) (*DB, error) {
	log.Printf("Opening local storage: %s", cfg.Storage.Path)

	db, err := sqlx.Connect("sqlite3", cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	// Single writer; sqlite gets grumpy with more connections than that.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(slotsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create slots table: %w", err)
	}

	dbStruct := DB{db}

	if err := dbStruct.HealthCheck(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage health check failed: %w", err)
	}

	return &dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) HealthCheck() error {
	if db == nil {
		return fmt.Errorf("storage is not initialized")
	}

	return db.Ping()
}

func (db *DB) GetDB() *DB {
	return db
}

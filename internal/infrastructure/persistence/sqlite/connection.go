// Package sqlite opens the SQLite databases charts read from and the ones
// the convert command writes.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/bnema/chartdeck/internal/logging"
	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary
)

// Mode selects how a database file is opened.
type Mode int

const (
	// ReadOnly fails if the file does not exist and rejects writes.
	ReadOnly Mode = iota
	// ReadWrite creates the file and its directory when missing.
	ReadWrite
)

var ErrEmptyPath = errors.New("database path cannot be empty")

// Open connects to the database at dbPath.
func Open(ctx context.Context, dbPath string, mode Mode) (*sql.DB, error) {
	const dbDirPerm = 0o750
	log := logging.FromContext(ctx)

	if dbPath == "" {
		return nil, ErrEmptyPath
	}

	dsn := "file:" + (&url.URL{Path: dbPath}).EscapedPath()
	switch mode {
	case ReadOnly:
		if _, err := os.Stat(dbPath); err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		dsn += "?mode=ro"
	case ReadWrite:
		if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn += "?mode=rwc"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	configurePool(db)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applyPragmas(ctx, db, mode); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Debug().Str("path", dbPath).Bool("read_only", mode == ReadOnly).Msg("database opened")
	return db, nil
}

func applyPragmas(ctx context.Context, db *sql.DB, mode Mode) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA temp_store = MEMORY",
	}
	if mode == ReadOnly {
		pragmas = append(pragmas, "PRAGMA query_only = ON")
	} else {
		pragmas = append(pragmas,
			"PRAGMA journal_mode = WAL",
			"PRAGMA synchronous = NORMAL",
		)
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}
	return nil
}

// configurePool keeps a single long-lived connection; SQLite has one writer
// and the process outlives every query.
func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
}

// Close closes db if it is open.
func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// OpenDB opens the SQLite database at path, creating its directory when
// needed, and runs migrations. Foreign keys are enforced and file databases
// use WAL so readers never block the snapshot writer.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every connection to :memory: is a separate database, so pin the pool
	// to one connection.
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// OpenOrReset opens path like OpenDB. When an existing file is not a
// readable SQLite database it is renamed to <path>.corrupt-<unix>, its WAL
// and shared-memory files are dropped, and a fresh database is created in
// its place. The second result is where the damaged file went, or "" when
// nothing was moved.
func OpenOrReset(path string, logger *slog.Logger) (*sql.DB, string, error) {
	db, err := OpenDB(path)
	if err == nil || path == MemoryPath {
		return db, "", err
	}
	if !isCorrupt(err) {
		return nil, "", err
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, "", err
	}

	aside := fmt.Sprintf("%s.corrupt-%d", path, time.Now().Unix())
	if logger != nil {
		logger.Error("database_unreadable", "path", path, "moved_to", aside, "error", err.Error())
	}
	if renameErr := os.Rename(path, aside); renameErr != nil {
		return nil, "", errors.Join(err, fmt.Errorf("moving damaged database aside: %w", renameErr))
	}
	for _, suffix := range []string{"-wal", "-shm"} {
		if rmErr := os.Remove(path + suffix); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			return nil, aside, fmt.Errorf("removing %s: %w", path+suffix, rmErr)
		}
	}

	db, err = OpenDB(path)
	if err != nil {
		return nil, aside, err
	}
	return db, aside, nil
}

func isCorrupt(err error) bool {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	switch serr.Code() & 0xff {
	case sqlite3.SQLITE_NOTADB, sqlite3.SQLITE_CORRUPT:
		return true
	}
	return false
}

// Package sqlite stores bills and transactions in a single SQLite file.
// Amounts are kept as decimal strings and dates as ISO-8601 text so that
// range filters compare lexically.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	driverName      = "sqlite"
	dateLayout      = time.DateOnly
	timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Open creates the database file if needed, migrates it and returns the handle.
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// SQLite allows a single writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

// NewRepositoryProvider exposes the SQLite-backed repositories.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BillRepo:        NewBillRepository(db),
		TransactionRepo: NewTransactionRepository(db),
	}
}

// mapWriteError translates driver errors into application errors.
func mapWriteError(err error, entity, id string) error {
	var sqliteErr *moderncsqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%w: %s with ID %s already exists", apperrors.ErrDuplicate, entity, id)
		}
	}
	return fmt.Errorf("failed to write %s %s: %w", entity, id, err)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

func nullDate(t sql.NullTime) sql.NullString {
	if !t.Valid {
		return sql.NullString{}
	}
	return sql.NullString{String: formatDate(t.Time), Valid: true}
}

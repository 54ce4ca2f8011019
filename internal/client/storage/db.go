// Package storage opens the local console database and brings its schema up
// to date. The same database file backs the persisted session and the chat
// transcripts.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/adminconsole/internal/client/migrations"
	"github.com/dmitrijs2005/adminconsole/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// migrateMu serialises schema upgrades within the process. Across processes
// the IF NOT EXISTS guards in the migrations and SQLite's busy timeout let
// concurrent opens converge on one schema.
var migrateMu sync.Mutex

// EnsureSchema applies every pending embedded migration. Running it on an
// up-to-date database is a no-op.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func withPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// Open opens (creating if absent) the SQLite database at dsn and ensures its
// schema. The caller owns the returned handle.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, fmt.Errorf("failed to prepare database directory: %w", err)
	}

	db, err := sql.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dsn == ":memory:" {
		// every connection would get its own empty database otherwise
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

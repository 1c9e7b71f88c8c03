/*
Package sqlite provides a SQLite-backed implementation of the reference
table store.

PURPOSE:
  Implements refdata.Store using SQLite. Lookup tables (RMD distribution
  periods and friends) are published reference data: they change only
  when a new table is published, so a small embedded database is the
  right weight. In production, the same patterns apply to PostgreSQL -
  only minor SQL dialect differences.

KEY TABLES:
  lookup_tables:  One row per named table (name, max_key)
  lookup_entries: One row per (table, key, value)

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/refdata.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  if err := store.Seed(ctx, retirement.UniformLifetimeTable()); err != nil {
      log.Fatal(err)
  }

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - refdata/refdata.go: Interface definition and Memory implementation
  - retirement/table.go: The published table seeded at startup
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/finance-engine/refdata"
)

// Store implements refdata.Store using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Named lookup tables
	CREATE TABLE IF NOT EXISTS lookup_tables (
		name TEXT PRIMARY KEY,
		max_key INTEGER NOT NULL
	);

	-- Table rows
	CREATE TABLE IF NOT EXISTS lookup_entries (
		table_name TEXT NOT NULL,
		key INTEGER NOT NULL,
		value REAL NOT NULL,
		PRIMARY KEY (table_name, key),
		FOREIGN KEY (table_name) REFERENCES lookup_tables(name) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_lookup_entries_table
		ON lookup_entries(table_name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// REFDATA STORE IMPLEMENTATION
// =============================================================================

// GetTable loads a named table with all its rows.
func (s *Store) GetTable(ctx context.Context, name string) (*refdata.Table, error) {
	var maxKey int
	err := s.db.QueryRowContext(ctx,
		`SELECT max_key FROM lookup_tables WHERE name = ?`, name).Scan(&maxKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", name, refdata.ErrTableNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load table %q: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM lookup_entries WHERE table_name = ?`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for %q: %w", name, err)
	}
	defer rows.Close()

	table := &refdata.Table{Name: name, MaxKey: maxKey, Values: make(map[int]float64)}
	for rows.Next() {
		var key int
		var value float64
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan entry for %q: %w", name, err)
		}
		table.Values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries for %q: %w", name, err)
	}
	return table, nil
}

// PutTable saves a table, replacing any previous version atomically.
func (s *Store) PutTable(ctx context.Context, table *refdata.Table) error {
	if table == nil || table.Name == "" {
		return errors.New("table must have a name")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO lookup_tables (name, max_key) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET max_key = excluded.max_key`,
		table.Name, table.MaxKey); err != nil {
		return fmt.Errorf("failed to save table %q: %w", table.Name, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM lookup_entries WHERE table_name = ?`, table.Name); err != nil {
		return fmt.Errorf("failed to clear entries for %q: %w", table.Name, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO lookup_entries (table_name, key, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare entry insert: %w", err)
	}
	defer stmt.Close()

	for key, value := range table.Values {
		if _, err := stmt.ExecContext(ctx, table.Name, key, value); err != nil {
			return fmt.Errorf("failed to save entry %d for %q: %w", key, table.Name, err)
		}
	}

	return tx.Commit()
}

// ListTables returns the names of all stored tables.
func (s *Store) ListTables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM lookup_tables ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// =============================================================================
// SEEDING
// =============================================================================

// Seed inserts the given tables only if they are not already present,
// so a restart never clobbers an operator-updated table.
func (s *Store) Seed(ctx context.Context, tables ...*refdata.Table) error {
	for _, table := range tables {
		_, err := s.GetTable(ctx, table.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, refdata.ErrTableNotFound) {
			return err
		}
		if err := s.PutTable(ctx, table); err != nil {
			return err
		}
	}
	return nil
}

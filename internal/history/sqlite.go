package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/unitconv/internal/units"
)

//go:embed schema.sql
var schemaSQL string

// SQLite is a Store backed by a private in-memory SQLite database.
//
// The database exists only on the store's single connection: closing the
// store (or losing the connection) discards every record.
type SQLite struct {
	db    *sql.DB
	clock *Clock
}

// OpenSQLite creates an empty store on a new in-memory database.
func OpenSQLite() (*SQLite, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Each connection to :memory: is its own database, so pin exactly one
	// and never let the pool recycle it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLite{db: db, clock: NewClock()}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = MEMORY",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// Append implements Store.
func (s *SQLite) Append(ctx context.Context, r Record) (Record, error) {
	r.Seq = s.clock.Next()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records
		(seq, category, input_value, from_unit, result, to_unit)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		r.Seq,
		r.Category.String(),
		r.InputValue,
		r.FromUnit.String(),
		r.Result,
		r.ToUnit.String(),
	)
	if err != nil {
		return Record{}, fmt.Errorf("append record: %w", err)
	}

	return r, nil
}

// List implements Store.
func (s *SQLite) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, category, input_value, from_unit, result, to_unit
		FROM records
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

// Len implements Store.
func (s *SQLite) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Close implements Store.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		r                          Record
		category, fromUnit, toUnit string
	)
	if err := rows.Scan(&r.Seq, &category, &r.InputValue, &fromUnit, &r.Result, &toUnit); err != nil {
		return Record{}, fmt.Errorf("scan record: %w", err)
	}

	var err error
	if r.Category, err = units.ParseCategory(category); err != nil {
		return Record{}, fmt.Errorf("scan record %d: %w", r.Seq, err)
	}
	if r.FromUnit, err = units.ParseUnit(r.Category, fromUnit); err != nil {
		return Record{}, fmt.Errorf("scan record %d: %w", r.Seq, err)
	}
	if r.ToUnit, err = units.ParseUnit(r.Category, toUnit); err != nil {
		return Record{}, fmt.Errorf("scan record %d: %w", r.Seq, err)
	}

	return r, nil
}

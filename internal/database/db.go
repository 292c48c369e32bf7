package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jgoulah/utilityview/pkg/models"
	_ "modernc.org/sqlite"
)

// DB wraps the import log database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS imports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file TEXT NOT NULL,
		loaded_at TEXT NOT NULL,
		electricity_rows INTEGER NOT NULL DEFAULT 0,
		electricity_skipped INTEGER NOT NULL DEFAULT 0,
		water_rows INTEGER NOT NULL DEFAULT 0,
		water_skipped INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_imports_file ON imports(file);
	CREATE INDEX IF NOT EXISTS idx_imports_loaded_at ON imports(loaded_at);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// RecordImport stores an import entry and sets its ID
func (db *DB) RecordImport(rec *models.ImportRecord) error {
	query := `
	INSERT INTO imports (file, loaded_at, electricity_rows, electricity_skipped, water_rows, water_skipped)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	if rec.LoadedAt.IsZero() {
		rec.LoadedAt = time.Now().UTC()
	}
	loadedAt := rec.LoadedAt.UTC().Format(time.RFC3339)

	res, err := db.conn.Exec(query, rec.File, loadedAt,
		rec.ElectricityRows, rec.ElectricitySkipped, rec.WaterRows, rec.WaterSkipped)
	if err != nil {
		return fmt.Errorf("inserting import: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading import id: %w", err)
	}
	rec.ID = int(id)

	return nil
}

// ListImports retrieves import entries, newest first. A limit of 0 returns all.
func (db *DB) ListImports(limit int) ([]models.ImportRecord, error) {
	query := `
	SELECT id, file, loaded_at, electricity_rows, electricity_skipped, water_rows, water_skipped
	FROM imports
	ORDER BY loaded_at DESC, id DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying imports: %w", err)
	}
	defer rows.Close()

	var results []models.ImportRecord
	for rows.Next() {
		rec, err := scanImport(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *rec)
	}

	return results, rows.Err()
}

// LastImport retrieves the most recent import of a file, or nil if there is none
func (db *DB) LastImport(file string) (*models.ImportRecord, error) {
	query := `
	SELECT id, file, loaded_at, electricity_rows, electricity_skipped, water_rows, water_skipped
	FROM imports
	WHERE file = ?
	ORDER BY loaded_at DESC, id DESC
	LIMIT 1
	`

	rec, err := scanImport(db.conn.QueryRow(query, file))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanImport(s scanner) (*models.ImportRecord, error) {
	var rec models.ImportRecord
	var loadedAt string

	err := s.Scan(&rec.ID, &rec.File, &loadedAt,
		&rec.ElectricityRows, &rec.ElectricitySkipped, &rec.WaterRows, &rec.WaterSkipped)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning import: %w", err)
	}

	rec.LoadedAt, err = time.Parse(time.RFC3339, loadedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing loaded_at: %w", err)
	}

	return &rec, nil
}

package storage

import (
	"database/sql"
	"fmt"
)

// ImportRepository tracks which catalog files have already been loaded,
// keyed by filename. The importer consults it for idempotency.
type ImportRepository interface {
	HasImport(filename string) (bool, error)
	RecordImport(filename string, rowCount int) error
}

type importRepository struct {
	db *sql.DB
}

func NewImportRepository(db *sql.DB) ImportRepository {
	return &importRepository{db: db}
}

// HasImport checks whether a file was already imported.
func (r *importRepository) HasImport(filename string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM import_log WHERE filename = $1)`, filename).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check import log: %w", err)
	}
	return exists, nil
}

// RecordImport records (or updates) the import entry for a file.
func (r *importRepository) RecordImport(filename string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO import_log (filename, row_count)
		VALUES ($1, $2)
		ON CONFLICT (filename)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  imported_at = NOW()
	`, filename, rowCount)
	return err
}

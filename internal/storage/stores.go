package storage

import (
	"database/sql"
	"fmt"

	pq "github.com/lib/pq"

	"github.com/grocx/pricetrack/internal/domain/models"
)

// StoreRepository defines the contract for store persistence.
type StoreRepository interface {
	ListAll() ([]models.Store, error)
	InsertStoresBatch(stores []models.Store) error
}

type storeRepository struct {
	db *sql.DB
}

func NewStoreRepository(db *sql.DB) StoreRepository {
	return &storeRepository{db: db}
}

// ListAll returns every store ordered by name ascending, id as tie-break.
// No stores is an empty slice, never an error.
func (r *storeRepository) ListAll() ([]models.Store, error) {
	rows, err := r.db.Query(
		`SELECT id, created_at, name, COALESCE(location, '')
		 FROM store
		 ORDER BY name ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stores := make([]models.Store, 0)
	for rows.Next() {
		var s models.Store
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Name, &s.Location); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stores: %w", err)
	}
	return stores, nil
}

// InsertStoresBatch bulk-loads stores in a single transaction via COPY.
// Used by the catalog importer.
func (r *storeRepository) InsertStoresBatch(stores []models.Store) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn("store", "name", "location"))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, s := range stores {
		if _, err := stmt.Exec(s.Name, nullIfEmpty(s.Location)); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

package storage

import (
	"database/sql"
	"fmt"

	"github.com/grocx/pricetrack/internal/domain/apperr"
	"github.com/grocx/pricetrack/internal/domain/models"
)

// PriceRepository defines the contract for the append-only price ledger
// and its joined read models.
type PriceRepository interface {
	Insert(obs models.PriceObservation) (*models.PriceObservation, error)
	HistoryByProduct(productID int64) ([]models.PriceHistoryEntry, error)
	AllEntries() ([]models.LedgerEntry, error)
}

type priceRepository struct {
	db *sql.DB
}

func NewPriceRepository(db *sql.DB) PriceRepository {
	return &priceRepository{db: db}
}

// Insert persists one price observation and returns it with the
// server-assigned id and created_at. Foreign-key validity of the product
// and store ids is not pre-checked; a dangling id violates the FK
// constraint and is translated to apperr.ErrForeignKeyViolation.
func (r *priceRepository) Insert(obs models.PriceObservation) (*models.PriceObservation, error) {
	err := r.db.QueryRow(
		`INSERT INTO product_price (product_id, store_id, price, currency)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		obs.ProductID, obs.StoreID, obs.Price, obs.Currency,
	).Scan(&obs.ID, &obs.CreatedAt)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return nil, apperr.ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("insert price observation: %w", err)
	}
	return &obs, nil
}

// HistoryByProduct returns every observation for the product enriched
// with the owning store's name and location. The enrichment is one join,
// not N+1 lookups: a single round trip regardless of observation count,
// and no read-consistency gap between the ledger and the store rows.
// Ordered most recent first, id descending as a deterministic tie-break.
func (r *priceRepository) HistoryByProduct(productID int64) ([]models.PriceHistoryEntry, error) {
	rows, err := r.db.Query(
		`SELECT pp.id, pp.created_at, pp.price, pp.currency,
		        s.name, COALESCE(s.location, '')
		 FROM product_price pp
		 JOIN store s ON s.id = pp.store_id
		 WHERE pp.product_id = $1
		 ORDER BY pp.created_at DESC, pp.id DESC`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("price history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]models.PriceHistoryEntry, 0)
	for rows.Next() {
		var e models.PriceHistoryEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Price, &e.Currency, &e.StoreName, &e.StoreLocation); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}

// AllEntries returns the full ledger joined with product and store
// display fields, ordered most recent first. Always a pure projection of
// the underlying tables, computed on demand.
func (r *priceRepository) AllEntries() ([]models.LedgerEntry, error) {
	rows, err := r.db.Query(
		`SELECT pp.id, pp.created_at, pp.price, pp.currency,
		        p.name, p.barcode, COALESCE(p.brand, ''),
		        s.name, COALESCE(s.location, '')
		 FROM product_price pp
		 JOIN product p ON p.id = pp.product_id
		 JOIN store s ON s.id = pp.store_id
		 ORDER BY pp.created_at DESC, pp.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("price ledger: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]models.LedgerEntry, 0)
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(
			&e.ID, &e.CreatedAt, &e.Price, &e.Currency,
			&e.ProductName, &e.ProductBarcode, &e.ProductBrand,
			&e.StoreName, &e.StoreLocation,
		); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger: %w", err)
	}
	return entries, nil
}

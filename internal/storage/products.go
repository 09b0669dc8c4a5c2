package storage

import (
	"database/sql"
	"errors"
	"fmt"

	pq "github.com/lib/pq"

	"github.com/grocx/pricetrack/internal/domain/apperr"
	"github.com/grocx/pricetrack/internal/domain/models"
)

// ProductRepository defines the contract for product persistence.
//
// Lookup methods report "no match" as a nil/empty result, never as an
// error; a non-nil error always means the operation could not be
// completed (storage failure).
type ProductRepository interface {
	FindByBarcode(barcode string) (*models.Product, error)
	SearchByNameOrBarcode(query string) ([]models.Product, error)
	Insert(p models.Product) (*models.Product, error)
	DeleteByBarcode(barcode string) (bool, error)
	InsertProductsBatch(products []models.Product) error
}

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// productColumns is the canonical select list. Optional fields are
// nullable in the schema; COALESCE keeps the model free of sql.NullString.
const productColumns = `id, created_at, barcode, name, COALESCE(brand, ''), COALESCE(description, ''), COALESCE(category, '')`

// FindByBarcode returns the product carrying the barcode, or nil when no
// row matches.
func (r *productRepository) FindByBarcode(barcode string) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(
		`SELECT `+productColumns+` FROM product WHERE barcode = $1`,
		barcode,
	).Scan(&p.ID, &p.CreatedAt, &p.Barcode, &p.Name, &p.Brand, &p.Description, &p.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by barcode: %w", err)
	}
	return &p, nil
}

// SearchByNameOrBarcode matches the query case-insensitively against the
// name (partial) or exactly against the barcode. Ordering by name then id
// is stable for a fixed snapshot.
func (r *productRepository) SearchByNameOrBarcode(query string) ([]models.Product, error) {
	rows, err := r.db.Query(
		`SELECT `+productColumns+`
		 FROM product
		 WHERE name ILIKE '%' || $1 || '%' OR barcode = $1
		 ORDER BY name ASC, id ASC`,
		query,
	)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.CreatedAt, &p.Barcode, &p.Name, &p.Brand, &p.Description, &p.Category); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// Insert persists a new product and returns it with the server-assigned
// id and created_at. A unique violation on the barcode is translated to
// apperr.ErrDuplicateBarcode; the constraint is the single source of
// truth for duplication, so concurrent creators cannot race past it.
func (r *productRepository) Insert(p models.Product) (*models.Product, error) {
	err := r.db.QueryRow(
		`INSERT INTO product (barcode, name, brand, description, category)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		p.Barcode, p.Name, nullIfEmpty(p.Brand), nullIfEmpty(p.Description), nullIfEmpty(p.Category),
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return nil, apperr.ErrDuplicateBarcode
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &p, nil
}

// DeleteByBarcode removes the product and reports whether a row was
// deleted. Deleting a product with recorded prices violates the RESTRICT
// foreign key and is translated to apperr.ErrReferentialConflict.
func (r *productRepository) DeleteByBarcode(barcode string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM product WHERE barcode = $1`, barcode)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return false, apperr.ErrReferentialConflict
		}
		return false, fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete product rows affected: %w", err)
	}
	return n > 0, nil
}

// InsertProductsBatch bulk-loads products in a single transaction via
// COPY. Used by the catalog importer.
func (r *productRepository) InsertProductsBatch(products []models.Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn("product", "barcode", "name", "brand", "description", "category"))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, p := range products {
		if _, err := stmt.Exec(p.Barcode, p.Name, nullIfEmpty(p.Brand), nullIfEmpty(p.Description), nullIfEmpty(p.Category)); err != nil {
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

// nullIfEmpty maps empty optional strings to SQL NULL.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

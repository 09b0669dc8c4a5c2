package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grocx/pricetrack/internal/domain/models"
	"github.com/grocx/pricetrack/internal/storage"
)

// Expected CSV headers for catalog files. Order and count must match
// EXACTLY; a mismatched header fails the whole import.
var (
	productHeaders = []string{"barcode", "name", "brand", "description", "category"}
	storeHeaders   = []string{"name", "location"}
)

// checkHeader validates the header row strictly (order + count).
func checkHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("invalid header length: expected %d, got %d", len(want), len(got))
	}
	for i, h := range got {
		if strings.TrimSpace(strings.ToLower(h)) != want[i] {
			return fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, want[i], h)
		}
	}
	return nil
}

// forEachRecord streams a CSV file: validates the header, then invokes fn
// for each data row. It fails on header mismatch, wrong column counts,
// unrecoverable I/O errors, and context cancellation.
func forEachRecord(ctx context.Context, path string, headers []string, fn func(rec []string) error) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // checked explicitly per row

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header, headers); err != nil {
		return 0, err
	}

	lineNumber := 1 // header already read
	total := 0
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(headers) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(headers), len(rec))
		}
		if err := fn(rec); err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		total++
	}
	return total, nil
}

// parseProductsFile opens, validates, parses, and persists one product
// catalog file in batches.
//
// It fails on:
//   - header not matching expected order/length
//   - rows missing barcode or name (required fields)
//
// It tolerates:
//   - empty optional cells (brand, description, category)
func parseProductsFile(ctx context.Context, path string, repo storage.ProductRepository, batch int) (int, error) {
	buf := make([]models.Product, 0, batch)

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertProductsBatch(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total, err := forEachRecord(ctx, path, productHeaders, func(rec []string) error {
		p, err := recordToProduct(rec)
		if err != nil {
			return err
		}
		buf = append(buf, p)
		if len(buf) >= batch {
			return flush()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}
	return total, nil
}

// parseStoresFile is the store-catalog counterpart of parseProductsFile.
func parseStoresFile(ctx context.Context, path string, repo storage.StoreRepository, batch int) (int, error) {
	buf := make([]models.Store, 0, batch)

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertStoresBatch(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total, err := forEachRecord(ctx, path, storeHeaders, func(rec []string) error {
		s, err := recordToStore(rec)
		if err != nil {
			return err
		}
		buf = append(buf, s)
		if len(buf) >= batch {
			return flush()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}
	return total, nil
}

// recordToProduct converts one validated-length CSV record into a
// models.Product. Barcode and name are required; the rest map empty
// cells to empty strings (stored as NULL).
func recordToProduct(rec []string) (models.Product, error) {
	p := models.Product{
		Barcode:     strings.TrimSpace(rec[0]),
		Name:        strings.TrimSpace(rec[1]),
		Brand:       strings.TrimSpace(rec[2]),
		Description: strings.TrimSpace(rec[3]),
		Category:    strings.TrimSpace(rec[4]),
	}
	if p.Barcode == "" {
		return p, fmt.Errorf("missing barcode")
	}
	if p.Name == "" {
		return p, fmt.Errorf("missing name")
	}
	return p, nil
}

// recordToStore converts one validated-length CSV record into a
// models.Store. Name is required; location may be empty.
func recordToStore(rec []string) (models.Store, error) {
	s := models.Store{
		Name:     strings.TrimSpace(rec[0]),
		Location: strings.TrimSpace(rec[1]),
	}
	if s.Name == "" {
		return s, fmt.Errorf("missing name")
	}
	return s, nil
}

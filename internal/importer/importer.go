// Package importer bulk-loads the product catalog and store list from
// CSV files. It is the offline seeding path of the service; the HTTP API
// never calls into it.
package importer

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grocx/pricetrack/internal/logger"
	"github.com/grocx/pricetrack/internal/storage"
)

const defaultBatchSize = 1000

// Repository constructor indirections; tests override these to avoid a
// real database.
var (
	productRepoCtor = storage.NewProductRepository
	storeRepoCtor   = storage.NewStoreRepository
	importRepoCtor  = storage.NewImportRepository
)

// Run imports the given catalog files into the database. Either path may
// be empty, in which case that file is skipped.
//
// Behavior:
//   - Each file is keyed by its base name in import_log; already-imported
//     files are skipped unless force is set.
//   - Product and store files touch independent tables and are processed
//     concurrently; the first error cancels the sibling.
//   - Rows are inserted in batches via COPY inside a transaction.
//
// Returns the first error encountered, if any.
func Run(ctx context.Context, productsPath, storesPath string, db *sql.DB, force bool) error {
	if productsPath == "" && storesPath == "" {
		return fmt.Errorf("nothing to import: no catalog files given")
	}

	products := productRepoCtor(db)
	stores := storeRepoCtor(db)
	imports := importRepoCtor(db)

	type task struct {
		path string
		kind string
		load func(context.Context, string) (int, error)
	}

	var tasks []task
	if productsPath != "" {
		tasks = append(tasks, task{
			path: productsPath,
			kind: "products",
			load: func(ctx context.Context, p string) (int, error) {
				return parseProductsFile(ctx, p, products, defaultBatchSize)
			},
		})
	}
	if storesPath != "" {
		tasks = append(tasks, task{
			path: storesPath,
			kind: "stores",
			load: func(ctx context.Context, p string) (int, error) {
				return parseStoresFile(ctx, p, stores, defaultBatchSize)
			},
		})
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, tk := range tasks {
		tk := tk
		g.Go(func() error {
			start := time.Now()
			base := filepath.Base(tk.path)
			logger.L().Info().Str("kind", tk.kind).Str("file", base).Msg("import start")

			// Idempotency: skip files already recorded, unless forced.
			exists, err := imports.HasImport(base)
			if err != nil {
				return fmt.Errorf("file %s: check import log: %w", tk.path, err)
			}
			if exists && !force {
				logger.L().Info().Str("kind", tk.kind).Str("file", base).Bool("skipped", true).Msg("already imported")
				return nil
			}

			total, err := tk.load(gctx, tk.path)
			if err != nil {
				logger.L().Error().Str("kind", tk.kind).Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("import failed")
				return fmt.Errorf("file %s: %w", tk.path, err)
			}

			if err := imports.RecordImport(base, total); err != nil {
				return fmt.Errorf("file %s: record import: %w", tk.path, err)
			}
			logger.L().Info().Str("kind", tk.kind).Str("file", base).Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("import done")
			return nil
		})
	}

	return g.Wait()
}

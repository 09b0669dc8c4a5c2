package importer

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/grocx/pricetrack/internal/storage"
)

type fakeImportRepo struct {
	mu       sync.Mutex
	imported map[string]bool
	checkErr error
	recorded map[string]int
}

func newFakeImportRepo() *fakeImportRepo {
	return &fakeImportRepo{imported: map[string]bool{}, recorded: map[string]int{}}
}

func (f *fakeImportRepo) HasImport(filename string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.checkErr != nil {
		return false, f.checkErr
	}
	return f.imported[filename], nil
}

func (f *fakeImportRepo) RecordImport(filename string, rowCount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded[filename] = rowCount
	return nil
}

// overrideCtors swaps the repository constructors for the duration of a
// test and restores them afterwards.
func overrideCtors(t *testing.T, products *fakeProductRepo, stores *fakeStoreRepo, imports *fakeImportRepo) {
	t.Helper()

	origProduct := productRepoCtor
	origStore := storeRepoCtor
	origImport := importRepoCtor

	productRepoCtor = func(*sql.DB) storage.ProductRepository { return products }
	storeRepoCtor = func(*sql.DB) storage.StoreRepository { return stores }
	importRepoCtor = func(*sql.DB) storage.ImportRepository { return imports }

	t.Cleanup(func() {
		productRepoCtor = origProduct
		storeRepoCtor = origStore
		importRepoCtor = origImport
	})
}

func TestRun_ImportsBothFiles(t *testing.T) {
	products := &fakeProductRepo{}
	stores := &fakeStoreRepo{}
	imports := newFakeImportRepo()
	overrideCtors(t, products, stores, imports)

	productsPath := writeTempCSV(t, "products.csv",
		"barcode,name,brand,description,category\n123,Apple,,,\n456,Milk,,,\n")
	storesPath := writeTempCSV(t, "stores.csv",
		"name,location\nMarket A,Downtown\n")

	if err := Run(context.Background(), productsPath, storesPath, nil, false); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(products.batches) != 1 || len(products.batches[0]) != 2 {
		t.Fatalf("unexpected product batches: %+v", products.batches)
	}
	if len(stores.batches) != 1 || len(stores.batches[0]) != 1 {
		t.Fatalf("unexpected store batches: %+v", stores.batches)
	}
	if imports.recorded["products.csv"] != 2 || imports.recorded["stores.csv"] != 1 {
		t.Fatalf("unexpected import log: %+v", imports.recorded)
	}
}

func TestRun_SkipsAlreadyImportedFile(t *testing.T) {
	products := &fakeProductRepo{}
	imports := newFakeImportRepo()
	imports.imported["products.csv"] = true
	overrideCtors(t, products, &fakeStoreRepo{}, imports)

	productsPath := writeTempCSV(t, "products.csv",
		"barcode,name,brand,description,category\n123,Apple,,,\n")

	if err := Run(context.Background(), productsPath, "", nil, false); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(products.batches) != 0 {
		t.Fatalf("skipped file should not be loaded: %+v", products.batches)
	}
	if _, ok := imports.recorded["products.csv"]; ok {
		t.Fatalf("skipped file should not be re-recorded")
	}
}

func TestRun_ForceReimportsFile(t *testing.T) {
	products := &fakeProductRepo{}
	imports := newFakeImportRepo()
	imports.imported["products.csv"] = true
	overrideCtors(t, products, &fakeStoreRepo{}, imports)

	productsPath := writeTempCSV(t, "products.csv",
		"barcode,name,brand,description,category\n123,Apple,,,\n")

	if err := Run(context.Background(), productsPath, "", nil, true); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(products.batches) != 1 {
		t.Fatalf("forced import should load the file: %+v", products.batches)
	}
	if imports.recorded["products.csv"] != 1 {
		t.Fatalf("forced import should update the log: %+v", imports.recorded)
	}
}

func TestRun_NoFilesIsAnError(t *testing.T) {
	overrideCtors(t, &fakeProductRepo{}, &fakeStoreRepo{}, newFakeImportRepo())

	if err := Run(context.Background(), "", "", nil, false); err == nil {
		t.Fatalf("expected error when no files are given")
	}
}

func TestRun_BatchInsertErrorPropagates(t *testing.T) {
	products := &fakeProductRepo{err: errors.New("copy failed")}
	overrideCtors(t, products, &fakeStoreRepo{}, newFakeImportRepo())

	productsPath := writeTempCSV(t, "products.csv",
		"barcode,name,brand,description,category\n123,Apple,,,\n")

	if err := Run(context.Background(), productsPath, "", nil, false); err == nil {
		t.Fatalf("expected error from batch insert")
	}
}

func TestRun_ImportLogCheckErrorPropagates(t *testing.T) {
	imports := newFakeImportRepo()
	imports.checkErr = errors.New("log unavailable")
	overrideCtors(t, &fakeProductRepo{}, &fakeStoreRepo{}, imports)

	productsPath := writeTempCSV(t, "products.csv",
		"barcode,name,brand,description,category\n123,Apple,,,\n")

	if err := Run(context.Background(), productsPath, "", nil, false); err == nil {
		t.Fatalf("expected error from import log check")
	}
}

package service

import (
	"context"
	"strings"

	"github.com/grocx/pricetrack/internal/domain/apperr"
	"github.com/grocx/pricetrack/internal/domain/models"
	"github.com/grocx/pricetrack/internal/storage"
)

// ProductService defines business logic for product lookup and lifecycle.
// Validation failures are reported before any storage call is made.
type ProductService interface {
	FindByBarcode(ctx context.Context, barcode string) (*models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	Create(ctx context.Context, draft models.Product) (*models.Product, error)
	DeleteByBarcode(ctx context.Context, barcode string) (bool, error)
}

type productService struct {
	repo storage.ProductRepository
}

func NewProductService(repo storage.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// FindByBarcode returns the product for the barcode, or nil when no
// product matches.
func (s *productService) FindByBarcode(_ context.Context, barcode string) (*models.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, apperr.Validation("barcode", "must not be empty")
	}
	return s.repo.FindByBarcode(barcode)
}

// Search matches products by partial name (case-insensitive) or exact
// barcode. An empty result is a valid outcome, not an error.
func (s *productService) Search(_ context.Context, query string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Validation("q", "must not be empty")
	}
	return s.repo.SearchByNameOrBarcode(query)
}

// Create persists a new product. Barcode and name are required; brand,
// description and category are optional. Duplicate barcodes surface as
// apperr.ErrDuplicateBarcode from the storage layer.
func (s *productService) Create(_ context.Context, draft models.Product) (*models.Product, error) {
	draft.Barcode = strings.TrimSpace(draft.Barcode)
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Barcode == "" {
		return nil, apperr.Validation("barcode", "must not be empty")
	}
	if draft.Name == "" {
		return nil, apperr.Validation("name", "must not be empty")
	}
	return s.repo.Insert(draft)
}

// DeleteByBarcode removes the product and reports whether anything was
// deleted. Idempotent: a missing barcode yields (false, nil). Deletion is
// blocked with apperr.ErrReferentialConflict while price observations
// reference the product.
func (s *productService) DeleteByBarcode(_ context.Context, barcode string) (bool, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return false, apperr.Validation("barcode", "must not be empty")
	}
	return s.repo.DeleteByBarcode(barcode)
}

package service

import (
	"context"
	"math"
	"strings"

	"github.com/grocx/pricetrack/internal/domain/apperr"
	"github.com/grocx/pricetrack/internal/domain/models"
	"github.com/grocx/pricetrack/internal/storage"
)

// DefaultCurrency is applied when a price observation omits its currency.
const DefaultCurrency = "USD"

// PriceService defines business logic for the price ledger: recording
// observations and reading the joined history views.
type PriceService interface {
	Record(ctx context.Context, productID, storeID int64, price float64, currency string) (*models.PriceObservation, error)
	HistoryForProduct(ctx context.Context, productID int64) ([]models.PriceHistoryEntry, error)
	AllEntries(ctx context.Context) ([]models.LedgerEntry, error)
}

type priceService struct {
	repo storage.PriceRepository
}

func NewPriceService(repo storage.PriceRepository) PriceService {
	return &priceService{repo: repo}
}

// Record validates and persists one price observation.
//
// Validation happens here, before any storage call: the ids must be
// present and the price must be a finite number >= 0. NaN and infinities
// are rejected explicitly rather than trusted to storage constraints.
// Referential validity of the ids is left to the foreign keys; a dangling
// id surfaces as apperr.ErrForeignKeyViolation.
func (s *priceService) Record(_ context.Context, productID, storeID int64, price float64, currency string) (*models.PriceObservation, error) {
	if productID <= 0 {
		return nil, apperr.Validation("product_id", "must be a positive id")
	}
	if storeID <= 0 {
		return nil, apperr.Validation("store_id", "must be a positive id")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, apperr.Validation("price", "must be a finite number")
	}
	if price < 0 {
		return nil, apperr.Validation("price", "must not be negative")
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	return s.repo.Insert(models.PriceObservation{
		ProductID: productID,
		StoreID:   storeID,
		Price:     price,
		Currency:  currency,
	})
}

// HistoryForProduct returns the store-enriched observations for one
// product, most recent first. A product without observations yields an
// empty slice.
func (s *priceService) HistoryForProduct(_ context.Context, productID int64) ([]models.PriceHistoryEntry, error) {
	if productID <= 0 {
		return nil, apperr.Validation("product_id", "must be a positive id")
	}
	return s.repo.HistoryByProduct(productID)
}

// AllEntries returns the full denormalized ledger, most recent first.
func (s *priceService) AllEntries(_ context.Context) ([]models.LedgerEntry, error) {
	return s.repo.AllEntries()
}

package models

import "time"

// PriceObservation is one recorded price of a product at a store at a
// point in time. Observations are append-only: created once, never
// mutated or deleted. History views order by CreatedAt, newest first,
// with ID as tie-break.
//
// swagger:model PriceObservation
type PriceObservation struct {
	ID        int64     `json:"id" example:"101"`
	CreatedAt time.Time `json:"created_at"`
	ProductID int64     `json:"product_id" example:"42"`
	StoreID   int64     `json:"store_id" example:"7"`
	Price     float64   `json:"price" example:"1.20"`
	Currency  string    `json:"currency" example:"USD"`
}

// PriceHistoryEntry is a price observation enriched with the owning
// store's display fields, produced by a single join query.
//
// swagger:model PriceHistoryEntry
type PriceHistoryEntry struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Price         float64   `json:"price" example:"1.20"`
	Currency      string    `json:"currency" example:"USD"`
	StoreName     string    `json:"store_name" example:"Market A"`
	StoreLocation string    `json:"store_location,omitempty" example:"Downtown"`
}

// LedgerEntry is the fully denormalized read model: one observation
// joined with both its product and its store. It is always computed on
// demand from the append-only ledger, never cached.
//
// swagger:model LedgerEntry
type LedgerEntry struct {
	ID             int64     `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Price          float64   `json:"price" example:"1.20"`
	Currency       string    `json:"currency" example:"USD"`
	ProductName    string    `json:"product_name" example:"Apple"`
	ProductBarcode string    `json:"product_barcode" example:"7891000100103"`
	ProductBrand   string    `json:"product_brand,omitempty" example:"Fuji"`
	StoreName      string    `json:"store_name" example:"Market A"`
	StoreLocation  string    `json:"store_location,omitempty" example:"Downtown"`
}

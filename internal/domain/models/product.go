package models

import "time"

// Product is one catalog entry, identified externally by its barcode.
//
// Fields:
//   - ID: server-generated identity, immutable.
//   - Barcode: unique external identifier (scanned or typed), immutable once set.
//   - Name: required display name.
//   - Brand, Description, Category: optional metadata; empty string when absent.
//   - CreatedAt: set at creation, immutable.
//
// swagger:model Product
type Product struct {
	ID          int64     `json:"id" example:"42"`
	CreatedAt   time.Time `json:"created_at"`
	Barcode     string    `json:"barcode" example:"7891000100103"`
	Name        string    `json:"name" example:"Apple"`
	Brand       string    `json:"brand,omitempty" example:"Fuji"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty" example:"produce"`
}

package dto

// CreateProductRequest is the JSON body for POST /api/v1/products.
// Barcode and name are required; the remaining fields are optional.
type CreateProductRequest struct {
	Barcode     string `json:"barcode" binding:"required" example:"7891000100103"`
	Name        string `json:"name" binding:"required" example:"Apple"`
	Brand       string `json:"brand" example:"Fuji"`
	Description string `json:"description"`
	Category    string `json:"category" example:"produce"`
}

// RecordPriceRequest is the JSON body for POST /api/v1/prices.
// Price is a pointer so that an absent field is distinguishable from an
// explicit zero (0 is a valid price; missing is not).
type RecordPriceRequest struct {
	ProductID int64    `json:"product_id" binding:"required" example:"42"`
	StoreID   int64    `json:"store_id" binding:"required" example:"7"`
	Price     *float64 `json:"price" binding:"required" example:"1.20"`
	Currency  string   `json:"currency" example:"USD"`
}

// DeleteProductResponse reports the outcome of DELETE /api/v1/products/:barcode.
// Deleted is false when no product carried the barcode; the operation is
// idempotent.
type DeleteProductResponse struct {
	Deleted bool `json:"deleted"`
}

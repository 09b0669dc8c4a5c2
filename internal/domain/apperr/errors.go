// Package apperr defines the typed error taxonomy shared by the service
// and storage layers. Storage translates raw driver errors into these at
// its boundary; handlers map them to HTTP status codes. "Not found" is
// deliberately absent: lookups report it as a nil/empty result.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateBarcode reports a uniqueness violation on product
	// creation. The UNIQUE constraint on product.barcode is the single
	// source of truth; there is no application-level pre-check.
	ErrDuplicateBarcode = errors.New("a product with this barcode already exists")

	// ErrForeignKeyViolation reports a dangling product_id or store_id on
	// price insertion.
	ErrForeignKeyViolation = errors.New("referenced product or store does not exist")

	// ErrReferentialConflict reports a product deletion blocked by
	// existing price observations (ON DELETE RESTRICT).
	ErrReferentialConflict = errors.New("product has recorded prices and cannot be deleted")
)

// ValidationError reports a missing or malformed field, detected in the
// service layer before any storage call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for the given field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

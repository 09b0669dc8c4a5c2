package storage

import (
	"errors"

	pq "github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes translated at the repository boundary.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgCode extracts the SQLSTATE code from a lib/pq driver error.
// Returns "" for nil or non-pq errors.
func pgCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

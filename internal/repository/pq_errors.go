package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// isUniqueViolation reports whether err is a duplicate-key error on a
// constraint whose name contains name.
func isUniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqUniqueViolation && strings.Contains(pqErr.Constraint, name)
}

// isForeignKeyViolation reports whether err is a dangling-reference error on
// a constraint whose name contains name.
func isForeignKeyViolation(err error, name string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqForeignKeyViolation && strings.Contains(pqErr.Constraint, name)
}

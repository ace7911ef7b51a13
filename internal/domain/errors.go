// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Catalog-related errors
	ErrInvalidConfigType = errors.New("invalid config type")
	ErrCatalogNotFound   = errors.New("catalog not found")
	ErrItemNotFound      = errors.New("catalog item not found")
	ErrEmptyItemName     = errors.New("item name must not be empty")
	ErrDuplicateItemName = errors.New("an active item with this name already exists")
	ErrItemInUse         = errors.New("item is referenced by active users")
	ErrMalformedReorder  = errors.New("reorder payload must be a list of item ids")
)

// ItemInUseError wraps ErrItemInUse with the number of live references that
// block the deletion, so callers can surface it.
type ItemInUseError struct {
	ItemName   string
	Field      string
	UsageCount int64
}

func (e *ItemInUseError) Error() string {
	return fmt.Sprintf("cannot delete %q: %d active users have %s = %q",
		e.ItemName, e.UsageCount, e.Field, e.ItemName)
}

func (e *ItemInUseError) Unwrap() error {
	return ErrItemInUse
}

package repository

import (
	"context"

	"item-api/internal/item"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
// Implementations do not validate their input.
type ItemRepository interface {
	// CreateItem inserts one row stamped with the current server time.
	CreateItem(ctx context.Context, opt CreateItemOptions) error
	// ListItems returns every Item, newest first. No rows is not an error.
	ListItems(ctx context.Context) ([]item.Item, error)
}

package sqlstore

import (
	"context"
	"fmt"
	"time"

	"item-api/internal/item"
	repo "item-api/internal/item/repository"
	pkgErrors "item-api/pkg/errors"
)

const (
	insertItemQuery = `
		INSERT INTO items (name, quantity, created_at)
		VALUES (?, ?, ?)`

	listItemsQuery = `
		SELECT id, name, quantity, created_at
		FROM items
		ORDER BY created_at DESC, id DESC`
)

type itemRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Quantity  int       `db:"quantity"`
	CreatedAt time.Time `db:"created_at"`
}

func (row itemRow) toItem() item.Item {
	return item.Item{
		ID:        row.ID,
		Name:      row.Name,
		Quantity:  row.Quantity,
		CreatedAt: row.CreatedAt.UTC(),
	}
}

// CreateItem inserts a new Item row stamped with the current server time.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(insertItemQuery), opt.Name, opt.Quantity, r.now())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return pkgErrors.NewStorageError(r.dsn("CreateItem"), fmt.Errorf("%w: %w", repo.ErrFailedToInsert, err))
	}
	return nil
}

// ListItems returns every Item ordered newest first.
func (r *implRepository) ListItems(ctx context.Context) ([]item.Item, error) {
	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listItemsQuery)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, pkgErrors.NewStorageError(r.dsn("ListItems"), fmt.Errorf("%w: %w", repo.ErrFailedToList, err))
	}

	items := make([]item.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toItem())
	}
	return items, nil
}

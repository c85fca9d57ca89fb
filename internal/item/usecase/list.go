package usecase

import (
	"context"

	"item-api/internal/item"
)

// List returns every Item, newest first.
func (uc *implUseCase) List(ctx context.Context) ([]item.Item, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return nil, asStorageError("uc.List", err)
	}
	if items == nil {
		items = []item.Item{}
	}
	return items, nil
}

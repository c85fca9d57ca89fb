package usecase

import (
	"context"

	"item-api/internal/item"
	repo "item-api/internal/item/repository"
)

// Create persists a validated Item. Input must already satisfy the Item
// invariants; see the delivery layer's request validation.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) error {
	err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:     input.Name,
		Quantity: input.Quantity,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return asStorageError("uc.Create", err)
	}
	return nil
}

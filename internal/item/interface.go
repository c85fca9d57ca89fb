package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateItemInput) error
	List(ctx context.Context) ([]Item, error)
}

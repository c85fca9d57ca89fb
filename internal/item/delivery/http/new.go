package http

import (
	"item-api/internal/item"
	"item-api/pkg/log"
	"item-api/pkg/validation"
)

type handler struct {
	l  log.Logger
	uc item.UseCase
	v  *validation.Validator
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
		v:  validation.New(),
	}
}

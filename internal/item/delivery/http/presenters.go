package http

import (
	"item-api/internal/item"
	pkgErrors "item-api/pkg/errors"
	"item-api/pkg/response"
	"item-api/pkg/validation"
)

// --- Request DTOs ---

type createReq struct {
	Name     string `json:"name"     validate:"min=1"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

var createReqMessages = validation.Messages{
	"name.min":     "Name cannot be empty",
	"quantity.gte": "Quantity must be 0 or greater",
}

func (r createReq) validate(v *validation.Validator) error {
	if fields := v.Struct(r, createReqMessages); !fields.Empty() {
		return pkgErrors.NewValidationError(fields)
	}
	return nil
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:     r.Name,
		Quantity: r.Quantity,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Quantity  int                `json:"quantity"`
	CreatedAt response.Timestamp `json:"createdAt" swaggertype:"string" format:"date-time"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:        it.ID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		CreatedAt: response.Timestamp(it.CreatedAt),
	}
}

func (h *handler) newListResp(items []item.Item) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return out
}

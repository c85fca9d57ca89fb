package item

import "time"

// Item is the persisted entity. Items are created once and never modified.
type Item struct {
	ID        int64
	Name      string
	Quantity  int
	CreatedAt time.Time
}

// CreateItemInput carries an already validated creation request.
type CreateItemInput struct {
	Name     string
	Quantity int
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is unique per (user, product); adding an existing product
// merges quantities instead of inserting a second row.
type CartItem struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	ProductId uuid.UUID
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WishlistItem struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	ProductId uuid.UUID
	CreatedAt time.Time
}

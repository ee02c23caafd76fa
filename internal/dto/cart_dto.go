package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ProductId uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Id       uuid.UUID `json:"-"`
	Quantity int       `json:"quantity" validate:"required"`
}

type CartItemResponse struct {
	Id          uuid.UUID `json:"id"`
	ProductId   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSlug string    `json:"product_slug"`
	ImageURL    string    `json:"image_url,omitempty"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	LineTotal   float64   `json:"line_total"`
	InStock     bool      `json:"in_stock"`
	AddedAt     time.Time `json:"added_at"`
}

type CartResponse struct {
	Items    []*CartItemResponse `json:"items"`
	Subtotal float64             `json:"subtotal"`
}

type WishlistItemResponse struct {
	Id          uuid.UUID `json:"id"`
	ProductId   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSlug string    `json:"product_slug"`
	ImageURL    string    `json:"image_url,omitempty"`
	Price       float64   `json:"price"`
	InStock     bool      `json:"in_stock"`
	AddedAt     time.Time `json:"added_at"`
}

type ToggleWishlistResponse struct {
	ProductId uuid.UUID `json:"product_id"`
	Added     bool      `json:"added"`
}

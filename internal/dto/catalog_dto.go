package dto

import (
	"time"

	"github.com/google/uuid"
)

type ListProductsRequest struct {
	Search       string `query:"search"`
	CategorySlug string `query:"category"`
	SortByPrice  string `query:"sort" validate:"omitempty,oneof=asc desc"`
	Page         int    `query:"page"`
	PerPage      int    `query:"per_page"`
}

type ProductResponse struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description,omitempty"`
	SKU            string    `json:"sku"`
	Price          float64   `json:"price"`
	CompareAtPrice *float64  `json:"compare_at_price,omitempty"`
	Currency       string    `json:"currency"`
	StockQty       int       `json:"stock_qty"`
	ImageURL       string    `json:"image_url,omitempty"`
	CategoryId     uuid.UUID `json:"category_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListProductsResponse struct {
	Products []*ProductResponse `json:"products"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PerPage  int                `json:"per_page"`
}

type CategoryResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

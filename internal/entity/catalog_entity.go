package entity

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id        uuid.UUID
	Name      string
	Slug      string
	Active    bool
	CreatedAt time.Time
}

type Product struct {
	Id             uuid.UUID
	CategoryId     uuid.UUID
	Name           string
	Slug           string
	Description    string
	SKU            string
	Price          float64
	CompareAtPrice *float64
	Currency       string
	StockQty       int
	ImageURL       *string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Category) TableName() string {
	return "categories"
}

type Product struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Slug           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description    string    `gorm:"type:text"`
	SKU            string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Price          float64   `gorm:"type:numeric(12,2);not null"`
	CompareAtPrice *float64  `gorm:"type:numeric(12,2)"`
	Currency       string    `gorm:"type:varchar(3);not null;default:'USD'"`
	StockQty       int       `gorm:"not null;default:0"`
	ImageURL       *string   `gorm:"type:text"`
	Active         bool      `gorm:"default:true;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	Category *Category `gorm:"foreignKey:CategoryId"`
}

func (Product) TableName() string {
	return "products"
}

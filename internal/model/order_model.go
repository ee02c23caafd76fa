package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Order struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderNumber string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	// pending | confirmed | processing | shipped | delivered | cancelled
	Status string `gorm:"type:varchar(20);not null;default:'pending';index"`
	// pending | paid | failed | refunded
	PaymentStatus  string  `gorm:"type:varchar(20);not null;default:'pending'"`
	Subtotal       float64 `gorm:"type:numeric(12,2);not null"`
	ShippingAmount float64 `gorm:"type:numeric(12,2);not null;default:0"`
	TaxAmount      float64 `gorm:"type:numeric(12,2);not null;default:0"`
	DiscountAmount float64 `gorm:"type:numeric(12,2);not null;default:0"`
	Total          float64 `gorm:"type:numeric(12,2);not null"`
	Currency       string  `gorm:"type:varchar(3);not null;default:'USD'"`
	// Denormalized copies taken at creation time, never references
	ShippingAddress datatypes.JSON `gorm:"type:jsonb;not null"`
	BillingAddress  datatypes.JSON `gorm:"type:jsonb"`
	PaymentMethod   string         `gorm:"type:varchar(50);not null"`
	PaymentRef      *string        `gorm:"type:varchar(255)"`
	Notes           *string        `gorm:"type:text"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`

	User  *User        `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Items []*OrderItem `gorm:"foreignKey:OrderId"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderId     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductId   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	ProductSKU  string    `gorm:"type:varchar(100);not null"`
	UnitPrice   float64   `gorm:"type:numeric(12,2);not null"`
	Quantity    int       `gorm:"not null"`
	LineTotal   float64   `gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Order *Order `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// AddressSnapshot is a denormalized copy of an address taken at order
// creation. It is stored as JSON on the order row so later edits to the
// address book never alter historical orders.
type AddressSnapshot struct {
	Label      string  `json:"label"`
	Line1      string  `json:"line1"`
	Line2      string  `json:"line2,omitempty"`
	City       string  `json:"city"`
	Region     *string `json:"region,omitempty"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	Phone      *string `json:"phone,omitempty"`
}

type Order struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	OrderNumber     string
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	Subtotal        float64
	ShippingAmount  float64
	TaxAmount       float64
	DiscountAmount  float64
	Total           float64
	Currency        string
	ShippingAddress AddressSnapshot
	BillingAddress  *AddressSnapshot
	PaymentMethod   string
	PaymentRef      *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []*OrderItem
}

// OrderItem snapshots product name/sku/price at purchase time.
type OrderItem struct {
	Id          uuid.UUID
	OrderId     uuid.UUID
	ProductId   uuid.UUID
	ProductName string
	ProductSKU  string
	UnitPrice   float64
	Quantity    int
	LineTotal   float64
	CreatedAt   time.Time
}

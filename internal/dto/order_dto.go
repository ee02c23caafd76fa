package dto

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	ShippingAddressId uuid.UUID  `json:"shipping_address_id" validate:"required"`
	BillingAddressId  *uuid.UUID `json:"billing_address_id"`
	// Simulated card form; nothing leaves the service
	CardholderName string `json:"cardholder_name" validate:"required"`
	CardNumber     string `json:"card_number" validate:"required,min=12,max=19"`
	Notes          string `json:"notes"`
}

type CheckoutResponse struct {
	OrderId     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Total       float64   `json:"total"`
	Currency    string    `json:"currency"`
}

type OrderItemResponse struct {
	ProductId   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSKU  string    `json:"product_sku"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	LineTotal   float64   `json:"line_total"`
}

type OrderAddressResponse struct {
	Label      string `json:"label"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

type OrderSummaryResponse struct {
	Id            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Total         float64   `json:"total"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderDetailResponse struct {
	Id              uuid.UUID             `json:"id"`
	OrderNumber     string                `json:"order_number"`
	Status          string                `json:"status"`
	PaymentStatus   string                `json:"payment_status"`
	Subtotal        float64               `json:"subtotal"`
	ShippingAmount  float64               `json:"shipping_amount"`
	TaxAmount       float64               `json:"tax_amount"`
	DiscountAmount  float64               `json:"discount_amount"`
	Total           float64               `json:"total"`
	Currency        string                `json:"currency"`
	PaymentMethod   string                `json:"payment_method"`
	Notes           string                `json:"notes,omitempty"`
	ShippingAddress OrderAddressResponse  `json:"shipping_address"`
	BillingAddress  *OrderAddressResponse `json:"billing_address,omitempty"`
	Items           []*OrderItemResponse  `json:"items"`
	CreatedAt       time.Time             `json:"created_at"`
}

// PublishOrderPlacedMessage is the payload sent to the in-process
// order-placed topic; the consumer loads the order and sends the
// confirmation email.
type PublishOrderPlacedMessage struct {
	OrderId uuid.UUID `json:"order_id"`
}

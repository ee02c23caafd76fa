package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAddressRequest struct {
	Kind       string `json:"kind" validate:"required,oneof=home work other"`
	Label      string `json:"label" validate:"required,max=255"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code" validate:"required,max=20"`
	Country    string `json:"country"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	IsDefault  bool   `json:"is_default"`
}

type UpdateAddressRequest struct {
	Id         uuid.UUID `json:"-"`
	Kind       string    `json:"kind" validate:"required,oneof=home work other"`
	Label      string    `json:"label" validate:"required,max=255"`
	Line1      string    `json:"line1" validate:"required"`
	Line2      string    `json:"line2"`
	City       string    `json:"city" validate:"required"`
	Region     string    `json:"region"`
	PostalCode string    `json:"postal_code" validate:"required,max=20"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone" validate:"omitempty,max=50"`
	IsDefault  bool      `json:"is_default"`
}

type AddressResponse struct {
	Id         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	Label      string    `json:"label"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2,omitempty"`
	City       string    `json:"city"`
	Region     string    `json:"region,omitempty"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone,omitempty"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

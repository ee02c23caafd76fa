package entity

import (
	"time"

	"github.com/google/uuid"
)

type AddressKind string

const (
	AddressKindHome  AddressKind = "home"
	AddressKindWork  AddressKind = "work"
	AddressKindOther AddressKind = "other"
)

// Address belongs to exactly one user. At most one address per user
// carries IsDefault = true at any committed instant; the address service
// clears siblings inside the same transaction as the write.
type Address struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Kind       AddressKind
	Label      string
	Line1      string
	Line2      string
	City       string
	Region     *string
	PostalCode string
	Country    string
	Phone      *string
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

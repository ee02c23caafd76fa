package model

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind       string    `gorm:"type:varchar(20);not null;default:'home'"`
	Label      string    `gorm:"type:varchar(255);not null"`
	Line1      string    `gorm:"type:text;not null"`
	Line2      string    `gorm:"type:text"`
	City       string    `gorm:"type:varchar(255);not null"`
	Region     *string   `gorm:"type:varchar(255)"`
	PostalCode string    `gorm:"type:varchar(20);not null"`
	Country    string    `gorm:"type:varchar(255);not null;default:'United States'"`
	Phone      *string   `gorm:"type:varchar(50)"`
	IsDefault  bool      `gorm:"default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	User *User `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (Address) TableName() string {
	return "addresses"
}

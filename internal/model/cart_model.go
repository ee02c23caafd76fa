package model

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_cart_user_product"`
	ProductId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	User    *User    `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Product *Product `gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

type WishlistItem struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_wishlist_user_product"`
	ProductId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User    *User    `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Product *Product `gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

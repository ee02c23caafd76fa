package mapper

import (
	"storefront-be/internal/entity"
	"storefront-be/internal/model"
)

type CartItemMapper struct{}

func NewCartItemMapper() *CartItemMapper {
	return &CartItemMapper{}
}

func (m *CartItemMapper) ToEntity(c *model.CartItem) *entity.CartItem {
	if c == nil {
		return nil
	}
	return &entity.CartItem{
		Id:        c.Id,
		UserId:    c.UserId,
		ProductId: c.ProductId,
		Quantity:  c.Quantity,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CartItemMapper) ToModel(c *entity.CartItem) *model.CartItem {
	if c == nil {
		return nil
	}
	return &model.CartItem{
		Id:        c.Id,
		UserId:    c.UserId,
		ProductId: c.ProductId,
		Quantity:  c.Quantity,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CartItemMapper) ToEntities(items []*model.CartItem) []*entity.CartItem {
	entities := make([]*entity.CartItem, len(items))
	for i, c := range items {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type WishlistItemMapper struct{}

func NewWishlistItemMapper() *WishlistItemMapper {
	return &WishlistItemMapper{}
}

func (m *WishlistItemMapper) ToEntity(w *model.WishlistItem) *entity.WishlistItem {
	if w == nil {
		return nil
	}
	return &entity.WishlistItem{
		Id:        w.Id,
		UserId:    w.UserId,
		ProductId: w.ProductId,
		CreatedAt: w.CreatedAt,
	}
}

func (m *WishlistItemMapper) ToModel(w *entity.WishlistItem) *model.WishlistItem {
	if w == nil {
		return nil
	}
	return &model.WishlistItem{
		Id:        w.Id,
		UserId:    w.UserId,
		ProductId: w.ProductId,
		CreatedAt: w.CreatedAt,
	}
}

func (m *WishlistItemMapper) ToEntities(items []*model.WishlistItem) []*entity.WishlistItem {
	entities := make([]*entity.WishlistItem, len(items))
	for i, w := range items {
		entities[i] = m.ToEntity(w)
	}
	return entities
}

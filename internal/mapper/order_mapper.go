package mapper

import (
	"encoding/json"

	"storefront-be/internal/entity"
	"storefront-be/internal/model"

	"gorm.io/datatypes"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}

	var shipping entity.AddressSnapshot
	// A malformed snapshot degrades to an empty struct rather than failing a read.
	_ = json.Unmarshal(o.ShippingAddress, &shipping)

	var billingSnap *entity.AddressSnapshot
	if len(o.BillingAddress) > 0 && string(o.BillingAddress) != "null" {
		var b entity.AddressSnapshot
		if err := json.Unmarshal(o.BillingAddress, &b); err == nil {
			billingSnap = &b
		}
	}

	e := &entity.Order{
		Id:              o.Id,
		UserId:          o.UserId,
		OrderNumber:     o.OrderNumber,
		Status:          entity.OrderStatus(o.Status),
		PaymentStatus:   entity.PaymentStatus(o.PaymentStatus),
		Subtotal:        o.Subtotal,
		ShippingAmount:  o.ShippingAmount,
		TaxAmount:       o.TaxAmount,
		DiscountAmount:  o.DiscountAmount,
		Total:           o.Total,
		Currency:        o.Currency,
		ShippingAddress: shipping,
		BillingAddress:  billingSnap,
		PaymentMethod:   o.PaymentMethod,
		PaymentRef:      o.PaymentRef,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	for _, item := range o.Items {
		e.Items = append(e.Items, m.ToItemEntity(item))
	}
	return e
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}

	shipping, _ := json.Marshal(o.ShippingAddress)

	var billing datatypes.JSON
	if o.BillingAddress != nil {
		b, _ := json.Marshal(o.BillingAddress)
		billing = b
	}

	mo := &model.Order{
		Id:              o.Id,
		UserId:          o.UserId,
		OrderNumber:     o.OrderNumber,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		Subtotal:        o.Subtotal,
		ShippingAmount:  o.ShippingAmount,
		TaxAmount:       o.TaxAmount,
		DiscountAmount:  o.DiscountAmount,
		Total:           o.Total,
		Currency:        o.Currency,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		PaymentMethod:   o.PaymentMethod,
		PaymentRef:      o.PaymentRef,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	for _, item := range o.Items {
		mo.Items = append(mo.Items, m.ToItemModel(item))
	}
	return mo
}

func (m *OrderMapper) ToEntities(orders []*model.Order) []*entity.Order {
	entities := make([]*entity.Order, len(orders))
	for i, o := range orders {
		entities[i] = m.ToEntity(o)
	}
	return entities
}

func (m *OrderMapper) ToItemEntity(i *model.OrderItem) *entity.OrderItem {
	if i == nil {
		return nil
	}
	return &entity.OrderItem{
		Id:          i.Id,
		OrderId:     i.OrderId,
		ProductId:   i.ProductId,
		ProductName: i.ProductName,
		ProductSKU:  i.ProductSKU,
		UnitPrice:   i.UnitPrice,
		Quantity:    i.Quantity,
		LineTotal:   i.LineTotal,
		CreatedAt:   i.CreatedAt,
	}
}

func (m *OrderMapper) ToItemModel(i *entity.OrderItem) *model.OrderItem {
	if i == nil {
		return nil
	}
	return &model.OrderItem{
		Id:          i.Id,
		OrderId:     i.OrderId,
		ProductId:   i.ProductId,
		ProductName: i.ProductName,
		ProductSKU:  i.ProductSKU,
		UnitPrice:   i.UnitPrice,
		Quantity:    i.Quantity,
		LineTotal:   i.LineTotal,
		CreatedAt:   i.CreatedAt,
	}
}

func (m *OrderMapper) ToItemEntities(items []*model.OrderItem) []*entity.OrderItem {
	entities := make([]*entity.OrderItem, len(items))
	for i, it := range items {
		entities[i] = m.ToItemEntity(it)
	}
	return entities
}

package mapper

import (
	"storefront-be/internal/entity"
	"storefront-be/internal/model"
)

type AddressMapper struct{}

func NewAddressMapper() *AddressMapper {
	return &AddressMapper{}
}

func (m *AddressMapper) ToEntity(a *model.Address) *entity.Address {
	if a == nil {
		return nil
	}
	return &entity.Address{
		Id:         a.Id,
		UserId:     a.UserId,
		Kind:       entity.AddressKind(a.Kind),
		Label:      a.Label,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
		IsDefault:  a.IsDefault,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func (m *AddressMapper) ToModel(a *entity.Address) *model.Address {
	if a == nil {
		return nil
	}
	return &model.Address{
		Id:         a.Id,
		UserId:     a.UserId,
		Kind:       string(a.Kind),
		Label:      a.Label,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
		IsDefault:  a.IsDefault,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func (m *AddressMapper) ToEntities(addresses []*model.Address) []*entity.Address {
	entities := make([]*entity.Address, len(addresses))
	for i, a := range addresses {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

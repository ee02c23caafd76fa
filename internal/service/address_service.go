package service

import (
	"context"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/entity"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAddressService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.AddressResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAddressRequest) (*dto.AddressResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateAddressRequest) (*dto.AddressResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	SetDefault(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type addressService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAddressService(uowFactory unitofwork.RepositoryFactory) IAddressService {
	return &addressService{
		uowFactory: uowFactory,
	}
}

func (s *addressService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.AddressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	addresses, err := uow.AddressRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "is_default", Desc: true},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		result = append(result, toAddressResponse(a))
	}
	return result, nil
}

func (s *addressService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAddressRequest) (*dto.AddressResponse, error) {
	country := req.Country
	if country == "" {
		country = "United States"
	}

	address := &entity.Address{
		Id:         uuid.New(),
		UserId:     userId,
		Kind:       entity.AddressKind(req.Kind),
		Label:      req.Label,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		Region:     optional(req.Region),
		PostalCode: req.PostalCode,
		Country:    country,
		Phone:      optional(req.Phone),
		IsDefault:  req.IsDefault,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := s.enforceSingleDefault(ctx, uow, address); err != nil {
		return nil, err
	}

	if err := uow.AddressRepository().Create(ctx, address); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toAddressResponse(address), nil
}

func (s *addressService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateAddressRequest) (*dto.AddressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	address, err := uow.AddressRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, serverutils.ErrNotFound
	}

	address.Kind = entity.AddressKind(req.Kind)
	address.Label = req.Label
	address.Line1 = req.Line1
	address.Line2 = req.Line2
	address.City = req.City
	address.Region = optional(req.Region)
	address.PostalCode = req.PostalCode
	if req.Country != "" {
		address.Country = req.Country
	}
	address.Phone = optional(req.Phone)
	address.IsDefault = req.IsDefault
	address.UpdatedAt = time.Now()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := s.enforceSingleDefault(ctx, uow, address); err != nil {
		return nil, err
	}

	if err := uow.AddressRepository().Update(ctx, address); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toAddressResponse(address), nil
}

func (s *addressService) SetDefault(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	address, err := uow.AddressRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if address == nil {
		return serverutils.ErrNotFound
	}

	address.IsDefault = true
	address.UpdatedAt = time.Now()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := s.enforceSingleDefault(ctx, uow, address); err != nil {
		return err
	}

	if err := uow.AddressRepository().Update(ctx, address); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *addressService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	address, err := uow.AddressRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if address == nil {
		return serverutils.ErrNotFound
	}

	// Deleting the default leaves zero defaults; nothing is auto-promoted.
	return uow.AddressRepository().Delete(ctx, id)
}

// enforceSingleDefault keeps "at most one default address per user"
// true across commits. Must run inside the same transaction as the
// candidate's write. The locked sibling scan serializes two concurrent
// set-default writers for the same user; a false candidate touches no
// other rows.
func (s *addressService) enforceSingleDefault(ctx context.Context, uow unitofwork.UnitOfWork, candidate *entity.Address) error {
	if !candidate.IsDefault {
		return nil
	}

	if _, err := uow.AddressRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: candidate.UserId},
		specification.LockForUpdate{},
	); err != nil {
		return err
	}

	return uow.AddressRepository().ClearDefaultExcept(ctx, candidate.UserId, candidate.Id)
}

func toAddressResponse(a *entity.Address) *dto.AddressResponse {
	return &dto.AddressResponse{
		Id:         a.Id,
		Kind:       string(a.Kind),
		Label:      a.Label,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     deref(a.Region),
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      deref(a.Phone),
		IsDefault:  a.IsDefault,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

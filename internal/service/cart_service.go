package service

import (
	"context"
	"errors"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/entity"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICartService interface {
	GetCart(ctx context.Context, userId uuid.UUID) (*dto.CartResponse, error)
	AddItem(ctx context.Context, userId uuid.UUID, req *dto.AddCartItemRequest) (*dto.CartResponse, error)
	UpdateItem(ctx context.Context, userId uuid.UUID, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Clear(ctx context.Context, userId uuid.UUID) error
}

type cartService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCartService(uowFactory unitofwork.RepositoryFactory) ICartService {
	return &cartService{
		uowFactory: uowFactory,
	}
}

func (s *cartService) GetCart(ctx context.Context, userId uuid.UUID) (*dto.CartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.loadCart(ctx, uow, userId)
}

func (s *cartService) AddItem(ctx context.Context, userId uuid.UUID, req *dto.AddCartItemRequest) (*dto.CartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx,
		specification.ByID{ID: req.ProductId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, serverutils.ErrNotFound
	}
	if product.StockQty < req.Quantity {
		return nil, errors.New("insufficient stock")
	}

	existing, err := uow.CartRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByProductID{ProductID: req.ProductId},
	)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		// Same product again merges quantities
		existing.Quantity += req.Quantity
		existing.UpdatedAt = time.Now()
		if err := uow.CartRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
	} else {
		item := &entity.CartItem{
			Id:        uuid.New(),
			UserId:    userId,
			ProductId: req.ProductId,
			Quantity:  req.Quantity,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := uow.CartRepository().Create(ctx, item); err != nil {
			return nil, err
		}
	}

	return s.loadCart(ctx, uow, userId)
}

func (s *cartService) UpdateItem(ctx context.Context, userId uuid.UUID, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.CartRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, serverutils.ErrNotFound
	}

	if req.Quantity <= 0 {
		if err := uow.CartRepository().Delete(ctx, item.Id); err != nil {
			return nil, err
		}
		return s.loadCart(ctx, uow, userId)
	}

	item.Quantity = req.Quantity
	item.UpdatedAt = time.Now()
	if err := uow.CartRepository().Update(ctx, item); err != nil {
		return nil, err
	}

	return s.loadCart(ctx, uow, userId)
}

func (s *cartService) RemoveItem(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.CartRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if item == nil {
		return serverutils.ErrNotFound
	}

	return uow.CartRepository().Delete(ctx, id)
}

func (s *cartService) Clear(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CartRepository().DeleteAllByUserId(ctx, userId)
}

func (s *cartService) loadCart(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*dto.CartResponse, error) {
	items, err := uow.CartRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.CartResponse{Items: make([]*dto.CartItemResponse, 0, len(items))}
	if len(items) == 0 {
		return res, nil
	}

	productIds := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		productIds = append(productIds, item.ProductId)
	}
	products, err := uow.ProductRepository().FindAll(ctx, specification.ByIDs{IDs: productIds})
	if err != nil {
		return nil, err
	}
	productById := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		productById[p.Id] = p
	}

	for _, item := range items {
		product, ok := productById[item.ProductId]
		if !ok {
			continue
		}
		lineTotal := round2(product.Price * float64(item.Quantity))
		res.Items = append(res.Items, &dto.CartItemResponse{
			Id:          item.Id,
			ProductId:   product.Id,
			ProductName: product.Name,
			ProductSlug: product.Slug,
			ImageURL:    deref(product.ImageURL),
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			LineTotal:   lineTotal,
			InStock:     product.StockQty >= item.Quantity,
			AddedAt:     item.CreatedAt,
		})
		res.Subtotal += lineTotal
	}
	res.Subtotal = round2(res.Subtotal)

	return res, nil
}

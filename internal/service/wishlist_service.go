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

type IWishlistService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.WishlistItemResponse, error)
	Toggle(ctx context.Context, userId uuid.UUID, productId uuid.UUID) (*dto.ToggleWishlistResponse, error)
	MoveToCart(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type wishlistService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWishlistService(uowFactory unitofwork.RepositoryFactory) IWishlistService {
	return &wishlistService{
		uowFactory: uowFactory,
	}
}

func (s *wishlistService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.WishlistItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.WishlistRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.WishlistItemResponse, 0, len(items))
	if len(items) == 0 {
		return result, nil
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
		result = append(result, &dto.WishlistItemResponse{
			Id:          item.Id,
			ProductId:   product.Id,
			ProductName: product.Name,
			ProductSlug: product.Slug,
			ImageURL:    deref(product.ImageURL),
			Price:       product.Price,
			InStock:     product.StockQty > 0,
			AddedAt:     item.CreatedAt,
		})
	}
	return result, nil
}

func (s *wishlistService) Toggle(ctx context.Context, userId uuid.UUID, productId uuid.UUID) (*dto.ToggleWishlistResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.WishlistRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByProductID{ProductID: productId},
	)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := uow.WishlistRepository().Delete(ctx, existing.Id); err != nil {
			return nil, err
		}
		return &dto.ToggleWishlistResponse{ProductId: productId, Added: false}, nil
	}

	product, err := uow.ProductRepository().FindOne(ctx,
		specification.ByID{ID: productId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, serverutils.ErrNotFound
	}

	item := &entity.WishlistItem{
		Id:        uuid.New(),
		UserId:    userId,
		ProductId: productId,
		CreatedAt: time.Now(),
	}
	if err := uow.WishlistRepository().Create(ctx, item); err != nil {
		return nil, err
	}

	return &dto.ToggleWishlistResponse{ProductId: productId, Added: true}, nil
}

func (s *wishlistService) MoveToCart(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.WishlistRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if item == nil {
		return serverutils.ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	existing, err := uow.CartRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByProductID{ProductID: item.ProductId},
	)
	if err != nil {
		return err
	}

	if existing != nil {
		existing.Quantity++
		existing.UpdatedAt = time.Now()
		if err := uow.CartRepository().Update(ctx, existing); err != nil {
			return err
		}
	} else {
		cartItem := &entity.CartItem{
			Id:        uuid.New(),
			UserId:    userId,
			ProductId: item.ProductId,
			Quantity:  1,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := uow.CartRepository().Create(ctx, cartItem); err != nil {
			return err
		}
	}

	if err := uow.WishlistRepository().Delete(ctx, item.Id); err != nil {
		return err
	}

	return uow.Commit()
}

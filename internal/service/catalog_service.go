package service

import (
	"context"
	"encoding/json"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/entity"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const (
	productCacheTTL  = 5 * time.Minute
	categoryCacheKey = "catalog:categories"
	productCachePref = "catalog:product:"
	defaultPerPage   = 20
	maxPerPage       = 100
)

type ICatalogService interface {
	ListProducts(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error)
	GetProductBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	rdb        *redis.Client
	memCache   *gocache.Cache
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, rdb *redis.Client) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		rdb:        rdb,
		memCache:   gocache.New(productCacheTTL, 10*time.Minute),
	}
}

func (s *catalogService) ListProducts(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	specs := []specification.Specification{specification.ActiveOnly{}}

	if req.CategorySlug != "" {
		category, err := uow.CategoryRepository().FindOne(ctx,
			specification.BySlug{Slug: req.CategorySlug},
			specification.ActiveOnly{},
		)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, serverutils.ErrNotFound
		}
		specs = append(specs, specification.ByCategoryID{CategoryID: category.Id})
	}

	if req.Search != "" {
		specs = append(specs, specification.NameContains{Term: req.Search})
	}

	total, err := uow.ProductRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	switch req.SortByPrice {
	case "asc":
		specs = append(specs, specification.OrderBy{Field: "price", Desc: false})
	case "desc":
		specs = append(specs, specification.OrderBy{Field: "price", Desc: true})
	default:
		specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})
	}
	specs = append(specs, specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage})

	products, err := uow.ProductRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := &dto.ListProductsResponse{
		Products: make([]*dto.ProductResponse, 0, len(products)),
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	}
	for _, p := range products {
		res.Products = append(res.Products, toProductResponse(p))
	}
	return res, nil
}

func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error) {
	cacheKey := productCachePref + slug

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var res dto.ProductResponse
			if err := json.Unmarshal(cached, &res); err == nil {
				return &res, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx,
		specification.BySlug{Slug: slug},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, serverutils.ErrNotFound
	}

	res := toProductResponse(product)

	if s.rdb != nil {
		if payload, err := json.Marshal(res); err == nil {
			// Cache failures never fail a read
			s.rdb.Set(ctx, cacheKey, payload, productCacheTTL)
		}
	}

	return res, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	if cached, found := s.memCache.Get(categoryCacheKey); found {
		if categories, ok := cached.([]*dto.CategoryResponse); ok {
			return categories, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.CategoryRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, &dto.CategoryResponse{
			Id:   c.Id,
			Name: c.Name,
			Slug: c.Slug,
		})
	}

	s.memCache.Set(categoryCacheKey, result, gocache.DefaultExpiration)
	return result, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Id:             p.Id,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		SKU:            p.SKU,
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		Currency:       p.Currency,
		StockQty:       p.StockQty,
		ImageURL:       deref(p.ImageURL),
		CategoryId:     p.CategoryId,
		CreatedAt:      p.CreatedAt,
	}
}

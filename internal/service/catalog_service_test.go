package service

import (
	"context"
	"testing"

	"storefront-be/internal/dto"
	"storefront-be/internal/entity"
	"storefront-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(store *fakeStore) *entity.Category {
	category := &entity.Category{
		Id:     uuid.New(),
		Name:   "Electronics",
		Slug:   "electronics",
		Active: true,
	}
	store.categories = append(store.categories, category)

	names := []string{"Wireless Earbuds", "Mechanical Keyboard", "USB Hub"}
	for i, name := range names {
		store.products = append(store.products, &entity.Product{
			Id:         uuid.New(),
			CategoryId: category.Id,
			Name:       name,
			Slug:       "product-" + uuid.New().String()[:8],
			SKU:        "SKU-" + uuid.New().String()[:8],
			Price:      float64(10 * (i + 1)),
			Currency:   "USD",
			StockQty:   5,
			Active:     true,
		})
	}
	return category
}

func TestListProductsFiltersInactive(t *testing.T) {
	store := newFakeStore()
	svc := NewCatalogService(store, nil)
	seedCatalog(store)
	store.products[0].Active = false

	res, err := svc.ListProducts(context.Background(), &dto.ListProductsRequest{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Total)
	assert.Len(t, res.Products, 2)
}

func TestListProductsSearch(t *testing.T) {
	store := newFakeStore()
	svc := NewCatalogService(store, nil)
	seedCatalog(store)

	res, err := svc.ListProducts(context.Background(), &dto.ListProductsRequest{Search: "keyboard"})
	require.NoError(t, err)

	require.Len(t, res.Products, 1)
	assert.Equal(t, "Mechanical Keyboard", res.Products[0].Name)
}

func TestListProductsByCategorySlug(t *testing.T) {
	store := newFakeStore()
	svc := NewCatalogService(store, nil)
	seedCatalog(store)

	other := &entity.Category{Id: uuid.New(), Name: "Books", Slug: "books", Active: true}
	store.categories = append(store.categories, other)
	store.products = append(store.products, &entity.Product{
		Id:         uuid.New(),
		CategoryId: other.Id,
		Name:       "Novel",
		Slug:       "novel",
		SKU:        "BOOK-1",
		Price:      12.00,
		Currency:   "USD",
		StockQty:   3,
		Active:     true,
	})

	res, err := svc.ListProducts(context.Background(), &dto.ListProductsRequest{CategorySlug: "books"})
	require.NoError(t, err)

	require.Len(t, res.Products, 1)
	assert.Equal(t, "Novel", res.Products[0].Name)
}

func TestListProductsUnknownCategory(t *testing.T) {
	store := newFakeStore()
	svc := NewCatalogService(store, nil)
	seedCatalog(store)

	_, err := svc.ListProducts(context.Background(), &dto.ListProductsRequest{CategorySlug: "nope"})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestListProductsPagination(t *testing.T) {
	store := newFakeStore()
	svc := NewCatalogService(store, nil)
	seedCatalog(store)

	res, err := svc.ListProducts(context.Background(), &dto.ListProductsRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.Total)
	assert.Len(t, res.Products, 1)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 2, res.PerPage)
}

func TestGetProductBySlug(t *testing.T) {
	store := newFakeStore()
	svc := NewCatalogService(store, nil)
	seedCatalog(store)

	res, err := svc.GetProductBySlug(context.Background(), store.products[1].Slug)
	require.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", res.Name)
}

func TestGetProductBySlugNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewCatalogService(store, nil)
	seedCatalog(store)

	_, err := svc.GetProductBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestListCategoriesServesFromMemoryCache(t *testing.T) {
	store := newFakeStore()
	svc := NewCatalogService(store, nil)
	seedCatalog(store)

	first, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Drop the backing data; the cached list keeps serving.
	store.categories = nil
	second, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

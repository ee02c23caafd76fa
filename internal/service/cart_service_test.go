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

func seedProduct(store *fakeStore, price float64, stock int) *entity.Product {
	product := &entity.Product{
		Id:       uuid.New(),
		Name:     "Widget",
		Slug:     "widget-" + uuid.New().String()[:8],
		SKU:      "SKU-" + uuid.New().String()[:8],
		Price:    price,
		Currency: "USD",
		StockQty: stock,
		Active:   true,
	}
	store.products = append(store.products, product)
	return product
}

func TestAddItemCreatesRow(t *testing.T) {
	store := newFakeStore()
	svc := NewCartService(store)
	userId := uuid.New()
	product := seedProduct(store, 25.00, 10)

	res, err := svc.AddItem(context.Background(), userId, &dto.AddCartItemRequest{
		ProductId: product.Id,
		Quantity:  2,
	})
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, 2, res.Items[0].Quantity)
	assert.Equal(t, 50.00, res.Items[0].LineTotal)
	assert.Equal(t, 50.00, res.Subtotal)
}

func TestAddItemMergesQuantities(t *testing.T) {
	store := newFakeStore()
	svc := NewCartService(store)
	userId := uuid.New()
	product := seedProduct(store, 25.00, 10)

	_, err := svc.AddItem(context.Background(), userId, &dto.AddCartItemRequest{ProductId: product.Id, Quantity: 2})
	require.NoError(t, err)
	res, err := svc.AddItem(context.Background(), userId, &dto.AddCartItemRequest{ProductId: product.Id, Quantity: 3})
	require.NoError(t, err)

	// One row per (user, product), quantities merged
	require.Len(t, store.cartItems, 1)
	assert.Equal(t, 5, store.cartItems[0].Quantity)
	assert.Equal(t, 125.00, res.Subtotal)
}

func TestAddItemRejectsInactiveProduct(t *testing.T) {
	store := newFakeStore()
	svc := NewCartService(store)
	product := seedProduct(store, 25.00, 10)
	product.Active = false

	_, err := svc.AddItem(context.Background(), uuid.New(), &dto.AddCartItemRequest{ProductId: product.Id, Quantity: 1})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestAddItemRejectsInsufficientStock(t *testing.T) {
	store := newFakeStore()
	svc := NewCartService(store)
	product := seedProduct(store, 25.00, 2)

	_, err := svc.AddItem(context.Background(), uuid.New(), &dto.AddCartItemRequest{ProductId: product.Id, Quantity: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
}

func TestUpdateItemZeroQuantityDeletes(t *testing.T) {
	store := newFakeStore()
	svc := NewCartService(store)
	userId := uuid.New()
	product := seedProduct(store, 25.00, 10)

	_, err := svc.AddItem(context.Background(), userId, &dto.AddCartItemRequest{ProductId: product.Id, Quantity: 2})
	require.NoError(t, err)

	res, err := svc.UpdateItem(context.Background(), userId, &dto.UpdateCartItemRequest{
		Id:       store.cartItems[0].Id,
		Quantity: 0,
	})
	require.NoError(t, err)

	assert.Empty(t, res.Items)
	assert.Empty(t, store.cartItems)
}

func TestRemoveItemRejectsForeignRows(t *testing.T) {
	store := newFakeStore()
	svc := NewCartService(store)
	owner := uuid.New()
	product := seedProduct(store, 25.00, 10)

	_, err := svc.AddItem(context.Background(), owner, &dto.AddCartItemRequest{ProductId: product.Id, Quantity: 1})
	require.NoError(t, err)

	err = svc.RemoveItem(context.Background(), uuid.New(), store.cartItems[0].Id)
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
	assert.Len(t, store.cartItems, 1)
}

func TestGetCartFlagsOutOfStockLines(t *testing.T) {
	store := newFakeStore()
	svc := NewCartService(store)
	userId := uuid.New()
	product := seedProduct(store, 25.00, 5)

	_, err := svc.AddItem(context.Background(), userId, &dto.AddCartItemRequest{ProductId: product.Id, Quantity: 5})
	require.NoError(t, err)

	// Stock drops after the item was added
	product.StockQty = 1

	res, err := svc.GetCart(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.False(t, res.Items[0].InStock)
}

func TestClearEmptiesOnlyOwnCart(t *testing.T) {
	store := newFakeStore()
	svc := NewCartService(store)
	alice := uuid.New()
	bob := uuid.New()
	product := seedProduct(store, 25.00, 10)

	_, err := svc.AddItem(context.Background(), alice, &dto.AddCartItemRequest{ProductId: product.Id, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), bob, &dto.AddCartItemRequest{ProductId: product.Id, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), alice))

	require.Len(t, store.cartItems, 1)
	assert.Equal(t, bob, store.cartItems[0].UserId)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront-be/internal/config"
	"storefront-be/internal/dto"
	"storefront-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPricing() config.CheckoutConfig {
	return config.CheckoutConfig{
		Currency:          "USD",
		TaxRate:           0.08,
		ShippingFlatRate:  5.99,
		FreeShippingAbove: 50,
	}
}

func newCheckoutFixture(t *testing.T) (*fakeStore, *fakePublisher, *checkoutService, uuid.UUID) {
	t.Helper()

	store := newFakeStore()
	publisher := &fakePublisher{}
	svc := NewCheckoutService(store, testPricing(), publisher).(*checkoutService)
	svc.now = func() time.Time {
		return time.Date(2025, 9, 17, 15, 30, 0, 0, time.UTC)
	}

	userId := uuid.New()
	store.addresses = append(store.addresses, &entity.Address{
		Id:         uuid.New(),
		UserId:     userId,
		Kind:       entity.AddressKindHome,
		Label:      "Home",
		Line1:      "1 Main St",
		City:       "Springfield",
		PostalCode: "11111",
		Country:    "United States",
		IsDefault:  true,
	})

	return store, publisher, svc, userId
}

func addProductWithCartItem(store *fakeStore, userId uuid.UUID, price float64, qty, stock int) *entity.Product {
	product := &entity.Product{
		Id:       uuid.New(),
		Name:     "Product " + uuid.New().String()[:8],
		Slug:     "product-" + uuid.New().String()[:8],
		SKU:      "SKU-" + uuid.New().String()[:8],
		Price:    price,
		Currency: "USD",
		StockQty: stock,
		Active:   true,
	}
	store.products = append(store.products, product)
	store.cartItems = append(store.cartItems, &entity.CartItem{
		Id:        uuid.New(),
		UserId:    userId,
		ProductId: product.Id,
		Quantity:  qty,
	})
	return product
}

func checkoutRequest(store *fakeStore) *dto.CheckoutRequest {
	return &dto.CheckoutRequest{
		ShippingAddressId: store.addresses[0].Id,
		CardholderName:    "Jane Doe",
		CardNumber:        "4242 4242 4242 4242",
	}
}

func TestPlaceOrderFirstOfDay(t *testing.T) {
	store, publisher, svc, userId := newCheckoutFixture(t)
	addProductWithCartItem(store, userId, 10.00, 2, 5)

	res, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.NoError(t, err)

	assert.Equal(t, "ORD-20250917-0001", res.OrderNumber)
	// 20.00 subtotal, below the free-shipping threshold
	assert.Equal(t, 27.59, res.Total) // 20 + 5.99 + 1.60
	assert.Equal(t, "USD", res.Currency)

	require.Len(t, store.orders, 1)
	order := store.orders[0]
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
	require.NotNil(t, order.PaymentRef)
	assert.Equal(t, "card-4242", *order.PaymentRef)

	// Items snapshot the product at purchase time
	require.Len(t, store.orderItems, 1)
	assert.Equal(t, 10.00, store.orderItems[0].UnitPrice)
	assert.Equal(t, 2, store.orderItems[0].Quantity)

	// Cart is emptied in the same transaction
	assert.Empty(t, store.cartItems)

	// The confirmation pipeline got the order id
	require.Len(t, publisher.payloads, 1)
	var msg dto.PublishOrderPlacedMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &msg))
	assert.Equal(t, order.Id, msg.OrderId)
}

func TestPlaceOrderSequentialNumbersWithinDay(t *testing.T) {
	store, _, svc, userId := newCheckoutFixture(t)

	addProductWithCartItem(store, userId, 10.00, 1, 5)
	first, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.NoError(t, err)

	addProductWithCartItem(store, userId, 12.00, 1, 5)
	second, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.NoError(t, err)

	assert.Equal(t, "ORD-20250917-0001", first.OrderNumber)
	assert.Equal(t, "ORD-20250917-0002", second.OrderNumber)
}

func TestPlaceOrderCounterResetsAcrossDays(t *testing.T) {
	store, _, svc, userId := newCheckoutFixture(t)

	// An order from the previous day must not feed the counter.
	store.orders = append(store.orders, &entity.Order{
		Id:          uuid.New(),
		UserId:      userId,
		OrderNumber: "ORD-20250916-0042",
	})

	addProductWithCartItem(store, userId, 10.00, 1, 5)
	res, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.NoError(t, err)

	assert.Equal(t, "ORD-20250917-0001", res.OrderNumber)
}

func TestPlaceOrderRetriesOnceOnDuplicateNumber(t *testing.T) {
	store, _, svc, userId := newCheckoutFixture(t)
	addProductWithCartItem(store, userId, 10.00, 1, 5)

	store.orderCreateErrs = []error{errors.New(`duplicate key value violates unique constraint "idx_orders_order_number" (SQLSTATE 23505)`)}

	res, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.NoError(t, err)

	assert.Equal(t, "ORD-20250917-0001", res.OrderNumber)
	assert.Len(t, store.orders, 1)
}

func TestPlaceOrderDoesNotRetryOtherErrors(t *testing.T) {
	store, _, svc, userId := newCheckoutFixture(t)
	addProductWithCartItem(store, userId, 10.00, 1, 5)

	store.orderCreateErrs = []error{errors.New("connection reset")}

	_, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.Error(t, err)
	assert.Empty(t, store.orders)
}

func TestCreateOrderKeepsPresetNumber(t *testing.T) {
	store, _, svc, userId := newCheckoutFixture(t)

	order := &entity.Order{
		Id:          uuid.New(),
		UserId:      userId,
		OrderNumber: "ORD-20250101-0007",
		Currency:    "USD",
	}
	require.NoError(t, svc.createOrder(context.Background(), order, nil))

	require.Len(t, store.orders, 1)
	assert.Equal(t, "ORD-20250101-0007", store.orders[0].OrderNumber)

	// The preset number belongs to another day and leaves today's
	// counter alone.
	addProductWithCartItem(store, userId, 10.00, 1, 5)
	res, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250917-0001", res.OrderNumber)
}

func TestCreateOrderClearsOnlyOrderedCartRows(t *testing.T) {
	store, _, svc, userId := newCheckoutFixture(t)
	addProductWithCartItem(store, userId, 10.00, 1, 5)
	ordered := store.cartItems[0]

	// A row added after checkout read the cart must survive the
	// clearing.
	addProductWithCartItem(store, userId, 15.00, 1, 5)
	late := store.cartItems[1]

	order := &entity.Order{Id: uuid.New(), UserId: userId}
	require.NoError(t, svc.createOrder(context.Background(), order, []uuid.UUID{ordered.Id}))

	require.Len(t, store.cartItems, 1)
	assert.Equal(t, late.Id, store.cartItems[0].Id)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	store, _, svc, userId := newCheckoutFixture(t)

	_, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart is empty")
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	store, _, svc, userId := newCheckoutFixture(t)
	addProductWithCartItem(store, userId, 10.00, 3, 2)

	_, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
	assert.Empty(t, store.orders)
}

func TestPlaceOrderInactiveProduct(t *testing.T) {
	store, _, svc, userId := newCheckoutFixture(t)
	product := addProductWithCartItem(store, userId, 10.00, 1, 5)
	product.Active = false

	_, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no longer available")
}

func TestPlaceOrderFreeShipping(t *testing.T) {
	store, _, svc, userId := newCheckoutFixture(t)
	addProductWithCartItem(store, userId, 30.00, 2, 5)

	res, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.NoError(t, err)

	// 60.00 subtotal clears the threshold: no shipping, 4.80 tax
	assert.Equal(t, 64.80, res.Total)
	assert.Equal(t, 0.0, store.orders[0].ShippingAmount)
}

func TestPlaceOrderRejectsForeignAddress(t *testing.T) {
	store, _, svc, userId := newCheckoutFixture(t)
	addProductWithCartItem(store, userId, 10.00, 1, 5)

	otherAddress := &entity.Address{
		Id:     uuid.New(),
		UserId: uuid.New(),
		Label:  "Not Yours",
	}
	store.addresses = append(store.addresses, otherAddress)

	req := checkoutRequest(store)
	req.ShippingAddressId = otherAddress.Id

	_, err := svc.PlaceOrder(context.Background(), userId, req)
	require.Error(t, err)
	assert.Empty(t, store.orders)
}

func TestPlaceOrderSnapshotsAddress(t *testing.T) {
	store, _, svc, userId := newCheckoutFixture(t)
	addProductWithCartItem(store, userId, 10.00, 1, 5)

	_, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.NoError(t, err)

	// Later edits to the address book must not change the order.
	store.addresses[0].Line1 = "999 Moved Ave"
	assert.Equal(t, "1 Main St", store.orders[0].ShippingAddress.Line1)
}

func TestPlaceOrderPublishFailureDoesNotFailCheckout(t *testing.T) {
	store, publisher, svc, userId := newCheckoutFixture(t)
	addProductWithCartItem(store, userId, 10.00, 1, 5)
	publisher.err = errors.New("pubsub closed")

	res, err := svc.PlaceOrder(context.Background(), userId, checkoutRequest(store))
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250917-0001", res.OrderNumber)
	assert.Len(t, store.orders, 1)
}

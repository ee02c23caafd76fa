package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"storefront-be/internal/config"
	"storefront-be/internal/dto"
	"storefront-be/internal/entity"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/pkg/ordernum"

	"github.com/google/uuid"
)

type ICheckoutService interface {
	PlaceOrder(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutService struct {
	uowFactory       unitofwork.RepositoryFactory
	pricing          config.CheckoutConfig
	publisherService IPublisherService
	now              func() time.Time
}

func NewCheckoutService(
	uowFactory unitofwork.RepositoryFactory,
	pricing config.CheckoutConfig,
	publisherService IPublisherService,
) ICheckoutService {
	return &checkoutService{
		uowFactory:       uowFactory,
		pricing:          pricing,
		publisherService: publisherService,
		now:              time.Now,
	}
}

func (s *checkoutService) PlaceOrder(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cartItems, err := uow.CartRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, errors.New("cart is empty")
	}

	productIds := make([]uuid.UUID, 0, len(cartItems))
	for _, item := range cartItems {
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

	shipping, err := uow.AddressRepository().FindOne(ctx,
		specification.ByID{ID: req.ShippingAddressId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if shipping == nil {
		return nil, serverutils.ErrNotFound
	}

	var billing *entity.Address
	if req.BillingAddressId != nil {
		billing, err = uow.AddressRepository().FindOne(ctx,
			specification.ByID{ID: *req.BillingAddressId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if billing == nil {
			return nil, serverutils.ErrNotFound
		}
	}

	order, err := s.buildOrder(userId, req, cartItems, productById, shipping, billing)
	if err != nil {
		return nil, err
	}

	cartItemIds := make([]uuid.UUID, 0, len(cartItems))
	for _, item := range cartItems {
		cartItemIds = append(cartItemIds, item.Id)
	}

	// One retry of the whole transaction if the unique index on
	// order_number catches a race the row lock did not cover.
	if err := s.createOrder(ctx, order, cartItemIds); err != nil {
		if !isDuplicateOrderNumber(err) {
			return nil, err
		}
		order.OrderNumber = ""
		if err := s.createOrder(ctx, order, cartItemIds); err != nil {
			return nil, err
		}
	}

	msg, _ := json.Marshal(dto.PublishOrderPlacedMessage{OrderId: order.Id})
	if err := s.publisherService.Publish(ctx, msg); err != nil {
		// The order is committed; a dead notification pipeline must not
		// fail the checkout.
		fmt.Printf("[CHECKOUT] failed to publish order placed message for %s: %v\n", order.OrderNumber, err)
	}

	return &dto.CheckoutResponse{
		OrderId:     order.Id,
		OrderNumber: order.OrderNumber,
		Total:       order.Total,
		Currency:    order.Currency,
	}, nil
}

func (s *checkoutService) buildOrder(
	userId uuid.UUID,
	req *dto.CheckoutRequest,
	cartItems []*entity.CartItem,
	productById map[uuid.UUID]*entity.Product,
	shipping *entity.Address,
	billing *entity.Address,
) (*entity.Order, error) {
	orderId := uuid.New()

	var subtotal float64
	items := make([]*entity.OrderItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		product, ok := productById[cartItem.ProductId]
		if !ok || !product.Active {
			return nil, fmt.Errorf("product %s is no longer available", cartItem.ProductId)
		}
		if product.StockQty < cartItem.Quantity {
			return nil, fmt.Errorf("insufficient stock for %s", product.Name)
		}

		lineTotal := round2(product.Price * float64(cartItem.Quantity))
		subtotal += lineTotal

		// Name, sku and unit price are copied here so later catalog
		// edits never alter this order.
		items = append(items, &entity.OrderItem{
			Id:          uuid.New(),
			OrderId:     orderId,
			ProductId:   product.Id,
			ProductName: product.Name,
			ProductSKU:  product.SKU,
			UnitPrice:   product.Price,
			Quantity:    cartItem.Quantity,
			LineTotal:   lineTotal,
			CreatedAt:   s.now(),
		})
	}
	subtotal = round2(subtotal)

	shippingAmount := s.pricing.ShippingFlatRate
	if subtotal >= s.pricing.FreeShippingAbove {
		shippingAmount = 0
	}
	taxAmount := round2(subtotal * s.pricing.TaxRate)
	total := round2(subtotal + shippingAmount + taxAmount)

	// Simulated payment: the card form is accepted locally and the
	// order is marked paid; only the last four digits are retained.
	paymentRef := "card-" + lastFour(req.CardNumber)

	order := &entity.Order{
		Id:              orderId,
		UserId:          userId,
		Status:          entity.OrderStatusConfirmed,
		PaymentStatus:   entity.PaymentStatusPaid,
		Subtotal:        subtotal,
		ShippingAmount:  shippingAmount,
		TaxAmount:       taxAmount,
		DiscountAmount:  0,
		Total:           total,
		Currency:        s.pricing.Currency,
		ShippingAddress: snapshotAddress(shipping),
		PaymentMethod:   "card",
		PaymentRef:      &paymentRef,
		Notes:           optional(req.Notes),
		CreatedAt:       s.now(),
		UpdatedAt:       s.now(),
		Items:           items,
	}

	if billing != nil {
		snap := snapshotAddress(billing)
		order.BillingAddress = &snap
	}

	return order, nil
}

// createOrder persists the order, its items and the cart clearing in a
// single transaction. The order number is allocated inside the same
// transaction over a locked scan of the day's numbers; an order that
// arrives with a number already set keeps it untouched. Only the cart
// rows snapshotted into the order are cleared, so an item added between
// the cart read and the commit stays in the cart.
func (s *checkoutService) createOrder(ctx context.Context, order *entity.Order, cartItemIds []uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if order.OrderNumber == "" {
		existing, err := uow.OrderRepository().ListOrderNumbers(ctx,
			specification.OrderNumberPrefix{Prefix: ordernum.DayPrefix(s.now())},
			specification.LockForUpdate{},
		)
		if err != nil {
			return err
		}
		order.OrderNumber = ordernum.Next(s.now(), existing)
	}

	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return err
	}
	if err := uow.OrderItemRepository().CreateMany(ctx, order.Items); err != nil {
		return err
	}
	if err := uow.CartRepository().DeleteByIds(ctx, cartItemIds); err != nil {
		return err
	}

	return uow.Commit()
}

func snapshotAddress(a *entity.Address) entity.AddressSnapshot {
	return entity.AddressSnapshot{
		Label:      a.Label,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

func isDuplicateOrderNumber(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}

func lastFour(cardNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cardNumber)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/entity"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"

	"storefront-be/pkg/events"
	pktNats "storefront-be/pkg/nats"

	"github.com/google/uuid"
)

type IOrderService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.OrderSummaryResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.OrderDetailResponse, error)
	Cancel(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type orderService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewOrderService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IOrderService {
	return &orderService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *orderService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.OrderSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	orders, err := uow.OrderRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, &dto.OrderSummaryResponse{
			Id:            o.Id,
			OrderNumber:   o.OrderNumber,
			Status:        string(o.Status),
			PaymentStatus: string(o.PaymentStatus),
			Total:         o.Total,
			Currency:      o.Currency,
			CreatedAt:     o.CreatedAt,
		})
	}
	return result, nil
}

func (s *orderService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.OrderDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, serverutils.ErrNotFound
	}

	items, err := uow.OrderItemRepository().FindAll(ctx,
		specification.Filter("order_id", order.Id),
	)
	if err != nil {
		return nil, err
	}

	res := &dto.OrderDetailResponse{
		Id:              order.Id,
		OrderNumber:     order.OrderNumber,
		Status:          string(order.Status),
		PaymentStatus:   string(order.PaymentStatus),
		Subtotal:        order.Subtotal,
		ShippingAmount:  order.ShippingAmount,
		TaxAmount:       order.TaxAmount,
		DiscountAmount:  order.DiscountAmount,
		Total:           order.Total,
		Currency:        order.Currency,
		PaymentMethod:   order.PaymentMethod,
		Notes:           deref(order.Notes),
		ShippingAddress: toOrderAddressResponse(order.ShippingAddress),
		CreatedAt:       order.CreatedAt,
	}
	if order.BillingAddress != nil {
		b := toOrderAddressResponse(*order.BillingAddress)
		res.BillingAddress = &b
	}
	for _, item := range items {
		res.Items = append(res.Items, &dto.OrderItemResponse{
			ProductId:   item.ProductId,
			ProductName: item.ProductName,
			ProductSKU:  item.ProductSKU,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		})
	}

	return res, nil
}

func (s *orderService) Cancel(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if order == nil {
		return serverutils.ErrNotFound
	}

	if order.Status != entity.OrderStatusPending && order.Status != entity.OrderStatusConfirmed {
		return errors.New("order can no longer be cancelled")
	}

	order.Status = entity.OrderStatusCancelled
	if order.PaymentStatus == entity.PaymentStatusPaid {
		// Simulated refund, mirrors the simulated payment
		order.PaymentStatus = entity.PaymentStatusRefunded
	}
	order.UpdatedAt = time.Now()

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		event := events.NewOrderCancelled(order.Id.String(), order.OrderNumber, userId.String())
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			// Cancellation already committed; event loss is non-fatal
			fmt.Printf("[ORDER] failed to publish cancellation event for %s: %v\n", order.OrderNumber, err)
		}
	}

	return nil
}

func toOrderAddressResponse(a entity.AddressSnapshot) dto.OrderAddressResponse {
	return dto.OrderAddressResponse{
		Label:      a.Label,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     deref(a.Region),
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      deref(a.Phone),
	}
}

package contract

import (
	"context"

	"storefront-be/internal/entity"
	"storefront-be/internal/repository/specification"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ListOrderNumbers returns just the order_number column for the
	// matched rows. The allocator scans one day's numbers through this
	// with OrderNumberPrefix + LockForUpdate.
	ListOrderNumbers(ctx context.Context, specs ...specification.Specification) ([]string, error)
}

type OrderItemRepository interface {
	CreateMany(ctx context.Context, items []*entity.OrderItem) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OrderItem, error)
}

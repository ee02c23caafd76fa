package unitofwork

import (
	"context"

	"storefront-be/internal/repository/contract"
)

// UnitOfWork scopes repositories to one logical operation. After
// Begin(), every repository it hands out runs on the same database
// transaction, which is how the write-path invariants (single default
// address, order-number allocation) stay atomic with their writes.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AddressRepository() contract.AddressRepository
	CategoryRepository() contract.CategoryRepository
	ProductRepository() contract.ProductRepository
	CartRepository() contract.CartRepository
	WishlistRepository() contract.WishlistRepository
	OrderRepository() contract.OrderRepository
	OrderItemRepository() contract.OrderItemRepository
}

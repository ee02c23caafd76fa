package contract

import (
	"context"

	"storefront-be/internal/entity"
	"storefront-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Address, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Address, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ClearDefaultExcept flips is_default off on every address of the
	// user other than exceptId. Must run inside the same transaction as
	// the write that sets the new default.
	ClearDefaultExcept(ctx context.Context, userId, exceptId uuid.UUID) error
}

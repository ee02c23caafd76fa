package service

import (
	"context"
	"strings"

	"storefront-be/internal/entity"
	"storefront-be/internal/repository/contract"
	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the database. It doubles as
// the repository factory so services under test run against plain
// slices; the known specification types are interpreted directly.
type fakeStore struct {
	users         []*entity.User
	addresses     []*entity.Address
	categories    []*entity.Category
	products      []*entity.Product
	cartItems     []*entity.CartItem
	wishlistItems []*entity.WishlistItem
	orders        []*entity.Order
	orderItems    []*entity.OrderItem

	// Popped one per OrderRepository.Create call; a non-nil entry makes
	// that call fail, which is how the duplicate-number retry is driven.
	orderCreateErrs []error

	commits   int
	rollbacks int
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (f *fakeStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f}
}

type fakeUow struct {
	store *fakeStore
	inTx  bool
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.inTx = true
	return nil
}

func (u *fakeUow) Commit() error {
	u.inTx = false
	u.store.commits++
	return nil
}

func (u *fakeUow) Rollback() error {
	if !u.inTx {
		return nil
	}
	u.inTx = false
	u.store.rollbacks++
	return nil
}

func (u *fakeUow) UserRepository() contract.UserRepository         { return &fakeUserRepo{u.store} }
func (u *fakeUow) AddressRepository() contract.AddressRepository   { return &fakeAddressRepo{u.store} }
func (u *fakeUow) CategoryRepository() contract.CategoryRepository { return &fakeCategoryRepo{u.store} }
func (u *fakeUow) ProductRepository() contract.ProductRepository   { return &fakeProductRepo{u.store} }
func (u *fakeUow) CartRepository() contract.CartRepository         { return &fakeCartRepo{u.store} }
func (u *fakeUow) WishlistRepository() contract.WishlistRepository { return &fakeWishlistRepo{u.store} }
func (u *fakeUow) OrderRepository() contract.OrderRepository       { return &fakeOrderRepo{u.store} }
func (u *fakeUow) OrderItemRepository() contract.OrderItemRepository {
	return &fakeOrderItemRepo{u.store}
}

// ---- Users ----

type fakeUserRepo struct{ store *fakeStore }

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if u.Id != sp.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != sp.Email {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, u := range r.store.users {
		if u.Id == user.Id {
			r.store.users[i] = user
		}
	}
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			n++
		}
	}
	return n, nil
}

// ---- Addresses ----

type fakeAddressRepo struct{ store *fakeStore }

func addressMatches(a *entity.Address, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if a.Id != sp.ID {
				return false
			}
		case specification.UserOwnedBy:
			if a.UserId != sp.UserID {
				return false
			}
		case specification.IsDefaultOnly:
			if !a.IsDefault {
				return false
			}
		}
	}
	return true
}

func (r *fakeAddressRepo) Create(ctx context.Context, address *entity.Address) error {
	r.store.addresses = append(r.store.addresses, address)
	return nil
}

func (r *fakeAddressRepo) Update(ctx context.Context, address *entity.Address) error {
	for i, a := range r.store.addresses {
		if a.Id == address.Id {
			r.store.addresses[i] = address
		}
	}
	return nil
}

func (r *fakeAddressRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.addresses[:0]
	for _, a := range r.store.addresses {
		if a.Id != id {
			kept = append(kept, a)
		}
	}
	r.store.addresses = kept
	return nil
}

func (r *fakeAddressRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Address, error) {
	for _, a := range r.store.addresses {
		if addressMatches(a, specs) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAddressRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Address, error) {
	var out []*entity.Address
	for _, a := range r.store.addresses {
		if addressMatches(a, specs) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAddressRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeAddressRepo) ClearDefaultExcept(ctx context.Context, userId, exceptId uuid.UUID) error {
	for _, a := range r.store.addresses {
		if a.UserId == userId && a.Id != exceptId {
			a.IsDefault = false
		}
	}
	return nil
}

// ---- Categories ----

type fakeCategoryRepo struct{ store *fakeStore }

func categoryMatches(c *entity.Category, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if c.Id != sp.ID {
				return false
			}
		case specification.BySlug:
			if c.Slug != sp.Slug {
				return false
			}
		case specification.ActiveOnly:
			if !c.Active {
				return false
			}
		}
	}
	return true
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.store.categories = append(r.store.categories, category)
	return nil
}

func (r *fakeCategoryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	for _, c := range r.store.categories {
		if categoryMatches(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.store.categories {
		if categoryMatches(c, specs) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ---- Products ----

type fakeProductRepo struct{ store *fakeStore }

func productMatches(p *entity.Product, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if p.Id != sp.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range sp.IDs {
				if p.Id == id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.BySlug:
			if p.Slug != sp.Slug {
				return false
			}
		case specification.ByCategoryID:
			if p.CategoryId != sp.CategoryID {
				return false
			}
		case specification.ActiveOnly:
			if !p.Active {
				return false
			}
		case specification.NameContains:
			if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(sp.Term)) {
				return false
			}
		}
	}
	return true
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.store.products = append(r.store.products, product)
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	for i, p := range r.store.products {
		if p.Id == product.Id {
			r.store.products[i] = product
		}
	}
	return nil
}

func (r *fakeProductRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	for _, p := range r.store.products {
		if productMatches(p, specs) {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if productMatches(p, specs) {
			out = append(out, p)
		}
	}
	// Pagination is applied after filtering, as the query would.
	for _, s := range specs {
		if sp, ok := s.(specification.Pagination); ok {
			if sp.Offset >= len(out) {
				return nil, nil
			}
			out = out[sp.Offset:]
			if sp.Limit < len(out) {
				out = out[:sp.Limit]
			}
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, p := range r.store.products {
		if productMatches(p, specs) {
			n++
		}
	}
	return n, nil
}

// ---- Cart ----

type fakeCartRepo struct{ store *fakeStore }

func cartMatches(c *entity.CartItem, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if c.Id != sp.ID {
				return false
			}
		case specification.UserOwnedBy:
			if c.UserId != sp.UserID {
				return false
			}
		case specification.ByProductID:
			if c.ProductId != sp.ProductID {
				return false
			}
		}
	}
	return true
}

func (r *fakeCartRepo) Create(ctx context.Context, item *entity.CartItem) error {
	r.store.cartItems = append(r.store.cartItems, item)
	return nil
}

func (r *fakeCartRepo) Update(ctx context.Context, item *entity.CartItem) error {
	for i, c := range r.store.cartItems {
		if c.Id == item.Id {
			r.store.cartItems[i] = item
		}
	}
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.cartItems[:0]
	for _, c := range r.store.cartItems {
		if c.Id != id {
			kept = append(kept, c)
		}
	}
	r.store.cartItems = kept
	return nil
}

func (r *fakeCartRepo) DeleteByIds(ctx context.Context, ids []uuid.UUID) error {
	kept := r.store.cartItems[:0]
	for _, c := range r.store.cartItems {
		deleted := false
		for _, id := range ids {
			if c.Id == id {
				deleted = true
			}
		}
		if !deleted {
			kept = append(kept, c)
		}
	}
	r.store.cartItems = kept
	return nil
}

func (r *fakeCartRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	kept := r.store.cartItems[:0]
	for _, c := range r.store.cartItems {
		if c.UserId != userId {
			kept = append(kept, c)
		}
	}
	r.store.cartItems = kept
	return nil
}

func (r *fakeCartRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CartItem, error) {
	for _, c := range r.store.cartItems {
		if cartMatches(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCartRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, c := range r.store.cartItems {
		if cartMatches(c, specs) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// ---- Wishlist ----

type fakeWishlistRepo struct{ store *fakeStore }

func wishlistMatches(w *entity.WishlistItem, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if w.Id != sp.ID {
				return false
			}
		case specification.UserOwnedBy:
			if w.UserId != sp.UserID {
				return false
			}
		case specification.ByProductID:
			if w.ProductId != sp.ProductID {
				return false
			}
		}
	}
	return true
}

func (r *fakeWishlistRepo) Create(ctx context.Context, item *entity.WishlistItem) error {
	r.store.wishlistItems = append(r.store.wishlistItems, item)
	return nil
}

func (r *fakeWishlistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.wishlistItems[:0]
	for _, w := range r.store.wishlistItems {
		if w.Id != id {
			kept = append(kept, w)
		}
	}
	r.store.wishlistItems = kept
	return nil
}

func (r *fakeWishlistRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WishlistItem, error) {
	for _, w := range r.store.wishlistItems {
		if wishlistMatches(w, specs) {
			return w, nil
		}
	}
	return nil, nil
}

func (r *fakeWishlistRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WishlistItem, error) {
	var out []*entity.WishlistItem
	for _, w := range r.store.wishlistItems {
		if wishlistMatches(w, specs) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWishlistRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// ---- Orders ----

type fakeOrderRepo struct{ store *fakeStore }

func orderMatches(o *entity.Order, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if o.Id != sp.ID {
				return false
			}
		case specification.UserOwnedBy:
			if o.UserId != sp.UserID {
				return false
			}
		case specification.OrderNumberPrefix:
			if !strings.HasPrefix(o.OrderNumber, sp.Prefix) {
				return false
			}
		}
	}
	return true
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if len(r.store.orderCreateErrs) > 0 {
		err := r.store.orderCreateErrs[0]
		r.store.orderCreateErrs = r.store.orderCreateErrs[1:]
		if err != nil {
			return err
		}
	}
	r.store.orders = append(r.store.orders, order)
	return nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	for i, o := range r.store.orders {
		if o.Id == order.Id {
			r.store.orders[i] = order
		}
	}
	return nil
}

func (r *fakeOrderRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	for _, o := range r.store.orders {
		if orderMatches(o, specs) {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.store.orders {
		if orderMatches(o, specs) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeOrderRepo) ListOrderNumbers(ctx context.Context, specs ...specification.Specification) ([]string, error) {
	var out []string
	for _, o := range r.store.orders {
		if orderMatches(o, specs) {
			out = append(out, o.OrderNumber)
		}
	}
	return out, nil
}

// ---- Order items ----

type fakeOrderItemRepo struct{ store *fakeStore }

func (r *fakeOrderItemRepo) CreateMany(ctx context.Context, items []*entity.OrderItem) error {
	r.store.orderItems = append(r.store.orderItems, items...)
	return nil
}

func (r *fakeOrderItemRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, item := range r.store.orderItems {
		keep := true
		for _, s := range specs {
			if sp, ok := s.(specification.FilterBy); ok && sp.Field == "order_id" {
				if id, ok := sp.Value.(uuid.UUID); !ok || item.OrderId != id {
					keep = false
				}
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out, nil
}

// ---- Collaborators ----

type fakePublisher struct {
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

type fakeMailer struct {
	welcomes      []string
	confirmations []string
}

func (m *fakeMailer) SendWelcome(toEmail, fullName string) error {
	m.welcomes = append(m.welcomes, toEmail)
	return nil
}

func (m *fakeMailer) SendOrderConfirmation(toEmail, orderNumber string, total float64, currency string) error {
	m.confirmations = append(m.confirmations, orderNumber)
	return nil
}

// Package memory implements the repository interfaces on process memory.
// It backs the service and handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu       sync.RWMutex
	users    map[primitive.ObjectID]domain.User
	menu     map[primitive.ObjectID]domain.MenuItem
	carts    map[primitive.ObjectID]domain.CartEntry
	orders   map[primitive.ObjectID]domain.Order
	bookings map[primitive.ObjectID]domain.Booking
	reviews  map[primitive.ObjectID]domain.Review
}

func New() *Store {
	return &Store{
		users:    make(map[primitive.ObjectID]domain.User),
		menu:     make(map[primitive.ObjectID]domain.MenuItem),
		carts:    make(map[primitive.ObjectID]domain.CartEntry),
		orders:   make(map[primitive.ObjectID]domain.Order),
		bookings: make(map[primitive.ObjectID]domain.Booking),
		reviews:  make(map[primitive.ObjectID]domain.Review),
	}
}

func (s *Store) Users() *UserRepository       { return &UserRepository{s} }
func (s *Store) Menu() *MenuRepository        { return &MenuRepository{s} }
func (s *Store) Carts() *CartRepository       { return &CartRepository{s} }
func (s *Store) Orders() *OrderRepository     { return &OrderRepository{s} }
func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s} }
func (s *Store) Reviews() *ReviewRepository   { return &ReviewRepository{s} }

// AddReview seeds a review; the API has no write path for them.
func (s *Store) AddReview(review domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	s.reviews[review.ID] = review
}

func newestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

func paginate[T any](items []T, page domain.Page) []T {
	skip := int(page.Skip())
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if page.Limit > 0 && page.Limit < len(items) {
		items = items[:page.Limit]
	}
	return items
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
}

// -- users

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return fmt.Errorf("user %s: %w", user.Email, domain.ErrConflict)
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, notFound("user")
}

func (r *UserRepository) List(_ context.Context, page domain.Page) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, u)
	}
	newestFirst(users, func(u domain.User) time.Time { return u.CreatedAt })
	return paginate(users, page), nil
}

func (r *UserRepository) SetRole(_ context.Context, id primitive.ObjectID, role domain.Role) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	u.Role = role
	r.s.users[id] = u
	return &u, nil
}

func (r *UserRepository) Delete(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	delete(r.s.users, id)
	return &u, nil
}

func (r *UserRepository) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

// -- menu

type MenuRepository struct{ s *Store }

func (r *MenuRepository) Create(_ context.Context, item *domain.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	r.s.menu[item.ID] = *item
	return nil
}

func (r *MenuRepository) CreateMany(ctx context.Context, items []domain.MenuItem) error {
	for i := range items {
		if err := r.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *MenuRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	item, ok := r.s.menu[id]
	if !ok {
		return nil, notFound("menu item")
	}
	return &item, nil
}

func (r *MenuRepository) List(_ context.Context, category string) ([]domain.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := []domain.MenuItem{}
	for _, item := range r.s.menu {
		if category == "" || item.Category == category {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Title < items[j].Title
	})
	return items, nil
}

func (r *MenuRepository) Update(_ context.Context, item *domain.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.menu[item.ID]
	if !ok {
		return notFound("menu item")
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	r.s.menu[item.ID] = *item
	return nil
}

func (r *MenuRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.menu[id]; !ok {
		return notFound("menu item")
	}
	delete(r.s.menu, id)
	return nil
}

func (r *MenuRepository) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.menu)), nil
}

// -- carts

type CartRepository struct{ s *Store }

func (r *CartRepository) Create(_ context.Context, entry *domain.CartEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	entry.CreatedAt = time.Now()
	r.s.carts[entry.ID] = *entry
	return nil
}

func (r *CartRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.CartEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entry, ok := r.s.carts[id]
	if !ok {
		return nil, notFound("cart entry " + id.Hex())
	}
	return &entry, nil
}

func (r *CartRepository) ListByEmail(_ context.Context, email string) ([]domain.CartEntry, error) {
	return r.list(func(e domain.CartEntry) bool { return e.Email == email }), nil
}

func (r *CartRepository) List(context.Context) ([]domain.CartEntry, error) {
	return r.list(func(domain.CartEntry) bool { return true }), nil
}

func (r *CartRepository) list(keep func(domain.CartEntry) bool) []domain.CartEntry {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := []domain.CartEntry{}
	for _, e := range r.s.carts {
		if keep(e) {
			entries = append(entries, e)
		}
	}
	newestFirst(entries, func(e domain.CartEntry) time.Time { return e.CreatedAt })
	return entries
}

func (r *CartRepository) UpdateQuantity(_ context.Context, id primitive.ObjectID, quantity int) (*domain.CartEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry, ok := r.s.carts[id]
	if !ok {
		return nil, notFound("cart entry " + id.Hex())
	}
	entry.Quantity = quantity
	r.s.carts[id] = entry
	return &entry, nil
}

func (r *CartRepository) Delete(_ context.Context, id primitive.ObjectID) (*domain.CartEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry, ok := r.s.carts[id]
	if !ok {
		return nil, notFound("cart entry " + id.Hex())
	}
	delete(r.s.carts, id)
	return &entry, nil
}

func (r *CartRepository) DeleteMany(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, id := range ids {
		if _, ok := r.s.carts[id]; ok {
			delete(r.s.carts, id)
			n++
		}
	}
	return n, nil
}

// -- orders

type OrderRepository struct{ s *Store }

func (r *OrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if order.TransactionID != "" {
		for _, o := range r.s.orders {
			if o.TransactionID == order.TransactionID {
				return fmt.Errorf("order %s: %w", order.TransactionID, domain.ErrConflict)
			}
		}
	}
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	order.UpdatedAt = time.Now()
	r.s.orders[order.ID] = *order
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, notFound("order")
	}
	return &o, nil
}

func (r *OrderRepository) GetByTransactionID(_ context.Context, transactionID string) (*domain.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, o := range r.s.orders {
		if o.TransactionID == transactionID {
			return &o, nil
		}
	}
	return nil, notFound("order")
}

func (r *OrderRepository) List(_ context.Context, page domain.Page) ([]domain.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		orders = append(orders, o)
	}
	newestFirst(orders, func(o domain.Order) time.Time { return o.CreatedAt })
	return paginate(orders, page), nil
}

func (r *OrderRepository) MarkPaid(_ context.Context, transactionID string) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, o := range r.s.orders {
		if o.TransactionID == transactionID && !o.PaidStatus {
			o.PaidStatus = true
			o.UpdatedAt = time.Now()
			r.s.orders[id] = o
			return &o, nil
		}
	}
	return nil, notFound("unpaid order " + transactionID)
}

func (r *OrderRepository) DeleteByTransactionID(_ context.Context, transactionID string) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, o := range r.s.orders {
		if o.TransactionID == transactionID {
			delete(r.s.orders, id)
			return &o, nil
		}
	}
	return nil, notFound("order " + transactionID)
}

func (r *OrderRepository) Delete(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, notFound("order")
	}
	delete(r.s.orders, id)
	return &o, nil
}

func (r *OrderRepository) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.orders)), nil
}

func (r *OrderRepository) CountPaid(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, o := range r.s.orders {
		if o.PaidStatus {
			n++
		}
	}
	return n, nil
}

func (r *OrderRepository) PaidRevenue(context.Context) (float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var sum float64
	for _, o := range r.s.orders {
		if o.PaidStatus {
			sum += o.TotalAmount
		}
	}
	return sum, nil
}

// -- bookings

type BookingRepository struct{ s *Store }

func (r *BookingRepository) Create(_ context.Context, booking *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	booking.CreatedAt = time.Now()
	r.s.bookings[booking.ID] = *booking
	return nil
}

// All returns every stored booking.
func (r *BookingRepository) All() []domain.Booking {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Booking, 0, len(r.s.bookings))
	for _, b := range r.s.bookings {
		out = append(out, b)
	}
	return out
}

// -- reviews

type ReviewRepository struct{ s *Store }

func (r *ReviewRepository) List(_ context.Context, limit int) ([]domain.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reviews := make([]domain.Review, 0, len(r.s.reviews))
	for _, rv := range r.s.reviews {
		reviews = append(reviews, rv)
	}
	newestFirst(reviews, func(rv domain.Review) time.Time { return rv.CreatedAt })
	return paginate(reviews, domain.Page{Page: 1, Limit: limit}), nil
}

var (
	_ repo.UserRepository    = (*UserRepository)(nil)
	_ repo.MenuRepository    = (*MenuRepository)(nil)
	_ repo.CartRepository    = (*CartRepository)(nil)
	_ repo.OrderRepository   = (*OrderRepository)(nil)
	_ repo.BookingRepository = (*BookingRepository)(nil)
	_ repo.ReviewRepository  = (*ReviewRepository)(nil)
)

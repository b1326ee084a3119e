package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Beka01247/bistro-api/internal/cache"
	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const cartTTL = 5 * time.Minute

type CartService struct {
	carts  repo.CartRepository
	menu   repo.MenuRepository
	cache  cache.Cache
	logger *zap.SugaredLogger
}

func NewCartService(carts repo.CartRepository, menu repo.MenuRepository, c cache.Cache, logger *zap.SugaredLogger) *CartService {
	return &CartService{
		carts:  carts,
		menu:   menu,
		cache:  c,
		logger: logger,
	}
}

func (s *CartService) ListByEmail(ctx context.Context, email string) ([]domain.CartEntry, error) {
	return cache.GetOrLoad(s.cache, cache.CartKey(email), cartTTL, func() ([]domain.CartEntry, error) {
		return s.carts.ListByEmail(ctx, email)
	})
}

func (s *CartService) List(ctx context.Context) ([]domain.CartEntry, error) {
	return s.carts.List(ctx)
}

// Add puts the menu item entry.MenuID into the cart of entry.Email. Title,
// category, price and image are copied from the menu, whatever the caller
// set, since the price later feeds the order total.
func (s *CartService) Add(ctx context.Context, entry *domain.CartEntry) error {
	if entry.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	if entry.Quantity == 0 {
		entry.Quantity = 1
	}

	menuID, err := primitive.ObjectIDFromHex(entry.MenuID)
	if err != nil {
		return fmt.Errorf("%w: menu item %q", domain.ErrInvalidID, entry.MenuID)
	}
	item, err := s.menu.GetByID(ctx, menuID)
	if err != nil {
		return err
	}

	entry.Title = item.Title
	entry.Category = item.Category
	entry.Price = item.Price
	entry.Image = item.Image

	if err := s.carts.Create(ctx, entry); err != nil {
		return err
	}

	s.cache.Delete(cache.CartKey(entry.Email))

	return nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*domain.CartEntry, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}

	entry, err := s.carts.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		return nil, err
	}

	s.cache.Delete(cache.CartKey(entry.Email))

	return entry, nil
}

func (s *CartService) Remove(ctx context.Context, id primitive.ObjectID) error {
	entry, err := s.carts.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.cache.Delete(cache.CartKey(entry.Email))

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/bistro-api/internal/cache"
	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const menuTTL = 5 * time.Minute

var ErrImportUnavailable = errors.New("menu import is not configured")

// MenuSource reads menu items from an external spreadsheet.
type MenuSource interface {
	ParseMenu(ctx context.Context, spreadsheetID string) ([]domain.MenuItem, error)
}

type MenuService struct {
	menu   repo.MenuRepository
	source MenuSource
	cache  cache.Cache
	logger *zap.SugaredLogger
}

func NewMenuService(menu repo.MenuRepository, source MenuSource, c cache.Cache, logger *zap.SugaredLogger) *MenuService {
	return &MenuService{
		menu:   menu,
		source: source,
		cache:  c,
		logger: logger,
	}
}

func (s *MenuService) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	return cache.GetOrLoad(s.cache, cache.MenuKey(category), menuTTL, func() ([]domain.MenuItem, error) {
		return s.menu.List(ctx, category)
	})
}

func (s *MenuService) Get(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	return s.menu.GetByID(ctx, id)
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := s.menu.Create(ctx, item); err != nil {
		return err
	}

	s.cache.DeleteByPrefix(cache.KeyMenuPrefix)
	s.cache.Delete(cache.KeyGeneralStats)
	s.logger.Infow("menu item created", "menu_id", item.ID.Hex(), "title", item.Title)

	return nil
}

func (s *MenuService) Update(ctx context.Context, item *domain.MenuItem) error {
	if err := s.menu.Update(ctx, item); err != nil {
		return err
	}

	s.cache.DeleteByPrefix(cache.KeyMenuPrefix)
	s.logger.Infow("menu item updated", "menu_id", item.ID.Hex())

	return nil
}

func (s *MenuService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.menu.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.DeleteByPrefix(cache.KeyMenuPrefix)
	s.cache.Delete(cache.KeyGeneralStats)
	s.logger.Infow("menu item deleted", "menu_id", id.Hex())

	return nil
}

// Import appends every item found in the spreadsheet to the menu.
func (s *MenuService) Import(ctx context.Context, spreadsheetID string) (int, error) {
	if s.source == nil {
		return 0, ErrImportUnavailable
	}

	items, err := s.source.ParseMenu(ctx, spreadsheetID)
	if err != nil {
		s.logger.Errorw("failed to parse menu", "spreadsheet_id", spreadsheetID, "error", err)
		return 0, fmt.Errorf("failed to parse menu: %w", err)
	}

	if err := s.menu.CreateMany(ctx, items); err != nil {
		return 0, err
	}

	s.cache.DeleteByPrefix(cache.KeyMenuPrefix)
	s.cache.Delete(cache.KeyGeneralStats)
	s.logger.Infow("menu imported", "spreadsheet_id", spreadsheetID, "items", len(items))

	return len(items), nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Beka01247/bistro-api/internal/cache"
	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/repo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const statsTTL = 60 * time.Second

type StatsService struct {
	users  repo.UserRepository
	menu   repo.MenuRepository
	orders repo.OrderRepository
	cache  cache.Cache
}

func NewStatsService(users repo.UserRepository, menu repo.MenuRepository, orders repo.OrderRepository, c cache.Cache) *StatsService {
	return &StatsService{
		users:  users,
		menu:   menu,
		orders: orders,
		cache:  c,
	}
}

func (s *StatsService) General(ctx context.Context) (domain.GeneralStats, error) {
	return cache.GetOrLoad(s.cache, cache.KeyGeneralStats, statsTTL, func() (domain.GeneralStats, error) {
		return s.compute(ctx)
	})
}

func (s *StatsService) compute(ctx context.Context) (domain.GeneralStats, error) {
	var stats domain.GeneralStats
	var revenue float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Users, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.MenuItems, err = s.menu.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Orders, err = s.orders.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.PaidOrders, err = s.orders.CountPaid(gctx)
		return err
	})
	g.Go(func() (err error) {
		revenue, err = s.orders.PaidRevenue(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.GeneralStats{}, fmt.Errorf("failed to compute stats: %w", err)
	}

	stats.Revenue = decimal.NewFromFloat(revenue).Round(2).InexactFloat64()

	return stats, nil
}

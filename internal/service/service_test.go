package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Beka01247/bistro-api/internal/cache"
	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/payment"
	"github.com/Beka01247/bistro-api/internal/queue"
	"github.com/Beka01247/bistro-api/internal/store/memory"
	"go.uber.org/zap"
)

type fakeGateway struct {
	mu       sync.Mutex
	requests []payment.SessionRequest

	createSession func(ctx context.Context, req payment.SessionRequest) (*payment.Session, error)
}

func (g *fakeGateway) CreateSession(ctx context.Context, req payment.SessionRequest) (*payment.Session, error) {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()

	if g.createSession != nil {
		return g.createSession(ctx, req)
	}
	return &payment.Session{GatewayURL: "https://gateway.test/pay/" + req.TransactionID}, nil
}

type fixture struct {
	store   *memory.Store
	cache   *cache.MemoryCache
	broker  *queue.MemoryBroker
	gateway *fakeGateway

	users  *UserService
	menu   *MenuService
	carts  *CartService
	orders *OrderService
	stats  *StatsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := zap.NewNop().Sugar()
	store := memory.New()
	c := cache.NewMemoryCache(cache.Config{DefaultTTL: time.Minute, CleanupInterval: time.Minute})
	broker := queue.NewMemoryBroker()
	t.Cleanup(func() { broker.Close() })
	gateway := &fakeGateway{}

	return &fixture{
		store:   store,
		cache:   c,
		broker:  broker,
		gateway: gateway,
		users:   NewUserService(store.Users(), c, logger),
		menu:    NewMenuService(store.Menu(), nil, c, logger),
		carts:   NewCartService(store.Carts(), store.Menu(), c, logger),
		orders: NewOrderService(store.Orders(), store.Carts(), gateway, broker, c,
			OrderConfig{PublicURL: "http://api.test/"}, logger),
		stats: NewStatsService(store.Users(), store.Menu(), store.Orders(), c),
	}
}

func (f *fixture) addMenuItem(t *testing.T, title string, price float64) domain.MenuItem {
	t.Helper()

	item := &domain.MenuItem{Title: title, Category: "salad", Price: price}
	if err := f.store.Menu().Create(context.Background(), item); err != nil {
		t.Fatalf("Create menu item: %v", err)
	}
	return *item
}

func (f *fixture) addCart(t *testing.T, email, title string, price float64) domain.CartEntry {
	t.Helper()

	item := f.addMenuItem(t, title, price)
	entry := &domain.CartEntry{Email: email, MenuID: item.ID.Hex(), Quantity: 1}
	if err := f.carts.Add(context.Background(), entry); err != nil {
		t.Fatalf("Add cart entry: %v", err)
	}
	return *entry
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Beka01247/bistro-api/internal/cache"
	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/payment"
	"github.com/Beka01247/bistro-api/internal/queue"
	"github.com/Beka01247/bistro-api/internal/repo"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	ordersPageTTL = 5 * time.Minute
	// commitTimeout bounds the queue hand-off that runs after the response.
	commitTimeout = 5 * time.Second
)

type OrderConfig struct {
	// PublicURL is the base the payment gateway uses to call this API back.
	PublicURL string
	// IPNURL receives the gateway's server-to-server notification. Empty
	// leaves it unset.
	IPNURL string
}

type PlaceOrderInput struct {
	CartItemIDs []string
	Name        string
	Email       string
	Address     string
	PhoneNumber string
}

// Checkout is the gateway handoff for an order that is not stored yet.
type Checkout struct {
	GatewayURL    string
	TransactionID string
	Total         decimal.Decimal
	Order         domain.Order
}

type OrderService struct {
	orders  repo.OrderRepository
	carts   repo.CartRepository
	gateway payment.Gateway
	broker  queue.Broker
	cache   cache.Cache
	cfg     OrderConfig
	logger  *zap.SugaredLogger

	newTransactionID func() string
	now              func() time.Time
	commitTimeout    time.Duration
}

func NewOrderService(
	orders repo.OrderRepository,
	carts repo.CartRepository,
	gateway payment.Gateway,
	broker queue.Broker,
	c cache.Cache,
	cfg OrderConfig,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orders:           orders,
		carts:            carts,
		gateway:          gateway,
		broker:           broker,
		cache:            c,
		cfg:              cfg,
		logger:           logger,
		newTransactionID: func() string { return uuid.NewString() },
		now:              time.Now,
		commitTimeout:    commitTimeout,
	}
}

// PlaceOrder resolves the referenced cart entries, prices them and opens a
// gateway session. Nothing is stored: the caller hands the result to Commit
// once the client has its redirect URL.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*Checkout, error) {
	if len(in.CartItemIDs) == 0 {
		return nil, fmt.Errorf("%w: order has no cart items", domain.ErrValidation)
	}

	ids := make([]primitive.ObjectID, len(in.CartItemIDs))
	for i, raw := range in.CartItemIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: cart item %q", domain.ErrInvalidID, raw)
		}
		ids[i] = id
	}

	entries, err := s.resolveCart(ctx, ids)
	if err != nil {
		return nil, err
	}

	total := OrderTotal(entries)
	tranID := s.newTransactionID()

	titles := make([]string, len(entries))
	categories := make([]string, len(entries))
	items := make([]domain.OrderItem, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
		categories[i] = e.Category
		items[i] = domain.OrderItem{
			CartID:   e.ID.Hex(),
			Owner:    e.Email,
			MenuID:   e.MenuID,
			Title:    e.Title,
			Category: e.Category,
			Price:    e.Price,
			Quantity: e.Quantity,
		}
	}

	base := strings.TrimRight(s.cfg.PublicURL, "/")
	session, err := s.gateway.CreateSession(ctx, payment.SessionRequest{
		TransactionID:   tranID,
		TotalAmount:     total.StringFixed(2),
		Currency:        domain.OrderCurrency,
		SuccessURL:      base + "/payment/success/" + tranID,
		FailURL:         base + "/payment/failed/" + tranID,
		CancelURL:       base + "/payment/failed/" + tranID,
		IPNURL:          s.cfg.IPNURL,
		ProductName:     strings.Join(titles, ", "),
		ProductCategory: strings.Join(categories, ", "),
		ProductProfile:  "general",
		ShippingMethod:  "Courier",
		CustomerName:    in.Name,
		CustomerEmail:   in.Email,
		CustomerAddress: in.Address,
		CustomerPhone:   in.PhoneNumber,
		ShipName:        in.Name,
		ShipAddress1:    "Dhaka",
		ShipAddress2:    "Dhaka",
		ShipCity:        "Dhaka",
		ShipState:       "Dhaka",
		ShipPostcode:    "1000",
		ShipCountry:     "Bangladesh",
	})
	if err != nil {
		s.logger.Errorw("failed to open payment session", "transaction_id", tranID, "error", err)
		return nil, err
	}

	now := s.now()
	return &Checkout{
		GatewayURL:    session.GatewayURL,
		TransactionID: tranID,
		Total:         total,
		Order: domain.Order{
			TransactionID: tranID,
			Items:         items,
			TotalAmount:   total.InexactFloat64(),
			Currency:      domain.OrderCurrency,
			PaidStatus:    false,
			Name:          in.Name,
			Email:         in.Email,
			Address:       in.Address,
			PhoneNumber:   in.PhoneNumber,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}, nil
}

func (s *OrderService) resolveCart(ctx context.Context, ids []primitive.ObjectID) ([]domain.CartEntry, error) {
	entries := make([]domain.CartEntry, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			entry, err := s.carts.GetByID(gctx, id)
			if err != nil {
				return fmt.Errorf("failed to resolve cart item %s: %w", id.Hex(), err)
			}
			entries[i] = *entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// OrderTotal sums entry prices to cents. Quantity does not scale the price.
func OrderTotal(entries []domain.CartEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(decimal.NewFromFloat(e.Price))
	}
	return total.Round(2)
}

// Commit queues the order for persistence. Failures are logged only: the
// client already holds the gateway URL. A broker that cannot take the order
// within commitTimeout counts as a failure.
func (s *OrderService) Commit(ctx context.Context, checkout *Checkout) {
	payload, err := json.Marshal(checkout.Order)
	if err != nil {
		s.logger.Errorw("failed to encode order", "transaction_id", checkout.TransactionID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.commitTimeout)
	defer cancel()

	if err := s.broker.Publish(ctx, queue.QueueOrderPlacement, payload); err != nil {
		s.logger.Errorw("failed to queue order", "transaction_id", checkout.TransactionID, "error", err)
	}
}

// Persist writes a committed order. A redelivered order is a no-op.
func (s *OrderService) Persist(ctx context.Context, order *domain.Order) error {
	if err := s.orders.Create(ctx, order); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.logger.Warnw("order already stored", "transaction_id", order.TransactionID)
			return nil
		}
		s.logger.Errorw("failed to store order", "transaction_id", order.TransactionID, "error", err)
		return err
	}

	s.invalidate()
	s.logger.Infow("order stored", "order_id", order.ID.Hex(), "transaction_id", order.TransactionID, "total", order.TotalAmount)
	s.publishEvent(ctx, domain.EventOrderPlaced, order)

	return nil
}

// ConfirmPayment marks the order paid and clears the cart entries it was
// placed from.
func (s *OrderService) ConfirmPayment(ctx context.Context, transactionID string) (*domain.Order, error) {
	order, err := s.orders.MarkPaid(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	s.clearCart(ctx, order)
	s.logger.Infow("order paid", "transaction_id", transactionID, "total", order.TotalAmount)
	s.publishEvent(ctx, domain.EventOrderPaid, order)

	return order, nil
}

// CancelPayment drops the order entirely.
func (s *OrderService) CancelPayment(ctx context.Context, transactionID string) (*domain.Order, error) {
	order, err := s.orders.DeleteByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	s.logger.Infow("order cancelled", "transaction_id", transactionID)
	s.publishEvent(ctx, domain.EventOrderCancelled, order)

	return order, nil
}

func (s *OrderService) List(ctx context.Context, page domain.Page) ([]domain.Order, error) {
	return cache.GetOrLoad(s.cache, cache.OrdersPageKey(page.Page, page.Limit), ordersPageTTL, func() ([]domain.Order, error) {
		return s.orders.List(ctx, page)
	})
}

func (s *OrderService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *OrderService) Delete(ctx context.Context, id primitive.ObjectID) error {
	order, err := s.orders.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.invalidate()
	s.logger.Infow("order deleted", "order_id", id.Hex(), "transaction_id", order.TransactionID)
	s.publishEvent(ctx, domain.EventOrderDeleted, order)

	return nil
}

// Export returns every order, newest first, bypassing the page cache.
func (s *OrderService) Export(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx, domain.Page{})
}

func (s *OrderService) clearCart(ctx context.Context, order *domain.Order) {
	ids := make([]primitive.ObjectID, 0, len(order.Items))
	owners := map[string]struct{}{order.Email: {}}
	for _, item := range order.Items {
		owners[item.Owner] = struct{}{}
		id, err := primitive.ObjectIDFromHex(item.CartID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) > 0 {
		if _, err := s.carts.DeleteMany(ctx, ids); err != nil {
			s.logger.Errorw("failed to clear cart", "transaction_id", order.TransactionID, "error", err)
		}
	}

	for owner := range owners {
		s.cache.Delete(cache.CartKey(owner))
	}
}

func (s *OrderService) invalidate() {
	s.cache.DeleteByPrefix(cache.KeyOrdersPrefix)
	s.cache.Delete(cache.KeyGeneralStats)
}

func (s *OrderService) publishEvent(ctx context.Context, eventType string, order *domain.Order) {
	event := domain.OrderEvent{
		EventType:     eventType,
		TransactionID: order.TransactionID,
		Name:          order.Name,
		Email:         order.Email,
		TotalAmount:   order.TotalAmount,
		Currency:      order.Currency,
		Timestamp:     s.now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to encode order event", "event_type", eventType, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueOrderEvents, payload); err != nil {
		s.logger.Errorw("failed to publish order event", "event_type", eventType, "transaction_id", order.TransactionID, "error", err)
	}
}

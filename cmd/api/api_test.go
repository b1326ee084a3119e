package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Beka01247/bistro-api/internal/auth"
	"github.com/Beka01247/bistro-api/internal/cache"
	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/feed"
	"github.com/Beka01247/bistro-api/internal/payment"
	"github.com/Beka01247/bistro-api/internal/queue"
	"github.com/Beka01247/bistro-api/internal/ratelimiter"
	"github.com/Beka01247/bistro-api/internal/service"
	"github.com/Beka01247/bistro-api/internal/store/memory"
	"github.com/Beka01247/bistro-api/internal/worker"
	"go.uber.org/zap"
)

const testAdminEmail = "admin@bistro.test"

type fakeGateway struct {
	createSession func(ctx context.Context, req payment.SessionRequest) (*payment.Session, error)
}

func (g *fakeGateway) CreateSession(ctx context.Context, req payment.SessionRequest) (*payment.Session, error) {
	if g.createSession != nil {
		return g.createSession(ctx, req)
	}
	return &payment.Session{GatewayURL: "https://gateway.test/pay/" + req.TransactionID}, nil
}

type fakeDB struct {
	err error
}

func (d *fakeDB) Ping(context.Context) error  { return d.err }
func (d *fakeDB) Close(context.Context) error { return nil }

type testApp struct {
	app     *application
	store   *memory.Store
	gateway *fakeGateway
	handler http.Handler
}

func newTestApp(t *testing.T, mutate func(cfg *config)) *testApp {
	t.Helper()

	cfg := config{
		addr:      ":0",
		env:       "test",
		publicURL: "http://api.test",
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: 1000,
			TimeFrame:            time.Minute,
			Enabled:              true,
		},
		cache: cache.Config{DefaultTTL: time.Minute, CleanupInterval: time.Minute},
	}
	if mutate != nil {
		mutate(&cfg)
	}

	logger := zap.NewNop().Sugar()
	store := memory.New()
	c := cache.NewMemoryCache(cfg.cache)
	broker := queue.NewMemoryBroker()
	gateway := &fakeGateway{}
	hub := feed.NewHub(nil, logger)

	userService := service.NewUserService(store.Users(), c, logger)
	orderService := service.NewOrderService(store.Orders(), store.Carts(), gateway, broker, c,
		service.OrderConfig{PublicURL: cfg.publicURL}, logger)

	app := &application{
		config:         cfg,
		logger:         logger,
		rateLimiter:    ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame),
		authenticator:  auth.NewJWTAuthenticator("test-secret", "bistro-test", time.Hour),
		db:             &fakeDB{},
		broker:         broker,
		hub:            hub,
		userService:    userService,
		menuService:    service.NewMenuService(store.Menu(), nil, c, logger),
		cartService:    service.NewCartService(store.Carts(), store.Menu(), c, logger),
		reviewService:  service.NewReviewService(store.Reviews(), c),
		bookingService: service.NewBookingService(store.Bookings(), logger),
		orderService:   orderService,
		statsService:   service.NewStatsService(store.Users(), store.Menu(), store.Orders(), c),
		orderWorker:    worker.NewOrderPlacementWorker(orderService, broker, logger),
		eventsWorker:   worker.NewOrderEventsWorker([]worker.Notifier{hub}, broker, logger),
	}

	if err := app.orderWorker.Start(); err != nil {
		t.Fatalf("start order worker: %v", err)
	}
	if err := app.eventsWorker.Start(); err != nil {
		t.Fatalf("start events worker: %v", err)
	}
	t.Cleanup(func() {
		app.orderWorker.Stop()
		app.eventsWorker.Stop()
		broker.Close()
		hub.Close()
	})

	admin, _, err := userService.Register(context.Background(), &domain.User{Email: testAdminEmail, Name: "Admin"})
	if err != nil {
		t.Fatalf("register admin: %v", err)
	}
	if _, err := userService.MakeAdmin(context.Background(), admin.ID); err != nil {
		t.Fatalf("promote admin: %v", err)
	}

	return &testApp{app: app, store: store, gateway: gateway, handler: app.mount()}
}

func (ta *testApp) token(t *testing.T, email string) string {
	t.Helper()

	token, err := ta.app.authenticator.GenerateToken(email, "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func (ta *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ta.handler.ServeHTTP(rr, req)
	return rr
}

func (ta *testApp) addMenuItem(t *testing.T, title string, price float64) string {
	t.Helper()

	item := &domain.MenuItem{Title: title, Category: "salad", Price: price}
	if err := ta.store.Menu().Create(context.Background(), item); err != nil {
		t.Fatalf("Create menu item: %v", err)
	}
	return item.ID.Hex()
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return v
}

func checkResponseCode(t *testing.T, expected, actual int) {
	t.Helper()

	if expected != actual {
		t.Errorf("expected the response code to be %d and we got %d", expected, actual)
	}
}

func TestOrderPaymentScenario(t *testing.T) {
	ta := newTestApp(t, nil)

	caesar := ta.addMenuItem(t, "Caesar", 10.00)
	soup := ta.addMenuItem(t, "Soup", 5.50)

	var cartIDs []string
	for _, menuID := range []string{caesar, soup} {
		// a price in the body is ignored, the menu's price is used
		rr := ta.do(t, http.MethodPost, "/carts", "", map[string]any{
			"email": "a@b.com", "menuId": menuID, "quantity": 1, "price": 0.01,
		})
		checkResponseCode(t, http.StatusCreated, rr.Code)
		cartIDs = append(cartIDs, decode[domain.CartEntry](t, rr).ID.Hex())
	}

	rr := ta.do(t, http.MethodPost, "/order", "", map[string]any{
		"cartItems":   []map[string]string{{"productId": cartIDs[0]}, {"productId": cartIDs[1]}},
		"name":        "A",
		"email":       "a@b.com",
		"address":     "Road 1",
		"phoneNumber": "017",
	})
	checkResponseCode(t, http.StatusOK, rr.Code)

	placed := decode[PlaceOrderResponse](t, rr)
	if placed.Total != "15.50" {
		t.Errorf("total = %q, want 15.50", placed.Total)
	}
	if placed.TransactionID == "" || !strings.HasSuffix(placed.URL, placed.TransactionID) {
		t.Errorf("response = %+v", placed)
	}

	// persisted by the placement worker after the response
	var order *domain.Order
	deadline := time.Now().Add(time.Second)
	for {
		o, err := ta.store.Orders().GetByTransactionID(context.Background(), placed.TransactionID)
		if err == nil {
			order = o
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("order was not persisted")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if order.PaidStatus {
		t.Error("order paid before callback")
	}

	rr = ta.do(t, http.MethodPost, "/payment/success/"+placed.TransactionID, "", nil)
	checkResponseCode(t, http.StatusOK, rr.Code)
	if got := decode[PaymentResultResponse](t, rr); !got.PaidStatus {
		t.Errorf("callback result = %+v", got)
	}

	order, _ = ta.store.Orders().GetByTransactionID(context.Background(), placed.TransactionID)
	if !order.PaidStatus {
		t.Error("order not paid after success callback")
	}

	rr = ta.do(t, http.MethodPost, "/payment/success/"+placed.TransactionID, "", nil)
	checkResponseCode(t, http.StatusNotFound, rr.Code)

	rr = ta.do(t, http.MethodPost, "/payment/success/unrelated", "", nil)
	checkResponseCode(t, http.StatusNotFound, rr.Code)

	// the paid cart entries are gone
	rr = ta.do(t, http.MethodGet, "/carts?email=a@b.com", "", nil)
	checkResponseCode(t, http.StatusOK, rr.Code)
	if entries := decode[[]domain.CartEntry](t, rr); len(entries) != 0 {
		t.Errorf("cart after payment = %d entries, want 0", len(entries))
	}
}

func TestPlaceOrderErrors(t *testing.T) {
	ta := newTestApp(t, nil)

	rr := ta.do(t, http.MethodPost, "/carts", "", AddCartItemRequest{Email: "a@b.com", MenuID: ta.addMenuItem(t, "Caesar", 10)})
	entry := decode[domain.CartEntry](t, rr)

	body := func(ids ...string) map[string]any {
		refs := make([]map[string]string, len(ids))
		for i, id := range ids {
			refs[i] = map[string]string{"productId": id}
		}
		return map[string]any{"cartItems": refs, "name": "A", "email": "a@b.com"}
	}

	tests := []struct {
		name     string
		body     any
		gateway  error
		wantCode int
	}{
		{"no items", body(), nil, http.StatusBadRequest},
		{"malformed reference", body("zzz"), nil, http.StatusBadRequest},
		{"missing reference", body(entry.ID.Hex(), "64b7f0c2e4b0a1a2b3c4d5e6"), nil, http.StatusNotFound},
		{"gateway failure", body(entry.ID.Hex()), domain.ErrUpstream, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta.gateway.createSession = nil
			if tt.gateway != nil {
				ta.gateway.createSession = func(context.Context, payment.SessionRequest) (*payment.Session, error) {
					return nil, tt.gateway
				}
			}

			rr := ta.do(t, http.MethodPost, "/order", "", tt.body)
			checkResponseCode(t, tt.wantCode, rr.Code)
		})
	}

	time.Sleep(50 * time.Millisecond)
	if n, _ := ta.store.Orders().Count(context.Background()); n != 0 {
		t.Errorf("orders = %d, want 0", n)
	}
}

func TestPaymentFailedRedirectsAndRemovesOrder(t *testing.T) {
	ta := newTestApp(t, func(cfg *config) { cfg.frontendURL = "https://bistro.example/" })
	ctx := context.Background()

	for _, id := range []string{"keep", "drop"} {
		ta.store.Orders().Create(ctx, &domain.Order{TransactionID: id})
	}

	rr := ta.do(t, http.MethodPost, "/payment/failed/drop", "", nil)
	checkResponseCode(t, http.StatusSeeOther, rr.Code)
	if got := rr.Header().Get("Location"); got != "https://bistro.example/payment/failed/drop" {
		t.Errorf("Location = %q", got)
	}

	if n, _ := ta.store.Orders().Count(ctx); n != 1 {
		t.Errorf("orders = %d, want 1", n)
	}
	if _, err := ta.store.Orders().GetByTransactionID(ctx, "keep"); err != nil {
		t.Errorf("kept order: %v", err)
	}

	rr = ta.do(t, http.MethodPost, "/payment/failed/drop", "", nil)
	checkResponseCode(t, http.StatusNotFound, rr.Code)
}

func TestAdminGuards(t *testing.T) {
	ta := newTestApp(t, nil)
	admin := ta.token(t, testAdminEmail)
	user := ta.token(t, "user@bistro.test")

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		wantCode int
	}{
		{"users without token", http.MethodGet, "/users", "", http.StatusUnauthorized},
		{"users with garbage token", http.MethodGet, "/users", "garbage", http.StatusUnauthorized},
		{"users as ordinary user", http.MethodGet, "/users", user, http.StatusForbidden},
		{"users as admin", http.MethodGet, "/users", admin, http.StatusOK},
		{"stats as ordinary user", http.MethodGet, "/general", user, http.StatusForbidden},
		{"stats as admin", http.MethodGet, "/general", admin, http.StatusOK},
		{"orders as ordinary user", http.MethodGet, "/order", user, http.StatusForbidden},
		{"orders as admin", http.MethodGet, "/order?page=1&limit=5", admin, http.StatusOK},
		{"orders bad page", http.MethodGet, "/order?page=0", admin, http.StatusBadRequest},
		{"export as admin", http.MethodGet, "/order/export", admin, http.StatusOK},
		{"menu create as ordinary user", http.MethodPost, "/menu", user, http.StatusForbidden},
		{"own admin flag", http.MethodGet, "/user/admin/user@bistro.test", user, http.StatusOK},
		{"someone else's admin flag", http.MethodGet, "/user/admin/" + testAdminEmail, user, http.StatusForbidden},
		{"public menu", http.MethodGet, "/menu", "", http.StatusOK},
		{"public reviews", http.MethodGet, "/review?limit=3", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ta.do(t, tt.method, tt.path, tt.token, nil)
			checkResponseCode(t, tt.wantCode, rr.Code)
		})
	}
}

func TestAdminStatus(t *testing.T) {
	ta := newTestApp(t, nil)

	rr := ta.do(t, http.MethodGet, "/user/admin/"+testAdminEmail, ta.token(t, testAdminEmail), nil)
	checkResponseCode(t, http.StatusOK, rr.Code)
	if got := decode[AdminStatusResponse](t, rr); !got.Admin {
		t.Error("admin flag = false for admin")
	}
}

func TestUsersListReflectsMutations(t *testing.T) {
	ta := newTestApp(t, nil)
	admin := ta.token(t, testAdminEmail)

	list := func() []domain.User {
		rr := ta.do(t, http.MethodGet, "/users?page=1&limit=20", admin, nil)
		checkResponseCode(t, http.StatusOK, rr.Code)
		return decode[[]domain.User](t, rr)
	}

	if users := list(); len(users) != 1 {
		t.Fatalf("users = %d, want 1", len(users))
	}

	rr := ta.do(t, http.MethodPost, "/users", "", CreateUserRequest{Email: "new@bistro.test", Name: "New"})
	checkResponseCode(t, http.StatusCreated, rr.Code)
	created := decode[CreateUserResponse](t, rr)
	if created.InsertedID == nil {
		t.Fatal("no inserted id")
	}

	rr = ta.do(t, http.MethodPost, "/users", "", CreateUserRequest{Email: "new@bistro.test"})
	checkResponseCode(t, http.StatusOK, rr.Code)
	if got := decode[CreateUserResponse](t, rr); got.Message != "user already exists" || got.InsertedID != nil {
		t.Errorf("repeat register = %+v", got)
	}

	if users := list(); len(users) != 2 {
		t.Fatalf("users after create = %d, want 2", len(users))
	}

	rr = ta.do(t, http.MethodPatch, "/users/admin/"+*created.InsertedID, admin, nil)
	checkResponseCode(t, http.StatusOK, rr.Code)
	for _, u := range list() {
		if u.Email == "new@bistro.test" && u.Role != domain.RoleAdmin {
			t.Errorf("role after promotion = %q", u.Role)
		}
	}

	rr = ta.do(t, http.MethodDelete, "/users/"+*created.InsertedID, admin, nil)
	checkResponseCode(t, http.StatusNoContent, rr.Code)
	if users := list(); len(users) != 1 {
		t.Errorf("users after delete = %d, want 1", len(users))
	}

	rr = ta.do(t, http.MethodDelete, "/users/not-an-id", admin, nil)
	checkResponseCode(t, http.StatusBadRequest, rr.Code)
}

func TestRateLimiterMiddleware(t *testing.T) {
	ta := newTestApp(t, func(cfg *config) {
		cfg.rateLimiter.RequestsPerTimeFrame = 3
	})

	request := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		ta.handler.ServeHTTP(rr, req)
		return rr
	}

	// the port differs per connection; the identity is the host
	for i, port := range []string{"1001", "1002", "1003"} {
		if rr := request("10.0.0.1:" + port); rr.Code != http.StatusOK {
			t.Fatalf("request %d = %d, want 200", i+1, rr.Code)
		}
	}

	rr := request("10.0.0.1:1004")
	checkResponseCode(t, http.StatusTooManyRequests, rr.Code)
	if rr.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}

	checkResponseCode(t, http.StatusOK, request("10.0.0.2:1001").Code)
}

func TestRateLimiterDisabled(t *testing.T) {
	ta := newTestApp(t, func(cfg *config) {
		cfg.rateLimiter.RequestsPerTimeFrame = 1
		cfg.rateLimiter.Enabled = false
	})

	for i := 0; i < 5; i++ {
		rr := ta.do(t, http.MethodGet, "/health", "", nil)
		checkResponseCode(t, http.StatusOK, rr.Code)
	}
}

func TestMenuAndCartHandlers(t *testing.T) {
	ta := newTestApp(t, nil)
	admin := ta.token(t, testAdminEmail)

	rr := ta.do(t, http.MethodPost, "/menu", admin, CreateMenuItemRequest{Title: "Caesar", Category: "salad", Price: 10})
	checkResponseCode(t, http.StatusCreated, rr.Code)
	item := decode[domain.MenuItem](t, rr)

	rr = ta.do(t, http.MethodPost, "/menu", admin, CreateMenuItemRequest{Title: "Bad", Category: "salad", Price: -1})
	checkResponseCode(t, http.StatusBadRequest, rr.Code)

	price := 12.5
	rr = ta.do(t, http.MethodPatch, "/menu/"+item.ID.Hex(), admin, UpdateMenuItemRequest{Price: &price})
	checkResponseCode(t, http.StatusOK, rr.Code)
	if got := decode[domain.MenuItem](t, rr); got.Price != 12.5 || got.Title != "Caesar" {
		t.Errorf("updated item = %+v", got)
	}

	rr = ta.do(t, http.MethodGet, "/menu?category=salad", "", nil)
	if items := decode[[]domain.MenuItem](t, rr); len(items) != 1 || items[0].Price != 12.5 {
		t.Errorf("salads = %+v", items)
	}

	rr = ta.do(t, http.MethodPost, "/menu/import", admin, ImportMenuRequest{SpreadsheetID: "sheet"})
	checkResponseCode(t, http.StatusNotImplemented, rr.Code)

	rr = ta.do(t, http.MethodDelete, "/menu/"+item.ID.Hex(), admin, nil)
	checkResponseCode(t, http.StatusNoContent, rr.Code)
	rr = ta.do(t, http.MethodGet, "/menu/"+item.ID.Hex(), "", nil)
	checkResponseCode(t, http.StatusNotFound, rr.Code)

	rr = ta.do(t, http.MethodPost, "/carts", "", AddCartItemRequest{Email: "a@b.com", MenuID: item.ID.Hex()})
	checkResponseCode(t, http.StatusNotFound, rr.Code)
	rr = ta.do(t, http.MethodPost, "/carts", "", AddCartItemRequest{Email: "a@b.com", MenuID: "m1"})
	checkResponseCode(t, http.StatusBadRequest, rr.Code)

	rr = ta.do(t, http.MethodPost, "/carts", "", AddCartItemRequest{Email: "a@b.com", MenuID: ta.addMenuItem(t, "Soup", 5.5)})
	checkResponseCode(t, http.StatusCreated, rr.Code)
	entry := decode[domain.CartEntry](t, rr)
	if entry.Quantity != 1 || entry.Title != "Soup" || entry.Price != 5.5 {
		t.Errorf("cart entry = %+v", entry)
	}

	tests := []struct {
		name     string
		body     any
		wantCode int
	}{
		{"positive", map[string]int{"quantity": 3}, http.StatusOK},
		{"zero", map[string]int{"quantity": 0}, http.StatusOK},
		{"negative", map[string]int{"quantity": -1}, http.StatusBadRequest},
		{"missing", map[string]int{}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		rr := ta.do(t, http.MethodPatch, "/carts/"+entry.ID.Hex(), "", tt.body)
		if rr.Code != tt.wantCode {
			t.Errorf("%s: code = %d, want %d", tt.name, rr.Code, tt.wantCode)
		}
	}

	rr = ta.do(t, http.MethodDelete, "/carts/"+entry.ID.Hex(), "", nil)
	checkResponseCode(t, http.StatusNoContent, rr.Code)
	rr = ta.do(t, http.MethodDelete, "/carts/"+entry.ID.Hex(), "", nil)
	checkResponseCode(t, http.StatusNotFound, rr.Code)
}

func TestCreateBookingHandler(t *testing.T) {
	ta := newTestApp(t, nil)

	rr := ta.do(t, http.MethodPost, "/booking", "", CreateBookingRequest{
		Name: "A", Email: "a@b.com", Date: "2024-05-01", Time: "19:00", Guests: 2,
	})
	checkResponseCode(t, http.StatusCreated, rr.Code)

	rr = ta.do(t, http.MethodPost, "/booking", "", CreateBookingRequest{Name: "A", Email: "not-an-email"})
	checkResponseCode(t, http.StatusBadRequest, rr.Code)

	if n := len(ta.store.Bookings().All()); n != 1 {
		t.Errorf("bookings = %d, want 1", n)
	}
}

func TestCreateTokenHandler(t *testing.T) {
	ta := newTestApp(t, nil)

	rr := ta.do(t, http.MethodPost, "/jwt", "", TokenRequest{Email: "a@b.com"})
	checkResponseCode(t, http.StatusOK, rr.Code)

	token := decode[TokenResponse](t, rr).Token
	claims, err := ta.app.authenticator.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != "a@b.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time); ttl != time.Hour {
		t.Errorf("token validity = %s, want 1h", ttl)
	}

	rr = ta.do(t, http.MethodPost, "/jwt", "", TokenRequest{})
	checkResponseCode(t, http.StatusBadRequest, rr.Code)
}

func TestHealthCheck(t *testing.T) {
	ta := newTestApp(t, nil)

	rr := ta.do(t, http.MethodGet, "/health", "", nil)
	checkResponseCode(t, http.StatusOK, rr.Code)

	ta.app.db = &fakeDB{err: errors.New("connection refused")}
	rr = ta.do(t, http.MethodGet, "/health", "", nil)
	checkResponseCode(t, http.StatusServiceUnavailable, rr.Code)
	if got := decode[HealthResponse](t, rr); got.Services["database"] != "error" {
		t.Errorf("services = %v", got.Services)
	}
}

func TestReadPage(t *testing.T) {
	tests := []struct {
		query   string
		want    domain.Page
		wantErr bool
	}{
		{"", domain.Page{Page: 1, Limit: 20}, false},
		{"page=3&limit=5", domain.Page{Page: 3, Limit: 5}, false},
		{"limit=1000", domain.Page{Page: 1, Limit: 100}, false},
		{"page=0", domain.Page{}, true},
		{"page=x", domain.Page{}, true},
		{"limit=-1", domain.Page{}, true},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/users?"+tt.query, nil)
		got, err := readPage(r)
		if (err != nil) != tt.wantErr {
			t.Errorf("readPage(%q) error = %v", tt.query, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("readPage(%q) = %+v, want %+v", tt.query, got, tt.want)
		}
	}
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		query   string
		upgrade bool
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc", "", false, "abc", false},
		{"lowercase scheme", "bearer abc", "", false, "abc", false},
		{"missing", "", "", false, "", true},
		{"wrong scheme", "Basic abc", "", false, "", true},
		{"empty token", "Bearer ", "", false, "", true},
		{"query ignored without upgrade", "", "abc", false, "", true},
		{"query on websocket upgrade", "", "abc", true, "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/order/feed?token="+tt.query, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if tt.upgrade {
				r.Header.Set("Connection", "Upgrade")
				r.Header.Set("Upgrade", "websocket")
			}

			got, err := tokenFromRequest(r)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}

package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/Beka01247/bistro-api/internal/auth"
	"github.com/Beka01247/bistro-api/internal/cache"
	"github.com/Beka01247/bistro-api/internal/env"
	"github.com/Beka01247/bistro-api/internal/feed"
	"github.com/Beka01247/bistro-api/internal/notify"
	"github.com/Beka01247/bistro-api/internal/parser"
	"github.com/Beka01247/bistro-api/internal/payment"
	"github.com/Beka01247/bistro-api/internal/queue"
	"github.com/Beka01247/bistro-api/internal/ratelimiter"
	"github.com/Beka01247/bistro-api/internal/service"
	"github.com/Beka01247/bistro-api/internal/store/mongo"
	"github.com/Beka01247/bistro-api/internal/worker"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const version = "1.0.0"

var requiredEnv = []string{
	"MONGO_URI",
	"JWT_SECRET",
	"SSLCOMMERZ_STORE_ID",
	"SSLCOMMERZ_STORE_PASSWORD",
}

//	@title			Bistro API
//	@description	Restaurant ordering API: menu, carts, bookings, orders and payments

//	@contact.name	API Support

// @BasePath					/
//
// @securityDefinitions.apiKey	ApiKeyAuth
// @in							header
// @name						Authorization
// @description				Bearer token issued by POST /jwt
func main() {
	_ = godotenv.Load()

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	if missing := env.Missing(requiredEnv...); len(missing) > 0 {
		logger.Fatalw("missing required configuration", "keys", missing)
	}

	cfg := loadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)
	ratelimiter.StartSweeper(ctx, rateLimiter, cfg.rateLimiter.SweepInterval)

	// storage
	storage, err := mongo.New(mongo.Config{
		URI:      cfg.mongo.URI,
		Database: cfg.mongo.Database,
		Timeout:  cfg.mongo.Timeout,
	})
	if err != nil {
		logger.Fatalw("failed to connect to MongoDB", "error", err)
	}

	logger.Info("connected to MongoDB")

	// create indexes
	indexCtx, indexCancel := context.WithTimeout(ctx, 30*time.Second)
	defer indexCancel()
	if err := storage.CreateIndexes(indexCtx); err != nil {
		logger.Warnw("failed to create indexes", "error", err)
	} else {
		logger.Info("MongoDB indexes created successfully")
	}

	// repos
	db := storage.Database()
	userRepo := mongo.NewUserRepository(db)
	menuRepo := mongo.NewMenuRepository(db)
	cartRepo := mongo.NewCartRepository(db)
	orderRepo := mongo.NewOrderRepository(db)
	bookingRepo := mongo.NewBookingRepository(db)
	reviewRepo := mongo.NewReviewRepository(db)

	// broker
	var broker queue.Broker
	if cfg.rabbitMQ.URL != "" {
		broker, err = queue.NewRabbitMQBroker(queue.Config{
			URL:           cfg.rabbitMQ.URL,
			MaxRetries:    cfg.rabbitMQ.MaxRetries,
			RetryDelay:    cfg.rabbitMQ.RetryDelay,
			PrefetchCount: cfg.rabbitMQ.PrefetchCount,
		})
		if err != nil {
			logger.Fatalw("failed to connect to RabbitMQ", "error", err)
		}
		logger.Info("connected to RabbitMQ")
	} else {
		broker = queue.NewMemoryBroker()
		logger.Warn("RABBITMQ_URL not set, orders are queued in process memory")
	}

	// menu import
	var menuSource service.MenuSource
	if cfg.googleCreds != "" {
		credsJSON, err := os.ReadFile(cfg.googleCreds)
		if err != nil {
			logger.Fatalw("failed to read Google credentials", "error", err)
		}

		googleParser, err := parser.New(ctx, parser.Config{
			CredentialsJSON: credsJSON,
		})
		if err != nil {
			logger.Fatalw("failed to create Google Sheets parser", "error", err)
		}
		menuSource = googleParser
		logger.Info("Google Sheets parser initialized")
	} else {
		logger.Warn("Google credentials not provided, menu import is disabled")
	}

	// notifiers
	hub := feed.NewHub(cfg.corsOrigins, logger)
	notifiers := []worker.Notifier{hub}
	if cfg.telegram.token != "" {
		telegram, err := notify.NewTelegramNotifier(notify.Config{
			Token:  cfg.telegram.token,
			ChatID: cfg.telegram.chatID,
		})
		if err != nil {
			logger.Fatalw("failed to create Telegram notifier", "error", err)
		}
		notifiers = append(notifiers, telegram)
		logger.Info("Telegram notifications enabled")
	}

	appCache := cache.NewMemoryCache(cfg.cache)
	gateway := payment.NewSSLCommerz(cfg.sslcommerz)

	userService := service.NewUserService(userRepo, appCache, logger)
	orderService := service.NewOrderService(
		orderRepo,
		cartRepo,
		gateway,
		broker,
		appCache,
		service.OrderConfig{PublicURL: cfg.publicURL, IPNURL: cfg.ipnURL},
		logger,
	)

	app := &application{
		config:         cfg,
		logger:         logger,
		rateLimiter:    rateLimiter,
		authenticator:  auth.NewJWTAuthenticator(cfg.auth.secret, cfg.auth.issuer, auth.DefaultTokenTTL),
		db:             storage,
		broker:         broker,
		hub:            hub,
		userService:    userService,
		menuService:    service.NewMenuService(menuRepo, menuSource, appCache, logger),
		cartService:    service.NewCartService(cartRepo, menuRepo, appCache, logger),
		reviewService:  service.NewReviewService(reviewRepo, appCache),
		bookingService: service.NewBookingService(bookingRepo, logger),
		orderService:   orderService,
		statsService:   service.NewStatsService(userRepo, menuRepo, orderRepo, appCache),
		orderWorker:    worker.NewOrderPlacementWorker(orderService, broker, logger),
		eventsWorker:   worker.NewOrderEventsWorker(notifiers, broker, logger),
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

func loadConfig() config {
	return config{
		addr:        env.GetString("ADDR", ":5000"),
		apiURL:      env.GetString("EXTERNAL_URL", "localhost:5000"),
		publicURL:   env.GetString("PUBLIC_URL", "http://localhost:5000"),
		frontendURL: env.GetString("FRONTEND_URL", ""),
		ipnURL:      env.GetString("SSLCOMMERZ_IPN_URL", ""),
		env:         env.GetString("ENV", "development"),
		corsOrigins: splitList(env.GetString("CORS_ALLOWED_ORIGINS", "")),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 100),
			TimeFrame:            env.GetDuration("RATELIMITER_TIME_FRAME", time.Minute),
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
			SweepInterval:        env.GetDuration("RATELIMITER_SWEEP_INTERVAL", 5*time.Minute),
		},
		cache: cache.Config{
			DefaultTTL:      env.GetDuration("CACHE_DEFAULT_TTL", 10*time.Minute),
			CleanupInterval: env.GetDuration("CACHE_CLEANUP_INTERVAL", 10*time.Minute),
		},
		auth: authConfig{
			secret: env.GetString("JWT_SECRET", ""),
			issuer: env.GetString("JWT_ISSUER", "bistro-api"),
		},
		mongo: mongoConfig{
			URI:      env.GetString("MONGO_URI", ""),
			Database: env.GetString("MONGO_DATABASE", "bistroDb"),
			Timeout:  time.Second * 10,
		},
		rabbitMQ: rabbitMQConfig{
			URL:           env.GetString("RABBITMQ_URL", ""),
			MaxRetries:    env.GetInt("RABBITMQ_MAX_RETRIES", 0),
			RetryDelay:    time.Second * 2,
			PrefetchCount: env.GetInt("RABBITMQ_PREFETCH_COUNT", 10),
		},
		sslcommerz: payment.Config{
			StoreID:       env.GetString("SSLCOMMERZ_STORE_ID", ""),
			StorePassword: env.GetString("SSLCOMMERZ_STORE_PASSWORD", ""),
			Live:          env.GetBool("SSLCOMMERZ_LIVE", false),
			BaseURL:       env.GetString("SSLCOMMERZ_BASE_URL", ""),
			Timeout:       env.GetDuration("SSLCOMMERZ_TIMEOUT", 30*time.Second),
		},
		telegram: telegramConfig{
			token:  env.GetString("TELEGRAM_TOKEN", ""),
			chatID: env.GetInt64("TELEGRAM_CHAT_ID", 0),
		},
		googleCreds: env.GetString("GOOGLE_CREDENTIALS_PATH", ""),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

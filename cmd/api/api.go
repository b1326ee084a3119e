package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Beka01247/bistro-api/docs"
	"github.com/Beka01247/bistro-api/internal/auth"
	"github.com/Beka01247/bistro-api/internal/cache"
	"github.com/Beka01247/bistro-api/internal/feed"
	"github.com/Beka01247/bistro-api/internal/payment"
	"github.com/Beka01247/bistro-api/internal/queue"
	"github.com/Beka01247/bistro-api/internal/ratelimiter"
	"github.com/Beka01247/bistro-api/internal/service"
	"github.com/Beka01247/bistro-api/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type application struct {
	config        config
	logger        *zap.SugaredLogger
	rateLimiter   ratelimiter.Limiter
	authenticator auth.Authenticator
	db            pinger
	broker        queue.Broker
	hub           *feed.Hub

	userService    *service.UserService
	menuService    *service.MenuService
	cartService    *service.CartService
	reviewService  *service.ReviewService
	bookingService *service.BookingService
	orderService   *service.OrderService
	statsService   *service.StatsService

	orderWorker  *worker.OrderPlacementWorker
	eventsWorker *worker.OrderEventsWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	publicURL   string
	frontendURL string
	ipnURL      string
	corsOrigins []string
	rateLimiter ratelimiter.Config
	cache       cache.Config
	auth        authConfig
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	sslcommerz  payment.Config
	telegram    telegramConfig
	googleCreds string
}

type authConfig struct {
	secret string
	issuer string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type telegramConfig struct {
	token  string
	chatID int64
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(app.RateLimiterMiddleware)

	r.Get("/health", app.healthCheckHandler)

	r.Post("/jwt", app.createTokenHandler)
	r.Post("/booking", app.createBookingHandler)
	r.Get("/review", app.listReviewsHandler)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", app.createUserHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware, app.AdminMiddleware)

			r.Get("/", app.listUsersHandler)
			r.Delete("/{id}", app.deleteUserHandler)
			r.Patch("/admin/{id}", app.makeAdminHandler)
		})
	})

	r.With(app.AuthTokenMiddleware, app.SelfMiddleware).
		Get("/user/admin/{email}", app.adminStatusHandler)

	r.Route("/menu", func(r chi.Router) {
		r.Get("/", app.listMenuHandler)
		r.Get("/{id}", app.getMenuItemHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware, app.AdminMiddleware)

			r.Post("/", app.createMenuItemHandler)
			r.Post("/import", app.importMenuHandler)
			r.Patch("/{id}", app.updateMenuItemHandler)
			r.Delete("/{id}", app.deleteMenuItemHandler)
		})
	})

	r.Route("/carts", func(r chi.Router) {
		r.Get("/", app.listCartsHandler)
		r.Post("/", app.addCartItemHandler)
		r.Patch("/{id}", app.updateCartItemHandler)
		r.Delete("/{id}", app.deleteCartItemHandler)
	})

	r.Route("/order", func(r chi.Router) {
		r.Post("/", app.placeOrderHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware, app.AdminMiddleware)

			r.Get("/", app.listOrdersHandler)
			r.Get("/export", app.exportOrdersHandler)
			r.Get("/feed", app.hub.ServeHTTP)
			r.Get("/{id}", app.getOrderHandler)
			r.Delete("/{id}", app.deleteOrderHandler)
		})
	})

	r.Route("/payment", func(r chi.Router) {
		r.Post("/success/{tranId}", app.paymentSuccessHandler)
		r.Post("/failed/{tranId}", app.paymentFailedHandler)
	})

	r.With(app.AuthTokenMiddleware, app.AdminMiddleware).
		Get("/general", app.generalStatsHandler)

	docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Bistro API"
	docs.SwaggerInfo.Description = "Restaurant ordering API"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/"

	// workers
	if err := app.orderWorker.Start(); err != nil {
		return fmt.Errorf("failed to start order worker: %w", err)
	}
	if err := app.eventsWorker.Start(); err != nil {
		return fmt.Errorf("failed to start events worker: %w", err)
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		// stop accepting requests before the workers and the store go away
		err := srv.Shutdown(ctx)

		app.orderWorker.Stop()
		app.eventsWorker.Stop()
		app.hub.Close()

		if err := app.broker.Close(); err != nil {
			app.logger.Errorw("error closing broker", "error", err)
		} else {
			app.logger.Info("broker closed gracefully")
		}

		if app.db != nil {
			if err := app.db.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		shutdown <- err
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}

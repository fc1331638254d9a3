package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"floreria-be/internal/cart"
	"floreria-be/internal/checkout"
	"floreria-be/internal/config"
	"floreria-be/internal/handler"
	"floreria-be/internal/inventory"
	"floreria-be/internal/likes"
	"floreria-be/internal/logger"
	"floreria-be/internal/reports"
	"floreria-be/internal/sales"
	"floreria-be/internal/session"
	"floreria-be/internal/user"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	store := newSessionStore(cfg, log)

	catalog := inventory.NewStore(inventory.SeedProducts(), inventory.SeedCategories())
	ledger := sales.NewLedger(catalog, sales.SeedSales())

	userRepo := user.NewRepository(store)
	userSvc := user.NewService(userRepo, store)

	likesSvc := likes.NewService(store)

	cartRepo := cart.NewRepository(store)
	cartSvc := cart.NewService(cartRepo, catalog)

	checkoutSvc := checkout.NewService(cartSvc, ledger)
	reportsSvc := reports.NewService(ledger, catalog)

	router := handler.NewRouter(cfg, handler.Handlers{
		Auth:     handler.NewAuthHandler(userSvc),
		Store:    handler.NewStoreHandler(catalog, likesSvc),
		Cart:     handler.NewCartHandler(cartSvc),
		Checkout: handler.NewCheckoutHandler(checkoutSvc, store),
		Orders:   handler.NewOrdersHandler(ledger),
		Reports:  handler.NewReportsHandler(reportsSvc),
		Users:    handler.NewUsersHandler(userSvc),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

// newSessionStore connects to redis when configured and falls back to the
// in-memory store otherwise.
func newSessionStore(cfg *config.Config, log *zap.Logger) session.Store {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, using in-memory session store")
		return session.NewMemoryStore()
	}

	store, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	return store
}

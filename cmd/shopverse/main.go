package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/priya1793/shopverse/internal/auth"
	"github.com/priya1793/shopverse/internal/cart"
	"github.com/priya1793/shopverse/internal/catalog"
	"github.com/priya1793/shopverse/internal/config"
	"github.com/priya1793/shopverse/internal/domain"
	h "github.com/priya1793/shopverse/internal/http"
	"github.com/priya1793/shopverse/internal/orders"
	"github.com/priya1793/shopverse/internal/session"
	"github.com/priya1793/shopverse/internal/wishlist"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	repo, err := catalog.NewRepository(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open catalog", zap.Error(err))
	}
	defer repo.Close()

	if err := repo.RunMigrations(); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("catalog migrations completed")

	sessions := buildSessionStore(cfg, logger)
	catalogSvc := catalog.NewService(repo, logger)
	cartStore := cart.NewStore(catalogSvc)
	orderStore := orders.NewStore()
	wishlistStore := wishlist.NewStore()
	authSvc := auth.NewService(auth.DemoAccounts(), sessions, auth.FixedDelayer{D: cfg.AuthDelay}, logger)

	cartStore.Subscribe(func(state domain.CartState) {
		logger.Debug("cart state changed", zap.Int("lines", len(state.Items)))
	})

	router := h.NewRouter(h.Deps{
		Catalog:  catalogSvc,
		Cart:     cartStore,
		Orders:   orderStore,
		Wishlist: wishlistStore,
		Auth:     authSvc,
		Flags:    cfg.Flags,
		Timeout:  cfg.RequestTimeout,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "shopverse"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("shopverse starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// buildSessionStore wires Redis behind a circuit breaker when configured,
// otherwise keeps sessions in memory only.
func buildSessionStore(cfg *config.Config, logger *zap.Logger) session.Store {
	memory := session.NewMemoryStore()
	if cfg.RedisAddr == "" {
		logger.Info("sessions kept in memory (no REDIS_ADDR)")
		return memory
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	primary := session.NewRedisStore(client, cfg.SessionTTL)
	logger.Info("sessions persisted to redis", zap.String("addr", cfg.RedisAddr))
	return session.NewBreakerStore(primary, memory, logger)
}

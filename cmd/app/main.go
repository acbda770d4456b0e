package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sorahlabs/order-notify/internal/application/service"
	"github.com/sorahlabs/order-notify/internal/config"
	"github.com/sorahlabs/order-notify/internal/dedup"
	"github.com/sorahlabs/order-notify/internal/httpapi"
	"github.com/sorahlabs/order-notify/internal/notify"
	"github.com/sorahlabs/order-notify/internal/observability"
	"github.com/sorahlabs/order-notify/internal/phone"
	"github.com/sorahlabs/order-notify/internal/pkg/retry"
	"github.com/sorahlabs/order-notify/internal/shopify"
	"github.com/sorahlabs/order-notify/internal/telegram"
	"github.com/sorahlabs/order-notify/internal/whatsapp"
)

func main() {
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := dedup.New(cfg.Dedup.HighWater)
	if err != nil {
		logger.Fatal("dedup store init", zap.Error(err))
	}
	go store.Run(ctx, cfg.Dedup.SweepInterval, logger)

	metrics := observability.NewInmem(256)

	normalizer := phone.NewNormalizer(cfg.Phone.DefaultRegion, cfg.Phone.DefaultCountryCode)
	links := whatsapp.NewBuilder(normalizer, cfg.Store)
	notifier := notify.New(
		telegram.NewClient(cfg.Telegram),
		retry.FromRetries(cfg.Notify.Retries, cfg.Notify.RetryBase),
		logger,
		metrics,
	)

	svc := service.New(
		shopify.NewVerifier(cfg.Shopify.WebhookSecret),
		store,
		links,
		notifier,
		logger,
		metrics,
	)

	server := httpapi.New(svc, logger, metrics)

	logger.Info("server listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("env", cfg.Env),
	)
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("listen", zap.Error(err))
	}
	logger.Info("server stopped")
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/urbanthek/internal/catalog"
	"github.com/mmynk/urbanthek/internal/config"
	"github.com/mmynk/urbanthek/internal/hours"
	"github.com/mmynk/urbanthek/internal/messaging"
	"github.com/mmynk/urbanthek/internal/metrics"
	"github.com/mmynk/urbanthek/internal/middleware"
	"github.com/mmynk/urbanthek/internal/order"
	"github.com/mmynk/urbanthek/internal/pricing"
	"github.com/mmynk/urbanthek/internal/service"
	"github.com/mmynk/urbanthek/internal/session"
	"github.com/mmynk/urbanthek/internal/storage"
	"github.com/mmynk/urbanthek/internal/storage/postgres"
	"github.com/mmynk/urbanthek/internal/storage/sqlite"
	"github.com/mmynk/urbanthek/pkg/logging"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		// A missing .env is normal outside local development.
		_ = godotenv.Load()
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// Local storage always holds the profile. It also serves the menu and
	// records orders unless a hosted backend is configured.
	local, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer local.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	if cfg.MenuSeedFile != "" {
		items, err := catalog.ReadFile(cfg.MenuSeedFile)
		if err != nil {
			return err
		}
		if err := local.ReplaceMenu(ctx, items); err != nil {
			return fmt.Errorf("failed to seed menu: %w", err)
		}
		slog.Info("Menu seeded", "file", cfg.MenuSeedFile, "items", len(items))
	}

	var (
		menuSource catalog.Source    = local
		orderSink  storage.OrderSink = local
	)
	if cfg.DatabaseURL != "" {
		remote, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to backend: %w", err)
		}
		defer remote.Close()
		menuSource, orderSink = remote, remote
		slog.Info("Using hosted backend for menu and orders")
	}

	dispatcher := messaging.Dispatcher(messaging.LogDispatcher{})
	if cfg.AMQPURL != "" {
		pub, err := messaging.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return fmt.Errorf("failed to connect to broker: %w", err)
		}
		defer pub.Close()
		dispatcher = messaging.Multi(dispatcher, pub)
		slog.Info("Publishing orders", "exchange", cfg.AMQPExchange)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	rules, err := cfg.Rules()
	if err != nil {
		return err
	}

	menu := catalog.Load(ctx, menuSource)

	sess := session.New(ctx, session.Deps{
		Catalog:      menu,
		Gate:         hours.NewGate(cfg.Hours.Opening, cfg.Hours.Closing),
		Engine:       pricing.NewEngine(rules),
		Composer:     order.NewComposer(cfg.StoreInfo()),
		Orders:       orderSink,
		Profiles:     local,
		Dispatcher:   dispatcher,
		Metrics:      m,
		ReceiptWidth: cfg.ReceiptWidth,
	})

	mux := http.NewServeMux()
	path, handler := service.NewStorefrontService(sess, cfg.PageSize).Handler()
	mux.Handle(path, handler)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(middleware.Logging(middleware.CORS(mux)), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

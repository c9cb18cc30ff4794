package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/newline-apparel/po-backend/internal/app"
	"github.com/newline-apparel/po-backend/internal/assets"
	"github.com/newline-apparel/po-backend/internal/directory/billto"
	"github.com/newline-apparel/po-backend/internal/directory/buyers"
	"github.com/newline-apparel/po-backend/internal/directory/suppliers"
	"github.com/newline-apparel/po-backend/internal/numbering"
	"github.com/newline-apparel/po-backend/internal/orders"
	"github.com/newline-apparel/po-backend/internal/platform/db"
	"github.com/newline-apparel/po-backend/internal/settings"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	settingsRepo := settings.NewRepository(pool)
	settingsService := settings.NewService(settingsRepo)
	numberingService := numbering.NewService(settingsRepo, logger)
	ordersService := orders.NewService(orders.NewRepository(pool), numberingService)
	logoService := assets.NewService(settingsService, cfg.UploadDir, "/uploads", logger)
	buyersService := buyers.NewService(buyers.NewRepository(pool))
	suppliersService := suppliers.NewService(suppliers.NewRepository(pool))
	billToService := billto.NewService(billto.NewRepository(pool))

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		OrdersHandler:    orders.NewHandler(logger, ordersService),
		NumberingHandler: numbering.NewHandler(logger, numberingService),
		SettingsHandler:  settings.NewHandler(logger, settingsService),
		LogoHandler:      assets.NewHandler(logger, logoService),
		BuyersHandler:    buyers.NewHandler(logger, buyersService),
		SuppliersHandler: suppliers.NewHandler(logger, suppliersService),
		BillToHandler:    billto.NewHandler(logger, billToService),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.String("addr", cfg.AppAddr), slog.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

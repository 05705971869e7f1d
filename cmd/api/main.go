package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tailorshop/internal/config"
	"tailorshop/internal/db"
	"tailorshop/internal/httpserver"
	"tailorshop/internal/measure"
	customerrepo "tailorshop/internal/repository/customer"
	orderrepo "tailorshop/internal/repository/order"
	userrepo "tailorshop/internal/repository/user"
	authsvc "tailorshop/internal/service/auth"
	customersvc "tailorshop/internal/service/customer"
	dashboardsvc "tailorshop/internal/service/dashboard"
	ordersvc "tailorshop/internal/service/order"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool, logger)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	authService := authsvc.New(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	customerService := customersvc.New(customerRepo, measure.Default)
	orderService := ordersvc.New(orderRepo, customerRepo)
	dashboardService := dashboardsvc.New(orderRepo, customerRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:      authService,
		CustomerSvc:  customerService,
		OrderSvc:     orderService,
		DashboardSvc: dashboardService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"investment-engine/config"
	httpLayer "investment-engine/http"
	"investment-engine/observability"
	"investment-engine/repository"
	"investment-engine/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	shutdownTracing, err := observability.InitTracing(cfg.OTELServiceName, cfg.OTELEndpoint)
	if err != nil {
		logger.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}

	cache := buildCache(cfg, logger)

	bondService := service.NewBondDepositService(cache)
	etfService := service.NewETFInvestmentService(cache)
	houseService := service.NewHouseInvestmentService(cache)
	stockService := service.NewStockSimulationService(cfg.SimWorkers)
	goalService := service.NewGoalPlannerService(cache, cfg.RiskFreeRate)
	compareService := service.NewCompareService(bondService, etfService, stockService)

	bondHandler := httpLayer.NewBondDepositHandler(bondService)
	etfHandler := httpLayer.NewETFInvestmentHandler(etfService)
	houseHandler := httpLayer.NewHouseInvestmentHandler(houseService)
	stockHandler := httpLayer.NewStockSimulationHandler(stockService)
	goalHandler := httpLayer.NewFinancialGoalHandler(goalService)
	compareHandler := httpLayer.NewBatchCompareHandler(compareService)
	typesHandler := httpLayer.NewInvestmentTypesHandler()
	healthHandler := httpLayer.NewHealthHandler()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()

	register := func(endpoint string, handler http.HandlerFunc) {
		mux.Handle(
			endpoint,
			httpLayer.RateLimitMiddleware(
				rateLimiter,
				httpLayer.TracingMiddleware(
					endpoint,
					httpLayer.MetricsMiddleware(endpoint, handler),
				),
			),
		)
	}

	register("/api/v1/bond-deposit", bondHandler.CalculateBondDeposit)
	register("/api/v1/etf-investment", etfHandler.CalculateETFInvestment)
	register("/api/v1/house-investment", houseHandler.CalculateHouseInvestment)
	register("/api/v1/stock-simulation", stockHandler.CalculateStockSimulation)
	register("/api/v1/financial-goal", goalHandler.SimulateFinancialGoal)
	register("/api/v1/batch-compare", compareHandler.BatchCompare)
	register("/api/v1/investment-types", typesHandler.ListInvestmentTypes)

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/api/v1/health", healthHandler.Health)
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("investment engine listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", "error", err)
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", "error", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("error during tracing shutdown", "error", err)
	}

	logger.Info("server exited")
}

// buildCache picks Redis when configured and reachable, otherwise the
// in-memory cache.
func buildCache(cfg *config.Config, logger *slog.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMockCache()
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	if err := redisCache.Ping(); err != nil {
		logger.Warn("redis unreachable, falling back to in-memory cache", "addr", cfg.RedisAddr, "error", err)
		return repository.NewMockCache()
	}

	logger.Info("using redis result cache", "addr", cfg.RedisAddr)
	return redisCache
}

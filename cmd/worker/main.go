package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	catalogmemory "github.com/aeshsummer/storefront-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/aeshsummer/storefront-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogports "github.com/aeshsummer/storefront-api/internal/domains/catalog/ports"
	"github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/catalogbridge"
	ordersmemory "github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/aeshsummer/storefront-api/internal/domains/orders/application"
	ordersports "github.com/aeshsummer/storefront-api/internal/domains/orders/ports"
	platformobservability "github.com/aeshsummer/storefront-api/internal/platform/observability"
	platformpostgres "github.com/aeshsummer/storefront-api/internal/platform/postgres"
	orderactivities "github.com/aeshsummer/storefront-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/aeshsummer/storefront-api/internal/platform/temporal/workflows/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "storefront-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	productRepo, orderRepo, idempotencyStore, cleanupRepos := buildRepositories(ctx, logger)
	defer cleanupRepos()
	coreOrderService := ordersapp.NewService(
		catalogbridge.New(productRepo),
		orderRepo,
		ordersapp.WithLogger(logger),
		ordersapp.WithIdempotencyStore(idempotencyStore),
	)
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	orderActivities := orderactivities.NewActivities(orderService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderPlacementTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderPlacementWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderPlacementWorkflowName})
	w.RegisterActivityWithOptions(orderActivities.PlaceOrder, activity.RegisterOptions{Name: orderactivities.PlaceOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderPlacementTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildRepositories(ctx context.Context, logger *slog.Logger) (catalogports.Repository, ordersports.Repository, ordersports.IdempotencyStore, func()) {
	dsn := os.Getenv("POSTGRES_DSN")
	if strings.TrimSpace(dsn) == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return catalogmemory.NewRepository(), ordersmemory.NewRepository(), ordersmemory.NewIdempotencyStore(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, dsn)
	if err != nil {
		logger.Warn("worker failed to connect to postgres (falling back to memory)", slog.String("error", err.Error()))
		return catalogmemory.NewRepository(), ordersmemory.NewRepository(), ordersmemory.NewIdempotencyStore(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("worker failed to unwrap postgres connection (falling back to memory)", slog.String("error", err.Error()))
		return catalogmemory.NewRepository(), ordersmemory.NewRepository(), ordersmemory.NewIdempotencyStore(), func() {}
	}
	logger.Info("worker repositories configured with postgres")
	return catalogpostgres.NewRepository(db), orderspostgres.NewRepository(db), orderspostgres.NewIdempotencyStore(db), func() { _ = sqlDB.Close() }
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

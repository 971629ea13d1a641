package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	storefrontserver "github.com/aeshsummer/storefront-api/go"

	adminmemory "github.com/aeshsummer/storefront-api/internal/domains/admins/adapters/memory"
	adminpostgres "github.com/aeshsummer/storefront-api/internal/domains/admins/adapters/persistence/postgres"
	adminapp "github.com/aeshsummer/storefront-api/internal/domains/admins/application"
	adminports "github.com/aeshsummer/storefront-api/internal/domains/admins/ports"

	catalogmemory "github.com/aeshsummer/storefront-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/aeshsummer/storefront-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/aeshsummer/storefront-api/internal/domains/catalog/application"
	catalogports "github.com/aeshsummer/storefront-api/internal/domains/catalog/ports"

	contactsmemory "github.com/aeshsummer/storefront-api/internal/domains/contacts/adapters/memory"
	contactspostgres "github.com/aeshsummer/storefront-api/internal/domains/contacts/adapters/persistence/postgres"
	contactsapp "github.com/aeshsummer/storefront-api/internal/domains/contacts/application"
	contactsports "github.com/aeshsummer/storefront-api/internal/domains/contacts/ports"

	"github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/catalogbridge"
	ordersmemory "github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/aeshsummer/storefront-api/internal/domains/orders/application"
	ordersports "github.com/aeshsummer/storefront-api/internal/domains/orders/ports"

	"github.com/aeshsummer/storefront-api/internal/platform/migrations"
	platformobservability "github.com/aeshsummer/storefront-api/internal/platform/observability"
	platformpostgres "github.com/aeshsummer/storefront-api/internal/platform/postgres"
)

// Run boots the storefront HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			logger.Error("failed to run migrations", slog.String("error", err.Error()))
			return err
		}
	}

	repos := buildRepositories(db, cfg, logger)

	catalogService := catalogapp.NewService(repos.products, repos.productTypes)

	coreOrderService := ordersapp.NewService(
		catalogbridge.New(repos.products),
		repos.orders,
		ordersapp.WithLogger(logger),
		ordersapp.WithIdempotencyStore(repos.idempotency),
	)
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var orderWorkflows ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline PlaceOrder", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	contactService := contactsapp.NewService(repos.contacts)
	adminService := adminapp.NewService(repos.admins, repos.sessions)
	seedAdminAccount(ctx, cfg, adminService, logger)

	handlers := storefrontserver.ApiHandleFunctions{
		OrdersAPI:  storefrontserver.NewOrdersAPI(orderService, orderWorkflows),
		CatalogAPI: storefrontserver.NewCatalogAPI(catalogService),
		ContactAPI: storefrontserver.NewContactAPI(contactService),
		AdminAPI:   storefrontserver.NewAdminAPI(adminService),
	}

	router := storefrontserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

type repositories struct {
	products     catalogports.Repository
	productTypes catalogports.TypeRepository
	orders       ordersports.Repository
	idempotency  ordersports.IdempotencyStore
	contacts     contactsports.Repository
	admins       adminports.Repository
	sessions     adminports.SessionStore
}

// buildRepositories wires Postgres-backed adapters when a connection exists,
// memory adapters otherwise.
func buildRepositories(db *gorm.DB, cfg Config, logger *slog.Logger) repositories {
	if db == nil {
		logger.Warn("running with in-memory repositories, state is lost on restart")
		return repositories{
			products:     catalogmemory.NewRepository(),
			productTypes: catalogmemory.NewTypeRepository(),
			orders:       ordersmemory.NewRepository(),
			idempotency:  ordersmemory.NewIdempotencyStore(),
			contacts:     contactsmemory.NewRepository(),
			admins:       adminmemory.NewRepository(),
			sessions:     adminmemory.NewSessionStore(cfg.SessionTTL),
		}
	}
	logger.Info("repositories configured with postgres")
	return repositories{
		products:     catalogpostgres.NewRepository(db),
		productTypes: catalogpostgres.NewTypeRepository(db),
		orders:       orderspostgres.NewRepository(db),
		idempotency:  orderspostgres.NewIdempotencyStore(db),
		contacts:     contactspostgres.NewRepository(db),
		admins:       adminpostgres.NewRepository(db),
		sessions:     adminpostgres.NewSessionStore(db, cfg.SessionTTL),
	}
}

// seedAdminAccount provisions the dashboard account from the environment so a
// fresh deployment can log in without manual inserts.
func seedAdminAccount(ctx context.Context, cfg Config, admins adminports.Service, logger *slog.Logger) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return
	}
	if _, err := admins.RegisterAdmin(ctx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Warn("failed to seed admin account", slog.String("error", err.Error()))
		return
	}
	logger.Info("admin account seeded", slog.String("username", cfg.AdminUsername))
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(instruments.Logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

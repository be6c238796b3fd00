// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/zipos/zipos-be/internal/adapters/db"
	"github.com/zipos/zipos-be/internal/adapters/jobs"
	redis_a "github.com/zipos/zipos-be/internal/adapters/redis_adapter"
	"github.com/zipos/zipos-be/internal/core/ports"
	"github.com/zipos/zipos-be/internal/core/services"
	"github.com/zipos/zipos-be/internal/pkg/config"
	"github.com/zipos/zipos-be/internal/pkg/logger"
	"github.com/zipos/zipos-be/internal/pkg/protect"
	"github.com/zipos/zipos-be/internal/workers"
)

func main() {
	// Setup logger
	slogger := logger.SetupLogger("info", "json")

	// Load configuration
	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()

	// Control-plane database
	controlPlane, err := db.NewDatabase(ctx, &db.Config{
		DSN:                cfg.ControlPlane.DSN,
		MaxConnections:     5, // Fewer connections for worker
		MinConnections:     1,
		MaxConnLifetime:    cfg.ControlPlane.MaxConnLifetime,
		MaxConnIdleTime:    cfg.ControlPlane.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.ControlPlane.HealthCheckPeriod,
		EnableQueryLogging: cfg.ControlPlane.EnableQueryLogging,
	}, slogger.Logger)
	if err != nil {
		slogger.Error("failed to connect to control plane", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer controlPlane.Close()

	// Redis cache for resolved descriptors
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	defer redisClient.Close()
	cache := redis_a.NewCache(redisClient, cfg.Tenant.CacheTTL, slogger.Logger)

	// Connection protection and tenant resolution
	protector, err := protect.New(cfg.Security.ProtectionPassphrase)
	if err != nil {
		slogger.Error("failed to initialize protector", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tenantRepo := db.NewTenantRepository(slogger.Logger)
	resolver := services.NewResolverService(controlPlane, tenantRepo, protector, cache,
		cfg.Tenant.ConnectionTemplate, cfg.Tenant.DefaultConnection, cfg.Tenant.CacheTTL, slogger.Logger)

	pools := db.NewTenantPools(resolver, controlPlane, db.Config{
		MaxConnections:    cfg.Tenant.PoolMaxConnections,
		MinConnections:    cfg.Tenant.PoolMinConnections,
		MaxConnLifetime:   cfg.ControlPlane.MaxConnLifetime,
		MaxConnIdleTime:   cfg.ControlPlane.MaxConnIdleTime,
		HealthCheckPeriod: cfg.ControlPlane.HealthCheckPeriod,
	}, slogger.Logger)
	defer pools.CloseAll()

	// Services
	inventoryRepo := db.NewInventoryRepository(slogger.Logger)
	inventoryService := services.NewInventoryService(pools, inventoryRepo, slogger.Logger)
	schemaManager := db.NewSchemaManager(slogger.Logger)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	// Create Asynq server
	srv := asynq.NewServer(
		asynqRedisOpt,
		asynq.Config{
			Concurrency:     cfg.Asynq.Concurrency,
			Queues:          cfg.Asynq.Queues,
			StrictPriority:  cfg.Asynq.StrictPriority,
			ErrorHandler:    asynq.ErrorHandlerFunc(handleError),
			RetryDelayFunc:  exponentialBackoff,
			ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
			HealthCheckFunc: healthCheck,
			Logger:          newAsynqLogger(slogger.Logger),
		},
	)

	// Create task handlers
	mux := asynq.NewServeMux()

	stockAlertProcessor := workers.NewStockAlertProcessor(inventoryService, slogger.Logger)
	mux.HandleFunc(workers.TypeStockAlertSweep, stockAlertProcessor.ProcessSweep)

	migrationProcessor := workers.NewTenantMigrationProcessor(resolver, schemaManager, slogger.Logger)
	mux.HandleFunc(workers.TypeTenantMigration, migrationProcessor.ProcessMigration)

	loyaltyProcessor := workers.NewLoyaltyProcessor(pools, db.NewLoyaltyRepository(slogger.Logger), slogger.Logger)
	mux.HandleFunc(workers.TypeLoyaltyAccrual, loyaltyProcessor.ProcessAccrual)

	// Recurring per-tenant sweeps
	scheduler := asynq.NewScheduler(asynqRedisOpt, &asynq.SchedulerOpts{
		Logger: newAsynqLogger(slogger.Logger),
	})
	client := asynq.NewClient(asynqRedisOpt)
	defer client.Close()
	dispatcher := jobs.NewDispatcher(client, scheduler, cfg.Asynq.RetryMax, slogger.Logger)

	if err := registerSweeps(ctx, controlPlane, tenantRepo, dispatcher, slogger.Logger); err != nil {
		slogger.Warn("failed to register stock alert sweeps", slog.String("error", err.Error()))
	}

	// Handle shutdown gracefully
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := scheduler.Start(); err != nil {
			slogger.Error("failed to start scheduler", slog.String("error", err.Error()))
		}
	}()

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues))

	// Wait for shutdown signal
	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Gracefully shutdown
	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

// registerSweeps schedules an hourly low-stock sweep for every known tenant.
func registerSweeps(ctx context.Context, controlPlane ports.Database,
	store ports.TenantMetadataStore, dispatcher *jobs.Dispatcher, log *slog.Logger) error {

	records, err := store.List(ctx, controlPlane)
	if err != nil {
		return fmt.Errorf("failed to list tenants: %w", err)
	}

	for _, rec := range records {
		payload := workers.StockAlertSweepPayload{OrganizationID: rec.OrganizationID}
		entryID, err := dispatcher.Recurring(workers.TypeStockAlertSweep, payload, "0 * * * *")
		if err != nil {
			return fmt.Errorf("failed to register sweep for %s: %w", rec.OrganizationID, err)
		}
		log.Info("registered stock alert sweep",
			slog.String("organization_id", rec.OrganizationID),
			slog.String("entry_id", entryID))
	}

	return nil
}

func handleError(ctx context.Context, task *asynq.Task, err error) {
	slog.ErrorContext(ctx, "task processing failed",
		slog.String("type", task.Type()),
		slog.String("payload", string(task.Payload())),
		slog.String("error", err.Error()))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func healthCheck(err error) {
	if err != nil {
		slog.Error("worker health check failed", slog.String("error", err.Error()))
	}
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{
		logger: logger.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}

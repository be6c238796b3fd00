// cmd/tenantctl/main.go
//
// tenantctl is the operator CLI for tenant lifecycle management:
//
//	tenantctl provision -org acme -dsn postgres://...   onboard a tenant
//	tenantctl remove -org acme                          drop the metadata record
//	tenantctl list                                      list known tenants
//	tenantctl migrate -org acme                         migrate one tenant database
//	tenantctl migrate-control-plane                     migrate the control plane
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/zipos/zipos-be/internal/adapters/db"
	"github.com/zipos/zipos-be/internal/core/ports"
	"github.com/zipos/zipos-be/internal/core/services"
	"github.com/zipos/zipos-be/internal/pkg/config"
	"github.com/zipos/zipos-be/internal/pkg/logger"
	"github.com/zipos/zipos-be/internal/pkg/protect"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	slogger := logger.SetupLogger("info", "text")

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var exitCode int
	switch os.Args[1] {
	case "provision":
		exitCode = runProvision(ctx, cfg, slogger.Logger, os.Args[2:])
	case "remove":
		exitCode = runRemove(ctx, cfg, slogger.Logger, os.Args[2:])
	case "list":
		exitCode = runList(ctx, cfg, slogger.Logger)
	case "migrate":
		exitCode = runMigrate(ctx, cfg, slogger.Logger, os.Args[2:])
	case "migrate-control-plane":
		exitCode = runMigrateControlPlane(ctx, cfg, slogger.Logger)
	default:
		usage()
		exitCode = 2
	}
	os.Exit(exitCode)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tenantctl <provision|remove|list|migrate|migrate-control-plane> [flags]")
}

// deps bundles the wiring shared by all subcommands.
type deps struct {
	controlPlane *db.Database
	store        ports.TenantMetadataStore
	provisioner  ports.TenantProvisioner
	schema       ports.SchemaManager
	resolver     ports.ConnectionResolver
}

func setup(ctx context.Context, cfg *config.Config, log *slog.Logger) (*deps, func(), error) {
	controlPlane, err := db.NewDatabase(ctx, &db.Config{
		DSN:               cfg.ControlPlane.DSN,
		MaxConnections:    2,
		MinConnections:    1,
		MaxConnLifetime:   cfg.ControlPlane.MaxConnLifetime,
		MaxConnIdleTime:   cfg.ControlPlane.MaxConnIdleTime,
		HealthCheckPeriod: cfg.ControlPlane.HealthCheckPeriod,
	}, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to control plane: %w", err)
	}

	protector, err := protect.New(cfg.Security.ProtectionPassphrase)
	if err != nil {
		controlPlane.Close()
		return nil, nil, fmt.Errorf("failed to initialize protector: %w", err)
	}

	store := db.NewTenantRepository(log)
	schema := db.NewSchemaManager(log)
	identity := db.NewIdentityRepository(log)

	connect := func(ctx context.Context, dsn string) (ports.Database, error) {
		return db.NewDatabase(ctx, &db.Config{
			DSN:               dsn,
			MaxConnections:    2,
			MinConnections:    1,
			MaxConnLifetime:   cfg.ControlPlane.MaxConnLifetime,
			MaxConnIdleTime:   cfg.ControlPlane.MaxConnIdleTime,
			HealthCheckPeriod: cfg.ControlPlane.HealthCheckPeriod,
		}, log)
	}

	provisioner := services.NewProvisionerService(controlPlane, store, protector, schema,
		identity, connect, nil, cfg.Security.BcryptCost, cfg.Security.DefaultAdminPassword, log)

	resolver := services.NewResolverService(controlPlane, store, protector, nil,
		cfg.Tenant.ConnectionTemplate, cfg.Tenant.DefaultConnection, cfg.Tenant.CacheTTL, log)

	cleanup := func() { controlPlane.Close() }
	return &deps{
		controlPlane: controlPlane,
		store:        store,
		provisioner:  provisioner,
		schema:       schema,
		resolver:     resolver,
	}, cleanup, nil
}

func runProvision(ctx context.Context, cfg *config.Config, log *slog.Logger, args []string) int {
	fs := flag.NewFlagSet("provision", flag.ExitOnError)
	org := fs.String("org", "", "organization id")
	dsn := fs.String("dsn", "", "tenant connection descriptor")
	_ = fs.Parse(args)

	if *org == "" || *dsn == "" {
		fmt.Fprintln(os.Stderr, "provision requires -org and -dsn")
		return 2
	}

	d, cleanup, err := setup(ctx, cfg, log)
	if err != nil {
		log.Error("setup failed", slog.String("error", err.Error()))
		return 1
	}
	defer cleanup()

	if err := d.provisioner.Provision(ctx, *org, *dsn); err != nil {
		log.Error("provisioning failed",
			slog.String("organization_id", *org),
			slog.String("error", err.Error()))
		return 1
	}

	fmt.Printf("tenant %s provisioned\n", *org)
	return 0
}

func runRemove(ctx context.Context, cfg *config.Config, log *slog.Logger, args []string) int {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	org := fs.String("org", "", "organization id")
	_ = fs.Parse(args)

	if *org == "" {
		fmt.Fprintln(os.Stderr, "remove requires -org")
		return 2
	}

	d, cleanup, err := setup(ctx, cfg, log)
	if err != nil {
		log.Error("setup failed", slog.String("error", err.Error()))
		return 1
	}
	defer cleanup()

	if err := d.provisioner.Remove(ctx, *org); err != nil {
		log.Error("removal failed",
			slog.String("organization_id", *org),
			slog.String("error", err.Error()))
		return 1
	}

	fmt.Printf("tenant %s removed (database retained)\n", *org)
	return 0
}

func runList(ctx context.Context, cfg *config.Config, log *slog.Logger) int {
	d, cleanup, err := setup(ctx, cfg, log)
	if err != nil {
		log.Error("setup failed", slog.String("error", err.Error()))
		return 1
	}
	defer cleanup()

	records, err := d.store.List(ctx, d.controlPlane)
	if err != nil {
		log.Error("failed to list tenants", slog.String("error", err.Error()))
		return 1
	}

	if len(records) == 0 {
		fmt.Println("no tenants provisioned")
		return 0
	}
	for _, rec := range records {
		fmt.Printf("%s\tprovider=%s\tcreated=%s\n",
			rec.OrganizationID, rec.Provider, rec.CreatedAt.Format(time.RFC3339))
	}
	return 0
}

func runMigrate(ctx context.Context, cfg *config.Config, log *slog.Logger, args []string) int {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	org := fs.String("org", "", "organization id")
	_ = fs.Parse(args)

	if *org == "" {
		fmt.Fprintln(os.Stderr, "migrate requires -org")
		return 2
	}

	d, cleanup, err := setup(ctx, cfg, log)
	if err != nil {
		log.Error("setup failed", slog.String("error", err.Error()))
		return 1
	}
	defer cleanup()

	dsn, err := d.resolver.Resolve(ctx, *org)
	if err != nil {
		log.Error("failed to resolve tenant connection",
			slog.String("organization_id", *org),
			slog.String("error", err.Error()))
		return 1
	}

	if err := d.schema.MigrateTenant(ctx, dsn); err != nil {
		log.Error("migration failed",
			slog.String("organization_id", *org),
			slog.String("error", err.Error()))
		return 1
	}

	fmt.Printf("tenant %s migrated\n", *org)
	return 0
}

func runMigrateControlPlane(ctx context.Context, cfg *config.Config, log *slog.Logger) int {
	schema := db.NewSchemaManager(log)

	if err := schema.EnsureDatabase(ctx, cfg.ControlPlane.DSN); err != nil {
		log.Error("failed to ensure control-plane database", slog.String("error", err.Error()))
		return 1
	}
	if err := schema.MigrateControlPlane(ctx, cfg.ControlPlane.DSN); err != nil {
		log.Error("control-plane migration failed", slog.String("error", err.Error()))
		return 1
	}

	fmt.Println("control plane migrated")
	return 0
}

// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/database.go -destination=database_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/tenant.go -destination=tenant_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/inventory.go -destination=inventory_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/sales.go -destination=sales_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/purchasing.go -destination=purchasing_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/stocktake.go -destination=stocktake_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/currency.go -destination=currency_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/collaborators.go -destination=collaborators_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/loyalty.go -destination=loyalty_mock.go -package=mocks

// internal/pkg/config/validators.go
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingRequiredConfig marks a required setting that was not provided.
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// BasicValidator performs basic configuration validation
type BasicValidator struct{}

// Validate performs basic validation
func (v *BasicValidator) Validate(cfg *Config) error {
	if cfg.ControlPlane.DSN == "" {
		return fmt.Errorf("%w: control-plane DSN", ErrMissingRequiredConfig)
	}

	if cfg.ControlPlane.MaxConnections < cfg.ControlPlane.MinConnections {
		return fmt.Errorf("control-plane max_connections must be >= min_connections")
	}

	if cfg.Redis.PoolSize <= 0 {
		return fmt.Errorf("redis pool_size must be positive")
	}

	if cfg.Asynq.Concurrency <= 0 {
		return fmt.Errorf("asynq concurrency must be positive")
	}

	return nil
}

// ProductionValidator performs strict validation for production environments
type ProductionValidator struct{}

// Validate performs production-specific validation
func (v *ProductionValidator) Validate(cfg *Config) error {
	// Check for placeholder values
	if strings.Contains(cfg.ControlPlane.DSN, "MISSING_") {
		return fmt.Errorf("%w: control-plane DSN", ErrMissingRequiredConfig)
	}

	if cfg.Security.ProtectionPassphrase == "" ||
		strings.Contains(cfg.Security.ProtectionPassphrase, "MISSING_") {
		return fmt.Errorf("%w: protection passphrase", ErrMissingRequiredConfig)
	}

	// Check for insecure defaults
	if cfg.Security.ProtectionPassphrase == "development-passphrase-change-in-production" {
		return fmt.Errorf("default protection passphrase cannot be used in production")
	}

	if cfg.Security.DefaultAdminPassword == "ChangeMe!123" {
		return fmt.Errorf("default admin password cannot be used in production")
	}

	if strings.Contains(cfg.ControlPlane.DSN, "sslmode=disable") {
		return fmt.Errorf("control-plane SSL must be enabled in production")
	}

	return nil
}

// SecurityValidator validates security-related configuration
type SecurityValidator struct{}

// Validate performs security validation
func (v *SecurityValidator) Validate(cfg *Config) error {
	if len(cfg.Security.ProtectionPassphrase) < 16 {
		return fmt.Errorf("protection passphrase must be at least 16 characters")
	}

	if cfg.Security.BcryptCost < 10 {
		return fmt.Errorf("bcrypt cost must be at least 10")
	}
	if cfg.Security.BcryptCost > 15 {
		return fmt.Errorf("bcrypt cost should not exceed 15 for performance reasons")
	}

	return nil
}

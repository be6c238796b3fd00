// migrations/embed.go
// Package migrations embeds the SQL migration sets. The control-plane set
// owns tenant connection metadata; the tenant set is applied to every
// per-tenant database during provisioning.
package migrations

import "embed"

//go:embed controlplane/*.sql
var ControlPlane embed.FS

//go:embed tenant/*.sql
var Tenant embed.FS

// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=network.go -destination=../mock/network.go -package=mock

import (
	"context"

	"tw-network-manager/internal/types"
)

// Reconciler is the primary port for uplink configuration.
// It drives the OS network stack toward the state described by a configuration.
// Every call is a complete pass; partially applied passes are not rolled back.
type Reconciler interface {
	Reconcile(ctx context.Context, cfg *types.NetworkConfig) error
}

// LeaseManager starts and stops DHCP clients with a bounded wait.
type LeaseManager interface {
	// Start returns a *types.TimeoutError when no lease is acquired in time
	// and a *types.OperationError when the client cannot run.
	Start(ctx context.Context, interfaceName string) error

	// Stop is best-effort and never fails.
	Stop(ctx context.Context, interfaceName string)
}

// WiFiProfileManager ensures a wireless profile exists, is current and is selected.
type WiFiProfileManager interface {
	Update(ctx context.Context, interfaceName, ssid, psk string) error
}

// StaticConfigurator brings an interface up with a static IPv4 address,
// default route and nameserver.
type StaticConfigurator interface {
	Apply(ctx context.Context, interfaceName string, cfg types.StaticIPConfig) error
}

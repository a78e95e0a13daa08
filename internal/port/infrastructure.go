// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=infrastructure.go -destination=../mock/infrastructure.go -package=mock

import (
	"context"
	"errors"
	"net"
	"time"

	"tw-network-manager/internal/types"
)

// ErrLinkNotFound is wrapped by LinkManager implementations when the named device does not exist.
var ErrLinkNotFound = errors.New("link not found")

// DHCPClient is a port for DHCP client operations.
// This interface abstracts lease acquisition and release for a single device.
type DHCPClient interface {
	// Start acquires a lease on the device, waiting at most timeout.
	// A client still running when the timeout elapses is terminated.
	Start(ctx context.Context, interfaceName string, timeout time.Duration) types.LeaseResult

	// Stop releases the lease and stops any client running for the device
	Stop(ctx context.Context, interfaceName string) error
}

// LinkManager is a port for network interface operations.
// This interface abstracts netlink operations for network configuration.
type LinkManager interface {
	// SetLinkUp brings the interface up
	SetLinkUp(interfaceName string) error

	// SetLinkDown brings the interface down
	SetLinkDown(interfaceName string) error

	// ReplaceAddress assigns an IPv4 address to the interface, replacing an identical one
	ReplaceAddress(interfaceName string, addr *net.IPNet) error

	// ReplaceDefaultRoute points the IPv4 default route at gateway via the interface
	ReplaceDefaultRoute(interfaceName string, gateway net.IP) error
}

// DNSRegistry is a port for per-interface nameserver records.
type DNSRegistry interface {
	// Register records the nameservers to use while the interface is the uplink
	Register(ctx context.Context, interfaceName string, nameservers []net.IP) error
}

// WiFiSupplicant is a port for wireless supplicant profile operations.
type WiFiSupplicant interface {
	ListProfiles(ctx context.Context, interfaceName string) ([]types.WiFiProfile, error)
	AddProfile(ctx context.Context, interfaceName string) (string, error)
	SetSSID(ctx context.Context, interfaceName, id, ssid string) error
	SetPSK(ctx context.Context, interfaceName, id, psk string) error
	SelectProfile(ctx context.Context, interfaceName, id string) error
}

// CommandRunner is a port for running external programs to completion.
type CommandRunner interface {
	// Run executes name with args, feeding stdin when non-nil, and returns stdout.
	// A non-zero exit status is returned as an error.
	Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error)
}

// FileManager is a port for file system operations.
// This interface abstracts file read and stat operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// ModTime returns the modification time of a file
	ModTime(filename string) (time.Time, error)

	// FileExists checks if a regular file exists
	FileExists(filename string) bool
}

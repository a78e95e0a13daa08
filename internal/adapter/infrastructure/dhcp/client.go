// Package dhcp provides the in-process DHCP client adapter implementation.
package dhcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"tw-network-manager/internal/pkg/logging"
	"tw-network-manager/internal/port"
	"tw-network-manager/internal/types"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/insomniacslk/dhcp/dhcpv4/nclient4"
)

// Exchange performs the DISCOVER/OFFER/REQUEST/ACK sequence and returns the lease.
type Exchange func(ctx context.Context, interfaceName string, timeout time.Duration) (*nclient4.Lease, error)

// Release sends a DHCPRELEASE for a lease.
type Release func(interfaceName string, lease *nclient4.Lease) error

// ClientAdapter is an adapter that implements the DHCPClient port using insomniacslk/dhcp library.
// Acquired leases are applied through the LinkManager and DNSRegistry ports.
type ClientAdapter struct {
	networkMgr port.LinkManager
	dns        port.DNSRegistry
	exchange   Exchange
	release    Release

	mu     sync.Mutex
	leases map[string]*nclient4.Lease
}

// Ensure ClientAdapter implements the DHCPClient port
var _ port.DHCPClient = (*ClientAdapter)(nil)

// NewClientAdapter creates a new DHCP client adapter.
func NewClientAdapter(networkMgr port.LinkManager, dns port.DNSRegistry) *ClientAdapter {
	return &ClientAdapter{
		networkMgr: networkMgr,
		dns:        dns,
		exchange:   requestLease,
		release:    releaseLease,
		leases:     make(map[string]*nclient4.Lease),
	}
}

func requestLease(ctx context.Context, interfaceName string, timeout time.Duration) (*nclient4.Lease, error) {
	client, err := nclient4.New(interfaceName, nclient4.WithTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create DHCP client: %w", err)
	}
	defer client.Close()

	lease, err := client.Request(ctx)
	if err != nil {
		return nil, fmt.Errorf("DHCP lease request failed: %w", err)
	}
	return lease, nil
}

func releaseLease(interfaceName string, lease *nclient4.Lease) error {
	client, err := nclient4.New(interfaceName)
	if err != nil {
		return fmt.Errorf("failed to create DHCP client: %w", err)
	}
	defer client.Close()

	return client.Release(lease)
}

// Start acquires and applies a lease within timeout.
func (c *ClientAdapter) Start(ctx context.Context, interfaceName string, timeout time.Duration) types.LeaseResult {
	logger := logging.WithComponentAndInterface("dhcp", interfaceName)

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	lease, err := c.exchange(reqCtx, interfaceName, timeout)
	if err != nil {
		if errors.Is(err, nclient4.ErrNoResponse) || errors.Is(err, context.DeadlineExceeded) {
			return types.LeaseResult{Status: types.LeaseTimedOut, Err: err}
		}
		return types.LeaseResult{Status: types.LeaseFailed, Err: err}
	}

	logger.WithField("ip", lease.ACK.YourIPAddr.String()).Info("Successfully obtained DHCP lease")

	if err := c.applyLease(ctx, interfaceName, lease.ACK); err != nil {
		// Hand the address back to the server; nothing on the interface uses it
		if relErr := c.release(interfaceName, lease); relErr != nil {
			logger.WithError(relErr).Warn("Failed to release unapplied DHCP lease")
		}
		return types.LeaseResult{Status: types.LeaseFailed, Err: err}
	}

	c.mu.Lock()
	c.leases[interfaceName] = lease
	c.mu.Unlock()

	return types.LeaseResult{Status: types.LeaseAcquired}
}

// applyLease configures the interface with the address, default route and nameservers of the ACK.
func (c *ClientAdapter) applyLease(ctx context.Context, interfaceName string, ack *dhcpv4.DHCPv4) error {
	logger := logging.WithComponentAndInterface("dhcp", interfaceName)

	subnetMask := ack.SubnetMask()
	if subnetMask == nil {
		// Default to /24 if no subnet mask provided
		subnetMask = net.IPv4Mask(255, 255, 255, 0)
	}
	ipNet := &net.IPNet{
		IP:   ack.YourIPAddr,
		Mask: subnetMask,
	}

	logger.WithField("ip", ipNet.String()).Info("Configuring interface with IP")
	if err := c.networkMgr.ReplaceAddress(interfaceName, ipNet); err != nil {
		return fmt.Errorf("failed to add IP address %s: %w", ipNet.String(), err)
	}

	if routers := ack.Router(); len(routers) > 0 {
		logger.WithField("gateway", routers[0].String()).Info("Setting default gateway")
		if err := c.networkMgr.ReplaceDefaultRoute(interfaceName, routers[0]); err != nil {
			return fmt.Errorf("failed to set default gateway: %w", err)
		}
	}

	if dnsServers := ack.DNS(); len(dnsServers) > 0 {
		if err := c.dns.Register(ctx, interfaceName, dnsServers); err != nil {
			logger.WithError(err).Warn("Failed to configure DNS")
		}
	}

	return nil
}

// Stop releases the lease acquired by Start, if any.
func (c *ClientAdapter) Stop(ctx context.Context, interfaceName string) error {
	c.mu.Lock()
	lease, ok := c.leases[interfaceName]
	delete(c.leases, interfaceName)
	c.mu.Unlock()

	if !ok {
		return nil
	}
	if err := c.release(interfaceName, lease); err != nil {
		return fmt.Errorf("failed to release DHCP lease on %s: %w", interfaceName, err)
	}
	return nil
}

// Package static implements the static IPv4 configurator.
package static

import (
	"context"
	"fmt"
	"net"

	"tw-network-manager/internal/pkg/ipv4"
	"tw-network-manager/internal/pkg/logging"
	"tw-network-manager/internal/port"
	"tw-network-manager/internal/types"
)

// Manager is a static IP configurator that implements the StaticConfigurator port.
// It brings the link up, assigns the address, replaces the default route and
// registers the nameserver, in that order, stopping at the first failure.
type Manager struct {
	networkMgr port.LinkManager
	dns        port.DNSRegistry
}

// Ensure Manager implements the StaticConfigurator port
var _ port.StaticConfigurator = (*Manager)(nil)

// NewManager creates a new static IP configurator.
func NewManager(networkMgr port.LinkManager, dns port.DNSRegistry) *Manager {
	return &Manager{
		networkMgr: networkMgr,
		dns:        dns,
	}
}

// Apply applies the static IP configuration to the interface.
// Steps already applied are left in place when a later one fails.
func (m *Manager) Apply(ctx context.Context, interfaceName string, config types.StaticIPConfig) error {
	logger := logging.WithComponentAndInterface("static", interfaceName)

	ipNet, gateway, nameserver, err := parseStatic(config)
	if err != nil {
		return &types.OperationError{Op: "parse static config", Device: interfaceName, Err: err}
	}
	if !ipv4.IsContiguous(config.Netmask) {
		logger.WithField("netmask", config.Netmask).Warn("Netmask is not a contiguous prefix, using its trailing zero count")
	}

	logger.WithFields(map[string]interface{}{
		"ip":      ipNet.String(),
		"gateway": gateway.String(),
		"dns":     config.DNS,
	}).Info("Bringing interface up with static address")

	if err := m.networkMgr.SetLinkUp(interfaceName); err != nil {
		return &types.OperationError{Op: "link up", Device: interfaceName, Err: err}
	}

	if err := m.networkMgr.ReplaceAddress(interfaceName, ipNet); err != nil {
		return &types.OperationError{Op: "assign address", Device: interfaceName, Err: err}
	}

	if err := m.networkMgr.ReplaceDefaultRoute(interfaceName, gateway); err != nil {
		return &types.OperationError{Op: "replace default route", Device: interfaceName, Err: err}
	}

	if nameserver != nil {
		if err := m.dns.Register(ctx, interfaceName, []net.IP{nameserver}); err != nil {
			return &types.OperationError{Op: "configure dns", Device: interfaceName, Err: err}
		}
	}

	logger.Info("Static IP configuration applied successfully")
	return nil
}

func parseStatic(config types.StaticIPConfig) (*net.IPNet, net.IP, net.IP, error) {
	ip, err := ipv4.Parse(config.IPAddress)
	if err != nil {
		return nil, nil, nil, err
	}
	prefix, err := ipv4.NetmaskBits(config.Netmask)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid netmask: %w", err)
	}
	gateway, err := ipv4.Parse(config.Gateway)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid gateway: %w", err)
	}

	var nameserver net.IP
	if config.DNS != "" {
		if nameserver, err = ipv4.Parse(config.DNS); err != nil {
			return nil, nil, nil, fmt.Errorf("invalid dns: %w", err)
		}
	}

	return &net.IPNet{IP: ip, Mask: net.CIDRMask(prefix, 32)}, gateway, nameserver, nil
}

package cmd

import (
	"fmt"

	"tw-network-manager/internal/adapter/dhcp"
	"tw-network-manager/internal/adapter/infrastructure/command"
	"tw-network-manager/internal/adapter/infrastructure/dhclient"
	infraDhcp "tw-network-manager/internal/adapter/infrastructure/dhcp"
	"tw-network-manager/internal/adapter/infrastructure/network"
	"tw-network-manager/internal/adapter/infrastructure/resolvconf"
	"tw-network-manager/internal/adapter/infrastructure/wpa"
	"tw-network-manager/internal/adapter/static"
	"tw-network-manager/internal/adapter/wifi"
	"tw-network-manager/internal/pkg/config"
	"tw-network-manager/internal/pkg/logging"
	"tw-network-manager/internal/port"
	"tw-network-manager/internal/reconcile"
)

// createDHCPClient creates the DHCP client for the configured backend
func createDHCPClient(cfg config.DHCPConfig, runner port.CommandRunner, networkMgr port.LinkManager, dns port.DNSRegistry) (port.DHCPClient, error) {
	switch cfg.Backend {
	case config.BackendDHClient:
		return dhclient.NewClientAdapter(cfg.Binary, cfg.RunDir, cfg.Interval, runner), nil
	case config.BackendNative:
		return infraDhcp.NewClientAdapter(networkMgr, dns), nil
	default:
		return nil, fmt.Errorf("unknown DHCP backend %q", cfg.Backend)
	}
}

// createReconciler wires the infrastructure adapters into a reconciler
func createReconciler(cfg *config.Config) (*reconcile.Reconciler, error) {
	runner := command.NewRunnerAdapter()
	networkMgr := network.NewManagerAdapter()

	dns, err := resolvconf.NewRegistryAdapter(cfg.DNS.Resolvconf, cfg.DNS.RecordSuffix, cfg.DNS.RecordTemplate, runner)
	if err != nil {
		return nil, err
	}

	dhcpClient, err := createDHCPClient(cfg.DHCP, runner, networkMgr, dns)
	if err != nil {
		return nil, err
	}
	leases := dhcp.NewManager(dhcpClient, cfg.DHCP.Attempts, cfg.DHCP.Interval, cfg.DHCP.RequireZeroExit)
	profiles := wifi.NewManager(wpa.NewSupplicantAdapter(cfg.WiFi.WpaCli, runner))
	staticMgr := static.NewManager(networkMgr, dns)

	logging.GetLogger().WithFields(map[string]interface{}{
		"dhcp_backend": cfg.DHCP.Backend,
		"dhcp_timeout": leases.Timeout(),
	}).Info("Created uplink reconciler")

	return reconcile.NewReconciler(networkMgr, leases, profiles, staticMgr), nil
}

package dhcp

import (
	"context"
	"fmt"
	"time"

	"tw-network-manager/internal/pkg/logging"
	"tw-network-manager/internal/port"
	"tw-network-manager/internal/types"
)

// Manager is the DHCP lease manager. It implements the LeaseManager port on top of a
// DHCPClient backend, turning the backend's tagged result into the error taxonomy.
type Manager struct {
	dhcpClient      port.DHCPClient
	timeout         time.Duration
	requireZeroExit bool
}

// Ensure Manager implements the LeaseManager port
var _ port.LeaseManager = (*Manager)(nil)

// NewManager creates a lease manager waiting at most attempts*interval for a lease.
func NewManager(dhcpClient port.DHCPClient, attempts int, interval time.Duration, requireZeroExit bool) *Manager {
	return &Manager{
		dhcpClient:      dhcpClient,
		timeout:         time.Duration(attempts) * interval,
		requireZeroExit: requireZeroExit,
	}
}

// Timeout is the lease acquisition window.
func (m *Manager) Timeout() time.Duration {
	return m.timeout
}

// Start acquires a lease for the interface.
func (m *Manager) Start(ctx context.Context, interfaceName string) error {
	logger := logging.WithComponentAndInterface("dhcp", interfaceName)
	logger.WithField("timeout", m.timeout.String()).Info("Starting DHCP client")

	result := m.dhcpClient.Start(ctx, interfaceName, m.timeout)
	switch result.Status {
	case types.LeaseAcquired:
		if result.ExitCode != 0 {
			if m.requireZeroExit {
				return &types.OperationError{Op: "dhcp lease", Device: interfaceName, Err: fmt.Errorf("client exited with status %d", result.ExitCode)}
			}
			logger.WithField("exit_code", result.ExitCode).Warn("DHCP client exited with non-zero status, assuming lease acquired")
			return nil
		}
		logger.Info("DHCP lease acquired")
		return nil
	case types.LeaseTimedOut:
		logger.Error("Could not acquire DHCP lease, client terminated")
		return &types.TimeoutError{Device: interfaceName, Timeout: m.timeout}
	default:
		return &types.OperationError{Op: "dhcp lease", Device: interfaceName, Err: result.Err}
	}
}

// Stop stops the interface's DHCP client. Failures are logged and swallowed so
// they never block teardown of other interfaces.
func (m *Manager) Stop(ctx context.Context, interfaceName string) {
	logger := logging.WithComponentAndInterface("dhcp", interfaceName)
	logger.Info("Stopping DHCP client")

	if err := m.dhcpClient.Stop(ctx, interfaceName); err != nil {
		logger.WithError(err).Warn("Failed to stop DHCP client")
	}
}

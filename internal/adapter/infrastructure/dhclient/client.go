// Package dhclient provides the DHCP client adapter that runs ISC dhclient(8) in one-shot mode.
package dhclient

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"tw-network-manager/internal/pkg/logging"
	"tw-network-manager/internal/port"
	"tw-network-manager/internal/types"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// ClientAdapter is an adapter that implements the DHCPClient port using dhclient.
type ClientAdapter struct {
	binary       string
	runDir       string
	pollInterval time.Duration
	runner       port.CommandRunner
}

// Ensure ClientAdapter implements the DHCPClient port
var _ port.DHCPClient = (*ClientAdapter)(nil)

// NewClientAdapter creates a dhclient adapter. pollInterval is how often the
// spawned client is checked for termination.
func NewClientAdapter(binary, runDir string, pollInterval time.Duration, runner port.CommandRunner) *ClientAdapter {
	return &ClientAdapter{
		binary:       binary,
		runDir:       runDir,
		pollInterval: pollInterval,
		runner:       runner,
	}
}

// PidFile is the pid file used for the interface's client.
func (c *ClientAdapter) PidFile(interfaceName string) string {
	return filepath.Join(c.runDir, fmt.Sprintf("dhclient.%s.pid", interfaceName))
}

// LeaseFile is the IPv4 lease database used for the interface's client.
func (c *ClientAdapter) LeaseFile(interfaceName string) string {
	return filepath.Join(c.runDir, fmt.Sprintf("dhclient.%s.leases", interfaceName))
}

// LeaseFile6 is the IPv6 lease database dhclient insists on being given.
func (c *ClientAdapter) LeaseFile6(interfaceName string) string {
	return filepath.Join(c.runDir, fmt.Sprintf("dhclient6.%s.leases", interfaceName))
}

// Start runs a one-shot client and polls it until it exits or timeout elapses.
func (c *ClientAdapter) Start(ctx context.Context, interfaceName string, timeout time.Duration) types.LeaseResult {
	logger := logging.WithComponentAndInterface("dhclient", interfaceName)

	cmd := exec.Command(c.binary,
		"-1",
		"-pf", c.PidFile(interfaceName),
		"-lf", c.LeaseFile(interfaceName),
		"-I",
		"-df", c.LeaseFile6(interfaceName),
		interfaceName,
	)
	if err := cmd.Start(); err != nil {
		return types.LeaseResult{Status: types.LeaseFailed, Err: fmt.Errorf("failed to start %s: %w", c.binary, err)}
	}
	logger.WithField("pid", cmd.Process.Pid).Debug("Spawned DHCP client")

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	attempts := int(timeout / c.pollInterval)
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		select {
		case err := <-done:
			return exited(err)
		case <-ctx.Done():
			c.kill(cmd, done, logger)
			return types.LeaseResult{Status: types.LeaseFailed, Err: ctx.Err()}
		case <-time.After(c.pollInterval):
		}
	}

	select {
	case err := <-done:
		return exited(err)
	default:
	}

	c.kill(cmd, done, logger)
	return types.LeaseResult{Status: types.LeaseTimedOut}
}

func exited(err error) types.LeaseResult {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return types.LeaseResult{Status: types.LeaseAcquired, ExitCode: exitErr.ExitCode()}
	}
	if err != nil {
		return types.LeaseResult{Status: types.LeaseFailed, Err: err}
	}
	return types.LeaseResult{Status: types.LeaseAcquired}
}

// kill terminates the client and reaps it. Errors are ignored: the process may
// already be gone.
func (c *ClientAdapter) kill(cmd *exec.Cmd, done <-chan error, logger *logrus.Entry) {
	if err := cmd.Process.Signal(unix.SIGKILL); err != nil && !errors.Is(err, os.ErrProcessDone) {
		logger.WithError(err).Debug("Failed to kill DHCP client")
	}
	<-done
	logger.Debug("DHCP client terminated")
}

// Stop asks the running client to release its lease and exit.
func (c *ClientAdapter) Stop(ctx context.Context, interfaceName string) error {
	if _, err := c.runner.Run(ctx, nil, c.binary, "-x", "-pf", c.PidFile(interfaceName)); err != nil {
		return fmt.Errorf("failed to stop DHCP client for %s: %w", interfaceName, err)
	}
	return nil
}

// Package wpa provides the wireless supplicant adapter backed by wpa_cli(8).
package wpa

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"tw-network-manager/internal/port"
	"tw-network-manager/internal/types"
)

// SupplicantAdapter is an adapter that implements the WiFiSupplicant port using wpa_cli.
type SupplicantAdapter struct {
	wpaCli string
	runner port.CommandRunner
}

// Ensure SupplicantAdapter implements the WiFiSupplicant port
var _ port.WiFiSupplicant = (*SupplicantAdapter)(nil)

// NewSupplicantAdapter creates a new wpa_cli adapter.
func NewSupplicantAdapter(wpaCli string, runner port.CommandRunner) *SupplicantAdapter {
	return &SupplicantAdapter{
		wpaCli: wpaCli,
		runner: runner,
	}
}

func (s *SupplicantAdapter) run(ctx context.Context, interfaceName string, args ...string) ([]byte, error) {
	out, err := s.runner.Run(ctx, nil, s.wpaCli, append([]string{"-i", interfaceName}, args...)...)
	if err != nil {
		return nil, err
	}
	// wpa_cli exits 0 even when the supplicant rejects a request
	if bytes.Equal(bytes.TrimSpace(out), []byte("FAIL")) {
		return nil, fmt.Errorf("wpa_cli %s: supplicant replied FAIL", strings.Join(args, " "))
	}
	return out, nil
}

// ListProfiles returns the networks configured on the interface.
func (s *SupplicantAdapter) ListProfiles(ctx context.Context, interfaceName string) ([]types.WiFiProfile, error) {
	out, err := s.run(ctx, interfaceName, "list_networks")
	if err != nil {
		return nil, fmt.Errorf("cannot list WiFi networks for %s: %w", interfaceName, err)
	}
	return parseNetworkList(out), nil
}

// parseNetworkList parses tab-delimited list_networks output, discarding the header row.
func parseNetworkList(out []byte) []types.WiFiProfile {
	var profiles []types.WiFiProfile
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	for i, line := range lines {
		if i == 0 {
			continue
		}
		fields := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(fields) < 2 {
			continue
		}
		profiles = append(profiles, types.WiFiProfile{
			ID:   fields[0],
			SSID: fields[1],
		})
	}
	return profiles
}

// AddProfile creates an empty network and returns its id.
func (s *SupplicantAdapter) AddProfile(ctx context.Context, interfaceName string) (string, error) {
	out, err := s.run(ctx, interfaceName, "add_network")
	if err != nil {
		return "", fmt.Errorf("cannot add a WiFi network for %s: %w", interfaceName, err)
	}
	id := strings.TrimSpace(string(out))
	if id == "" {
		return "", fmt.Errorf("cannot add a WiFi network for %s: empty network id", interfaceName)
	}
	return id, nil
}

// SetSSID sets the network SSID.
func (s *SupplicantAdapter) SetSSID(ctx context.Context, interfaceName, id, ssid string) error {
	if _, err := s.run(ctx, interfaceName, "set_network", id, "ssid", quote(ssid)); err != nil {
		return fmt.Errorf("cannot set a WiFi network SSID for %s: %w", interfaceName, err)
	}
	return nil
}

// SetPSK sets the network passphrase. An empty passphrase configures an open network.
// The key management is always rewritten so a reused profile follows the passphrase.
func (s *SupplicantAdapter) SetPSK(ctx context.Context, interfaceName, id, psk string) error {
	if psk == "" {
		if _, err := s.run(ctx, interfaceName, "set_network", id, "key_mgmt", "NONE"); err != nil {
			return fmt.Errorf("cannot set a WiFi network PSK for %s (network %s): %w", interfaceName, id, err)
		}
		return nil
	}

	if _, err := s.run(ctx, interfaceName, "set_network", id, "key_mgmt", "WPA-PSK"); err != nil {
		return fmt.Errorf("cannot set a WiFi network PSK for %s (network %s): %w", interfaceName, id, err)
	}
	if _, err := s.run(ctx, interfaceName, "set_network", id, "psk", quote(psk)); err != nil {
		// The passphrase is part of the failed command line; report without it
		return fmt.Errorf("cannot set a WiFi network PSK for %s (network %s)", interfaceName, id)
	}
	return nil
}

// SelectProfile makes the network the only enabled one.
func (s *SupplicantAdapter) SelectProfile(ctx context.Context, interfaceName, id string) error {
	if _, err := s.run(ctx, interfaceName, "select_network", id); err != nil {
		return fmt.Errorf("cannot select WiFi network %s for %s: %w", id, interfaceName, err)
	}
	return nil
}

func quote(s string) string {
	return `"` + s + `"`
}

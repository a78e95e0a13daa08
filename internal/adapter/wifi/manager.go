// Package wifi implements the wireless profile manager.
package wifi

import (
	"context"

	"tw-network-manager/internal/pkg/logging"
	"tw-network-manager/internal/port"
	"tw-network-manager/internal/types"
)

// Manager ensures a wireless profile for an SSID exists, carries the current
// passphrase and is selected. It implements the WiFiProfileManager port.
type Manager struct {
	supplicant port.WiFiSupplicant
}

// Ensure Manager implements the WiFiProfileManager port
var _ port.WiFiProfileManager = (*Manager)(nil)

// NewManager creates a new wireless profile manager.
func NewManager(supplicant port.WiFiSupplicant) *Manager {
	return &Manager{supplicant: supplicant}
}

// Update reuses the profile already carrying ssid or creates one, then
// unconditionally rewrites its SSID and PSK and selects it.
func (m *Manager) Update(ctx context.Context, interfaceName, ssid, psk string) error {
	logger := logging.WithComponentAndInterface("wifi", interfaceName).WithField("ssid", ssid)
	logger.Info("Updating wireless profile")

	profiles, err := m.supplicant.ListProfiles(ctx, interfaceName)
	if err != nil {
		return &types.OperationError{Op: "wifi list profiles", Device: interfaceName, Err: err}
	}

	id, ok := profileIDs(profiles)[ssid]
	if ok {
		logger.WithField("id", id).Info("Updating existing wireless profile")
	} else {
		id, err = m.supplicant.AddProfile(ctx, interfaceName)
		if err != nil {
			return &types.OperationError{Op: "wifi add profile", Device: interfaceName, Err: err}
		}
		logger.WithField("id", id).Info("Created wireless profile")
	}

	if err := m.supplicant.SetSSID(ctx, interfaceName, id, ssid); err != nil {
		return &types.OperationError{Op: "wifi set ssid", Device: interfaceName, Err: err}
	}

	logger.WithFields(map[string]interface{}{
		"id":  id,
		"psk": logging.Redact(psk),
	}).Debug("Setting wireless passphrase")
	if err := m.supplicant.SetPSK(ctx, interfaceName, id, psk); err != nil {
		return &types.OperationError{Op: "wifi set psk", Device: interfaceName, Err: err}
	}

	if err := m.supplicant.SelectProfile(ctx, interfaceName, id); err != nil {
		return &types.OperationError{Op: "wifi select profile", Device: interfaceName, Err: err}
	}

	logger.WithField("id", id).Info("Wireless profile selected")
	return nil
}

// profileIDs maps SSID to profile id. When several profiles share an SSID the last one wins.
func profileIDs(profiles []types.WiFiProfile) map[string]string {
	ids := make(map[string]string, len(profiles))
	for _, p := range profiles {
		ids[p.SSID] = p.ID
	}
	return ids
}

// Package types defines common types used across the application.
package types

// DefaultDNS is the nameserver written for a static wired uplink when none is configured.
const DefaultDNS = "8.8.8.8"

// NetworkConfig is the declarative uplink configuration. It is rebuilt from the
// configuration file on every pass and never merged with earlier state.
type NetworkConfig struct {
	Wired    *WiredConfig    `json:"wired,omitempty"`
	WiFi     *WifiConfig     `json:"wifi,omitempty"`
	Cellular *CellularConfig `json:"cellular,omitempty"`
}

// WiredConfig describes the wired uplink.
type WiredConfig struct {
	Device  string `json:"device" validate:"required"`
	Enabled bool   `json:"enabled"`
	DHCP    bool   `json:"dhcp"`
	IPv4    string `json:"ipv4"`
	Netmask string `json:"netmask"`
	Gateway string `json:"gateway"`
	DNS     string `json:"dns"`
}

// Static returns the static addressing tuple of the wired section.
func (w *WiredConfig) Static() StaticIPConfig {
	return StaticIPConfig{
		IPAddress: w.IPv4,
		Netmask:   w.Netmask,
		Gateway:   w.Gateway,
		DNS:       w.DNS,
	}
}

// WifiConfig describes the WiFi uplink.
type WifiConfig struct {
	Device  string `json:"device" validate:"required"`
	Enabled bool   `json:"enabled"`
	SSID    string `json:"ssid"`
	PSK     string `json:"psk"`
}

// CellularConfig describes the cellular uplink. Activation is not implemented,
// only teardown uses the device.
type CellularConfig struct {
	Device  string `json:"device" validate:"required"`
	Enabled bool   `json:"enabled"`
}

// StaticIPConfig represents static IP configuration parameters.
// This type is used by the static network configuration adapter.
type StaticIPConfig struct {
	IPAddress string `json:"ipv4" validate:"required,ipv4"`    // IP address in dotted decimal notation (e.g., "192.168.1.100")
	Netmask   string `json:"netmask" validate:"required,ipv4"` // Subnet mask in dotted decimal notation (e.g., "255.255.255.0")
	Gateway   string `json:"gateway" validate:"required,ipv4"` // Default gateway IP address
	DNS       string `json:"dns" validate:"omitempty,ipv4"`    // Nameserver registered for the device
}

// WiFiProfile is one network entry known to the wireless supplicant.
type WiFiProfile struct {
	ID   string
	SSID string
}

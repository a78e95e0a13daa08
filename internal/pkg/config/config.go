package config

import (
	"fmt"
	"os"
	"time"

	"tw-network-manager/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	// NetworkConfigEnv overrides the network configuration path.
	NetworkConfigEnv = "TWNM_CONFIG"
	// DefaultNetworkConfig is used when neither the flag, the environment nor the settings name a path.
	DefaultNetworkConfig = "/etc/twnm/uplink/uplink.json"

	BackendDHClient = "dhclient"
	BackendNative   = "native"
)

// DHCPConfig represents DHCP client settings
type DHCPConfig struct {
	Backend         string        `yaml:"backend"`
	Binary          string        `yaml:"binary"`
	RunDir          string        `yaml:"run_dir"`
	Attempts        int           `yaml:"attempts"`
	Interval        time.Duration `yaml:"interval"`
	RequireZeroExit bool          `yaml:"require_zero_exit"`
}

// Timeout is the total lease acquisition window.
func (d DHCPConfig) Timeout() time.Duration {
	return time.Duration(d.Attempts) * d.Interval
}

// WiFiConfig represents wireless supplicant settings
type WiFiConfig struct {
	WpaCli string `yaml:"wpa_cli"`
}

// DNSConfig represents nameserver registration settings
type DNSConfig struct {
	Resolvconf     string `yaml:"resolvconf"`
	RecordSuffix   string `yaml:"record_suffix"`
	RecordTemplate string `yaml:"record_template"`
}

// Config represents the daemon settings
type Config struct {
	Logging       logging.LogConfig `yaml:"logging"`
	NetworkConfig string            `yaml:"network_config"`
	PollInterval  time.Duration     `yaml:"poll_interval"`
	FSNotify      bool              `yaml:"fsnotify"`
	DHCP          DHCPConfig        `yaml:"dhcp"`
	WiFi          WiFiConfig        `yaml:"wifi"`
	DNS           DNSConfig         `yaml:"dns"`
}

// Default returns the settings used when no settings file is given
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "text",
		},
		PollInterval: time.Second,
		DHCP: DHCPConfig{
			Backend:  BackendDHClient,
			Binary:   "/sbin/dhclient",
			RunDir:   "/run",
			Attempts: 30,
			Interval: time.Second,
		},
		WiFi: WiFiConfig{
			WpaCli: "/sbin/wpa_cli",
		},
		DNS: DNSConfig{
			Resolvconf:     "/sbin/resolvconf",
			RecordSuffix:   "twnm",
			RecordTemplate: "nameserver {{dns}}\n",
		},
	}
}

// Load loads settings from a YAML file on top of the defaults.
// An empty path yields the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// NetworkConfigPath resolves the network configuration path.
// Precedence: explicit override, TWNM_CONFIG, settings file, built-in default.
func (c *Config) NetworkConfigPath(override string) string {
	if override != "" {
		return override
	}
	if env := os.Getenv(NetworkConfigEnv); env != "" {
		return env
	}
	if c.NetworkConfig != "" {
		return c.NetworkConfig
	}
	return DefaultNetworkConfig
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}

	switch c.DHCP.Backend {
	case BackendDHClient:
		if c.DHCP.Binary == "" {
			return fmt.Errorf("dhcp: binary is required for the %s backend", BackendDHClient)
		}
		if c.DHCP.RunDir == "" {
			return fmt.Errorf("dhcp: run_dir is required for the %s backend", BackendDHClient)
		}
	case BackendNative:
	default:
		return fmt.Errorf("dhcp: unknown backend %q (supported: %s, %s)", c.DHCP.Backend, BackendDHClient, BackendNative)
	}
	if c.DHCP.Attempts <= 0 {
		return fmt.Errorf("dhcp: attempts must be positive")
	}
	if c.DHCP.Interval <= 0 {
		return fmt.Errorf("dhcp: interval must be positive")
	}

	if c.WiFi.WpaCli == "" {
		return fmt.Errorf("wifi: wpa_cli is required")
	}
	if c.DNS.Resolvconf == "" {
		return fmt.Errorf("dns: resolvconf is required")
	}
	if c.DNS.RecordSuffix == "" {
		return fmt.Errorf("dns: record_suffix is required")
	}
	if c.DNS.RecordTemplate == "" {
		return fmt.Errorf("dns: record_template is required")
	}

	return nil
}

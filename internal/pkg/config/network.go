package config

import (
	"errors"
	"fmt"
	"os"

	"tw-network-manager/internal/types"

	"github.com/goccy/go-json"
)

// LoadNetwork reads and parses the network configuration file
func LoadNetwork(path string) (*types.NetworkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read network config %s: %w", path, err)
	}
	return ParseNetwork(data)
}

// ParseNetwork decodes a JSON network configuration and applies defaults.
// Malformed documents and fields of the wrong type yield a *types.ValidationError.
func ParseNetwork(data []byte) (*types.NetworkConfig, error) {
	var cfg types.NetworkConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, decodeError(err)
	}

	if cfg.Wired != nil && cfg.Wired.DNS == "" {
		cfg.Wired.DNS = types.DefaultDNS
	}

	return &cfg, nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &types.ValidationError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}
	return &types.ValidationError{Message: fmt.Sprintf("malformed network configuration: %v", err)}
}

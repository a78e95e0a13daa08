// Package reconcile decides which uplink class is active and drives the
// network stack toward that decision, one complete pass per configuration.
package reconcile

import (
	"tw-network-manager/internal/pkg/config"
	"tw-network-manager/internal/types"
)

// Class is an uplink interface class.
type Class string

const (
	ClassNone     Class = ""
	ClassWired    Class = "wired"
	ClassWiFi     Class = "wifi"
	ClassCellular Class = "cellular"
)

// Teardown names a device to bring down and release.
type Teardown struct {
	Class  Class
	Device string
}

// Plan is the outcome of arbitration for one pass.
type Plan struct {
	// Release lists present but disabled sections of higher priority than Active,
	// torn down before activation.
	Release []Teardown
	// Active is the class to activate, ClassNone when nothing is enabled.
	Active Class
	// Demote lists lower priority sections declaring a device, torn down after activation.
	Demote []Teardown
}

type section struct {
	class   Class
	present bool
	enabled bool
	device  string
	value   interface{}
}

func sections(cfg *types.NetworkConfig) []section {
	out := make([]section, 0, 3)
	if cfg.Wired != nil {
		out = append(out, section{ClassWired, true, cfg.Wired.Enabled, cfg.Wired.Device, cfg.Wired})
	} else {
		out = append(out, section{class: ClassWired})
	}
	if cfg.WiFi != nil {
		out = append(out, section{ClassWiFi, true, cfg.WiFi.Enabled, cfg.WiFi.Device, cfg.WiFi})
	} else {
		out = append(out, section{class: ClassWiFi})
	}
	if cfg.Cellular != nil {
		out = append(out, section{ClassCellular, true, cfg.Cellular.Enabled, cfg.Cellular.Device, cfg.Cellular})
	} else {
		out = append(out, section{class: ClassCellular})
	}
	return out
}

// Arbitrate walks the classes in priority order wired, WiFi, cellular. The first
// present and enabled class wins. Every section reached must declare a device and
// the winner's activation fields are validated, so a returned error means nothing
// has been touched yet.
func Arbitrate(cfg *types.NetworkConfig) (Plan, error) {
	var plan Plan
	all := sections(cfg)

	for i, s := range all {
		if !s.present {
			continue
		}
		if err := config.ValidateSection(string(s.class), s.value); err != nil {
			return Plan{}, err
		}
		if !s.enabled {
			plan.Release = append(plan.Release, Teardown{Class: s.class, Device: s.device})
			continue
		}

		if err := validateActivation(cfg, s.class); err != nil {
			return Plan{}, err
		}
		plan.Active = s.class
		for _, lower := range all[i+1:] {
			if lower.present && lower.device != "" {
				plan.Demote = append(plan.Demote, Teardown{Class: lower.class, Device: lower.device})
			}
		}
		return plan, nil
	}

	return plan, nil
}

func validateActivation(cfg *types.NetworkConfig, class Class) error {
	switch class {
	case ClassWired:
		if cfg.Wired.DHCP {
			return nil
		}
		return config.ValidateStatic(cfg.Wired.Static())
	case ClassWiFi:
		return config.ValidateWiFi(cfg.WiFi)
	default:
		return nil
	}
}

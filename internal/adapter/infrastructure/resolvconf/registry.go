// Package resolvconf provides the DNS registry adapter backed by resolvconf(8).
package resolvconf

import (
	"context"
	"fmt"
	"net"
	"strings"

	"tw-network-manager/internal/pkg/logging"
	"tw-network-manager/internal/port"

	"github.com/valyala/fasttemplate"
)

// RegistryAdapter is an adapter that implements the DNSRegistry port by feeding
// a per-interface record to `resolvconf -a <interface>.<suffix>`.
type RegistryAdapter struct {
	binary   string
	suffix   string
	template *fasttemplate.Template
	runner   port.CommandRunner
}

// Ensure RegistryAdapter implements the DNSRegistry port
var _ port.DNSRegistry = (*RegistryAdapter)(nil)

// NewRegistryAdapter creates a resolvconf adapter. The record template is
// rendered once per nameserver with the {{dns}} and {{device}} placeholders.
func NewRegistryAdapter(binary, suffix, recordTemplate string, runner port.CommandRunner) (*RegistryAdapter, error) {
	tpl, err := fasttemplate.NewTemplate(recordTemplate, "{{", "}}")
	if err != nil {
		return nil, fmt.Errorf("invalid DNS record template: %w", err)
	}
	return &RegistryAdapter{
		binary:   binary,
		suffix:   suffix,
		template: tpl,
		runner:   runner,
	}, nil
}

// RecordName is the resolvconf record the interface's nameservers are stored under.
func (r *RegistryAdapter) RecordName(interfaceName string) string {
	return interfaceName + "." + r.suffix
}

// Register replaces the interface's resolvconf record.
func (r *RegistryAdapter) Register(ctx context.Context, interfaceName string, nameservers []net.IP) error {
	logger := logging.WithComponentAndInterface("resolvconf", interfaceName)

	record := r.render(interfaceName, nameservers)
	if _, err := r.runner.Run(ctx, []byte(record), r.binary, "-a", r.RecordName(interfaceName)); err != nil {
		return fmt.Errorf("failed to configure DNS for %s: %w", interfaceName, err)
	}

	logger.WithField("record", r.RecordName(interfaceName)).Debug("Registered nameservers")
	return nil
}

func (r *RegistryAdapter) render(interfaceName string, nameservers []net.IP) string {
	var b strings.Builder
	for _, ns := range nameservers {
		b.WriteString(r.template.ExecuteString(map[string]interface{}{
			"dns":    ns.String(),
			"device": interfaceName,
		}))
	}
	return b.String()
}

// Package network provides network management adapter implementation.
package network

import (
	"errors"
	"fmt"
	"net"

	"tw-network-manager/internal/port"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

// ManagerAdapter is an adapter that implements the LinkManager port using vishvananda/netlink library.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the LinkManager port
var _ port.LinkManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new network manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// linkByName resolves a device, wrapping port.ErrLinkNotFound when it does not exist.
func (n *ManagerAdapter) linkByName(interfaceName string) (netlink.Link, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		var notFound netlink.LinkNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, unix.ENODEV) {
			return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, port.ErrLinkNotFound)
		}
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, err)
	}
	return link, nil
}

// SetLinkUp brings the interface up.
func (n *ManagerAdapter) SetLinkUp(interfaceName string) error {
	link, err := n.linkByName(interfaceName)
	if err != nil {
		return err
	}
	if err := netlink.LinkSetUp(link); err != nil {
		return fmt.Errorf("failed to set link %s up: %w", interfaceName, err)
	}
	return nil
}

// SetLinkDown brings the interface down. Bringing down a link that is already down succeeds.
func (n *ManagerAdapter) SetLinkDown(interfaceName string) error {
	link, err := n.linkByName(interfaceName)
	if err != nil {
		return err
	}
	if err := netlink.LinkSetDown(link); err != nil {
		return fmt.Errorf("failed to set link %s down: %w", interfaceName, err)
	}
	return nil
}

// ReplaceAddress assigns an IPv4 address to the interface.
func (n *ManagerAdapter) ReplaceAddress(interfaceName string, addr *net.IPNet) error {
	link, err := n.linkByName(interfaceName)
	if err != nil {
		return err
	}
	if err := netlink.AddrReplace(link, &netlink.Addr{IPNet: addr}); err != nil {
		return fmt.Errorf("failed to assign address %s to %s: %w", addr.String(), interfaceName, err)
	}
	return nil
}

// ReplaceDefaultRoute replaces the IPv4 default route with one via gateway on the interface.
func (n *ManagerAdapter) ReplaceDefaultRoute(interfaceName string, gateway net.IP) error {
	link, err := n.linkByName(interfaceName)
	if err != nil {
		return err
	}
	route := &netlink.Route{
		LinkIndex: link.Attrs().Index,
		Family:    netlink.FAMILY_V4,
		Dst: &net.IPNet{
			IP:   net.IPv4zero,
			Mask: net.CIDRMask(0, 32),
		},
		Gw: gateway,
	}
	if err := netlink.RouteReplace(route); err != nil {
		return fmt.Errorf("failed to replace default route via %s on %s: %w", gateway, interfaceName, err)
	}
	return nil
}

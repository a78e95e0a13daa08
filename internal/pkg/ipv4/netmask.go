// Package ipv4 holds dotted-quad helpers shared by the static configurator and the validator.
package ipv4

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"net"
)

// Parse parses a dotted-quad IPv4 address.
func Parse(s string) (net.IP, error) {
	ip := net.ParseIP(s)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("invalid IPv4 address: %q", s)
	}
	return ip.To4(), nil
}

// NetmaskBits converts a dotted-quad netmask to a prefix length by counting the
// trailing zero bits. Non-contiguous masks are not rejected: 255.0.255.0 yields 24.
func NetmaskBits(netmask string) (int, error) {
	ip, err := Parse(netmask)
	if err != nil {
		return 0, err
	}
	return 32 - bits.TrailingZeros32(binary.BigEndian.Uint32(ip)), nil
}

// IsContiguous reports whether the netmask is a valid prefix mask.
func IsContiguous(netmask string) bool {
	ip, err := Parse(netmask)
	if err != nil {
		return false
	}
	_, size := net.IPMask(ip).Size()
	return size == 32
}

// MaskFor returns the dotted-quad netmask for a prefix length.
func MaskFor(prefix int) string {
	return net.IP(net.CIDRMask(prefix, 32)).String()
}

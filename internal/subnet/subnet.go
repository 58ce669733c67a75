// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package subnet computes IPv4 network boundaries from an address and a
// netmask. It has no I/O; callers parse flags or request bodies and hand
// the raw strings to Calculate.
package subnet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

var (
	ErrInvalidAddress = errors.New("invalid IPv4 address")
	ErrInvalidMask    = errors.New("invalid netmask")
)

// Result describes the network an address belongs to.
type Result struct {
	Address     string `json:"address" yaml:"address"`
	Netmask     string `json:"netmask" yaml:"netmask"`
	Wildcard    string `json:"wildcard" yaml:"wildcard"`
	Prefix      int    `json:"prefix" yaml:"prefix"`
	CIDR        string `json:"cidr" yaml:"cidr"`
	Network     string `json:"network" yaml:"network"`
	Broadcast   string `json:"broadcast" yaml:"broadcast"`
	FirstHost   string `json:"first_host" yaml:"first_host"`
	LastHost    string `json:"last_host" yaml:"last_host"`
	TotalHosts  uint64 `json:"total_hosts" yaml:"total_hosts"`
	UsableHosts uint64 `json:"usable_hosts" yaml:"usable_hosts"`
	Class       string `json:"class" yaml:"class"`
	Private     bool   `json:"private" yaml:"private"`
	BinaryMask  string `json:"binary_mask" yaml:"binary_mask"`
}

// Calculate returns the network of address under mask. The mask may be
// dotted ("255.255.255.0") or a prefix length ("/24" or "24"). When mask
// is empty, address must carry its own prefix ("10.0.0.1/8").
func Calculate(address, mask string) (Result, error) {
	address = strings.TrimSpace(address)
	if mask == "" {
		a, m, ok := strings.Cut(address, "/")
		if !ok {
			return Result{}, fmt.Errorf("no netmask given for %q: %w", address, ErrInvalidMask)
		}
		address, mask = a, m
	}

	addr, err := netip.ParseAddr(address)
	if err != nil || !addr.Is4() {
		return Result{}, fmt.Errorf("%q: %w", address, ErrInvalidAddress)
	}
	m, err := ParseMask(mask)
	if err != nil {
		return Result{}, err
	}

	ip := toUint32(addr)
	prefix := bits.OnesCount32(m)
	network := ip & m
	broadcast := network | ^m
	total := uint64(1) << (32 - prefix)

	first, last := network+1, broadcast-1
	usable := total - 2
	switch prefix {
	case 32:
		first, last, usable = network, network, 1
	case 31:
		first, last, usable = network, broadcast, 2
	}

	return Result{
		Address:     addr.String(),
		Netmask:     fromUint32(m).String(),
		Wildcard:    fromUint32(^m).String(),
		Prefix:      prefix,
		CIDR:        netip.PrefixFrom(fromUint32(network), prefix).String(),
		Network:     fromUint32(network).String(),
		Broadcast:   fromUint32(broadcast).String(),
		FirstHost:   fromUint32(first).String(),
		LastHost:    fromUint32(last).String(),
		TotalHosts:  total,
		UsableHosts: usable,
		Class:       class(addr),
		Private:     addr.IsPrivate(),
		BinaryMask:  binaryDotted(m),
	}, nil
}

// ParseMask parses a dotted netmask or a prefix length into a 32-bit mask.
// Dotted masks must be a contiguous run of ones.
func ParseMask(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "/")
	if !strings.Contains(s, ".") {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > 32 {
			return 0, fmt.Errorf("prefix %q: %w", s, ErrInvalidMask)
		}
		if n == 0 {
			return 0, nil
		}
		return ^uint32(0) << (32 - n), nil
	}

	a, err := netip.ParseAddr(s)
	if err != nil || !a.Is4() {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidMask)
	}
	m := toUint32(a)
	if inv := ^m; inv&(inv+1) != 0 {
		return 0, fmt.Errorf("%q is not contiguous: %w", s, ErrInvalidMask)
	}
	return m, nil
}

func class(a netip.Addr) string {
	switch first := a.As4()[0]; {
	case first < 128:
		return "A"
	case first < 192:
		return "B"
	case first < 224:
		return "C"
	case first < 240:
		return "D"
	default:
		return "E"
	}
}

func binaryDotted(m uint32) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], m)
	parts := make([]string, 4)
	for i, octet := range b {
		parts[i] = fmt.Sprintf("%08b", octet)
	}
	return strings.Join(parts, ".")
}

func toUint32(a netip.Addr) uint32 {
	b := a.As4()
	return binary.BigEndian.Uint32(b[:])
}

func fromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

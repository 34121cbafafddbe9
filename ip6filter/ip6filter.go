// Copyright (c) 2024-2025, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

// Package ip6filter implements the address predicates that gate which
// node-originated IPv6 traffic is forwarded to the simulated host network.
package ip6filter

import "net/netip"

// Scope is the 4-bit scope field of an IPv6 multicast address (RFC 4291).
type Scope uint8

const (
	// ScopeNotMulticast is returned by MulticastScope for any address that is
	// not an IPv6 multicast address. It coincides with the reserved scope 0,
	// which never appears in valid multicast traffic.
	ScopeNotMulticast   Scope = 0x0
	ScopeInterfaceLocal Scope = 0x1
	ScopeLinkLocal      Scope = 0x2
	ScopeRealmLocal     Scope = 0x3
	ScopeAdminLocal     Scope = 0x4
	ScopeSiteLocal      Scope = 0x5
	ScopeOrgLocal       Scope = 0x8
	ScopeGlobal         Scope = 0xe
)

// IsLinkLocal reports whether addr is a link-local unicast address (fe80::/10)
// or a multicast address of link-local scope (ff.2::/16).
func IsLinkLocal(addr netip.Addr) bool {
	return addr.IsLinkLocalUnicast() || MulticastScope(addr) == ScopeLinkLocal
}

// MulticastScope returns the scope field of a multicast address, or
// ScopeNotMulticast for any non-multicast address.
func MulticastScope(addr netip.Addr) Scope {
	if !addr.Is6() || !addr.IsMulticast() {
		return ScopeNotMulticast
	}
	b := addr.As16()
	return Scope(b[1] & 0xf)
}

// ShouldForwardToHost reports whether an IPv6 datagram destined for addr may
// cross the simulation boundary into the host network: link-local traffic
// never does, and multicast only with admin-local scope or wider.
func ShouldForwardToHost(addr netip.Addr) bool {
	if IsLinkLocal(addr) {
		return false
	}
	if scope := MulticastScope(addr); scope != ScopeNotMulticast && scope < ScopeAdminLocal {
		return false
	}
	return true
}

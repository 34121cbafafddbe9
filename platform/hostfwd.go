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

package platform

import (
	"encoding/binary"
	"net/netip"

	"github.com/pkg/errors"
	"golang.org/x/net/ipv6"

	"github.com/openthread/ot-nodesim/event"
	"github.com/openthread/ot-nodesim/ip6filter"
	"github.com/openthread/ot-nodesim/logger"
	"github.com/openthread/ot-nodesim/types"
)

const protocolUdp = 17

// ForwardUdpToHost sends a UDP payload from the node towards the simulated
// host network. Datagrams to link-local or narrow-scope multicast destinations
// stay inside the simulation and are silently dropped here.
func (s *Session) ForwardUdpToHost(udpData []byte, srcPort uint16, dstPort uint16, srcAddr netip.Addr, dstAddr netip.Addr) error {
	if len(udpData) > types.MaxUdpPayloadLength || len(udpData) > event.MaxMsgToHostDataLength {
		return errors.Wrapf(event.ErrOversizedPayload, "udp payload of %d bytes", len(udpData))
	}
	if !ip6filter.ShouldForwardToHost(dstAddr) {
		logger.Debugf("udp datagram to %v stays in simulation", dstAddr)
		return nil
	}
	return s.sendEvent(&event.Event{
		Type: event.EventTypeUdpToHost,
		MsgToHostData: event.MsgToHostEventData{
			SrcPort:       srcPort,
			DstPort:       dstPort,
			SrcIp6Address: srcAddr,
			DstIp6Address: dstAddr,
		},
		Data: udpData,
	})
}

// ForwardIp6ToHost sends a full IPv6 datagram from the node towards the
// simulated host network. The datagram's own header determines the addressing;
// a datagram that does not parse is dropped with a warning, since the node may
// emit traffic the host side has no use for.
func (s *Session) ForwardIp6ToHost(datagram []byte) error {
	if len(datagram) > types.MaxIp6DatagramLength || len(datagram) > event.MaxMsgToHostDataLength {
		return errors.Wrapf(event.ErrOversizedPayload, "ip6 datagram of %d bytes", len(datagram))
	}

	hdr, err := ipv6.ParseHeader(datagram)
	if err != nil {
		logger.Warnf("dropping unparseable ip6 datagram (%d bytes): %v", len(datagram), err)
		return nil
	}
	srcAddr, ok1 := netip.AddrFromSlice(hdr.Src)
	dstAddr, ok2 := netip.AddrFromSlice(hdr.Dst)
	if !ok1 || !ok2 {
		logger.Warnf("dropping ip6 datagram with malformed addresses")
		return nil
	}
	if !ip6filter.ShouldForwardToHost(dstAddr) {
		logger.Debugf("ip6 datagram to %v stays in simulation", dstAddr)
		return nil
	}

	// for UDP the ports are duplicated into the event metadata, so the host
	// side can route without re-parsing the datagram.
	var srcPort, dstPort uint16
	if hdr.NextHeader == protocolUdp && len(datagram) >= ipv6.HeaderLen+4 {
		srcPort = binary.BigEndian.Uint16(datagram[ipv6.HeaderLen : ipv6.HeaderLen+2])
		dstPort = binary.BigEndian.Uint16(datagram[ipv6.HeaderLen+2 : ipv6.HeaderLen+4])
	}

	return s.sendEvent(&event.Event{
		Type: event.EventTypeIp6ToHost,
		MsgToHostData: event.MsgToHostEventData{
			SrcPort:       srcPort,
			DstPort:       dstPort,
			SrcIp6Address: srcAddr,
			DstIp6Address: dstAddr,
		},
		Data: datagram,
	})
}

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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openthread/ot-nodesim/event"
	"github.com/openthread/ot-nodesim/types"
)

// buildIp6Udp assembles an IPv6 datagram carrying one UDP packet.
func buildIp6Udp(src, dst netip.Addr, srcPort, dstPort uint16, udpPayload []byte) []byte {
	udpLen := 8 + len(udpPayload)
	dgram := make([]byte, 40+udpLen)
	dgram[0] = 6 << 4
	binary.BigEndian.PutUint16(dgram[4:6], uint16(udpLen))
	dgram[6] = protocolUdp
	dgram[7] = 64
	copy(dgram[8:24], src.AsSlice())
	copy(dgram[24:40], dst.AsSlice())
	binary.BigEndian.PutUint16(dgram[40:42], srcPort)
	binary.BigEndian.PutUint16(dgram[42:44], dstPort)
	binary.BigEndian.PutUint16(dgram[44:46], uint16(udpLen))
	copy(dgram[48:], udpPayload)
	return dgram
}

func TestForwardIp6ToHost(t *testing.T) {
	f := newFixture()
	dgram := buildIp6Udp(mustAddr("fd00::1"), mustAddr("2001:db8::1"), 49152, 5683, []byte("coap"))

	assert.NoError(t, f.sess.ForwardIp6ToHost(dgram))
	require.Len(t, f.conn.tx, 1)
	hdr, payload := sentHeader(t, f.conn, 0)
	assert.Equal(t, event.EventTypeIp6ToHost, hdr.Type)
	assert.Equal(t, uint16(49152), binary.LittleEndian.Uint16(payload[0:2]))
	assert.Equal(t, uint16(5683), binary.LittleEndian.Uint16(payload[2:4]))
	assert.Equal(t, mustAddr("fd00::1").AsSlice(), payload[4:20])
	assert.Equal(t, mustAddr("2001:db8::1").AsSlice(), payload[20:36])
	assert.Equal(t, dgram, payload[36:])
}

func TestForwardIp6ToHostFiltersLinkLocal(t *testing.T) {
	f := newFixture()
	assert.NoError(t, f.sess.ForwardIp6ToHost(
		buildIp6Udp(mustAddr("fe80::1"), mustAddr("fe80::2"), 19788, 19788, []byte("mle"))))
	assert.NoError(t, f.sess.ForwardIp6ToHost(
		buildIp6Udp(mustAddr("fd00::1"), mustAddr("ff02::1"), 19788, 19788, []byte("mle"))))
	assert.Empty(t, f.conn.tx)
}

func TestForwardIp6ToHostDropsUnparseable(t *testing.T) {
	f := newFixture()
	// too short for an IPv6 header: dropped, not fatal.
	assert.NoError(t, f.sess.ForwardIp6ToHost([]byte{0x60, 0x00, 0x00}))
	assert.Empty(t, f.conn.tx)
}

func TestForwardIp6ToHostRejectsOversized(t *testing.T) {
	f := newFixture()
	err := f.sess.ForwardIp6ToHost(make([]byte, types.MaxIp6DatagramLength+1))
	assert.True(t, errors.Is(err, event.ErrOversizedPayload))

	// a datagram within the interface MTU can still overflow the event
	// payload once the 36-byte metadata prefix is added.
	dgram := buildIp6Udp(mustAddr("fd00::1"), mustAddr("2001:db8::1"), 49152, 5683,
		make([]byte, 1100-48))
	err = f.sess.ForwardIp6ToHost(dgram)
	assert.True(t, errors.Is(err, event.ErrOversizedPayload))
	assert.Empty(t, f.conn.tx)
}

func TestForwardIp6ToHostLargestFittingDatagram(t *testing.T) {
	f := newFixture()
	dgram := buildIp6Udp(mustAddr("fd00::1"), mustAddr("2001:db8::1"), 49152, 5683,
		make([]byte, event.MaxMsgToHostDataLength-48))

	assert.NoError(t, f.sess.ForwardIp6ToHost(dgram))
	hdr, _ := sentHeader(t, f.conn, 0)
	assert.Equal(t, uint16(types.MaxEventPayloadLength), hdr.PayloadLen)
}

func TestForwardUdpToHost(t *testing.T) {
	f := newFixture()
	assert.NoError(t, f.sess.ForwardUdpToHost([]byte("data"), 1234, 5678,
		mustAddr("fd00::1"), mustAddr("fd00:beef::2")))

	require.Len(t, f.conn.tx, 1)
	hdr, payload := sentHeader(t, f.conn, 0)
	assert.Equal(t, event.EventTypeUdpToHost, hdr.Type)
	assert.Equal(t, uint16(1234), binary.LittleEndian.Uint16(payload[0:2]))
	assert.Equal(t, []byte("data"), payload[36:])
}

func TestForwardUdpToHostFiltersNarrowMulticast(t *testing.T) {
	f := newFixture()
	assert.NoError(t, f.sess.ForwardUdpToHost([]byte("x"), 1, 2, mustAddr("fd00::1"), mustAddr("ff03::1")))
	assert.Empty(t, f.conn.tx)

	// admin-local scope and wider do cross into the host network.
	assert.NoError(t, f.sess.ForwardUdpToHost([]byte("x"), 1, 2, mustAddr("fd00::1"), mustAddr("ff04::1")))
	assert.Len(t, f.conn.tx, 1)
}

func TestForwardUdpToHostRejectsOversized(t *testing.T) {
	f := newFixture()
	err := f.sess.ForwardUdpToHost(make([]byte, types.MaxUdpPayloadLength+1), 1, 2,
		mustAddr("fd00::1"), mustAddr("fd00::2"))
	assert.True(t, errors.Is(err, event.ErrOversizedPayload))

	err = f.sess.ForwardUdpToHost(make([]byte, event.MaxMsgToHostDataLength+1), 1, 2,
		mustAddr("fd00::1"), mustAddr("fd00::2"))
	assert.True(t, errors.Is(err, event.ErrOversizedPayload))
	assert.Empty(t, f.conn.tx)
}

func TestForwardUdpToHostLargestFittingPayload(t *testing.T) {
	f := newFixture()
	assert.NoError(t, f.sess.ForwardUdpToHost(make([]byte, event.MaxMsgToHostDataLength), 1, 2,
		mustAddr("fd00::1"), mustAddr("fd00::2")))

	hdr, _ := sentHeader(t, f.conn, 0)
	assert.Equal(t, event.EventTypeUdpToHost, hdr.Type)
	assert.Equal(t, uint16(types.MaxEventPayloadLength), hdr.PayloadLen)
}

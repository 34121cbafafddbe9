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

// Package event implements the codec for the event frames exchanged between
// a simulated OT node and the simulator.
package event

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"net/netip"

	"github.com/pkg/errors"

	"github.com/openthread/ot-nodesim/types"
)

type EventType = uint8

const (
	// Event type IDs (external, shared between simulator and OT node)
	EventTypeAlarmFired         EventType = 0
	EventTypeUartWrite          EventType = 2
	EventTypeStatusPush         EventType = 5
	EventTypeRadioCommStart     EventType = 6
	EventTypeRadioTxDone        EventType = 7
	EventTypeRadioChannelSample EventType = 8
	EventTypeRadioState         EventType = 9
	EventTypeRadioRxDone        EventType = 10
	EventTypeExtAddr            EventType = 11
	EventTypeNodeInfo           EventType = 12
	EventTypeRadioRfSimParamGet EventType = 16
	EventTypeRadioRfSimParamSet EventType = 17
	EventTypeRadioRfSimParamRsp EventType = 18
	EventTypeUdpToHost          EventType = 20
	EventTypeIp6ToHost          EventType = 21
	EventTypeUdpFromHost        EventType = 22
	EventTypeIp6FromHost        EventType = 23
)

// Event format shared with the simulator.
const EventMsgHeaderLen = 19 // from OT-RFSIM platform, event-sim.h struct EventHeader

// EventHeader is the fixed-size leading part of every event datagram.
type EventHeader struct {
	Delay      uint64
	Type       EventType
	MsgId      uint64
	PayloadLen uint16
}

// Event is one decoded unit of the simulator-node protocol. It is transient:
// it lives for the duration of a single dispatch and is not retained by it.
type Event struct {
	Delay uint64
	Type  EventType
	MsgId uint64
	Data  []byte

	// supplementary payload data stored in Event.Data, depends on the event type.
	RadioCommData  RadioCommEventData
	RadioStateData RadioStateEventData
	NodeInfoData   NodeInfoEventData
	RfSimParamData RfSimParamEventData
	MsgToHostData  MsgToHostEventData
}

const radioCommEventDataHeaderLen = 11 // from OT-RFSIM platform, event-sim.h struct
type RadioCommEventData struct {
	Channel  uint8
	PowerDbm int8
	Error    uint8
	Duration uint64
}

const radioStateEventDataHeaderLen = 14 // from OT-RFSIM platform, event-sim.h struct
type RadioStateEventData struct {
	Channel     uint8
	PowerDbm    int8
	RxSensDbm   int8
	EnergyState types.RadioStates
	SubState    types.RadioSubStates
	State       types.RadioStates
	RadioTime   uint64
}

const nodeInfoEventDataHeaderLen = 4 // from OT-RFSIM platform, otSimSendNodeInfoEvent()
type NodeInfoEventData struct {
	NodeId types.NodeId
}

const rfSimParamEventDataHeaderLen = 5 // from OT-RFSIM platform
type RfSimParamEventData struct {
	Param types.RfSimParam
	Value int32
}

const msgToHostEventDataHeaderLen = 36 // from OT-RFSIM platform

// MaxMsgToHostDataLength is the largest datagram that fits a host-bound event
// next to its MsgToHostEventData prefix.
const MaxMsgToHostDataLength = types.MaxEventPayloadLength - msgToHostEventDataHeaderLen

type MsgToHostEventData struct {
	SrcPort       uint16
	DstPort       uint16
	SrcIp6Address netip.Addr
	DstIp6Address netip.Addr
}

// UnmarshalEventHeader decodes and validates the fixed-size event header.
// The payload length is validated here, before any payload is read.
func UnmarshalEventHeader(data []byte) (EventHeader, error) {
	var hdr EventHeader
	if len(data) < EventMsgHeaderLen {
		return hdr, errors.Wrapf(ErrTruncatedHeader, "%d bytes received, header is %d", len(data), EventMsgHeaderLen)
	}
	hdr.Delay = binary.LittleEndian.Uint64(data[:8])
	hdr.Type = data[8]
	hdr.MsgId = binary.LittleEndian.Uint64(data[9:17])
	hdr.PayloadLen = binary.LittleEndian.Uint16(data[17:19])
	if hdr.PayloadLen > types.MaxEventPayloadLength {
		return hdr, errors.Wrapf(ErrOversizedPayload, "payload length %d exceeds %d", hdr.PayloadLen, types.MaxEventPayloadLength)
	}
	return hdr, nil
}

// UnmarshalEvent builds a validated Event from a decoded header and its payload
// bytes. The typed payload view for the event's type is decoded here, once, so
// that dispatch needs no further size checks. An event type the node does not
// receive from the simulator is rejected as unrecognized.
func UnmarshalEvent(hdr EventHeader, payload []byte) (*Event, error) {
	if len(payload) < int(hdr.PayloadLen) {
		return nil, errors.Wrapf(ErrTruncatedPayload, "%d bytes received, expected %d", len(payload), hdr.PayloadLen)
	}

	ev := &Event{
		Delay: hdr.Delay,
		Type:  hdr.Type,
		MsgId: hdr.MsgId,
	}
	data := payload[:hdr.PayloadLen]
	var err error
	var payloadOffset int

	switch ev.Type {
	case EventTypeAlarmFired, EventTypeUartWrite:
		// raw payload only
	case EventTypeRadioCommStart, EventTypeRadioRxDone, EventTypeRadioTxDone, EventTypeRadioChannelSample:
		ev.RadioCommData, err = unmarshalRadioCommData(data)
		payloadOffset = radioCommEventDataHeaderLen
	case EventTypeRadioRfSimParamGet, EventTypeRadioRfSimParamSet:
		ev.RfSimParamData, err = unmarshalRfSimParamData(data)
		payloadOffset = rfSimParamEventDataHeaderLen
	case EventTypeUdpFromHost, EventTypeIp6FromHost:
		ev.MsgToHostData, err = unmarshalMsgToHostData(data)
		payloadOffset = msgToHostEventDataHeaderLen
	default:
		return nil, errors.Wrapf(ErrUnknownEventType, "event type %d", ev.Type)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "event type %d", ev.Type)
	}

	ev.Data = make([]byte, len(data)-payloadOffset)
	copy(ev.Data, data[payloadOffset:])

	return ev, nil
}

func unmarshalRadioCommData(data []byte) (RadioCommEventData, error) {
	var s RadioCommEventData
	if len(data) < radioCommEventDataHeaderLen {
		return s, errors.Wrapf(ErrUndersizedPayload, "%d bytes, RadioCommEventData is %d", len(data), radioCommEventDataHeaderLen)
	}
	s.Channel = data[0]
	s.PowerDbm = int8(data[1])
	s.Error = data[2]
	s.Duration = binary.LittleEndian.Uint64(data[3:])
	return s, nil
}

func unmarshalRfSimParamData(data []byte) (RfSimParamEventData, error) {
	var s RfSimParamEventData
	if len(data) < rfSimParamEventDataHeaderLen {
		return s, errors.Wrapf(ErrUndersizedPayload, "%d bytes, RfSimParamEventData is %d", len(data), rfSimParamEventDataHeaderLen)
	}
	s.Param = types.RfSimParam(data[0])
	s.Value = int32(binary.LittleEndian.Uint32(data[1:5]))
	return s, nil
}

func unmarshalMsgToHostData(data []byte) (MsgToHostEventData, error) {
	var s MsgToHostEventData
	if len(data) < msgToHostEventDataHeaderLen {
		return s, errors.Wrapf(ErrUndersizedPayload, "%d bytes, MsgToHostEventData is %d", len(data), msgToHostEventDataHeaderLen)
	}
	srcIp6 := [16]byte{}
	dstIp6 := [16]byte{}
	copy(srcIp6[:], data[4:20])
	copy(dstIp6[:], data[20:36])

	s.SrcPort = binary.LittleEndian.Uint16(data[0:2])
	s.DstPort = binary.LittleEndian.Uint16(data[2:4])
	s.SrcIp6Address = netip.AddrFrom16(srcIp6)
	s.DstIp6Address = netip.AddrFrom16(dstIp6)
	return s, nil
}

// Serialize serializes this Event into []byte to send to the simulator,
// including the typed payload fields of composite event types.
func (e *Event) Serialize() []byte {
	var extraFields []byte
	switch e.Type {
	case EventTypeRadioCommStart, EventTypeRadioRxDone, EventTypeRadioTxDone, EventTypeRadioChannelSample:
		extraFields = []byte{e.RadioCommData.Channel, byte(e.RadioCommData.PowerDbm), e.RadioCommData.Error,
			0, 0, 0, 0, 0, 0, 0, 0}
		binary.LittleEndian.PutUint64(extraFields[3:], e.RadioCommData.Duration)
	case EventTypeRadioState:
		extraFields = make([]byte, radioStateEventDataHeaderLen)
		extraFields[0] = e.RadioStateData.Channel
		extraFields[1] = byte(e.RadioStateData.PowerDbm)
		extraFields[2] = byte(e.RadioStateData.RxSensDbm)
		extraFields[3] = byte(e.RadioStateData.EnergyState)
		extraFields[4] = byte(e.RadioStateData.SubState)
		extraFields[5] = byte(e.RadioStateData.State)
		binary.LittleEndian.PutUint64(extraFields[6:14], e.RadioStateData.RadioTime)
	case EventTypeNodeInfo:
		extraFields = make([]byte, nodeInfoEventDataHeaderLen)
		binary.LittleEndian.PutUint32(extraFields, uint32(e.NodeInfoData.NodeId))
	case EventTypeRadioRfSimParamGet, EventTypeRadioRfSimParamSet, EventTypeRadioRfSimParamRsp:
		extraFields = []byte{byte(e.RfSimParamData.Param), 0, 0, 0, 0}
		binary.LittleEndian.PutUint32(extraFields[1:], uint32(e.RfSimParamData.Value))
	case EventTypeUdpToHost, EventTypeIp6ToHost, EventTypeUdpFromHost, EventTypeIp6FromHost:
		extraFields = make([]byte, msgToHostEventDataHeaderLen)
		binary.LittleEndian.PutUint16(extraFields[0:2], e.MsgToHostData.SrcPort)
		binary.LittleEndian.PutUint16(extraFields[2:4], e.MsgToHostData.DstPort)
		copy(extraFields[4:20], e.MsgToHostData.SrcIp6Address.AsSlice())
		copy(extraFields[20:36], e.MsgToHostData.DstIp6Address.AsSlice())
	default:
		break
	}

	payload := append(extraFields, e.Data...)
	msg := make([]byte, EventMsgHeaderLen+len(payload))
	binary.LittleEndian.PutUint64(msg[:8], e.Delay)
	msg[8] = e.Type
	binary.LittleEndian.PutUint64(msg[9:17], e.MsgId)
	binary.LittleEndian.PutUint16(msg[17:19], uint16(len(payload)))
	copy(msg[EventMsgHeaderLen:], payload)

	return msg
}

// Copy creates a (struct) copy of the Event.
func (e *Event) Copy() Event {
	newEv := *e
	return newEv
}

func (e *Event) String() string {
	paylStr := ""
	if len(e.Data) > 0 {
		paylStr = fmt.Sprintf(",payl=%s", hex.EncodeToString(e.Data))
	}
	return fmt.Sprintf("Ev{%2d,mid=%d,dly=%v%s}", e.Type, e.MsgId, e.Delay, paylStr)
}

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

	"github.com/pkg/errors"

	"github.com/openthread/ot-nodesim/event"
	"github.com/openthread/ot-nodesim/logger"
	"github.com/openthread/ot-nodesim/types"
)

// sendEvent stamps the event with the msgId of the last received event, so
// the simulator can correlate it to its own timeline, and writes it as a
// single datagram. A write failure is fatal to the session.
func (s *Session) sendEvent(ev *event.Event) error {
	ev.MsgId = s.lastMsgId
	msg := ev.Serialize()
	logger.Tracef("send %v", ev)
	if _, err := s.conn.Write(msg); err != nil {
		return errors.Wrapf(err, "sending event type %d", ev.Type)
	}
	return nil
}

// sendNodeInfo announces the node's ID as the very first event of a session.
func (s *Session) sendNodeInfo() error {
	return s.sendEvent(&event.Event{
		Type:         event.EventTypeNodeInfo,
		NodeInfoData: event.NodeInfoEventData{NodeId: s.nodeId},
	})
}

// SendStatusPush sends a status string to the simulator. Oversized statuses
// are truncated rather than rejected, a shortened status line is still of use
// while a failed session is not.
func (s *Session) SendStatusPush(text string) error {
	data := []byte(text)
	if len(data) > types.MaxEventPayloadLength {
		data = data[:types.MaxEventPayloadLength]
	}
	return s.sendEvent(&event.Event{
		Type: event.EventTypeStatusPush,
		Data: data,
	})
}

// SendUartWrite sends node UART output (e.g. CLI responses and logs) to the
// simulator, chunked to the maximum payload size.
func (s *Session) SendUartWrite(data []byte) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > types.MaxEventPayloadLength {
			chunk = chunk[:types.MaxEventPayloadLength]
		}
		err := s.sendEvent(&event.Event{
			Type: event.EventTypeUartWrite,
			Data: chunk,
		})
		if err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// SendRadioTx submits a frame transmission to the simulator. The comm data
// carries channel, tx power and the air-time duration of the frame.
func (s *Session) SendRadioTx(frame []byte, commData *event.RadioCommEventData) error {
	if len(frame)+11 > types.MaxEventPayloadLength {
		return errors.Wrapf(event.ErrOversizedPayload, "radio frame of %d bytes", len(frame))
	}
	return s.sendEvent(&event.Event{
		Type:          event.EventTypeRadioCommStart,
		Delay:         commData.Duration,
		RadioCommData: *commData,
		Data:          frame,
	})
}

// SendChannelSample asks the simulator for a channel sample (CCA or energy
// detect); the result arrives later as a radio-channel-sample event.
func (s *Session) SendChannelSample(commData *event.RadioCommEventData) error {
	return s.sendEvent(&event.Event{
		Type:          event.EventTypeRadioChannelSample,
		Delay:         commData.Duration,
		RadioCommData: *commData,
	})
}

// SendRadioStateReport reports the radio's current state, as obtained from
// the radio handler. deadline is the simulated-time delay until the radio
// expects its next internal state change, 0 if none is scheduled.
func (s *Session) SendRadioStateReport(deadline uint64) error {
	stateData := s.handlers.Radio.State()
	stateData.RadioTime = uint64(s.clock.Now())
	return s.sendEvent(&event.Event{
		Type:           event.EventTypeRadioState,
		Delay:          deadline,
		RadioStateData: stateData,
	})
}

// SendExtAddr reports a change of the node's extended (EUI-64) address.
func (s *Session) SendExtAddr(extAddr uint64) error {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, extAddr)
	return s.sendEvent(&event.Event{
		Type: event.EventTypeExtAddr,
		Data: data,
	})
}

func (s *Session) sendParamResponse(param types.RfSimParam, value types.RfSimParamValue) error {
	return s.sendEvent(&event.Event{
		Type: event.EventTypeRadioRfSimParamRsp,
		RfSimParamData: event.RfSimParamEventData{
			Param: param,
			Value: int32(value),
		},
	})
}

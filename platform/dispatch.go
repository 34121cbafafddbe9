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
	"github.com/openthread/ot-nodesim/event"
	"github.com/openthread/ot-nodesim/logger"
	"github.com/openthread/ot-nodesim/types"
)

// dispatchEvent routes one validated event to its handler. The clock has
// already advanced; dispatch never touches it. Unvalidated event types can't
// reach here, event.UnmarshalEvent rejects them.
func (s *Session) dispatchEvent(ev *event.Event) error {
	switch ev.Type {
	case event.EventTypeAlarmFired:
		// the clock advance was the whole effect.
	case event.EventTypeUartWrite:
		if s.handlers.Uart == nil {
			logger.Debugf("no uart handler, dropping %d bytes of uart data", len(ev.Data))
			break
		}
		s.handlers.Uart.UartReceive(ev.Data)
	case event.EventTypeRadioCommStart:
		s.handlers.Radio.RxStart(&ev.RadioCommData)
	case event.EventTypeRadioRxDone:
		s.handlers.Radio.RxDone(ev.Data, &ev.RadioCommData)
	case event.EventTypeRadioTxDone:
		s.handlers.Radio.TxDone(&ev.RadioCommData)
	case event.EventTypeRadioChannelSample:
		s.handlers.Radio.CcaDone(&ev.RadioCommData)
	case event.EventTypeRadioRfSimParamGet:
		value := s.handlers.Radio.ParamGet(ev.RfSimParamData.Param)
		return s.sendParamResponse(ev.RfSimParamData.Param, value)
	case event.EventTypeRadioRfSimParamSet:
		return s.applyParamSet(ev.RfSimParamData.Param, types.RfSimParamValue(ev.RfSimParamData.Value))
	case event.EventTypeUdpFromHost:
		s.dispatchHostEvent(ev, "udp")
	case event.EventTypeIp6FromHost:
		s.dispatchHostEvent(ev, "ip6")
	default:
		logger.Panicf("unreachable: undecodable event type %d was dispatched", ev.Type)
	}
	return nil
}

// applyParamSet applies a parameter change and confirms it with a param
// response carrying the value now in effect, followed by a single radio state
// report so the simulator sees the consequences of the change.
func (s *Session) applyParamSet(param types.RfSimParam, value types.RfSimParamValue) error {
	applied := s.handlers.Radio.ParamSet(param, value)
	if applied == types.RfSimValueInvalid {
		logger.Warnf("radio rejected parameter %v=%d", param, value)
	}
	if err := s.sendParamResponse(param, applied); err != nil {
		return err
	}
	return s.SendRadioStateReport(0)
}

func (s *Session) dispatchHostEvent(ev *event.Event, kind string) {
	if s.handlers.Host == nil {
		logger.Debugf("no host handler, dropping %s datagram of %d bytes", kind, len(ev.Data))
		return
	}
	var err error
	if ev.Type == event.EventTypeUdpFromHost {
		err = s.handlers.Host.UdpFromHost(&ev.MsgToHostData, ev.Data)
	} else {
		err = s.handlers.Host.Ip6FromHost(&ev.MsgToHostData, ev.Data)
	}
	if err != nil {
		// a datagram the node can't take is dropped, like on a real interface.
		logger.Warnf("dropping %s datagram from host %v: %v", kind, ev.MsgToHostData.SrcIp6Address, err)
	}
}

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
	"github.com/openthread/ot-nodesim/types"
)

// RadioHandler is the contract of the node's radio state machine, as far as
// the sync client needs it. The handlers get the typed payload view of the
// event; for rx-done additionally the trailing frame bytes. None of them
// returns an error: radio semantics are the handler's problem, framing and
// timing are the session's.
type RadioHandler interface {
	RxStart(data *event.RadioCommEventData)
	RxDone(frame []byte, data *event.RadioCommEventData)
	TxDone(data *event.RadioCommEventData)
	CcaDone(data *event.RadioCommEventData)

	// ParamGet returns the current value of an RF simulation parameter,
	// or types.RfSimValueInvalid for an unknown parameter.
	ParamGet(param types.RfSimParam) types.RfSimParamValue

	// ParamSet applies value and returns the value now in effect (the radio
	// may clamp it).
	ParamSet(param types.RfSimParam, value types.RfSimParamValue) types.RfSimParamValue

	// State reports the radio's current state for the periodic state report
	// events sent to the simulator.
	State() event.RadioStateEventData
}

// UartHandler receives the bytes of uart-write events, e.g. CLI input for the
// node.
type UartHandler interface {
	UartReceive(data []byte)
}

// HostHandler ingests datagrams that the simulated host network sends towards
// the node. A returned error is a semantic failure (e.g. no buffers); it is
// logged by the session and does not end the session.
type HostHandler interface {
	UdpFromHost(meta *event.MsgToHostEventData, udpData []byte) error
	Ip6FromHost(meta *event.MsgToHostEventData, datagram []byte) error
}

// Handlers bundles the collaborators that received events are dispatched to.
type Handlers struct {
	Radio RadioHandler
	Uart  UartHandler
	Host  HostHandler
}

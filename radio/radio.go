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

// Package radio implements a basic simulated radio: it tracks radio state and
// the RF simulation parameters, and counts the traffic the simulator delivers.
// It is the default radio of the nodesim binary; richer node stacks provide
// their own.
package radio

import (
	"github.com/openthread/ot-nodesim/event"
	"github.com/openthread/ot-nodesim/logger"
	"github.com/openthread/ot-nodesim/types"
)

const defaultChannel = 11

type paramBounds struct {
	min, max types.RfSimParamValue
}

var bounds = map[types.RfSimParam]paramBounds{
	types.ParamRxSensitivity:  {types.RssiMin, types.RssiMax},
	types.ParamCcaThreshold:   {types.RssiMin, types.RssiMax},
	types.ParamCslAccuracy:    {0, 255},
	types.ParamCslUncertainty: {0, 255},
	types.ParamTxInterferer:   {0, 100},
}

// Radio is a minimal radio state machine behind the event session. Out of
// band values passed to SetParam are clamped to the radio's hardware range.
type Radio struct {
	params   map[types.RfSimParam]types.RfSimParamValue
	state    types.RadioStates
	subState types.RadioSubStates
	channel  uint8
	txPower  int8

	rxCount  int
	txCount  int
	ccaCount int
}

// New creates a Radio in receive state with default parameters, overridden by
// initialParams (keyed by parameter name, as in the config file).
func New(initialParams map[string]types.RfSimParamValue) *Radio {
	r := &Radio{
		params: map[types.RfSimParam]types.RfSimParamValue{
			types.ParamRxSensitivity:  -100,
			types.ParamCcaThreshold:   -75,
			types.ParamCslAccuracy:    20,
			types.ParamCslUncertainty: 10,
			types.ParamTxInterferer:   0,
		},
		state:    types.RadioRx,
		subState: types.RFSIM_RADIO_SUBSTATE_READY,
		channel:  defaultChannel,
	}
	for name, v := range initialParams {
		param := types.ParseRfSimParam(name)
		logger.AssertTrue(param != types.ParamUnknown, "unknown radio parameter %q", name)
		r.params[param] = clamp(param, v)
	}
	return r
}

func clamp(param types.RfSimParam, v types.RfSimParamValue) types.RfSimParamValue {
	b := bounds[param]
	if v < b.min {
		return b.min
	}
	if v > b.max {
		return b.max
	}
	return v
}

func (r *Radio) RxStart(data *event.RadioCommEventData) {
	r.channel = data.Channel
	r.subState = types.RFSIM_RADIO_SUBSTATE_RX_FRAME_ONGOING
}

func (r *Radio) RxDone(frame []byte, data *event.RadioCommEventData) {
	r.subState = types.RFSIM_RADIO_SUBSTATE_READY
	if data.Error != types.OT_ERROR_NONE {
		logger.Debugf("rx failed on channel %d: error %d", data.Channel, data.Error)
		return
	}
	r.rxCount++
	logger.Debugf("rx %d bytes on channel %d at %d dBm", len(frame), data.Channel, data.PowerDbm)
}

func (r *Radio) TxDone(data *event.RadioCommEventData) {
	r.txCount++
	r.subState = types.RFSIM_RADIO_SUBSTATE_READY
}

func (r *Radio) CcaDone(data *event.RadioCommEventData) {
	r.ccaCount++
	r.subState = types.RFSIM_RADIO_SUBSTATE_READY
	logger.Debugf("cca on channel %d: %d dBm", data.Channel, data.PowerDbm)
}

func (r *Radio) ParamGet(param types.RfSimParam) types.RfSimParamValue {
	if v, ok := r.params[param]; ok {
		return v
	}
	return types.RfSimValueInvalid
}

func (r *Radio) ParamSet(param types.RfSimParam, value types.RfSimParamValue) types.RfSimParamValue {
	if _, ok := r.params[param]; !ok {
		return types.RfSimValueInvalid
	}
	v := clamp(param, value)
	r.params[param] = v
	return v
}

func (r *Radio) State() event.RadioStateEventData {
	return event.RadioStateEventData{
		Channel:     r.channel,
		PowerDbm:    r.txPower,
		RxSensDbm:   int8(r.params[types.ParamRxSensitivity]),
		EnergyState: r.state,
		SubState:    r.subState,
		State:       r.state,
	}
}

// Counts returns the numbers of received frames, completed transmissions and
// channel samples so far.
func (r *Radio) Counts() (rx, tx, cca int) {
	return r.rxCount, r.txCount, r.ccaCount
}

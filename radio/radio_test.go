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

package radio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openthread/ot-nodesim/event"
	"github.com/openthread/ot-nodesim/types"
)

func TestNewDefaultsAndOverrides(t *testing.T) {
	r := New(map[string]types.RfSimParamValue{"rxsens": -105})
	assert.Equal(t, types.RfSimParamValue(-105), r.ParamGet(types.ParamRxSensitivity))
	assert.Equal(t, types.RfSimParamValue(-75), r.ParamGet(types.ParamCcaThreshold))
	assert.Equal(t, types.RfSimParamValue(20), r.ParamGet(types.ParamCslAccuracy))
}

func TestParamSetClamps(t *testing.T) {
	r := New(nil)
	assert.Equal(t, types.RfSimParamValue(types.RssiMin), r.ParamSet(types.ParamRxSensitivity, -500))
	assert.Equal(t, types.RfSimParamValue(100), r.ParamSet(types.ParamTxInterferer, 250))
	assert.Equal(t, types.RfSimParamValue(-80), r.ParamSet(types.ParamCcaThreshold, -80))

	assert.Equal(t, types.RfSimValueInvalid, r.ParamSet(types.RfSimParam(99), 1))
	assert.Equal(t, types.RfSimValueInvalid, r.ParamGet(types.RfSimParam(99)))
}

func TestRxCountsOnlySuccessfulFrames(t *testing.T) {
	r := New(nil)
	r.RxStart(&event.RadioCommEventData{Channel: 15})
	r.RxDone([]byte{1, 2, 3}, &event.RadioCommEventData{Channel: 15, Error: types.OT_ERROR_NONE})
	r.RxDone([]byte{1, 2, 3}, &event.RadioCommEventData{Channel: 15, Error: types.OT_ERROR_FCS})

	rx, _, _ := r.Counts()
	assert.Equal(t, 1, rx)
	assert.Equal(t, uint8(15), r.State().Channel)
	assert.Equal(t, types.RFSIM_RADIO_SUBSTATE_READY, r.State().SubState)
}

func TestStateReflectsParams(t *testing.T) {
	r := New(nil)
	r.ParamSet(types.ParamRxSensitivity, -110)
	st := r.State()
	assert.Equal(t, int8(-110), st.RxSensDbm)
	assert.Equal(t, types.RadioRx, st.State)
}

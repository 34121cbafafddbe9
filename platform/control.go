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
	"github.com/openthread/ot-nodesim/types"
)

// Control surface for the interactive console. These must not be called
// concurrently with Run; the console is used when no event loop is running.

// SimTime returns the node's current simulated time in microseconds.
func (s *Session) SimTime() types.SimTime {
	return s.clock.Now()
}

// Param reads an RF simulation parameter from the radio.
func (s *Session) Param(param types.RfSimParam) types.RfSimParamValue {
	return s.handlers.Radio.ParamGet(param)
}

// SetParam writes an RF simulation parameter and reports the resulting radio
// state to the simulator. Returns the value now in effect.
func (s *Session) SetParam(param types.RfSimParam, value types.RfSimParamValue) (types.RfSimParamValue, error) {
	applied := s.handlers.Radio.ParamSet(param, value)
	if err := s.SendRadioStateReport(0); err != nil {
		return applied, err
	}
	return applied, nil
}

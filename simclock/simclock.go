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

// Package simclock implements the simulated clock of a node. The clock is
// advanced only by the delay fields of received events, never by wall-clock
// time.
package simclock

import (
	"math"

	"github.com/openthread/ot-nodesim/logger"
	"github.com/openthread/ot-nodesim/types"
)

// Clock tracks the node's simulated time. It only moves forward.
type Clock struct {
	now types.SimTime
}

func New() *Clock {
	return &Clock{}
}

// Now returns the current simulated time in microseconds.
func (c *Clock) Now() types.SimTime {
	return c.now
}

// Advance moves simulated time forward by delay microseconds and returns the
// new time. It is applied exactly once per received event, before the event
// is dispatched. An overflowing delay means the simulator's time base has
// desynchronized from the node's and cannot be repaired locally.
func (c *Clock) Advance(delay uint64) types.SimTime {
	logger.AssertTruef(delay <= math.MaxUint64-c.now, "simulated clock overflow: now=%d delay=%d", c.now, delay)
	c.now += delay
	return c.now
}

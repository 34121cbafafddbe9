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

// OpenThread-specific types and definitions.

package types

import "github.com/simonlingoogle/go-simplelogger"

// OT_ERROR_* error codes from OpenThread that occur in radio events.
// (See OpenThread error.h for details)
const (
	OT_ERROR_NONE  = 0
	OT_ERROR_ABORT = 11
	OT_ERROR_FCS   = 17
)

// RSSI parameter encodings for communication with the simulator.
const (
	RssiInvalid       = 127
	RssiMax           = 126
	RssiMin           = -126
	RssiMinusInfinity = -127
)

type RadioStates byte

const (
	RadioDisabled RadioStates = 0
	RadioSleep    RadioStates = 1
	RadioRx       RadioStates = 2
	RadioTx       RadioStates = 3
	RadioInvalid  RadioStates = 255
)

func (s RadioStates) String() string {
	switch s {
	case RadioDisabled:
		return "Off"
	case RadioSleep:
		return "Slp"
	case RadioRx:
		return "Rx_"
	case RadioTx:
		return "Tx_"
	default:
		simplelogger.Panicf("invalid RadioState: %v", byte(s))
		return "invalid"
	}
}

type RadioSubStates byte

const (
	RFSIM_RADIO_SUBSTATE_READY             RadioSubStates = 0
	RFSIM_RADIO_SUBSTATE_IFS_WAIT          RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_TX_CCA            RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_TX_CCA_TO_TX      RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_TX_FRAME_ONGOING  RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_TX_TX_TO_RX       RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_TX_TX_TO_AIFS     RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_TX_AIFS_WAIT      RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_TX_ACK_RX_ONGOING RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_RX_FRAME_ONGOING  RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_RX_AIFS_WAIT      RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_RX_ACK_TX_ONGOING RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_RX_TX_TO_RX       RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_RX_ENERGY_SCAN    RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_STARTUP           RadioSubStates = iota
	RFSIM_RADIO_SUBSTATE_INVALID           RadioSubStates = iota
)

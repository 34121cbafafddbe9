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

// Package platform implements the simulator side of a simulated OT node: the
// event session over the simulator's datagram socket, the receive-dispatch
// cycle, and the outbound event encoders.
//
// Errors returned by Session methods are fatal to the session: a malformed or
// unrecognized frame means the node and simulator disagree on the protocol and
// continuing would only desynchronize them further. Semantic failures inside
// handlers (host datagram parse errors, unknown parameters) are logged and do
// not surface as errors. The session never terminates the process; the caller
// of Run owns that decision.
package platform

import (
	"context"
	"net"

	"github.com/pkg/errors"

	"github.com/openthread/ot-nodesim/event"
	"github.com/openthread/ot-nodesim/logger"
	"github.com/openthread/ot-nodesim/simclock"
	"github.com/openthread/ot-nodesim/types"
)

// Session is one node's event connection to the simulator. It owns the socket,
// the simulated clock and the dispatch of received events to the configured
// handlers. A Session is single-threaded: one receive-dispatch cycle runs to
// completion before the next starts, and all sends happen from within a cycle
// or before the first one.
type Session struct {
	conn     net.Conn
	clock    *simclock.Clock
	nodeId   types.NodeId
	handlers Handlers

	hdrBuf  []byte
	payload []byte

	lastRecvEvent *event.Event // last event received, kept for diagnostics
	lastMsgId     uint64       // msgId of the last received event, echoed on sends
}

// NewSession creates a Session on an already-connected datagram socket. The
// radio handler is mandatory; uart and host handlers may be nil, in which case
// the corresponding events are logged and discarded.
func NewSession(conn net.Conn, nodeId types.NodeId, handlers Handlers) *Session {
	logger.AssertNotNil(conn)
	logger.AssertNotNil(handlers.Radio)

	return &Session{
		conn:     conn,
		clock:    simclock.New(),
		nodeId:   nodeId,
		handlers: handlers,
		hdrBuf:   make([]byte, event.EventMsgHeaderLen),
		payload:  make([]byte, types.MaxEventPayloadLength),
	}
}

// Clock exposes the session's simulated clock, read-only for callers.
func (s *Session) Clock() *simclock.Clock {
	return s.clock
}

// NodeId returns the node ID this session announced to the simulator.
func (s *Session) NodeId() types.NodeId {
	return s.nodeId
}

// Start announces the node to the simulator. The simulator will not schedule
// any events for the node before this.
func (s *Session) Start() error {
	return s.sendNodeInfo()
}

// ReceiveEvent runs exactly one receive cycle: read one event from the socket
// in two datagrams (header, then payload if any), advance the simulated clock
// by the event's delay, then dispatch it. Clock advancement happens for every
// well-formed event regardless of its type.
func (s *Session) ReceiveEvent() error {
	n, err := s.conn.Read(s.hdrBuf)
	if err != nil {
		return errors.Wrap(err, "receiving event header")
	}
	hdr, err := event.UnmarshalEventHeader(s.hdrBuf[:n])
	if err != nil {
		return err
	}

	// the payload, if any, arrives as a separate datagram of exactly
	// hdr.PayloadLen bytes.
	payload := s.payload[:0]
	if hdr.PayloadLen > 0 {
		n, err = s.conn.Read(s.payload)
		if err != nil {
			return errors.Wrap(err, "receiving event payload")
		}
		payload = s.payload[:n]
	}

	ev, err := event.UnmarshalEvent(hdr, payload)
	if err != nil {
		return err
	}
	s.lastRecvEvent = ev
	s.lastMsgId = ev.MsgId

	logger.Tracef("recv %v", ev)
	s.clock.Advance(ev.Delay)

	return s.dispatchEvent(ev)
}

// Run receives and dispatches events until ctx is cancelled or a receive cycle
// fails. Cancellation is only observed between cycles; the socket read itself
// is not interruptible, matching the lock-step nature of the protocol where
// the simulator always has a next event for a live node.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.ReceiveEvent(); err != nil {
			return err
		}
	}
}

// LastEventInfo describes the most recently received event, for the fatal-exit
// diagnostics of the driver.
func (s *Session) LastEventInfo() string {
	if s.lastRecvEvent == nil {
		return "no event received yet"
	}
	return s.lastRecvEvent.String()
}

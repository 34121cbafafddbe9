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

package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openthread/ot-nodesim/progctx"
	"github.com/openthread/ot-nodesim/types"
)

func TestParseBytes(t *testing.T) {
	var cmd Command
	err := parseBytes([]byte("wrongcmd"), &cmd)
	assert.NotNil(t, err)

	assert.True(t, parseBytes([]byte("exit"), &cmd) == nil && cmd.Exit != nil)
	assert.True(t, parseBytes([]byte("time"), &cmd) == nil && cmd.Time != nil)

	assert.Nil(t, parseBytes([]byte("help"), &cmd))
	assert.True(t, cmd.Help != nil && cmd.Help.Topic == "")
	assert.Nil(t, parseBytes([]byte("help param"), &cmd))
	assert.True(t, cmd.Help != nil && cmd.Help.Topic == "param")

	assert.Nil(t, parseBytes([]byte("log"), &cmd))
	assert.True(t, cmd.LogLevel != nil && cmd.LogLevel.Level == "")
	assert.Nil(t, parseBytes([]byte("log debug"), &cmd))
	assert.True(t, cmd.LogLevel != nil && cmd.LogLevel.Level == "debug")
	assert.NotNil(t, parseBytes([]byte("log loud"), &cmd))

	assert.Nil(t, parseBytes([]byte("param get"), &cmd))
	assert.True(t, cmd.Param != nil && cmd.Param.Get != nil && cmd.Param.Get.Name.Name == "")
	assert.Nil(t, parseBytes([]byte("param get rxsens"), &cmd))
	assert.True(t, cmd.Param.Get != nil && cmd.Param.Get.Name.Param() == types.ParamRxSensitivity)

	assert.Nil(t, parseBytes([]byte("param set ccath -70"), &cmd))
	require.NotNil(t, cmd.Param.Set)
	assert.Equal(t, types.ParamCcaThreshold, cmd.Param.Set.Name.Param())
	assert.Equal(t, "-", cmd.Param.Set.Sign)
	assert.Equal(t, types.RfSimParamValue(-70), cmd.Param.Set.Value())
	assert.Nil(t, parseBytes([]byte("param set cslacc 20"), &cmd))
	assert.Equal(t, "", cmd.Param.Set.Sign)
	assert.Equal(t, types.RfSimParamValue(20), cmd.Param.Set.Value())
	assert.NotNil(t, parseBytes([]byte("param set bogus 1"), &cmd))
	assert.NotNil(t, parseBytes([]byte("param set rxsens"), &cmd))
	assert.NotNil(t, parseBytes([]byte("param"), &cmd))

	assert.Nil(t, parseBytes([]byte("status \"router\""), &cmd))
	assert.True(t, cmd.Status != nil && cmd.Status.Text == "router")
	assert.NotNil(t, parseBytes([]byte("status"), &cmd))
}

type fakeController struct {
	statuses []string
	params   map[types.RfSimParam]types.RfSimParamValue
}

func newFakeController() *fakeController {
	return &fakeController{
		params: map[types.RfSimParam]types.RfSimParamValue{
			types.ParamRxSensitivity:  -100,
			types.ParamCcaThreshold:   -75,
			types.ParamCslAccuracy:    20,
			types.ParamCslUncertainty: 10,
			types.ParamTxInterferer:   0,
		},
	}
}

func (c *fakeController) NodeId() types.NodeId   { return 4 }
func (c *fakeController) SimTime() types.SimTime { return 1000000 }

func (c *fakeController) SendStatusPush(text string) error {
	c.statuses = append(c.statuses, text)
	return nil
}

func (c *fakeController) Param(param types.RfSimParam) types.RfSimParamValue {
	if v, ok := c.params[param]; ok {
		return v
	}
	return types.RfSimValueInvalid
}

func (c *fakeController) SetParam(param types.RfSimParam, value types.RfSimParamValue) (types.RfSimParamValue, error) {
	if _, ok := c.params[param]; !ok {
		return types.RfSimValueInvalid, nil
	}
	c.params[param] = value
	return value, nil
}

func runCommand(t *testing.T, rt *CmdRunner, cmdline string) string {
	var buf bytes.Buffer
	err := rt.HandleCommand(cmdline, &buf)
	if err != nil && err != io.EOF {
		t.Fatalf("command %q: %v", cmdline, err)
	}
	return buf.String()
}

func TestCmdRunner(t *testing.T) {
	ctx := progctx.New(context.Background())
	node := newFakeController()
	rt := NewCmdRunner(ctx, node)

	assert.Equal(t, "node4> ", rt.GetPrompt())

	out := runCommand(t, rt, "time")
	assert.Equal(t, "1000000 us\n", out)

	out = runCommand(t, rt, "param get rxsens")
	assert.Equal(t, "-100\n", out)

	out = runCommand(t, rt, "param get")
	assert.Contains(t, out, "rxsens")
	assert.Contains(t, out, "txintf")

	out = runCommand(t, rt, "param set ccath -70")
	assert.Equal(t, "-70\n", out)
	assert.Equal(t, types.RfSimParamValue(-70), node.params[types.ParamCcaThreshold])

	out = runCommand(t, rt, "status \"leader\"")
	assert.Equal(t, "Done\n", out)
	assert.Equal(t, []string{"leader"}, node.statuses)

	out = runCommand(t, rt, "badcommand")
	assert.True(t, strings.HasPrefix(out, "Error:"))

	runCommand(t, rt, "exit")
	assert.NotNil(t, ctx.Err())
}

func TestHelp(t *testing.T) {
	h := newHelp()
	general := h.outputGeneralHelp()
	for _, c := range []string{"exit", "help", "log", "param", "status", "time"} {
		assert.Contains(t, general, c)
	}
	assert.Contains(t, h.outputCommandHelp("param"), "rxsens")
	assert.Contains(t, h.outputCommandHelp("nosuchcmd"), "Non-existent")
}

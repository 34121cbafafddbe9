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

// Package cli implements the node's diagnostic console. It parses and
// executes console commands against a node session.
package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/openthread/ot-nodesim/logger"
	"github.com/openthread/ot-nodesim/progctx"
	"github.com/openthread/ot-nodesim/types"
)

// NodeController is the slice of the node session that console commands
// operate on.
type NodeController interface {
	NodeId() types.NodeId
	SimTime() types.SimTime
	SendStatusPush(text string) error
	Param(param types.RfSimParam) types.RfSimParamValue
	SetParam(param types.RfSimParam, value types.RfSimParamValue) (types.RfSimParamValue, error)
}

// CmdRunner parses and executes console command lines.
type CmdRunner struct {
	ctx  *progctx.ProgCtx
	node NodeController
	help Help
}

func NewCmdRunner(ctx *progctx.ProgCtx, node NodeController) *CmdRunner {
	return &CmdRunner{
		ctx:  ctx,
		node: node,
		help: newHelp(),
	}
}

func (rt *CmdRunner) GetPrompt() string {
	return fmt.Sprintf("node%d> ", rt.node.NodeId())
}

func (rt *CmdRunner) HandleCommand(cmdline string, output io.Writer) error {
	var cmd Command
	if err := parseBytes([]byte(cmdline), &cmd); err != nil {
		if _, err := fmt.Fprintf(output, "Error: %v\n", err); err != nil {
			return err
		}
		return nil
	}
	return rt.execute(&cmd, output)
}

func (rt *CmdRunner) execute(cmd *Command, output io.Writer) error {
	var out string
	var err error

	switch {
	case cmd.Exit != nil:
		rt.ctx.Cancel("exit")
		return io.EOF
	case cmd.Help != nil:
		out = rt.executeHelp(cmd.Help)
	case cmd.LogLevel != nil:
		out, err = rt.executeLogLevel(cmd.LogLevel)
	case cmd.Param != nil:
		out, err = rt.executeParam(cmd.Param)
	case cmd.Status != nil:
		err = rt.node.SendStatusPush(cmd.Status.Text)
	case cmd.Time != nil:
		out = fmt.Sprintf("%d us\n", rt.node.SimTime())
	default:
		err = errors.Errorf("command not implemented")
	}

	if err != nil {
		out = fmt.Sprintf("Error: %v\n", err)
	} else if out == "" {
		out = "Done\n"
	}
	_, werr := io.WriteString(output, out)
	return werr
}

func (rt *CmdRunner) executeHelp(cmd *HelpCmd) string {
	if cmd.Topic == "" {
		return rt.help.outputGeneralHelp()
	}
	return rt.help.outputCommandHelp(cmd.Topic)
}

func (rt *CmdRunner) executeLogLevel(cmd *LogLevelCmd) (string, error) {
	if cmd.Level == "" {
		return fmt.Sprintf("%v\n", logger.GetLevel()), nil
	}
	lv, ok := logger.ParseLevel(cmd.Level)
	if !ok {
		return "", errors.Errorf("unknown log level %q", cmd.Level)
	}
	logger.SetLevel(lv)
	return "", nil
}

func (rt *CmdRunner) executeParam(cmd *ParamCmd) (string, error) {
	switch {
	case cmd.Get != nil:
		if cmd.Get.Name.Name == "" {
			out := ""
			for i, p := range types.RfSimParamsList {
				out += fmt.Sprintf("%-8s %8d %s\n", p, rt.node.Param(p), types.RfSimParamUnitsList[i])
			}
			return out, nil
		}
		param := cmd.Get.Name.Param()
		v := rt.node.Param(param)
		if v == types.RfSimValueInvalid {
			return "", errors.Errorf("parameter %v not supported by radio", param)
		}
		return fmt.Sprintf("%d\n", v), nil
	case cmd.Set != nil:
		param := cmd.Set.Name.Param()
		applied, err := rt.node.SetParam(param, cmd.Set.Value())
		if err != nil {
			return "", err
		}
		if applied == types.RfSimValueInvalid {
			return "", errors.Errorf("parameter %v not supported by radio", param)
		}
		return fmt.Sprintf("%d\n", applied), nil
	}
	return "", errors.Errorf("param requires get or set")
}

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
	"github.com/alecthomas/participle"

	"github.com/openthread/ot-nodesim/types"
)

// noinspection GoStructTag
type Command struct {
	Exit     *ExitCmd     `parser:"  @@"` //nolint
	Help     *HelpCmd     `parser:"| @@"` //nolint
	LogLevel *LogLevelCmd `parser:"| @@"` //nolint
	Param    *ParamCmd    `parser:"| @@"` //nolint
	Status   *StatusCmd   `parser:"| @@"` //nolint
	Time     *TimeCmd     `parser:"| @@"` //nolint
}

// noinspection GoStructTag
type ExitCmd struct {
	Cmd struct{} `parser:"\"exit\""` //nolint
}

// noinspection GoStructTag
type HelpCmd struct {
	Cmd   struct{} `parser:"\"help\""`                                                       //nolint
	Topic string   `parser:"[ @(\"exit\"|\"help\"|\"log\"|\"param\"|\"status\"|\"time\") ]"` //nolint
}

// noinspection GoStructTag
type LogLevelCmd struct {
	Cmd   struct{} `parser:"\"log\""`                                                                  //nolint
	Level string   `parser:"[ @(\"micro\"|\"trace\"|\"debug\"|\"info\"|\"warn\"|\"error\"|\"off\") ]"` //nolint
}

// noinspection GoStructTag
type ParamCmd struct {
	Cmd struct{}     `parser:"\"param\""` //nolint
	Get *ParamGetCmd `parser:"( @@"`      //nolint
	Set *ParamSetCmd `parser:"| @@ )"`    //nolint
}

// noinspection GoStructTag
type ParamGetCmd struct {
	Cmd  struct{}  `parser:"\"get\""` //nolint
	Name ParamName `parser:"[ @@ ]"`  //nolint
}

// noinspection GoStructTag
type ParamSetCmd struct {
	Cmd  struct{}  `parser:"\"set\""`    //nolint
	Name ParamName `parser:"@@"`         //nolint
	Sign string    `parser:"[ @\"-\" ]"` //nolint
	Val  int       `parser:"@Int"`       //nolint
}

// Value combines the optional sign with the magnitude.
func (c *ParamSetCmd) Value() types.RfSimParamValue {
	v := types.RfSimParamValue(c.Val)
	if c.Sign == "-" {
		return -v
	}
	return v
}

// noinspection GoStructTag
type StatusCmd struct {
	Cmd  struct{} `parser:"\"status\""` //nolint
	Text string   `parser:"@String"`    //nolint
}

// noinspection GoStructTag
type TimeCmd struct {
	Cmd struct{} `parser:"\"time\""` //nolint
}

// noinspection GoStructTag
type ParamName struct {
	Name string `parser:"@(\"rxsens\"|\"ccath\"|\"cslacc\"|\"cslunc\"|\"txintf\")"` //nolint
}

func (pn *ParamName) Param() types.RfSimParam {
	return types.ParseRfSimParam(pn.Name)
}

var (
	commandParser = participle.MustBuild(&Command{})
)

func parseBytes(b []byte, cmd *Command) error {
	return commandParser.ParseBytes(b, cmd)
}

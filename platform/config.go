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
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/openthread/ot-nodesim/types"
)

// Config is the per-node configuration, loadable from a YAML file and
// overridable by command line flags.
type Config struct {
	NodeId     types.NodeId `yaml:"node-id"`
	SimAddress string       `yaml:"sim-address"` // simulator socket: host:port, or a unix socket path
	SimNetwork string       `yaml:"sim-network"` // "udp" or "unixgram"
	LogLevel   string       `yaml:"log-level"`

	// initial values of the RF simulation parameters, by parameter name
	// (rxsens, ccath, cslacc, cslunc, txintf). Unlisted parameters keep
	// their radio defaults.
	RfSimParams map[string]types.RfSimParamValue `yaml:"rfsim-params"`
}

func DefaultConfig() Config {
	return Config{
		NodeId:     1,
		SimAddress: "localhost:9000",
		SimNetwork: "udp",
		LogLevel:   "info",
	}
}

// LoadConfigFile reads a YAML config file on top of the defaults. Unknown
// keys are an error, they are almost always typos of known ones.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config file %s", path)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, cfg.check()
}

func (cfg *Config) check() error {
	if cfg.NodeId <= 0 {
		return errors.Errorf("node-id must be positive, got %d", cfg.NodeId)
	}
	if cfg.SimNetwork != "udp" && cfg.SimNetwork != "unixgram" {
		return errors.Errorf("sim-network must be udp or unixgram, got %q", cfg.SimNetwork)
	}
	for name := range cfg.RfSimParams {
		if types.ParseRfSimParam(name) == types.ParamUnknown {
			return errors.Errorf("unknown rfsim parameter %q", name)
		}
	}
	return nil
}

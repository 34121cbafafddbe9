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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openthread/ot-nodesim/types"
)

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "node.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
node-id: 5
sim-address: /tmp/otns.sock
sim-network: unixgram
log-level: debug
rfsim-params:
  rxsens: -105
  ccath: -70
`)
	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.NodeId)
	assert.Equal(t, "/tmp/otns.sock", cfg.SimAddress)
	assert.Equal(t, "unixgram", cfg.SimNetwork)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, types.RfSimParamValue(-105), cfg.RfSimParams["rxsens"])
	assert.Equal(t, types.RfSimParamValue(-70), cfg.RfSimParams["ccath"])
}

func TestLoadConfigFileDefaults(t *testing.T) {
	path := writeConfigFile(t, "node-id: 2\n")
	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.NodeId)
	assert.Equal(t, "udp", cfg.SimNetwork)
	assert.Equal(t, "localhost:9000", cfg.SimAddress)
}

func TestLoadConfigFileRejectsUnknownKey(t *testing.T) {
	path := writeConfigFile(t, "node-idd: 2\n")
	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}

func TestLoadConfigFileRejectsBadValues(t *testing.T) {
	_, err := LoadConfigFile(writeConfigFile(t, "node-id: 0\n"))
	assert.Error(t, err)

	_, err = LoadConfigFile(writeConfigFile(t, "sim-network: tcp\n"))
	assert.Error(t, err)

	_, err = LoadConfigFile(writeConfigFile(t, "rfsim-params: {bogus: 1}\n"))
	assert.Error(t, err)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

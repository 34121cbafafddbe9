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

// Command nodesim runs one simulated node against an event-based radio
// simulator. In the default mode it runs the lock-step event loop; with
// -console it instead offers an interactive console on the connected session.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/openthread/ot-nodesim/cli"
	"github.com/openthread/ot-nodesim/cli/runcli"
	"github.com/openthread/ot-nodesim/event"
	"github.com/openthread/ot-nodesim/logger"
	"github.com/openthread/ot-nodesim/platform"
	"github.com/openthread/ot-nodesim/progctx"
	"github.com/openthread/ot-nodesim/radio"
	"github.com/openthread/ot-nodesim/types"
)

// exitCodeProtocolFailure distinguishes a node that stopped because of a
// protocol failure (malformed frames, socket errors) from normal exits, so
// simulator-side tooling can tell the two apart.
const exitCodeProtocolFailure = 3

type MainArgs struct {
	ConfigFile string
	NodeId     int
	SimAddress string
	SimNetwork string
	LogLevel   string
	Console    bool
}

var (
	args MainArgs
)

func parseArgs() {
	def := platform.DefaultConfig()
	flag.StringVar(&args.ConfigFile, "config", "", "node config file (YAML)")
	flag.IntVar(&args.NodeId, "id", def.NodeId, "node ID")
	flag.StringVar(&args.SimAddress, "sim", def.SimAddress, "simulator socket address")
	flag.StringVar(&args.SimNetwork, "net", def.SimNetwork, "simulator socket network: udp or unixgram")
	flag.StringVar(&args.LogLevel, "log", def.LogLevel, "set logging level: trace, debug, info, warn, error")
	flag.BoolVar(&args.Console, "console", false, "run the interactive node console instead of the event loop")
	flag.Parse()
}

// loadConfig merges the config file (if any) with explicitly set flags;
// flags win.
func loadConfig() (platform.Config, error) {
	cfg := platform.DefaultConfig()
	if args.ConfigFile != "" {
		var err error
		if cfg, err = platform.LoadConfigFile(args.ConfigFile); err != nil {
			return cfg, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "id":
			cfg.NodeId = args.NodeId
		case "sim":
			cfg.SimAddress = args.SimAddress
		case "net":
			cfg.SimNetwork = args.SimNetwork
		case "log":
			cfg.LogLevel = args.LogLevel
		}
	})
	return cfg, nil
}

// dialSimulator connects the node's datagram socket. A unixgram socket needs
// a bound local address to be able to receive.
func dialSimulator(cfg platform.Config) (net.Conn, func(), error) {
	cleanup := func() {}
	if cfg.SimNetwork == "unixgram" {
		localPath := fmt.Sprintf("%s.node-%d", cfg.SimAddress, cfg.NodeId)
		_ = os.Remove(localPath)
		conn, err := net.DialUnix("unixgram",
			&net.UnixAddr{Name: localPath, Net: "unixgram"},
			&net.UnixAddr{Name: cfg.SimAddress, Net: "unixgram"})
		if err != nil {
			return nil, cleanup, errors.Wrapf(err, "connecting to simulator at %s", cfg.SimAddress)
		}
		cleanup = func() { _ = os.Remove(localPath) }
		return conn, cleanup, nil
	}
	conn, err := net.Dial(cfg.SimNetwork, cfg.SimAddress)
	if err != nil {
		return nil, cleanup, errors.Wrapf(err, "connecting to simulator at %s", cfg.SimAddress)
	}
	return conn, cleanup, nil
}

// uartToStdout prints the node's UART output locally.
type uartToStdout struct{}

func (uartToStdout) UartReceive(data []byte) {
	_, _ = os.Stdout.Write(data)
}

// loggingHost logs host-bound traffic delivered to the node; a full node
// stack would inject it into its IPv6 interface instead.
type loggingHost struct{}

func (loggingHost) UdpFromHost(meta *event.MsgToHostEventData, udpData []byte) error {
	logger.Infof("udp from host %v:%d -> port %d, %d bytes", meta.SrcIp6Address, meta.SrcPort, meta.DstPort, len(udpData))
	return nil
}

func (loggingHost) Ip6FromHost(meta *event.MsgToHostEventData, datagram []byte) error {
	logger.Infof("ip6 from host %v -> %v, %d bytes", meta.SrcIp6Address, meta.DstIp6Address, len(datagram))
	return nil
}

// promptRestorer redraws the console prompt after log lines interleave with
// console output.
type promptRestorer struct{}

func (promptRestorer) OnStdout() {
	runcli.RestorePrompt()
}

func handleSignals(ctx *progctx.ProgCtx) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGHUP)
	signal.Ignore(syscall.SIGALRM)

	ctx.WaitAdd("handleSignals", 1)
	go func() {
		defer ctx.WaitDone("handleSignals")

		for {
			select {
			case sig := <-c:
				logger.Infof("signal received: %v", sig)
				ctx.Cancel(nil)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func main() {
	parseArgs()

	cfg, err := loadConfig()
	logger.FatalIfError(err)
	lv, ok := logger.ParseLevel(cfg.LogLevel)
	if !ok {
		logger.Fatalf("unknown log level %q", cfg.LogLevel)
	}
	logger.SetLevel(lv)

	ctx := progctx.New(context.Background())
	handleSignals(ctx)

	conn, cleanup, err := dialSimulator(cfg)
	logger.FatalIfError(err)
	defer cleanup()
	ctx.Defer(func() { _ = conn.Close() })

	rad := radio.New(cfg.RfSimParams)
	sess := platform.NewSession(conn, types.NodeId(cfg.NodeId), platform.Handlers{
		Radio: rad,
		Uart:  uartToStdout{},
		Host:  loggingHost{},
	})
	logger.FatalIfError(sess.Start(), "announcing node to simulator")
	logger.Infof("node %d connected to simulator at %s", cfg.NodeId, cfg.SimAddress)

	if args.Console {
		// unblock the console read when a signal cancels the context.
		ctx.Defer(func() { _ = os.Stdin.Close() })
		logger.SetStdoutCallback(promptRestorer{})
		rt := cli.NewCmdRunner(ctx, sess)
		err := runcli.RunCli(rt, nil)
		ctx.Cancel(err)
		ctx.Wait()
		return
	}

	protocolFailure := false
	ctx.WaitAdd("eventloop", 1)
	go func() {
		defer ctx.WaitDone("eventloop")
		err := sess.Run(ctx)
		if ctx.Err() != nil {
			return // shutdown was requested, the error is a consequence
		}
		logger.Errorf("session ended: %v (last event: %s)", err, sess.LastEventInfo())
		protocolFailure = true
		ctx.Cancel(err)
	}()

	<-ctx.Done()
	ctx.Wait()
	if protocolFailure {
		os.Exit(exitCodeProtocolFailure)
	}
}

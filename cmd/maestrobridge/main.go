package main

import (
	"context"
	"flag"
	"net"
	"net/http"

	"github.com/golang/glog"

	"github.com/robotalks/maestro.go/pkg/bridge"
	"github.com/robotalks/maestro.go/pkg/bridge/metrics"
	"github.com/robotalks/maestro.go/pkg/bridge/mqtt"
	"github.com/robotalks/maestro.go/pkg/env"
	fx "github.com/robotalks/maestro.go/pkg/framework"
	"github.com/robotalks/maestro.go/pkg/maestro"
)

func init() {
	maestro.SetupFlags()
	env.SetupFlags()
	bridge.SetupFlags()
}

func main() {
	flag.Parse()

	conf := maestro.Default()
	ctl, err := conf.NewController()
	if err != nil {
		glog.Exit(err)
	}
	defer ctl.Close()

	reg := metrics.NewRegistry()
	m := metrics.New(reg)
	ctl.Observer = m

	srv := bridge.NewServer(ctl)
	bconf := bridge.Default()
	runner := fx.NewRunner().HandleSignals()
	ctx := runner.Context

	if envConf := env.Default(); envConf.MQTTURL != "" {
		id := envConf.BridgeID()
		ep, err := mqtt.NewEndpoint(envConf.MQTTURL, id, mqtt.Meta{
			Description: "Maestro servo controller",
			Device:      conf.Device,
			Protocol:    conf.Protocol,
			Channels:    conf.Channels,
		})
		if err != nil {
			glog.Exit(err)
		}
		glog.Infof("MQTT bridge %s on %s", id, envConf.MQTTURL)
		runner.Go(fx.NamedRun("mqtt", ep))
		runner.Go(fx.NamedRun("mqtt-pipe", fx.RunFunc(func(ctx context.Context) error {
			return srv.ServeConn(ctx, ep.ReadWriter)
		})))
	}

	if bconf.HTTPAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/ws", srv.WebsocketHandler(ctx))
		mux.Handle("/metrics", metrics.Handler(reg))
		runner.Go(fx.NamedRun("http", fx.RunFunc(func(ctx context.Context) error {
			return bridge.ServeHTTP(ctx, bconf.HTTPAddr, mux)
		})))
	}

	if bconf.TCPAddr != "" {
		ln, err := net.Listen("tcp", bconf.TCPAddr)
		if err != nil {
			glog.Exit(err)
		}
		glog.Infof("TCP listening on %s", ln.Addr())
		runner.Go(fx.NamedRun("tcp", fx.RunFunc(func(ctx context.Context) error {
			return srv.ServeListener(ctx, ln)
		})))
	}

	poller, err := bconf.NewPoller(ctl, srv)
	if err != nil {
		glog.Exit(err)
	}
	if poller != nil {
		poller.OnStatus = m.ObserveStatus
		runner.Go(fx.NamedRun("poller", poller))
	}
	runner.RunOrFail()
}

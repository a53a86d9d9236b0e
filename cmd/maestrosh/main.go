package main

import (
	"context"
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/maestro.go/pkg/bridge"
	"github.com/robotalks/maestro.go/pkg/cli/sh"
	"github.com/robotalks/maestro.go/pkg/maestro"

	_ "github.com/robotalks/maestro.go/pkg/cli/cmds/all"
)

var bridgeURL string

func init() {
	maestro.SetupFlags()
	flag.StringVar(&bridgeURL, "bridge", bridgeURL, "Bridge URL (ws://host:port/ws or tcp://host:port) instead of the local device.")
}

func main() {
	flag.Parse()

	if bridgeURL == "" {
		ctl, err := maestro.Default().NewController()
		if err != nil {
			glog.Exit(err)
		}
		defer ctl.Close()
		sh.NewLocal(ctl).Run(flag.Args()...)
		return
	}

	rw, err := bridge.Dial(bridgeURL)
	if err != nil {
		glog.Exit(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := bridge.NewClient(rw)
	go client.Run(ctx)
	sh.New(client, maestro.Registry{Channels: maestro.Default().Channels}).Run(flag.Args()...)
}

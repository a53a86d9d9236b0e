package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/maestro.go/pkg/bridge"
	fx "github.com/robotalks/maestro.go/pkg/framework"
	"github.com/robotalks/maestro.go/pkg/joystick"
	"github.com/robotalks/maestro.go/pkg/maestro"
)

func init() {
	maestro.SetupFlags()
	joystick.SetupFlags()
	bridge.SetupFlags()
}

func main() {
	flag.Parse()

	ctl, err := maestro.Default().NewController()
	if err != nil {
		glog.Exit(err)
	}
	defer ctl.Close()

	js, err := joystick.Default().NewController(ctl)
	if err != nil {
		glog.Exit(err)
	}
	glog.Infof("Axes %s", js.Axes)

	runner := fx.NewRunner().HandleSignals()
	runner.Go(fx.NamedRun("joystick", js))

	poller, err := bridge.Default().NewPoller(ctl, nil)
	if err != nil {
		glog.Exit(err)
	}
	if poller != nil {
		if len(poller.Channels) == 0 {
			poller.Channels = js.Axes.Channels()
		}
		runner.Go(fx.NamedRun("poller", poller))
	}
	runner.RunOrFail()
}

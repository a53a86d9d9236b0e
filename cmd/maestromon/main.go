package main

import (
	"flag"
	"strings"

	"github.com/golang/glog"

	"github.com/robotalks/maestro.go/pkg/bridge/mqtt"
	"github.com/robotalks/maestro.go/pkg/bridge/msgs"
	"github.com/robotalks/maestro.go/pkg/env"
)

func init() {
	env.SetupFlags()
}

func main() {
	flag.Parse()

	q, err := mqtt.NewQueueFromURL(env.Default().MQTTURLOrDefault())
	if err != nil {
		glog.Exit(err)
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		glog.Exit(token.Error())
	}

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/"+mqtt.MetaTopic) {
			meta, err := mqtt.ParseMeta(payload)
			switch {
			case err != nil:
				glog.Warningf("%s: bad meta: %v", topic, err)
			case meta == nil:
				glog.Infof("%s: offline", topic)
			default:
				glog.Infof("%s: %s %s, %d channels, %s", topic, meta.Description, meta.Device, meta.Channels, meta.Protocol)
			}
			return
		}
		msg, err := msgs.Decode(payload)
		if err != nil {
			glog.Warningf("%s: bad message: %v", topic, err)
			return
		}
		glog.Infof("%s: %T %s", topic, msg, msg.String())
	}))
	<-(chan struct{})(nil)
}

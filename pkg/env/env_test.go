package env

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBridgeID(t *testing.T) {
	conf := NewConfig()
	conf.ID = "arm"
	require.Equal(t, "arm", conf.BridgeID())

	conf.ID = ""
	require.NotEmpty(t, conf.BridgeID())
	require.Equal(t, MachineID(), conf.BridgeID())
}

func TestApplyEnv(t *testing.T) {
	var conf Config
	applyEnv(&conf, func(string) string { return "" })
	require.Empty(t, conf.MQTTURL)
	require.Equal(t, DefaultMQTTURL, conf.MQTTURLOrDefault())

	vars := map[string]string{
		"MAESTRO_MQTT_URL": "mqtts://broker:8883/robots/",
		"MAESTRO_ID":       "arm",
	}
	applyEnv(&conf, func(key string) string { return vars[key] })
	require.Equal(t, Config{MQTTURL: "mqtts://broker:8883/robots/", ID: "arm"}, conf)
	require.Equal(t, "mqtts://broker:8883/robots/", conf.MQTTURLOrDefault())
}

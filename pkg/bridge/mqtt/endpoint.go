package mqtt

import (
	"context"
	"encoding/json"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// Meta describes a bridge to clients discovering it.
type Meta struct {
	Description string `json:"description,omitempty"`
	Device      string `json:"device,omitempty"`
	Protocol    string `json:"protocol,omitempty"`
	Channels    int    `json:"channels,omitempty"`
}

// Endpoint is the MQTT presence of a bridge.
//
// Meta is published retained when connected and cleared when the
// Endpoint stops or the connection is lost (by the will).
type Endpoint struct {
	Name       string
	Queue      *Queue
	ReadWriter *ReadWriter

	meta []byte
}

// NewEndpoint creates an Endpoint.
func NewEndpoint(brokerURL, name string, meta Meta) (*Endpoint, error) {
	data, err := json.Marshal(&meta)
	if err != nil {
		return nil, err
	}
	opts, err := ParseURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.Client.SetBinaryWill(opts.TopicPrefix+name+"/"+MetaTopic, nil, 1, true)
	if opts.Client.ClientID == "" {
		opts.Client.SetClientID("maestro:" + name)
	}
	e := &Endpoint{
		Name:  name,
		Queue: NewQueue(opts),
		meta:  data,
	}
	e.Queue.OnConnect = func(*Queue) { e.publishMeta(e.meta) }
	e.ReadWriter = NewPacketReadWriter(e.Queue).ForBridge(name)
	return e, nil
}

// String implements fmt.Stringer.
func (e *Endpoint) String() string {
	return "mqtt:" + e.Name
}

// Run implements Runnable.
func (e *Endpoint) Run(ctx context.Context) error {
	token := e.Queue.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return err
	}
	err := e.ReadWriter.Run(ctx)
	e.publishMeta(nil).Wait()
	e.Queue.Close()
	return err
}

func (e *Endpoint) publishMeta(meta []byte) paho.Token {
	return e.Queue.PubWith(e.Name+"/"+MetaTopic, meta, 1, true)
}

// ParseMeta decodes the payload of a meta topic, nil if the bridge is offline.
func ParseMeta(payload []byte) (*Meta, error) {
	if len(payload) == 0 {
		return nil, nil
	}
	var meta Meta
	if err := json.Unmarshal(payload, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

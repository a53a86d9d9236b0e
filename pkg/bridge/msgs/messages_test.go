package msgs

import (
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	status := &Status{
		Time:       1234,
		Channels:   []int32{0, 1},
		Positions:  []int32{6000, 4000},
		Moving:     true,
		Errors:     5,
		ErrorNames: []string{"SERIAL_SIGNAL", "SERIAL_BUFFER_FULL"},
	}
	pkt, err := Encode(status)
	require.NoError(t, err)
	msg, err := Decode(pkt)
	require.NoError(t, err)
	require.True(t, proto.Equal(status, msg))
}

func TestEncodeDecodeAllKinds(t *testing.T) {
	for _, msg := range []Message{
		&Request{Seq: 7, Command: "script.restart", Channel: 2, Value: 1, Normalized: -0.5, Param: 300, HasParam: true, Operands: []byte{3}},
		&Request{Seq: 8, Command: "home"},
		&Reply{Seq: 7, Error: "response timeout", Value: 6000, State: true, Data: []byte{0x70, 0x17}},
		&Reply{Seq: 8},
		&Status{Time: 1, Channels: []int32{3}, Positions: []int32{4000}, Error: "channel 4: response timeout"},
		&Status{},
	} {
		pkt, err := Encode(msg)
		require.NoError(t, err)
		decoded, err := Decode(pkt)
		require.NoError(t, err)
		require.Equal(t, msg.Kind(), decoded.Kind())
		require.True(t, proto.Equal(msg, decoded), "%v != %v", msg, decoded)
	}
}

func TestWireFormat(t *testing.T) {
	data, err := proto.Marshal(&Request{Seq: 1, Command: "x"})
	require.NoError(t, err)
	require.Equal(t, []byte{0x08, 0x01, 0x12, 0x01, 'x'}, data)

	data, err = proto.Marshal(&Reply{State: true})
	require.NoError(t, err)
	require.Equal(t, []byte{0x20, 0x01}, data)

	data, err = proto.Marshal(&Status{Positions: []int32{1, 2}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x1a, 0x02, 0x01, 0x02}, data)

	fields := (&Request{}).ProtoReflect().Descriptor().Fields()
	require.False(t, fields.ByName("has_param").HasPresence())
	require.False(t, fields.ByName("normalized").HasPresence())
}

func TestDecodeUnknownKind(t *testing.T) {
	pkt, err := proto.Marshal(&Envelope{Kind: 99})
	require.NoError(t, err)
	_, err = Decode(pkt)
	require.Equal(t, &ErrUnknownKind{Kind: 99}, err)

	_, err = Decode([]byte{0xff, 0xff})
	require.Error(t, err)
}

func TestReplyErr(t *testing.T) {
	require.NoError(t, (&Reply{}).Err())
	require.EqualError(t, (&Reply{Error: "channel out of range"}).Err(), "channel out of range")
}

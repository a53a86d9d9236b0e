package device

import (
	"encoding/binary"
	"io"
)

// EventSize is the size of a js_event record.
const EventSize = 8

// Type bits of a js_event.
const (
	TypeButton uint8 = 0x01
	TypeAxis   uint8 = 0x02
	TypeInit   uint8 = 0x80
)

// RawEvent is a js_event record: time in ms, value, type bits and number.
type RawEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// IsInit implements Event.
func (e *RawEvent) IsInit() bool {
	return e.Type&TypeInit != 0
}

// Index implements Event.
func (e *RawEvent) Index() int {
	return int(e.Number)
}

type axis struct {
	RawEvent
}

func (e *axis) Value() int {
	return int(e.RawEvent.Value)
}

type button struct {
	RawEvent
}

func (e *button) Pressed() bool {
	return e.RawEvent.Value != 0
}

// DecodeEvent reads one js_event record from r.
// Axis and button records are returned as AxisEvent and ButtonEvent,
// records of other types as *RawEvent.
func DecodeEvent(r io.Reader) (Event, error) {
	var buf [EventSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	raw := RawEvent{
		Time:   binary.LittleEndian.Uint32(buf[0:4]),
		Value:  int16(binary.LittleEndian.Uint16(buf[4:6])),
		Type:   buf[6],
		Number: buf[7],
	}
	switch raw.Type &^ TypeInit {
	case TypeAxis:
		return &axis{RawEvent: raw}, nil
	case TypeButton:
		return &button{RawEvent: raw}, nil
	}
	return &raw, nil
}

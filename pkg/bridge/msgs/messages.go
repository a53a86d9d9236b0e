// Package msgs defines the messages exchanged with bridge clients.
//
// Each packet carries one Envelope. The Kind of the envelope selects the
// message type of its payload. The messages are defined in messages.proto.
package msgs

//go:generate protoc --go_out=. --go_opt=paths=source_relative messages.proto

import (
	"errors"
	"fmt"

	"github.com/golang/protobuf/proto"
)

// Kinds of messages.
const (
	KindRequest uint32 = 1
	KindReply   uint32 = 2
	KindStatus  uint32 = 3
)

// Message is a message which can be wrapped in an Envelope.
type Message interface {
	proto.Message
	Kind() uint32
}

// Kind implements Message.
func (m *Request) Kind() uint32 { return KindRequest }

// Kind implements Message.
func (m *Reply) Kind() uint32 { return KindReply }

// Kind implements Message.
func (m *Status) Kind() uint32 { return KindStatus }

// Err returns the error reported by the reply.
func (m *Reply) Err() error {
	if m.Error == "" {
		return nil
	}
	return errors.New(m.Error)
}

// ErrUnknownKind indicates an envelope of unknown kind.
type ErrUnknownKind struct {
	Kind uint32
}

// Error implements error.
func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown message kind: %d", e.Kind)
}

// New creates an empty message of the kind.
func New(kind uint32) (Message, error) {
	switch kind {
	case KindRequest:
		return &Request{}, nil
	case KindReply:
		return &Reply{}, nil
	case KindStatus:
		return &Status{}, nil
	}
	return nil, &ErrUnknownKind{Kind: kind}
}

// Encode wraps msg into an Envelope and serializes it.
func Encode(msg Message) ([]byte, error) {
	payload, err := proto.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(&Envelope{Kind: msg.Kind(), Payload: payload})
}

// Decode parses a packet into the wrapped message.
func Decode(pkt []byte) (Message, error) {
	var env Envelope
	if err := proto.Unmarshal(pkt, &env); err != nil {
		return nil, err
	}
	msg, err := New(env.Kind)
	if err != nil {
		return nil, err
	}
	if err = proto.Unmarshal(env.Payload, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

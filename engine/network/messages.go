package network

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Message types carried in Envelope.Type
const (
	MsgHello   = "hello"
	MsgCommand = "command"
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgEvent   = "event"
	MsgError   = "error"
)

var ErrEmptyMessage = errors.New("empty message")

// Envelope frames every websocket message
type Envelope struct {
	Type    string `msgpack:"t"`
	Payload []byte `msgpack:"p"`
}

// HelloMsg is the optional first client message
type HelloMsg struct {
	Name string `msgpack:"name"`
}

// WelcomeMsg tells a client who it is. Seat is -1 for spectators.
type WelcomeMsg struct {
	ClientID string `msgpack:"client_id"`
	Seat     int    `msgpack:"seat"`
	Room     string `msgpack:"room"`
}

// EventMsg mirrors a core event with players replaced by seats
type EventMsg struct {
	Kind   string `msgpack:"kind"`
	Turn   int    `msgpack:"turn"`
	Seat   int    `msgpack:"seat"`
	Ship   uint64 `msgpack:"ship,omitempty"`
	From   [2]int `msgpack:"from"`
	To     [2]int `msgpack:"to"`
	Damage int    `msgpack:"damage,omitempty"`
	Winner int    `msgpack:"winner"`
}

type ErrorMsg struct {
	Reason string `msgpack:"reason"`
}

// Encode wraps a payload in a typed envelope
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("encoding envelope: %w", ErrEmptyMessage)
	}
	pb, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", t, err)
	}
	return msgpack.Marshal(Envelope{Type: t, Payload: pb})
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decoding envelope: %w", ErrEmptyMessage)
	}
	var env Envelope
	if err := msgpack.Unmarshal(b, &env); err != nil {
		return Envelope{}, fmt.Errorf("decoding envelope: %w", err)
	}
	return env, nil
}

// DecodePayload unpacks an envelope's payload into T
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.Payload) == 0 {
		return out, fmt.Errorf("%q payload: %w", env.Type, ErrEmptyMessage)
	}
	if err := msgpack.Unmarshal(env.Payload, &out); err != nil {
		return out, fmt.Errorf("decoding %s payload: %w", env.Type, err)
	}
	return out, nil
}

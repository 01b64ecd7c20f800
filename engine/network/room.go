package network

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/1siamBot/stellar-armada/engine/core"
)

// Conn is the outbound half of a client connection. Send must not block.
type Conn interface {
	Send([]byte) error
	Close() error
}

// EngineFactory builds a fresh match for a room
type EngineFactory func() (*core.Engine, error)

var ErrSendBufferFull = errors.New("send buffer full")

type client struct {
	id   string
	name string
	seat int
	conn Conn
}

// Room hosts one match. Seats 0 and 1 follow the engine's player order,
// later joiners spectate. All engine access happens under mu.
type Room struct {
	Code    string
	OnEmpty func(code string) // called when the last client leaves

	mu      sync.Mutex
	eng     *core.Engine
	factory EngineFactory
	clients map[string]*client
	seats   [2]string
	failed  []string
	log     zerolog.Logger
	metrics *Metrics
}

func NewRoom(code string, factory EngineFactory, log zerolog.Logger, metrics *Metrics) (*Room, error) {
	r := &Room{
		Code:    code,
		factory: factory,
		clients: make(map[string]*client),
		log:     log.With().Str("room", code).Logger(),
		metrics: metrics,
	}
	if err := r.reset(); err != nil {
		return nil, err
	}
	return r, nil
}

// reset swaps in a new engine and wires its events to the clients
func (r *Room) reset() error {
	e, err := r.factory()
	if err != nil {
		return fmt.Errorf("creating match: %w", err)
	}
	for _, t := range []core.EventType{
		core.EvtShipMoved, core.EvtShipDamaged, core.EvtShipDestroyed,
		core.EvtNextTurn, core.EvtGameOver,
	} {
		e.Subscribe(t, func(ev core.Event) { r.onEvent(e, ev) })
	}
	r.eng = e
	return nil
}

func (r *Room) onEvent(e *core.Engine, ev core.Event) {
	r.log.Debug().Stringer("event", ev.Type).Int("turn", ev.Turn).Msg("broadcasting event")
	r.broadcast(MsgEvent, eventMsg(e, ev))
	r.broadcast(MsgState, BuildSnapshot(e))
}

// Join seats a client, or makes it a spectator when both seats are taken
func (r *Room) Join(conn Conn, name string) WelcomeMsg {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &client{id: uuid.NewString(), name: name, seat: -1, conn: conn}
	for i, id := range r.seats {
		if id == "" {
			r.seats[i] = c.id
			c.seat = i
			break
		}
	}
	if c.name == "" {
		c.name = fmt.Sprintf("Guest %s", c.id[:4])
	}
	r.clients[c.id] = c

	welcome := WelcomeMsg{ClientID: c.id, Seat: c.seat, Room: r.Code}
	r.sendTo(c, MsgWelcome, welcome)
	r.sendTo(c, MsgState, BuildSnapshot(r.eng))
	r.dropFailed()

	r.log.Info().Str("client", c.id).Str("name", c.name).Int("seat", c.seat).Msg("client joined")
	return welcome
}

// Leave removes a client and frees its seat
func (r *Room) Leave(id string) {
	r.mu.Lock()
	empty := r.remove(id)
	r.mu.Unlock()

	if empty && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) remove(id string) bool {
	c, ok := r.clients[id]
	if ok {
		_ = c.conn.Close()
		delete(r.clients, id)
		if c.seat >= 0 {
			r.seats[c.seat] = ""
		}
		r.log.Info().Str("client", id).Msg("client left")
	}
	return len(r.clients) == 0
}

// Handle decodes and applies one message from a client
func (r *Room) Handle(id string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[id]
	if !ok {
		return
	}
	env, err := DecodeEnvelope(data)
	if err != nil {
		r.reject(c, "", err)
		return
	}
	switch env.Type {
	case MsgHello:
		hello, err := DecodePayload[HelloMsg](env)
		if err != nil {
			r.reject(c, "", err)
			return
		}
		if hello.Name != "" {
			c.name = hello.Name
		}
	case MsgCommand:
		cmd, err := DecodePayload[GameCommand](env)
		if err != nil {
			r.reject(c, "", err)
			return
		}
		r.apply(c, cmd)
	default:
		r.reject(c, env.Type, fmt.Errorf("%w: message %q", ErrUnknownCommand, env.Type))
	}
	r.dropFailed()
}

func (r *Room) apply(c *client, cmd GameCommand) {
	if cmd.Kind == CmdRestart {
		if !r.eng.IsGameOver() {
			r.reject(c, cmd.Kind, ErrGameRunning)
			return
		}
		if c.seat < 0 {
			r.reject(c, cmd.Kind, ErrNotYourTurn)
			return
		}
		if err := r.reset(); err != nil {
			r.reject(c, cmd.Kind, err)
			return
		}
		r.metrics.Applied(cmd.Kind)
		r.log.Info().Str("client", c.id).Msg("match restarted")
		r.broadcast(MsgState, BuildSnapshot(r.eng))
		return
	}

	if err := cmd.Apply(r.eng, c.seat); err != nil {
		r.reject(c, cmd.Kind, err)
		return
	}
	r.metrics.Applied(cmd.Kind)
}

func (r *Room) reject(c *client, kind string, err error) {
	r.metrics.Rejected(kind)
	r.log.Debug().Err(err).Str("client", c.id).Str("kind", kind).Msg("message rejected")
	r.sendTo(c, MsgError, ErrorMsg{Reason: err.Error()})
}

func (r *Room) broadcast(t string, payload any) {
	b, err := Encode(t, payload)
	if err != nil {
		r.log.Error().Err(err).Str("type", t).Msg("encoding broadcast")
		return
	}
	for id, c := range r.clients {
		if err := c.conn.Send(b); err != nil {
			r.failed = append(r.failed, id)
		}
	}
}

func (r *Room) sendTo(c *client, t string, payload any) {
	b, err := Encode(t, payload)
	if err != nil {
		r.log.Error().Err(err).Str("type", t).Msg("encoding message")
		return
	}
	if err := c.conn.Send(b); err != nil {
		r.failed = append(r.failed, c.id)
	}
}

// dropFailed disconnects clients whose sends failed. The room is never
// emptied here; their read loops call Leave once the socket closes.
func (r *Room) dropFailed() {
	for _, id := range r.failed {
		if c, ok := r.clients[id]; ok {
			r.log.Warn().Str("client", id).Msg("dropping slow client")
			_ = c.conn.Close()
		}
	}
	r.failed = r.failed[:0]
}

// NumClients returns seated players plus spectators
func (r *Room) NumClients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Snapshot returns the current match state
func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return BuildSnapshot(r.eng)
}

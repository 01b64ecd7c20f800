package core

import "github.com/1siamBot/stellar-armada/engine/grid"

// Event represents a game event
type Event struct {
	Type   EventType
	Turn   int
	Player Player // player whose turn it is when the event fires
	Ship   ShipID // moved, damaged or destroyed ship
	From   grid.Point
	To     grid.Point // move destination, or the cell hit by an attack
	Damage int
	Winner Player
}

type EventType uint16

const (
	EvtShipMoved EventType = iota + 1
	EvtNextTurn
	EvtShipDestroyed
	EvtGameOver
	EvtShipDamaged
)

func (t EventType) String() string {
	switch t {
	case EvtShipMoved:
		return "ship_moved"
	case EvtNextTurn:
		return "next_turn"
	case EvtShipDestroyed:
		return "ship_destroyed"
	case EvtGameOver:
		return "game_over"
	case EvtShipDamaged:
		return "ship_damaged"
	}
	return "unknown"
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type. Handlers are never
// de-duplicated and run in registration order.
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit runs every handler for e.Type before returning
func (eb *EventBus) Emit(e Event) {
	for _, h := range eb.listeners[e.Type] {
		h(e)
	}
}

// Count returns the number of handlers registered for t
func (eb *EventBus) Count(t EventType) int {
	return len(eb.listeners[t])
}

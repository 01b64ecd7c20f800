package core

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/1siamBot/stellar-armada/engine/grid"
	"github.com/1siamBot/stellar-armada/engine/pathfind"
	"github.com/rs/zerolog"
)

// Zone is an inclusive starting rectangle
type Zone = grid.Zone

// Engine owns the authoritative match state: both fleets, turn order,
// and the event registry. It is not safe for concurrent use.
type Engine struct {
	min, max grid.Point
	zones    [2]Zone
	players  [2]Player
	fleets   map[Player][]*Ship
	current  int
	turn     int
	state    GameState
	winner   Player
	nextID   ShipID

	bus     *EventBus
	rng     *rand.Rand
	log     zerolog.Logger
	terrain pathfind.Passability

	shipsPerPlayer int
	loadout        func() []Weapon

	// >0 while handlers run; commands issued from a handler are dropped
	dispatching int
}

// NewEngine builds a width x height board and spawns each player's fleet
// at random free cells of its zone. zones[i] belongs to the i-th player.
func NewEngine(width, height int, zones [2]Zone, opts ...Option) (*Engine, error) {
	e := &Engine{
		min:            grid.Point{},
		max:            grid.Pt(width, height),
		zones:          zones,
		players:        DefaultPlayers(),
		fleets:         make(map[Player][]*Ship),
		turn:           1,
		state:          StatePlaying,
		bus:            NewEventBus(),
		log:            zerolog.Nop(),
		shipsPerPlayer: 1,
		loadout:        LaserLoadout,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- placement only
	}

	if width <= 0 || height <= 0 {
		return nil, &InvalidBoundsError{
			BottomRight: e.max,
			Reason:      "board size must be positive",
		}
	}
	if e.players[0] == e.players[1] {
		return nil, fmt.Errorf("%w: both are %q", ErrDuplicatePlayers, e.players[0].Name)
	}

	for i, p := range e.players {
		ships, err := e.generateRandomShips(zones[i], e.shipsPerPlayer)
		if err != nil {
			return nil, fmt.Errorf("spawning %s: %w", p.Name, err)
		}
		e.fleets[p] = ships
	}

	e.log.Debug().
		Int("width", width).
		Int("height", height).
		Int("shipsPerPlayer", e.shipsPerPlayer).
		Msg("engine created")
	return e, nil
}

// GenerateRandomShips places n ships at distinct, uniformly random cells of
// zone, ignoring any board or terrain. IDs run from 1. Inverted corners fail
// with *InvalidBoundsError.
func GenerateRandomShips(rng *rand.Rand, zone Zone, n int, loadout func() []Weapon) ([]Ship, error) {
	if err := checkZone(zone); err != nil {
		return nil, err
	}
	var next ShipID
	placed, err := placeShips(rng, zone, zone.Cells(), n, loadout, &next)
	if err != nil {
		return nil, err
	}
	out := make([]Ship, len(placed))
	for i, s := range placed {
		out[i] = s.clone()
	}
	return out, nil
}

func checkZone(zone Zone) error {
	if !zone.Valid() {
		return &InvalidBoundsError{
			TopLeft:     zone.TopLeft,
			BottomRight: zone.BottomRight,
			Reason:      "top-left must not exceed bottom-right",
		}
	}
	return nil
}

// generateRandomShips places limit ships uniformly at random among the
// zone's free passable cells
func (e *Engine) generateRandomShips(zone Zone, limit int) ([]*Ship, error) {
	if err := checkZone(zone); err != nil {
		return nil, err
	}
	if !zone.Within(e.min, e.max) {
		return nil, &InvalidBoundsError{
			TopLeft:     zone.TopLeft,
			BottomRight: zone.BottomRight,
			Reason:      fmt.Sprintf("zone outside board %v-%v", e.min, e.max),
		}
	}

	var free []grid.Point
	for _, c := range zone.Cells() {
		if _, taken := e.occupant(c); taken {
			continue
		}
		if e.terrain != nil && !e.terrain(c) {
			continue
		}
		free = append(free, c)
	}
	return placeShips(e.rng, zone, free, limit, e.loadout, &e.nextID)
}

// placeShips draws limit cells from free without replacement and builds a
// ship on each, numbering from *next
func placeShips(rng *rand.Rand, zone Zone, free []grid.Point, limit int, loadout func() []Weapon, next *ShipID) ([]*Ship, error) {
	ships := make([]*Ship, 0, max(limit, 0))
	for i := 0; i < limit; i++ {
		if len(free) == 0 {
			return nil, fmt.Errorf("%w: %v-%v", ErrNoSpawnPoint, zone.TopLeft, zone.BottomRight)
		}
		idx := rng.Intn(len(free))
		pos := free[idx]
		free[idx] = free[len(free)-1]
		free = free[:len(free)-1]

		weapons := loadout()
		if len(weapons) == 0 {
			return nil, ErrEmptyLoadout
		}
		*next++
		ships = append(ships, newShip(*next, pos, weapons))
	}
	return ships, nil
}

// Subscribe appends h to the handlers for t
func (e *Engine) Subscribe(t EventType, h EventHandler) {
	e.bus.On(t, h)
}

func (e *Engine) emit(ev Event) {
	ev.Turn = e.turn
	ev.Player = e.CurrentPlayer()
	e.dispatching++
	defer func() { e.dispatching-- }()
	e.bus.Emit(ev)
}

// accepting reports whether a command may mutate state right now
func (e *Engine) accepting(cmd string) bool {
	if e.state == StateGameOver {
		e.log.Debug().Str("command", cmd).Msg("ignored after game over")
		return false
	}
	if e.dispatching > 0 {
		e.log.Warn().Str("command", cmd).Msg("ignored during event dispatch")
		return false
	}
	return true
}

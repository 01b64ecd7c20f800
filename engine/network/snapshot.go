package network

import (
	"github.com/1siamBot/stellar-armada/engine/core"
)

// Snapshot is the full match state sent to clients
type Snapshot struct {
	Turn        int            `msgpack:"turn"`
	CurrentSeat int            `msgpack:"current_seat"`
	State       string         `msgpack:"state"`
	Winner      int            `msgpack:"winner"` // -1 while playing
	Width       int            `msgpack:"width"`
	Height      int            `msgpack:"height"`
	Ships       []ShipSnapshot `msgpack:"ships"`
}

type ShipSnapshot struct {
	ID          uint64           `msgpack:"id"`
	Seat        int              `msgpack:"seat"`
	X           int              `msgpack:"x"`
	Y           int              `msgpack:"y"`
	HP          int              `msgpack:"hp"`
	MaxHP       int              `msgpack:"max_hp"`
	Speed       int              `msgpack:"speed"`
	ActiveMoves int              `msgpack:"active_moves"`
	Selected    int              `msgpack:"selected"`
	Weapons     []WeaponSnapshot `msgpack:"weapons"`
}

type WeaponSnapshot struct {
	Name        string `msgpack:"name"`
	Damage      int    `msgpack:"damage"`
	Range       int    `msgpack:"range"`
	AttacksLeft int    `msgpack:"attacks_left"`
	AmmoLeft    int    `msgpack:"ammo_left"` // -1 for unlimited
}

// SeatOf maps a player to its turn-order index, or -1
func SeatOf(e *core.Engine, p core.Player) int {
	for i, q := range e.Players() {
		if q == p {
			return i
		}
	}
	return -1
}

// CurrentSeat is the seat whose turn it is
func CurrentSeat(e *core.Engine) int {
	return SeatOf(e, e.CurrentPlayer())
}

// BuildSnapshot reads the engine into a wire snapshot
func BuildSnapshot(e *core.Engine) Snapshot {
	_, size := e.Bounds()
	snap := Snapshot{
		Turn:        e.Turn(),
		CurrentSeat: CurrentSeat(e),
		State:       e.State().String(),
		Winner:      -1,
		Width:       size.X,
		Height:      size.Y,
	}
	if w, ok := e.Winner(); ok {
		snap.Winner = SeatOf(e, w)
	}
	for seat, p := range e.Players() {
		for _, s := range e.ShipsOf(p) {
			snap.Ships = append(snap.Ships, shipSnapshot(s, seat))
		}
	}
	return snap
}

func shipSnapshot(s core.Ship, seat int) ShipSnapshot {
	out := ShipSnapshot{
		ID:          uint64(s.ID),
		Seat:        seat,
		X:           s.Position.X,
		Y:           s.Position.Y,
		HP:          s.Health.Current,
		MaxHP:       s.Health.Max,
		Speed:       s.Speed,
		ActiveMoves: s.ActiveMoves,
		Selected:    s.Selected,
		Weapons:     make([]WeaponSnapshot, len(s.Weapons)),
	}
	for i, w := range s.Weapons {
		ammo := -1
		if !w.Unlimited() && w.AmmoLeft != nil {
			ammo = *w.AmmoLeft
		}
		out.Weapons[i] = WeaponSnapshot{
			Name:        w.Name,
			Damage:      w.Damage,
			Range:       w.Range,
			AttacksLeft: w.AttacksLeft,
			AmmoLeft:    ammo,
		}
	}
	return out
}

func eventMsg(e *core.Engine, ev core.Event) EventMsg {
	msg := EventMsg{
		Kind:   ev.Type.String(),
		Turn:   ev.Turn,
		Seat:   SeatOf(e, ev.Player),
		Ship:   uint64(ev.Ship),
		From:   [2]int{ev.From.X, ev.From.Y},
		To:     [2]int{ev.To.X, ev.To.Y},
		Damage: ev.Damage,
		Winner: -1,
	}
	if ev.Type == core.EvtGameOver {
		msg.Winner = SeatOf(e, ev.Winner)
	}
	return msg
}

package ui

import (
	"fmt"
	"strings"

	"github.com/1siamBot/stellar-armada/engine/core"
)

const DefaultLogLines = 8

// BattleLog keeps the most recent match events as text lines
type BattleLog struct {
	lines []string
	start int
	size  int
}

func NewBattleLog(capacity int) *BattleLog {
	if capacity < 1 {
		capacity = DefaultLogLines
	}
	return &BattleLog{lines: make([]string, capacity)}
}

// Attach records every event the engine fires
func (l *BattleLog) Attach(e *core.Engine) {
	for _, t := range []core.EventType{
		core.EvtShipMoved, core.EvtShipDamaged, core.EvtShipDestroyed,
		core.EvtNextTurn, core.EvtGameOver,
	} {
		e.Subscribe(t, func(ev core.Event) { l.Add(FormatEvent(ev)) })
	}
}

// Add appends a line, evicting the oldest when full
func (l *BattleLog) Add(line string) {
	if l.size < len(l.lines) {
		l.lines[(l.start+l.size)%len(l.lines)] = line
		l.size++
		return
	}
	l.lines[l.start] = line
	l.start = (l.start + 1) % len(l.lines)
}

// Lines returns the kept lines, oldest first
func (l *BattleLog) Lines() []string {
	out := make([]string, l.size)
	for i := range out {
		out[i] = l.lines[(l.start+i)%len(l.lines)]
	}
	return out
}

func (l *BattleLog) Len() int { return l.size }

func (l *BattleLog) Reset() {
	l.start, l.size = 0, 0
}

func (l *BattleLog) String() string {
	return strings.Join(l.Lines(), "\n")
}

// FormatEvent renders an event as a single log line
func FormatEvent(ev core.Event) string {
	prefix := fmt.Sprintf("[T%d] ", ev.Turn)
	switch ev.Type {
	case core.EvtShipMoved:
		return prefix + fmt.Sprintf("%s: ship #%d %s -> %s", ev.Player, ev.Ship, ev.From, ev.To)
	case core.EvtShipDamaged:
		return prefix + fmt.Sprintf("%s: ship #%d hit at %s for %d", ev.Player, ev.Ship, ev.To, ev.Damage)
	case core.EvtShipDestroyed:
		return prefix + fmt.Sprintf("ship #%d destroyed at %s", ev.Ship, ev.To)
	case core.EvtNextTurn:
		return prefix + fmt.Sprintf("%s to move", ev.Player)
	case core.EvtGameOver:
		return prefix + fmt.Sprintf("%s wins", ev.Winner)
	}
	return prefix + ev.Type.String()
}

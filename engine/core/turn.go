package core

// AdvanceTurn hands control to the next player, refills that player's
// moves and every weapon's attacks, then fires EvtNextTurn
func (e *Engine) AdvanceTurn() {
	if !e.accepting("end_turn") {
		return
	}
	e.current = (e.current + 1) % len(e.players)
	e.turn++

	cur := e.CurrentPlayer()
	for _, s := range e.fleets[cur] {
		s.reset()
	}

	e.log.Debug().Int("turn", e.turn).Str("player", cur.Name).Msg("next turn")
	e.emit(Event{Type: EvtNextTurn})
}
